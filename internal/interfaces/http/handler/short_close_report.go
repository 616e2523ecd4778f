package handler

import (
	"fmt"
	"time"

	reportapp "github.com/erp/procurement/internal/application/report"
	"github.com/erp/procurement/internal/domain/report"
	"github.com/gin-gonic/gin"
)

// ShortCloseReportHandler handles the short-close purchase order report endpoint
type ShortCloseReportHandler struct {
	BaseHandler
	service *reportapp.ShortCloseReportService
}

// NewShortCloseReportHandler creates a new ShortCloseReportHandler
func NewShortCloseReportHandler(service *reportapp.ShortCloseReportService) *ShortCloseReportHandler {
	return &ShortCloseReportHandler{service: service}
}

// RegisterRoutes registers the report routes on the given group
func (h *ShortCloseReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/procurement/short-close-orders", h.GetShortCloseOrders)
}

// ShortCloseReportRequest defines the query filter for the report
type ShortCloseReportRequest struct {
	FromDate      string   `form:"from_date" binding:"required"`
	ToDate        string   `form:"to_date" binding:"required"`
	Company       string   `form:"company"`
	PurchaseOrder string   `form:"purchase_order"`
	Status        []string `form:"status"`
	Project       string   `form:"project"`
	GroupByPO     bool     `form:"group_by_po"`
}

// GetShortCloseOrders returns the short-close purchase order report
func (h *ShortCloseReportHandler) GetShortCloseOrders(c *gin.Context) {
	var req ShortCloseReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter, err := req.toFilter()
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Run(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

func (r ShortCloseReportRequest) toFilter() (report.ShortCloseFilter, error) {
	fromDate, err := time.Parse(time.DateOnly, r.FromDate)
	if err != nil {
		return report.ShortCloseFilter{}, fmt.Errorf("invalid from_date %q: expected YYYY-MM-DD", r.FromDate)
	}
	toDate, err := time.Parse(time.DateOnly, r.ToDate)
	if err != nil {
		return report.ShortCloseFilter{}, fmt.Errorf("invalid to_date %q: expected YYYY-MM-DD", r.ToDate)
	}

	return report.ShortCloseFilter{
		FromDate:             fromDate,
		ToDate:               toDate,
		Company:              r.Company,
		PurchaseOrder:        r.PurchaseOrder,
		Statuses:             r.Status,
		Project:              r.Project,
		GroupByPurchaseOrder: r.GroupByPO,
	}, nil
}
