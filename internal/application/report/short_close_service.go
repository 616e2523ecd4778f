package report

import (
	"context"
	"time"

	"github.com/erp/procurement/internal/domain/report"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ShortCloseReportService runs the short-close purchase order report: one
// repository query followed by one in-memory shaping pass. The service is
// stateless; every call is independent.
type ShortCloseReportService struct {
	repo   report.ShortCloseReportRepository
	logger *zap.Logger
}

// NewShortCloseReportService creates a new ShortCloseReportService
func NewShortCloseReportService(repo report.ShortCloseReportRepository, logger *zap.Logger) *ShortCloseReportService {
	return &ShortCloseReportService{
		repo:   repo,
		logger: logger.Named("short_close_report"),
	}
}

// ShortCloseReportResponse is the full report payload: the column schema, the
// shaped rows and the chart totals.
type ShortCloseReportResponse struct {
	Columns []Column                `json:"columns"`
	Rows    []ShortCloseRowResponse `json:"rows"`
	Chart   ChartResponse           `json:"chart"`
}

// ShortCloseRowResponse is one report row keyed by column fieldname
type ShortCloseRowResponse struct {
	Date              string  `json:"date"`
	RequiredDate      string  `json:"required_date"`
	Project           string  `json:"project,omitempty"`
	PurchaseOrder     string  `json:"purchase_order"`
	Status            string  `json:"status"`
	Supplier          string  `json:"supplier"`
	ItemCode          string  `json:"item_code"`
	Qty               float64 `json:"qty"`
	ReceivedQty       float64 `json:"received_qty"`
	PendingQty        float64 `json:"pending_qty"`
	BilledQty         float64 `json:"billed_qty"`
	QtyToBill         float64 `json:"qty_to_bill"`
	Amount            float64 `json:"amount"`
	ReceivedQtyAmount float64 `json:"received_qty_amount"`
	BilledAmount      float64 `json:"billed_amount"`
	PendingAmount     float64 `json:"pending_amount"`
	Warehouse         string  `json:"warehouse"`
	Company           string  `json:"company"`
	OrderItemID       string  `json:"order_item_id"`
	GoodInTransitQty  float64 `json:"good_in_transit_qty"`
	ShortCloseQty     float64 `json:"short_close_qty"`
}

// ChartResponse carries the billed-vs-pending summary for the report chart
type ChartResponse struct {
	Type   string    `json:"type"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Run executes the report. The filter date range is validated before any
// query is issued; repository failures propagate to the caller untouched.
func (s *ShortCloseReportService) Run(ctx context.Context, filter report.ShortCloseFilter) (*ShortCloseReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	lines, err := s.repo.GetOrderLines(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows, totals := shapeRows(lines, filter)

	s.logger.Debug("short-close report executed",
		zap.Int("line_count", len(lines)),
		zap.Int("row_count", len(rows)),
		zap.Bool("group_by_po", filter.GroupByPurchaseOrder),
	)

	return &ShortCloseReportResponse{
		Columns: ShortCloseColumns(),
		Rows:    toRowResponses(rows),
		Chart: ChartResponse{
			Type:   "donut",
			Labels: []string{"Billed Amount", "Pending Amount"},
			Values: []float64{toFloat64(totals.Completed), toFloat64(totals.Pending)},
		},
	}, nil
}

// shapeRows derives qty_to_bill for every line and, when requested, collapses
// lines into one row per purchase order. The chart totals are accumulated
// over the raw lines, so they are unaffected by grouping. Shaping is a
// one-shot pass: feeding grouped output back in would double the sums.
func shapeRows(lines []report.OrderLineRow, filter report.ShortCloseFilter) ([]report.ShortCloseRow, report.ShortCloseTotals) {
	var totals report.ShortCloseTotals

	rows := make([]report.ShortCloseRow, 0, len(lines))
	index := make(map[string]int, len(lines)) // purchase order -> position in rows

	for _, line := range lines {
		totals.Completed = totals.Completed.Add(line.BilledAmount)
		totals.Pending = totals.Pending.Add(line.PendingAmount)

		row := report.ShortCloseRow{
			OrderLineRow: line,
			QtyToBill:    line.Qty.Sub(line.BilledQty),
		}

		if !filter.GroupByPurchaseOrder {
			rows = append(rows, row)
			continue
		}

		at, seen := index[line.PurchaseOrder]
		if !seen {
			// first line of this order: the row value is an independent
			// copy, later merges never touch the source line
			index[line.PurchaseOrder] = len(rows)
			rows = append(rows, row)
			continue
		}
		rows[at] = mergeRow(rows[at], row)
	}

	return rows, totals
}

// mergeRow folds one more line into the grouped row of its purchase order:
// numeric fields are summed, the required date keeps the earliest value and
// every descriptive field keeps the first-seen value.
func mergeRow(group, line report.ShortCloseRow) report.ShortCloseRow {
	if line.RequiredDate.Before(group.RequiredDate) {
		group.RequiredDate = line.RequiredDate
	}

	group.Qty = group.Qty.Add(line.Qty)
	group.ReceivedQty = group.ReceivedQty.Add(line.ReceivedQty)
	group.PendingQty = group.PendingQty.Add(line.PendingQty)
	group.BilledQty = group.BilledQty.Add(line.BilledQty)
	group.QtyToBill = group.QtyToBill.Add(line.QtyToBill)
	group.Amount = group.Amount.Add(line.Amount)
	group.ReceivedQtyAmount = group.ReceivedQtyAmount.Add(line.ReceivedQtyAmount)
	group.BilledAmount = group.BilledAmount.Add(line.BilledAmount)
	group.PendingAmount = group.PendingAmount.Add(line.PendingAmount)

	return group
}

func toRowResponses(rows []report.ShortCloseRow) []ShortCloseRowResponse {
	out := make([]ShortCloseRowResponse, len(rows))
	for i, r := range rows {
		out[i] = ShortCloseRowResponse{
			Date:              r.Date.Format(time.DateOnly),
			RequiredDate:      r.RequiredDate.Format(time.DateOnly),
			Project:           r.Project,
			PurchaseOrder:     r.PurchaseOrder,
			Status:            r.Status,
			Supplier:          r.Supplier,
			ItemCode:          r.ItemCode,
			Qty:               toFloat64(r.Qty),
			ReceivedQty:       toFloat64(r.ReceivedQty),
			PendingQty:        toFloat64(r.PendingQty),
			BilledQty:         toFloat64(r.BilledQty),
			QtyToBill:         toFloat64(r.QtyToBill),
			Amount:            toFloat64(r.Amount),
			ReceivedQtyAmount: toFloat64(r.ReceivedQtyAmount),
			BilledAmount:      toFloat64(r.BilledAmount),
			PendingAmount:     toFloat64(r.PendingAmount),
			Warehouse:         r.Warehouse,
			Company:           r.Company,
			OrderItemID:       r.OrderItemID,
			GoodInTransitQty:  toFloat64(r.GoodInTransitQty),
			ShortCloseQty:     toFloat64(r.ShortCloseQty),
		}
	}
	return out
}

// toFloat64 converts a decimal to float64 at the response boundary
func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
