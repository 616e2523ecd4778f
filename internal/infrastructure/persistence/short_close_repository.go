package persistence

import (
	"context"

	"github.com/erp/procurement/internal/domain/report"
	"gorm.io/gorm"
)

// GormShortCloseReportRepository implements ShortCloseReportRepository using GORM
type GormShortCloseReportRepository struct {
	db *gorm.DB
}

// NewGormShortCloseReportRepository creates a new GormShortCloseReportRepository
func NewGormShortCloseReportRepository(db *gorm.DB) *GormShortCloseReportRepository {
	return &GormShortCloseReportRepository{db: db}
}

// GetOrderLines returns one row per purchase order item of every closed,
// submitted purchase order matching the filter. Invoice lines are left-joined
// so order lines without billing activity still appear with a billed quantity
// of zero; grouping per order item sums billed quantity across multiple
// invoice lines without duplicating the other columns.
func (r *GormShortCloseReportRepository) GetOrderLines(ctx context.Context, filter report.ShortCloseFilter) ([]report.OrderLineRow, error) {
	query := r.db.WithContext(ctx).Table("purchase_orders po").
		Select(`
			po.transaction_date AS date,
			poi.required_date AS required_date,
			poi.project AS project,
			po.order_no AS purchase_order,
			po.status AS status,
			po.supplier AS supplier,
			poi.item_code AS item_code,
			poi.qty AS qty,
			poi.received_qty AS received_qty,
			poi.qty - poi.received_qty AS pending_qty,
			SUM(COALESCE(pii.qty, 0)) AS billed_qty,
			poi.base_amount AS amount,
			poi.received_qty * poi.base_rate AS received_qty_amount,
			poi.billed_amount * COALESCE(po.conversion_rate, 1) AS billed_amount,
			poi.base_amount - poi.billed_amount * COALESCE(po.conversion_rate, 1) AS pending_amount,
			po.warehouse AS warehouse,
			po.company AS company,
			poi.id AS order_item_id,
			poi.good_in_transit_qty AS good_in_transit_qty,
			poi.short_close_qty AS short_close_qty
		`).
		Joins("JOIN purchase_order_items poi ON poi.order_no = po.order_no").
		Joins("LEFT JOIN purchase_invoice_items pii ON pii.po_item_id = poi.id").
		Where("po.status = ?", report.OrderStatusClosed).
		Where("po.doc_status = ?", report.DocStatusSubmitted).
		Group("poi.id, po.id").
		Order("po.transaction_date ASC")

	if filter.Company != "" {
		query = query.Where("po.company = ?", filter.Company)
	}
	if filter.PurchaseOrder != "" {
		query = query.Where("po.order_no = ?", filter.PurchaseOrder)
	}
	if !filter.FromDate.IsZero() && !filter.ToDate.IsZero() {
		query = query.Where("po.transaction_date BETWEEN ? AND ?", filter.FromDate, filter.ToDate)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("po.status IN ?", filter.Statuses)
	}
	if filter.Project != "" {
		query = query.Where("poi.project = ?", filter.Project)
	}

	var lines []report.OrderLineRow
	if err := query.Scan(&lines).Error; err != nil {
		return nil, err
	}

	return lines, nil
}
