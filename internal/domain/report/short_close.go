package report

import (
	"context"
	"time"

	"github.com/erp/procurement/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Purchase order states the short-close report cares about. Only orders that
// were submitted and later administratively closed ever enter the dataset.
const (
	OrderStatusClosed  = "Closed"
	DocStatusSubmitted = "submitted"
)

// ErrInvalidDateRange is returned when the filter's date range is empty or
// inverted. It is raised before any query is issued.
var ErrInvalidDateRange = shared.NewDomainError(
	"INVALID_INPUT",
	`"From Date" can not be greater than or equal to "To Date"`,
)

// ShortCloseFilter configures one execution of the short-close order report.
// FromDate and ToDate are required; everything else narrows the dataset only
// when set.
type ShortCloseFilter struct {
	FromDate             time.Time
	ToDate               time.Time
	Company              string
	PurchaseOrder        string
	Statuses             []string
	Project              string
	GroupByPurchaseOrder bool
}

// Validate checks that the date range is strictly increasing.
func (f ShortCloseFilter) Validate() error {
	if !f.ToDate.After(f.FromDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// OrderLineRow is one line of the raw report dataset, one row per purchase
// order item. It is a CQRS read model built by the report query and is never
// persisted.
type OrderLineRow struct {
	Date              time.Time
	RequiredDate      time.Time
	Project           string
	PurchaseOrder     string
	Status            string
	Supplier          string
	ItemCode          string
	Qty               decimal.Decimal
	ReceivedQty       decimal.Decimal
	PendingQty        decimal.Decimal
	BilledQty         decimal.Decimal
	Amount            decimal.Decimal
	ReceivedQtyAmount decimal.Decimal
	BilledAmount      decimal.Decimal
	PendingAmount     decimal.Decimal
	Warehouse         string
	Company           string
	OrderItemID       string
	GoodInTransitQty  decimal.Decimal
	ShortCloseQty     decimal.Decimal
}

// ShortCloseRow is an OrderLineRow carrying the derived billing gap. When
// grouping by purchase order is requested, a single ShortCloseRow stands for
// every line of its order.
type ShortCloseRow struct {
	OrderLineRow
	QtyToBill decimal.Decimal
}

// ShortCloseTotals are the sums backing the report chart. They are
// accumulated over the raw line rows before any grouping takes place.
type ShortCloseTotals struct {
	Completed decimal.Decimal // total billed amount
	Pending   decimal.Decimal // total pending amount
}

// ShortCloseReportRepository defines the read-side query for the report.
type ShortCloseReportRepository interface {
	// GetOrderLines returns one row per purchase order item of every closed,
	// submitted purchase order matching the filter, ordered by transaction
	// date ascending.
	GetOrderLines(ctx context.Context, filter ShortCloseFilter) ([]OrderLineRow, error)
}
