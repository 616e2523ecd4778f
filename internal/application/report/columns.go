package report

// Fieldtype names the renderer a report viewer should use for a column.
type Fieldtype string

// Supported column field types
const (
	FieldtypeDate     Fieldtype = "Date"
	FieldtypeLink     Fieldtype = "Link"
	FieldtypeData     Fieldtype = "Data"
	FieldtypeFloat    Fieldtype = "Float"
	FieldtypeCurrency Fieldtype = "Currency"
)

// Convertible tags hint unit-conversion eligibility to the report viewer.
const (
	ConvertibleQty  = "qty"
	ConvertibleRate = "rate"
)

// companyCurrency is the dynamic currency source for Currency columns: the
// viewer resolves it to the default currency of the row's company.
const companyCurrency = "Company:company:default_currency"

// Column describes one column of the report for a generic report viewer.
type Column struct {
	Label       string    `json:"label"`
	Fieldname   string    `json:"fieldname"`
	Fieldtype   Fieldtype `json:"fieldtype"`
	Width       int       `json:"width"`
	Options     string    `json:"options,omitempty"`
	Convertible string    `json:"convertible,omitempty"`
}

// ShortCloseColumns returns the fixed column schema of the short-close order
// report. The order and widths are part of the report contract. There is no
// status column; the report only ever shows closed orders.
func ShortCloseColumns() []Column {
	return []Column{
		{Label: "Date", Fieldname: "date", Fieldtype: FieldtypeDate, Width: 150},
		{Label: "Required By", Fieldname: "required_date", Fieldtype: FieldtypeDate, Width: 120},
		{Label: "Purchase Order", Fieldname: "purchase_order", Fieldtype: FieldtypeLink, Options: "Purchase Order", Width: 200},
		{Label: "Supplier", Fieldname: "supplier", Fieldtype: FieldtypeLink, Options: "Supplier", Width: 130},
		{Label: "Qty", Fieldname: "qty", Fieldtype: FieldtypeFloat, Width: 120, Convertible: ConvertibleQty},
		{Label: "Received Qty", Fieldname: "received_qty", Fieldtype: FieldtypeFloat, Width: 120, Convertible: ConvertibleQty},
		{Label: "Good In Transit Qty", Fieldname: "good_in_transit_qty", Fieldtype: FieldtypeFloat, Width: 140, Convertible: ConvertibleQty},
		{Label: "Short Close Qty", Fieldname: "short_close_qty", Fieldtype: FieldtypeFloat, Width: 140, Convertible: ConvertibleQty},
		{Label: "Amount", Fieldname: "amount", Fieldtype: FieldtypeCurrency, Width: 110, Options: companyCurrency, Convertible: ConvertibleRate},
		{Label: "Billed Amount", Fieldname: "billed_amount", Fieldtype: FieldtypeCurrency, Width: 110, Options: companyCurrency, Convertible: ConvertibleRate},
		{Label: "Pending Amount", Fieldname: "pending_amount", Fieldtype: FieldtypeCurrency, Width: 130, Options: companyCurrency, Convertible: ConvertibleRate},
		{Label: "Warehouse", Fieldname: "warehouse", Fieldtype: FieldtypeLink, Options: "Warehouse", Width: 100},
		{Label: "Company", Fieldname: "company", Fieldtype: FieldtypeLink, Options: "Company", Width: 100},
	}
}
