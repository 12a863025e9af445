package domain

import "time"

// InvoiceType distinguishes the two ledgers.
type InvoiceType string

const (
	InvoiceSale     InvoiceType = "Sale"
	InvoicePurchase InvoiceType = "Purchase"
)

// InvoiceItem is one line of an invoice. ProductName and UnitPrice are
// snapshots taken when the line was added; later catalog changes do not
// track back into them.
type InvoiceItem struct {
	ProductID   int
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// Total is the line subtotal.
func (i InvoiceItem) Total() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Invoice represents a committed sale or purchase. The Party field is a
// text snapshot of the customer or supplier name, not a directory
// reference. Invoices are immutable once committed to a ledger.
type Invoice struct {
	ID    int
	Type  InvoiceType
	Party string
	Date  time.Time
	Items []InvoiceItem
}

// GrandTotal sums the line subtotals.
func (inv *Invoice) GrandTotal() float64 {
	var total float64
	for _, it := range inv.Items {
		total += it.Total()
	}
	return total
}
