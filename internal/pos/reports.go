package pos

import (
	"sort"

	"jbpos/internal/store"
)

// Summary aggregates the headline numbers across all stores.
type Summary struct {
	Products       int
	Customers      int
	Suppliers      int
	LowStock       int
	SalesTotal     float64
	PurchasesTotal float64
}

// TopItem is one row of the top-selling report.
type TopItem struct {
	ProductID int
	Name      string
	Quantity  int
}

// Reporter derives read-only reports from the live stores.
type Reporter struct {
	catalog      *store.Catalog
	customers    *store.CustomerDirectory
	suppliers    *store.SupplierDirectory
	sales        *store.Ledger
	purchases    *store.Ledger
	lowThreshold int
}

// NewReporter wires the reporter to the stores it reads.
func NewReporter(catalog *store.Catalog, customers *store.CustomerDirectory, suppliers *store.SupplierDirectory,
	sales, purchases *store.Ledger, lowThreshold int) *Reporter {
	return &Reporter{
		catalog:      catalog,
		customers:    customers,
		suppliers:    suppliers,
		sales:        sales,
		purchases:    purchases,
		lowThreshold: lowThreshold,
	}
}

// Summary computes the totals report.
func (r *Reporter) Summary() Summary {
	s := Summary{
		Products:  len(r.catalog.All()),
		Customers: len(r.customers.All()),
		Suppliers: len(r.suppliers.All()),
		LowStock:  len(r.catalog.LowStock(r.lowThreshold)),
	}
	for _, inv := range r.sales.All() {
		s.SalesTotal += inv.GrandTotal()
	}
	for _, inv := range r.purchases.All() {
		s.PurchasesTotal += inv.GrandTotal()
	}
	return s
}

// TopSelling aggregates sold quantities per product across the sales
// ledger. Products deleted from the catalog report as "Unknown Product".
func (r *Reporter) TopSelling(limit int) []TopItem {
	counts := make(map[int]int)
	for _, inv := range r.sales.All() {
		for _, it := range inv.Items {
			counts[it.ProductID] += it.Quantity
		}
	}
	items := make([]TopItem, 0, len(counts))
	for id, qty := range counts {
		name := "Unknown Product"
		if p := r.catalog.ByID(id); p != nil {
			name = p.Name
		}
		items = append(items, TopItem{ProductID: id, Name: name, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].ProductID < items[j].ProductID
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// InventoryValue sums price times stock over the catalog.
func (r *Reporter) InventoryValue() float64 {
	var total float64
	for _, p := range r.catalog.All() {
		total += p.Price * float64(p.Stock)
	}
	return total
}
