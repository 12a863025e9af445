package pos

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jbpos/internal/domain"
	"jbpos/internal/store"
)

func testReporter(t *testing.T) (*Reporter, *Processor, *store.Catalog) {
	t.Helper()
	dir := t.TempDir()
	logger := zap.NewNop()

	catalog, err := store.OpenCatalog(filepath.Join(dir, "products.txt"), logger)
	require.NoError(t, err)
	customers, err := store.OpenCustomerDirectory(filepath.Join(dir, "customers.txt"), logger)
	require.NoError(t, err)
	suppliers, err := store.OpenSupplierDirectory(filepath.Join(dir, "suppliers.txt"), logger)
	require.NoError(t, err)
	sales, err := store.OpenLedger(filepath.Join(dir, "sales.txt"), domain.InvoiceSale, logger)
	require.NoError(t, err)
	purchases, err := store.OpenLedger(filepath.Join(dir, "purchases.txt"), domain.InvoicePurchase, logger)
	require.NoError(t, err)

	proc := NewProcessor(catalog, sales, purchases, nil, logger)
	return NewReporter(catalog, customers, suppliers, sales, purchases, 5), proc, catalog
}

func commitSale(t *testing.T, proc *Processor, ref string, qty int) {
	t.Helper()
	s := proc.NewSale("Walk-in")
	_, err := s.AddItem(ref, qty)
	require.NoError(t, err)
	_, err = s.Commit("admin")
	require.NoError(t, err)
}

func TestSummaryTotals(t *testing.T) {
	r, proc, catalog := testReporter(t)
	addProduct(t, catalog, "Air Runner", "BAR0001", 10, 100.0)
	addProduct(t, catalog, "Street Classic", "BAR0002", 3, 50.0)

	commitSale(t, proc, "1", 2)

	b := proc.NewPurchase("Acme Supply")
	_, err := b.AddItem("2", 4)
	require.NoError(t, err)
	_, err = b.Commit("admin")
	require.NoError(t, err)

	s := r.Summary()
	assert.Equal(t, 2, s.Products)
	assert.Equal(t, 0, s.Customers)
	assert.Equal(t, 0, s.Suppliers)
	assert.Equal(t, 200.0, s.SalesTotal)
	assert.Equal(t, 200.0, s.PurchasesTotal)
}

func TestSummaryLowStockUsesThreshold(t *testing.T) {
	r, _, catalog := testReporter(t)
	addProduct(t, catalog, "Air Runner", "BAR0001", 10, 100.0)
	addProduct(t, catalog, "Street Classic", "BAR0002", 3, 50.0)
	addProduct(t, catalog, "Wrist Pro", "BAR0003", 5, 25.0)

	// Threshold 5: stock <= 5 counts.
	assert.Equal(t, 2, r.Summary().LowStock)
}

func TestTopSellingOrdersByQuantity(t *testing.T) {
	r, proc, catalog := testReporter(t)
	addProduct(t, catalog, "Air Runner", "BAR0001", 50, 100.0)
	addProduct(t, catalog, "Street Classic", "BAR0002", 50, 50.0)
	addProduct(t, catalog, "Wrist Pro", "BAR0003", 50, 25.0)

	commitSale(t, proc, "1", 2)
	commitSale(t, proc, "2", 5)
	commitSale(t, proc, "1", 1)
	commitSale(t, proc, "3", 3)

	top := r.TopSelling(0)
	require.Len(t, top, 3)
	assert.Equal(t, TopItem{ProductID: 2, Name: "Street Classic", Quantity: 5}, top[0])
	assert.Equal(t, TopItem{ProductID: 1, Name: "Air Runner", Quantity: 3}, top[1])
	assert.Equal(t, TopItem{ProductID: 3, Name: "Wrist Pro", Quantity: 3}, top[2])

	limited := r.TopSelling(2)
	require.Len(t, limited, 2)
	assert.Equal(t, 2, limited[0].ProductID)
}

func TestTopSellingReportsDeletedProductsAsUnknown(t *testing.T) {
	r, proc, catalog := testReporter(t)
	p := addProduct(t, catalog, "Air Runner", "BAR0001", 50, 100.0)

	commitSale(t, proc, "1", 2)
	require.NoError(t, catalog.Delete(p.ID))

	top := r.TopSelling(0)
	require.Len(t, top, 1)
	assert.Equal(t, "Unknown Product", top[0].Name)
	assert.Equal(t, 2, top[0].Quantity)
}

func TestInventoryValue(t *testing.T) {
	r, _, catalog := testReporter(t)
	assert.Equal(t, 0.0, r.InventoryValue())

	addProduct(t, catalog, "Air Runner", "BAR0001", 10, 100.0)
	addProduct(t, catalog, "Street Classic", "BAR0002", 4, 50.0)
	assert.Equal(t, 1200.0, r.InventoryValue())
}
