package pos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"jbpos/internal/domain"
	"jbpos/internal/store"
)

// ReceiptSink receives the human-readable documents the core produces.
// Documents are write-only; nothing ever parses them back.
type ReceiptSink interface {
	SaleInvoice(inv *domain.Invoice, cashier string) error
	PurchaseReceipt(inv *domain.Invoice, admin string) error
	ProductAdded(p *domain.Product, admin string) error
	ProductEdited(old, updated *domain.Product, admin string) error
	ProductDeleted(p *domain.Product, admin string) error
}

const docTimestamp = "20060102_150405"

var pesos = message.NewPrinter(language.English)

func money(v float64) string {
	return pesos.Sprintf("₱%.2f", v)
}

// FileReceipts writes sale invoices and inventory-change receipts as
// timestamp-named text files into two directories.
type FileReceipts struct {
	invoicesDir string
	receiptsDir string
	catalog     *store.Catalog
}

// NewFileReceipts ensures both output directories exist. The catalog is
// consulted only to annotate purchase receipts with stock levels.
func NewFileReceipts(invoicesDir, receiptsDir string, catalog *store.Catalog) (*FileReceipts, error) {
	for _, dir := range []string{invoicesDir, receiptsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return &FileReceipts{invoicesDir: invoicesDir, receiptsDir: receiptsDir, catalog: catalog}, nil
}

// docPath builds a collision-free document path; two documents written in
// the same second get distinct uuid suffixes.
func docPath(dir, prefix string) string {
	name := fmt.Sprintf("%s_%s_%s.txt", prefix, time.Now().Format(docTimestamp), uuid.NewString()[:8])
	return filepath.Join(dir, name)
}

func writeDoc(path string, b *strings.Builder) error {
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SaleInvoice writes the printable sales invoice document.
func (f *FileReceipts) SaleInvoice(inv *domain.Invoice, cashier string) error {
	var b strings.Builder
	rule := strings.Repeat("=", 40)
	thin := strings.Repeat("-", 40)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "           JB SNEAKERS & APPAREL        ")
	fmt.Fprintln(&b, "           OFFICIAL SALES INVOICE       ")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Invoice #: %d\n", inv.ID)
	fmt.Fprintf(&b, "Date: %s\n", inv.Date.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Cashier: %s\n", cashier)
	fmt.Fprintf(&b, "Customer: %s\n", inv.Party)
	fmt.Fprintln(&b, thin)
	fmt.Fprintln(&b, "Item                          Qty   Subtotal")
	fmt.Fprintln(&b, thin)
	for _, it := range inv.Items {
		name := it.ProductName
		if len(name) > 25 {
			name = name[:25]
		}
		fmt.Fprintf(&b, "%-30s %3d   %9s\n", name, it.Quantity, money(it.Total()))
	}
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "GRAND TOTAL: %s\n", money(inv.GrandTotal()))
	fmt.Fprintln(&b, thin)
	fmt.Fprintln(&b, "Thank you for shopping with us!")
	fmt.Fprintln(&b, "JB SNEAKERS & APPAREL")
	fmt.Fprintln(&b, rule)
	return writeDoc(docPath(f.invoicesDir, "invoice"), &b)
}

// PurchaseReceipt writes the stock-in receipt for a committed purchase.
// Stock annotations are approximate: they read the live catalog after
// the mutation has been applied.
func (f *FileReceipts) PurchaseReceipt(inv *domain.Invoice, admin string) error {
	var b strings.Builder
	f.header(&b, "PURCHASE (STOCK IN)", admin)
	fmt.Fprintf(&b, "Supplier: %s\n", inv.Party)
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	fmt.Fprintln(&b, "Items:")
	for _, it := range inv.Items {
		fmt.Fprintf(&b, "%s | Qty: %d | UnitPrice: %s | Subtotal: %s\n",
			it.ProductName, it.Quantity, money(it.UnitPrice), money(it.Total()))
		if p := f.catalog.ByID(it.ProductID); p != nil {
			prev := p.Stock - it.Quantity
			if prev < 0 {
				prev = 0
			}
			fmt.Fprintf(&b, "  Previous stock (approx): %d | New stock (approx): %d\n", prev, p.Stock)
		}
	}
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	fmt.Fprintf(&b, "GRAND TOTAL: %s\n", money(inv.GrandTotal()))
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	fmt.Fprintln(&b, "Status: PURCHASE RECORDED")
	fmt.Fprintln(&b, strings.Repeat("=", 40))
	return writeDoc(docPath(f.receiptsDir, "receipt"), &b)
}

// ProductAdded writes the inventory receipt for a new product.
func (f *FileReceipts) ProductAdded(p *domain.Product, admin string) error {
	var b strings.Builder
	f.header(&b, "PRODUCT ADDED", admin)
	f.productBlock(&b, p)
	fmt.Fprintln(&b, "Status: SUCCESSFULLY SAVED")
	fmt.Fprintln(&b, strings.Repeat("=", 40))
	return writeDoc(docPath(f.receiptsDir, "receipt"), &b)
}

// ProductEdited writes the inventory receipt for an edit, old and new
// values side by side.
func (f *FileReceipts) ProductEdited(old, updated *domain.Product, admin string) error {
	var b strings.Builder
	f.header(&b, "PRODUCT EDITED", admin)
	fmt.Fprintf(&b, "Product ID: %d\n", updated.ID)
	fmt.Fprintf(&b, "Old Name: %s\nNew Name: %s\n", old.Name, updated.Name)
	fmt.Fprintf(&b, "Old Brand: %s\nNew Brand: %s\n", old.Brand, updated.Brand)
	fmt.Fprintf(&b, "Old Category: %s\nNew Category: %s\n", old.Category, updated.Category)
	fmt.Fprintf(&b, "Old Stock: %d\nNew Stock: %d\n", old.Stock, updated.Stock)
	fmt.Fprintf(&b, "Old Price: %s\nNew Price: %s\n", money(old.Price), money(updated.Price))
	fmt.Fprintf(&b, "Old Barcode: %s\nNew Barcode: %s\n", old.Barcode, updated.Barcode)
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	fmt.Fprintln(&b, "Status: SUCCESSFULLY SAVED")
	fmt.Fprintln(&b, strings.Repeat("=", 40))
	return writeDoc(docPath(f.receiptsDir, "receipt"), &b)
}

// ProductDeleted writes the inventory receipt for a removal.
func (f *FileReceipts) ProductDeleted(p *domain.Product, admin string) error {
	var b strings.Builder
	f.header(&b, "PRODUCT DELETED", admin)
	f.productBlock(&b, p)
	fmt.Fprintln(&b, "Status: SUCCESSFULLY DELETED")
	fmt.Fprintln(&b, strings.Repeat("=", 40))
	return writeDoc(docPath(f.receiptsDir, "receipt"), &b)
}

func (f *FileReceipts) header(b *strings.Builder, action, admin string) {
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(b, rule)
	fmt.Fprintln(b, "   JB SNEAKERS & APPAREL - INVENTORY    ")
	fmt.Fprintln(b, rule)
	fmt.Fprintf(b, "Date: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "Action: %s\n", action)
	fmt.Fprintf(b, "Admin: %s\n", admin)
	fmt.Fprintln(b, strings.Repeat("-", 40))
}

func (f *FileReceipts) productBlock(b *strings.Builder, p *domain.Product) {
	fmt.Fprintf(b, "Product ID: %d\n", p.ID)
	fmt.Fprintf(b, "Product Name: %s\n", p.Name)
	fmt.Fprintf(b, "Brand: %s\n", p.Brand)
	fmt.Fprintf(b, "Category: %s\n", p.Category)
	fmt.Fprintf(b, "Stock: %d\n", p.Stock)
	fmt.Fprintf(b, "Price: %s\n", money(p.Price))
	fmt.Fprintf(b, "Barcode: %s\n", p.Barcode)
	fmt.Fprintln(b, strings.Repeat("-", 40))
}
