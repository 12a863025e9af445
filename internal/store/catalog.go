package store

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jbpos/internal/codec"
	"jbpos/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrBarcodeExists   = errors.New("product with this barcode already exists")
)

// ProductPatch carries the fields of an edit; nil fields keep the current
// value.
type ProductPatch struct {
	Name     *string
	Brand    *string
	Category *string
	Stock    *int
	Price    *float64
	Barcode  *string
}

// Catalog is the product collection. Order follows the backing file;
// ids are assigned from a monotonic counter initialized to
// max(existing)+1 at load.
type Catalog struct {
	path   string
	logger *zap.Logger
	items  []*domain.Product
	nextID int
}

// OpenCatalog loads the catalog from its backing file. Undecodable lines
// are dropped.
func OpenCatalog(path string, logger *zap.Logger) (*Catalog, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	c := &Catalog{path: path, logger: logger, nextID: 1}
	for _, line := range lines {
		p, err := codec.DecodeProduct(line)
		if err != nil {
			logger.Debug("Dropping unreadable product line", zap.String("line", line), zap.Error(err))
			continue
		}
		c.items = append(c.items, p)
		if p.ID >= c.nextID {
			c.nextID = p.ID + 1
		}
	}
	return c, nil
}

// Add validates the draft, assigns the next id and appends the product.
// A barcode already present anywhere in the catalog (any case) rejects
// the draft. On success the created record is returned; a persist failure
// still returns the record, with the error alongside.
func (c *Catalog) Add(draft domain.Product) (*domain.Product, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}
	if c.ByBarcode(draft.Barcode) != nil {
		return nil, ErrBarcodeExists
	}
	p := draft
	p.ID = c.nextID
	c.nextID++
	p.Retag()
	c.items = append(c.items, &p)
	return &p, c.Flush()
}

// Edit applies the supplied fields to an existing product. A barcode
// change that collides with a different product's barcode is dropped
// silently while the remaining changes still apply. A category change
// re-tags the variant in place.
func (c *Catalog) Edit(id int, patch ProductPatch) (*domain.Product, error) {
	p := c.ByID(id)
	if p == nil {
		return nil, ErrProductNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Category != nil {
		p.Category = *patch.Category
		p.Retag()
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Barcode != nil {
		if other := c.ByBarcode(*patch.Barcode); other != nil && other.ID != p.ID {
			c.logger.Debug("Keeping old barcode, new one already in use",
				zap.Int("product_id", p.ID), zap.String("barcode", *patch.Barcode))
		} else {
			p.Barcode = *patch.Barcode
		}
	}
	return p, c.Flush()
}

// Delete removes a product. Historical invoices keep their own snapshots
// and are unaffected.
func (c *Catalog) Delete(id int) error {
	for i, p := range c.items {
		if p.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.Flush()
		}
	}
	return ErrProductNotFound
}

// ByID finds a product by exact id, or nil.
func (c *Catalog) ByID(id int) *domain.Product {
	for _, p := range c.items {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ByBarcode finds a product by case-insensitive exact barcode, or nil.
func (c *Catalog) ByBarcode(barcode string) *domain.Product {
	for _, p := range c.items {
		if strings.EqualFold(p.Barcode, barcode) {
			return p
		}
	}
	return nil
}

// All returns the products in file order.
func (c *Catalog) All() []*domain.Product {
	return c.items
}

// Search matches the keyword against product names and brands,
// case-insensitively.
func (c *Catalog) Search(keyword string) []*domain.Product {
	kw := strings.ToLower(keyword)
	var out []*domain.Product
	for _, p := range c.items {
		if strings.Contains(strings.ToLower(p.Name), kw) || strings.Contains(strings.ToLower(p.Brand), kw) {
			out = append(out, p)
		}
	}
	return out
}

// LowStock lists products at or below the threshold.
func (c *Catalog) LowStock(threshold int) []*domain.Product {
	var out []*domain.Product
	for _, p := range c.items {
		if p.Stock <= threshold {
			out = append(out, p)
		}
	}
	return out
}

// ApplyStockDelta adjusts a product's stock in memory without flushing;
// the transaction commit batches one flush for all its items. The return
// reports whether the product still exists.
func (c *Catalog) ApplyStockDelta(id, delta int) bool {
	p := c.ByID(id)
	if p == nil {
		return false
	}
	p.Stock += delta
	return true
}

// Flush rewrites the backing file from the in-memory collection.
func (c *Catalog) Flush() error {
	lines := make([]string, 0, len(c.items))
	for _, p := range c.items {
		lines = append(lines, codec.EncodeProduct(p))
	}
	return writeLines(c.path, lines)
}
