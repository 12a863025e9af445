package store

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"jbpos/internal/codec"
	"jbpos/internal/domain"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSupplierNotFound = errors.New("supplier not found")
)

// PartyPatch carries the fields of a directory edit; nil fields keep the
// current value.
type PartyPatch struct {
	Name    *string
	Contact *string
}

// CustomerDirectory is the customer CRUD store. Ids are unique within the
// directory; names carry no uniqueness and invoices never reference them.
type CustomerDirectory struct {
	path   string
	logger *zap.Logger
	items  []*domain.Customer
	nextID int
}

// OpenCustomerDirectory loads the directory from its backing file.
func OpenCustomerDirectory(path string, logger *zap.Logger) (*CustomerDirectory, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	d := &CustomerDirectory{path: path, logger: logger, nextID: 1}
	for _, line := range lines {
		c, err := codec.DecodeCustomer(line)
		if err != nil {
			logger.Debug("Dropping unreadable customer line", zap.String("line", line), zap.Error(err))
			continue
		}
		d.items = append(d.items, c)
		if c.ID >= d.nextID {
			d.nextID = c.ID + 1
		}
	}
	return d, nil
}

// Add assigns the next id and appends the customer.
func (d *CustomerDirectory) Add(draft domain.Customer) (*domain.Customer, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, fmt.Errorf("invalid customer: %w", err)
	}
	c := draft
	c.ID = d.nextID
	d.nextID++
	d.items = append(d.items, &c)
	return &c, d.Flush()
}

// Edit applies the supplied fields to an existing customer.
func (d *CustomerDirectory) Edit(id int, patch PartyPatch) (*domain.Customer, error) {
	c := d.ByID(id)
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Contact != nil {
		c.Contact = *patch.Contact
	}
	return c, d.Flush()
}

// Delete removes a customer. Ledger entries keep their name snapshots.
func (d *CustomerDirectory) Delete(id int) error {
	for i, c := range d.items {
		if c.ID == id {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return d.Flush()
		}
	}
	return ErrCustomerNotFound
}

// ByID finds a customer by id, or nil.
func (d *CustomerDirectory) ByID(id int) *domain.Customer {
	for _, c := range d.items {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// All returns the customers in file order.
func (d *CustomerDirectory) All() []*domain.Customer {
	return d.items
}

// Flush rewrites the backing file.
func (d *CustomerDirectory) Flush() error {
	lines := make([]string, 0, len(d.items))
	for _, c := range d.items {
		lines = append(lines, codec.EncodeCustomer(c))
	}
	return writeLines(d.path, lines)
}

// SupplierDirectory mirrors CustomerDirectory for the supplier side.
type SupplierDirectory struct {
	path   string
	logger *zap.Logger
	items  []*domain.Supplier
	nextID int
}

// OpenSupplierDirectory loads the directory from its backing file.
func OpenSupplierDirectory(path string, logger *zap.Logger) (*SupplierDirectory, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load suppliers: %w", err)
	}
	d := &SupplierDirectory{path: path, logger: logger, nextID: 1}
	for _, line := range lines {
		s, err := codec.DecodeSupplier(line)
		if err != nil {
			logger.Debug("Dropping unreadable supplier line", zap.String("line", line), zap.Error(err))
			continue
		}
		d.items = append(d.items, s)
		if s.ID >= d.nextID {
			d.nextID = s.ID + 1
		}
	}
	return d, nil
}

// Add assigns the next id and appends the supplier.
func (d *SupplierDirectory) Add(draft domain.Supplier) (*domain.Supplier, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, fmt.Errorf("invalid supplier: %w", err)
	}
	s := draft
	s.ID = d.nextID
	d.nextID++
	d.items = append(d.items, &s)
	return &s, d.Flush()
}

// Edit applies the supplied fields to an existing supplier.
func (d *SupplierDirectory) Edit(id int, patch PartyPatch) (*domain.Supplier, error) {
	s := d.ByID(id)
	if s == nil {
		return nil, ErrSupplierNotFound
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Contact != nil {
		s.Contact = *patch.Contact
	}
	return s, d.Flush()
}

// Delete removes a supplier.
func (d *SupplierDirectory) Delete(id int) error {
	for i, s := range d.items {
		if s.ID == id {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return d.Flush()
		}
	}
	return ErrSupplierNotFound
}

// ByID finds a supplier by id, or nil.
func (d *SupplierDirectory) ByID(id int) *domain.Supplier {
	for _, s := range d.items {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// All returns the suppliers in file order.
func (d *SupplierDirectory) All() []*domain.Supplier {
	return d.items
}

// Flush rewrites the backing file.
func (d *SupplierDirectory) Flush() error {
	lines := make([]string, 0, len(d.items))
	for _, s := range d.items {
		lines = append(lines, codec.EncodeSupplier(s))
	}
	return writeLines(d.path, lines)
}
