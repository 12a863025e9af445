// Package pos holds the transaction processing core: the build-then-commit
// session that turns product references and quantities into a committed
// invoice while mutating catalog stock, plus the receipt documents and
// reports derived from the ledgers.
package pos

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"jbpos/internal/domain"
	"jbpos/internal/store"
)

var (
	ErrSessionClosed     = errors.New("session already committed or canceled")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrEmptySession      = errors.New("no items added")
)

// SessionState is the build session's lifecycle state. Committed and
// Canceled are terminal.
type SessionState int

const (
	StateBuilding SessionState = iota
	StateCommitted
	StateCanceled
)

func (s SessionState) String() string {
	switch s {
	case StateBuilding:
		return "BUILDING"
	case StateCommitted:
		return "COMMITTED"
	case StateCanceled:
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}

// Processor creates build sessions against the live catalog and ledgers.
type Processor struct {
	catalog   *store.Catalog
	sales     *store.Ledger
	purchases *store.Ledger
	receipts  ReceiptSink
	logger    *zap.Logger
}

// NewProcessor wires the processor to its stores and the external receipt
// sink. The sink may be nil.
func NewProcessor(catalog *store.Catalog, sales, purchases *store.Ledger, receipts ReceiptSink, logger *zap.Logger) *Processor {
	return &Processor{catalog: catalog, sales: sales, purchases: purchases, receipts: receipts, logger: logger}
}

// NewSale starts a sale build session for the given customer name.
func (p *Processor) NewSale(party string) *Session {
	return &Session{proc: p, kind: domain.InvoiceSale, ledger: p.sales, party: party}
}

// NewPurchase starts a purchase build session for the given supplier name.
func (p *Processor) NewPurchase(party string) *Session {
	return &Session{proc: p, kind: domain.InvoicePurchase, ledger: p.purchases, party: party}
}

// Session is the transient, mutable phase of assembling an invoice. It
// starts BUILDING and ends COMMITTED or CANCELED; no operation is valid
// after a terminal state.
type Session struct {
	proc   *Processor
	kind   domain.InvoiceType
	ledger *store.Ledger
	party  string
	items  []domain.InvoiceItem
	state  SessionState
}

// State returns the session's lifecycle state.
func (s *Session) State() SessionState { return s.state }

// Party returns the name snapshot the invoice will carry.
func (s *Session) Party() string { return s.party }

// Items returns the lines added so far.
func (s *Session) Items() []domain.InvoiceItem { return s.items }

// Resolve looks a product reference up against the live catalog. An
// all-numeric reference is an id lookup; anything else is a
// case-insensitive barcode lookup. Returns nil when unresolved.
func (s *Session) Resolve(ref string) *domain.Product {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		return s.proc.catalog.ByID(id)
	}
	return s.proc.catalog.ByBarcode(ref)
}

// AddItem resolves the reference and appends a line snapshotting the
// product's id, name and current unit price. Sale quantities may not
// exceed the product's current stock; purchases have no upper bound.
// Repeated adds of the same product stay separate lines. On any failure
// the session remains BUILDING with no change.
func (s *Session) AddItem(ref string, qty int) (domain.InvoiceItem, error) {
	if s.state != StateBuilding {
		return domain.InvoiceItem{}, ErrSessionClosed
	}
	p := s.Resolve(ref)
	if p == nil {
		return domain.InvoiceItem{}, store.ErrProductNotFound
	}
	if qty <= 0 {
		return domain.InvoiceItem{}, ErrInvalidQuantity
	}
	if s.kind == domain.InvoiceSale && qty > p.Stock {
		return domain.InvoiceItem{}, fmt.Errorf("%w: %d of %q available", ErrInsufficientStock, p.Stock, p.Name)
	}
	item := domain.InvoiceItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty,
		UnitPrice:   p.Price,
	}
	s.items = append(s.items, item)
	return item, nil
}

// Commit finalizes the session. With no items it is discarded as
// CANCELED. Otherwise each item's stock mutation is applied to the live
// catalog (products deleted since add-time are skipped silently), the
// invoice receives the next id of its type, is appended to its ledger,
// the ledger and catalog are persisted and the invoice is handed to the
// receipt sink. A persistence failure is returned alongside the committed
// invoice; the in-memory mutations stand.
func (s *Session) Commit(operator string) (*domain.Invoice, error) {
	if s.state != StateBuilding {
		return nil, ErrSessionClosed
	}
	if len(s.items) == 0 {
		s.state = StateCanceled
		return nil, ErrEmptySession
	}

	sign := 1
	if s.kind == domain.InvoiceSale {
		sign = -1
	}
	for _, it := range s.items {
		if !s.proc.catalog.ApplyStockDelta(it.ProductID, sign*it.Quantity) {
			s.proc.logger.Debug("Product deleted since add-time, skipping stock mutation",
				zap.Int("product_id", it.ProductID))
		}
	}

	inv := &domain.Invoice{
		Type:  s.kind,
		Party: s.party,
		Date:  time.Now(),
		Items: s.items,
	}
	s.state = StateCommitted

	var persistErr error
	if err := s.ledger.Append(inv); err != nil {
		persistErr = err
	}
	if err := s.proc.catalog.Flush(); err != nil && persistErr == nil {
		persistErr = err
	}

	if s.proc.receipts != nil {
		var err error
		if s.kind == domain.InvoiceSale {
			err = s.proc.receipts.SaleInvoice(inv, operator)
		} else {
			err = s.proc.receipts.PurchaseReceipt(inv, operator)
		}
		if err != nil {
			s.proc.logger.Warn("Failed to write receipt document", zap.Int("invoice_id", inv.ID), zap.Error(err))
		}
	}

	return inv, persistErr
}

// Cancel discards the session with no catalog or ledger mutation.
func (s *Session) Cancel() {
	if s.state == StateBuilding {
		s.state = StateCanceled
	}
}
