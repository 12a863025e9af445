package store

import (
	"fmt"

	"go.uber.org/zap"

	"jbpos/internal/codec"
	"jbpos/internal/domain"
)

// Ledger is an ordered, append-only collection of committed invoices of
// one type, with its own id sequence. Invoices are never edited or
// removed once appended.
type Ledger struct {
	path     string
	logger   *zap.Logger
	kind     domain.InvoiceType
	invoices []*domain.Invoice
	nextID   int
}

// OpenLedger loads the ledger from its backing file, keeping only
// invoices of the ledger's type.
func OpenLedger(path string, kind domain.InvoiceType, logger *zap.Logger) (*Ledger, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s ledger: %w", kind, err)
	}
	l := &Ledger{path: path, logger: logger, kind: kind, nextID: 1}
	for _, line := range lines {
		inv, err := codec.DecodeInvoice(line)
		if err != nil {
			logger.Debug("Dropping unreadable invoice line", zap.String("line", line), zap.Error(err))
			continue
		}
		if inv.Type != kind {
			continue
		}
		l.invoices = append(l.invoices, inv)
		if inv.ID >= l.nextID {
			l.nextID = inv.ID + 1
		}
	}
	return l, nil
}

// Append assigns the next id of the ledger's sequence, stamps the type
// and appends the invoice, then persists.
func (l *Ledger) Append(inv *domain.Invoice) error {
	inv.ID = l.nextID
	l.nextID++
	inv.Type = l.kind
	l.invoices = append(l.invoices, inv)
	return l.Flush()
}

// All returns the invoices in commit order.
func (l *Ledger) All() []*domain.Invoice {
	return l.invoices
}

// NextID exposes the id the next committed invoice will receive.
func (l *Ledger) NextID() int {
	return l.nextID
}

// Flush rewrites the backing file.
func (l *Ledger) Flush() error {
	lines := make([]string, 0, len(l.invoices))
	for _, inv := range l.invoices {
		lines = append(lines, codec.EncodeInvoice(inv))
	}
	return writeLines(l.path, lines)
}
