// Package codec encodes and decodes every persisted entity to and from a
// single line of delimited text. Record fields are separated by '|';
// invoice items are joined by ';' and item fields by ','. Literal
// delimiter characters inside text fields are replaced by a space before
// encoding. That substitution is lossy and not reversible; it is the
// store format's documented behavior, not a defect.
package codec

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"jbpos/internal/domain"
)

const (
	fieldSep     = "|"
	itemSep      = ";"
	itemFieldSep = ","
)

var (
	ErrShortLine = errors.New("codec: too few fields")
	ErrBadID     = errors.New("codec: unparseable id")
)

// escape makes a text value safe at the record-field level.
func escape(s string) string {
	return strings.ReplaceAll(s, fieldSep, " ")
}

// escapeItemField makes a text value safe inside the nested item encoding,
// where all three delimiter levels are live.
func escapeItemField(s string) string {
	r := strings.NewReplacer(fieldSep, " ", itemSep, " ", itemFieldSep, " ")
	return r.Replace(s)
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// EncodeProduct renders a product as Id|Name|Brand|Category|Stock|Price|Barcode.
func EncodeProduct(p *domain.Product) string {
	return strings.Join([]string{
		strconv.Itoa(p.ID),
		escape(p.Name),
		escape(p.Brand),
		escape(p.Category),
		strconv.Itoa(p.Stock),
		formatPrice(p.Price),
		escape(p.Barcode),
	}, fieldSep)
}

// DecodeProduct parses a product line. A missing or unparseable id drops
// the whole line; unparseable stock or price default to zero. The variant
// tag is re-derived from the category, never read from the file.
func DecodeProduct(line string) (*domain.Product, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) < 6 {
		return nil, ErrShortLine
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, ErrBadID
	}
	stock, err := strconv.Atoi(parts[4])
	if err != nil {
		stock = 0
	}
	price, err := strconv.ParseFloat(parts[5], 64)
	if err != nil {
		price = 0
	}
	barcode := ""
	if len(parts) >= 7 {
		barcode = parts[6]
	}
	p := &domain.Product{
		ID:       id,
		Name:     parts[1],
		Brand:    parts[2],
		Category: parts[3],
		Stock:    stock,
		Price:    price,
		Barcode:  barcode,
	}
	p.Retag()
	return p, nil
}

// EncodeCustomer renders a customer as Id|Name|Contact.
func EncodeCustomer(c *domain.Customer) string {
	return strings.Join([]string{strconv.Itoa(c.ID), escape(c.Name), escape(c.Contact)}, fieldSep)
}

// DecodeCustomer parses a customer line.
func DecodeCustomer(line string) (*domain.Customer, error) {
	id, name, contact, err := decodeParty(line)
	if err != nil {
		return nil, err
	}
	return &domain.Customer{ID: id, Name: name, Contact: contact}, nil
}

// EncodeSupplier renders a supplier as Id|Name|Contact.
func EncodeSupplier(s *domain.Supplier) string {
	return strings.Join([]string{strconv.Itoa(s.ID), escape(s.Name), escape(s.Contact)}, fieldSep)
}

// DecodeSupplier parses a supplier line.
func DecodeSupplier(line string) (*domain.Supplier, error) {
	id, name, contact, err := decodeParty(line)
	if err != nil {
		return nil, err
	}
	return &domain.Supplier{ID: id, Name: name, Contact: contact}, nil
}

func decodeParty(line string) (int, string, string, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) < 3 {
		return 0, "", "", ErrShortLine
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", "", ErrBadID
	}
	return id, parts[1], parts[2], nil
}

// EncodeInvoice renders an invoice as Id|Type|Party|Date|Items where Items
// is a ';'-joined list of ProductId,ProductName,Quantity,UnitPrice.
func EncodeInvoice(inv *domain.Invoice) string {
	items := make([]string, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, strings.Join([]string{
			strconv.Itoa(it.ProductID),
			escapeItemField(it.ProductName),
			strconv.Itoa(it.Quantity),
			formatPrice(it.UnitPrice),
		}, itemFieldSep))
	}
	return strings.Join([]string{
		strconv.Itoa(inv.ID),
		string(inv.Type),
		escape(inv.Party),
		inv.Date.Format(time.RFC3339Nano),
		strings.Join(items, itemSep),
	}, fieldSep)
}

// DecodeInvoice parses an invoice line. Items that fail to parse are
// skipped individually; an unparseable date defaults to the current time.
func DecodeInvoice(line string) (*domain.Invoice, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) < 5 {
		return nil, ErrShortLine
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, ErrBadID
	}
	date, err := time.Parse(time.RFC3339Nano, parts[3])
	if err != nil {
		date = time.Now()
	}
	inv := &domain.Invoice{
		ID:    id,
		Type:  domain.InvoiceType(parts[1]),
		Party: parts[2],
		Date:  date,
	}
	if raw := strings.TrimSpace(parts[4]); raw != "" {
		for _, part := range strings.Split(raw, itemSep) {
			if it, err := decodeItem(part); err == nil {
				inv.Items = append(inv.Items, it)
			}
		}
	}
	return inv, nil
}

func decodeItem(part string) (domain.InvoiceItem, error) {
	fields := strings.Split(part, itemFieldSep)
	if len(fields) < 4 {
		return domain.InvoiceItem{}, ErrShortLine
	}
	pid, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.InvoiceItem{}, ErrBadID
	}
	qty, err := strconv.Atoi(fields[2])
	if err != nil {
		return domain.InvoiceItem{}, ErrBadID
	}
	price, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		price = 0
	}
	return domain.InvoiceItem{ProductID: pid, ProductName: fields[1], Quantity: qty, UnitPrice: price}, nil
}

// EncodeUser renders a credential line as Username|Password.
func EncodeUser(u *domain.User) string {
	return strings.Join([]string{escape(u.Username), escape(u.Password)}, fieldSep)
}

// DecodeUser parses a credential line.
func DecodeUser(line string) (*domain.User, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) < 2 {
		return nil, ErrShortLine
	}
	return &domain.User{Username: parts[0], Password: parts[1]}, nil
}
