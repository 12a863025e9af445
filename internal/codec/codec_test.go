package codec

import (
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jbpos/internal/domain"
)

func TestDecodeProduct(t *testing.T) {
	p, err := DecodeProduct("5|Wrist Pro|Casio|Watches|6|2599.75|BAR0003")
	require.NoError(t, err)
	assert.Equal(t, 5, p.ID)
	assert.Equal(t, "Wrist Pro", p.Name)
	assert.Equal(t, "Casio", p.Brand)
	assert.Equal(t, "Watches", p.Category)
	assert.Equal(t, 6, p.Stock)
	assert.Equal(t, 2599.75, p.Price)
	assert.Equal(t, "BAR0003", p.Barcode)
	assert.Equal(t, domain.VariantWatch, p.Variant)
}

func TestDecodeProductDropsBadID(t *testing.T) {
	_, err := DecodeProduct("abc|X|Y|Z|1|1.0")
	assert.ErrorIs(t, err, ErrBadID)

	_, err = DecodeProduct("1|only|four|fields")
	assert.ErrorIs(t, err, ErrShortLine)
}

func TestDecodeProductNumericDefaults(t *testing.T) {
	p, err := DecodeProduct("7|Cap|Brand|Streetwear|notanumber|notaprice")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, float64(0), p.Price)
	assert.Equal(t, "", p.Barcode)
	assert.Equal(t, domain.VariantStreetwear, p.Variant)
}

func TestVariantDerivedCaseInsensitively(t *testing.T) {
	cases := map[string]domain.Variant{
		"sneakers":   domain.VariantSneaker,
		"WATCHES":    domain.VariantWatch,
		"streetWEAR": domain.VariantStreetwear,
		"Hats":       domain.VariantGeneric,
	}
	for category, want := range cases {
		p, err := DecodeProduct("1|X|Y|" + category + "|1|1")
		require.NoError(t, err)
		assert.Equal(t, want, p.Variant, "category %q", category)
	}
}

func TestEncodeProductEscapesDelimiter(t *testing.T) {
	p := &domain.Product{ID: 1, Name: "A|B", Brand: "C|D", Category: "Sneakers", Stock: 2, Price: 10, Barcode: "BAR|1"}
	line := EncodeProduct(p)

	got, err := DecodeProduct(line)
	require.NoError(t, err)
	// Escaping is lossy: delimiters become spaces.
	assert.Equal(t, "A B", got.Name)
	assert.Equal(t, "C D", got.Brand)
	assert.Equal(t, "BAR 1", got.Barcode)
}

func TestProductRoundTrip(t *testing.T) {
	p := &domain.Product{ID: 42, Name: "Air Runner", Brand: "Nike", Category: "Sneakers", Stock: 10, Price: 4999.50, Barcode: "BAR0001"}
	p.Retag()
	got, err := DecodeProduct(EncodeProduct(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestCustomerRoundTrip(t *testing.T) {
	c := &domain.Customer{ID: 3, Name: "Juan Cruz", Contact: "0917-000-0000"}
	got, err := DecodeCustomer(EncodeCustomer(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)

	_, err = DecodeCustomer("x|Name|Contact")
	assert.ErrorIs(t, err, ErrBadID)
}

func TestInvoiceRoundTrip(t *testing.T) {
	date := time.Date(2024, 5, 2, 13, 45, 0, 0, time.UTC)
	inv := &domain.Invoice{
		ID:    9,
		Type:  domain.InvoiceSale,
		Party: "Walk-in",
		Date:  date,
		Items: []domain.InvoiceItem{
			{ProductID: 1, ProductName: "Air Runner", Quantity: 3, UnitPrice: 4999.50},
			{ProductID: 2, ProductName: "Street Classic", Quantity: 1, UnitPrice: 3999},
		},
	}
	got, err := DecodeInvoice(EncodeInvoice(inv))
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)
	assert.Equal(t, inv.Type, got.Type)
	assert.Equal(t, inv.Party, got.Party)
	assert.True(t, got.Date.Equal(date))
	assert.Equal(t, inv.Items, got.Items)
	assert.Equal(t, 14998.5+3999, got.GrandTotal())
}

func TestInvoiceItemEscapingBothLevels(t *testing.T) {
	inv := &domain.Invoice{
		ID:    1,
		Type:  domain.InvoicePurchase,
		Party: "Acme|Trading",
		Date:  time.Now(),
		Items: []domain.InvoiceItem{
			{ProductID: 4, ProductName: "Cap, black; large|size", Quantity: 2, UnitPrice: 150},
		},
	}
	got, err := DecodeInvoice(EncodeInvoice(inv))
	require.NoError(t, err)
	assert.Equal(t, "Acme Trading", got.Party)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Cap  black  large size", got.Items[0].ProductName)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestDecodeInvoiceSkipsBadItems(t *testing.T) {
	got, err := DecodeInvoice("3|Sale|Walk-in|2024-05-02T13:45:00Z|1,Good,2,10;bad,item;x,Y,notanint,5")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Good", got.Items[0].ProductName)
}

func TestDecodeInvoiceBadDateDefaultsToNow(t *testing.T) {
	got, err := DecodeInvoice("3|Sale|Walk-in|yesterday|1,Good,2,10")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got.Date, time.Minute)
}

func TestUserRoundTrip(t *testing.T) {
	u := &domain.User{Username: "admin", Password: "secret"}
	got, err := DecodeUser(EncodeUser(u))
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = DecodeUser("nopassword")
	assert.ErrorIs(t, err, ErrShortLine)
}

// Property: encode-then-decode of any record whose text fields contain no
// delimiter characters yields an equal record.
func TestProperty_ProductRoundTripPreservesDelimiterFreeFields(t *testing.T) {
	properties := gopter.NewProperties(nil)

	cleanText := gen.RegexMatch(`[A-Za-z0-9 _.-]{0,20}`).SuchThat(func(s string) bool {
		return !strings.ContainsAny(s, "|;,")
	})

	properties.Property("product round-trips", prop.ForAll(
		func(id int, name, brand, category string, stock int, price float64, barcode string) bool {
			p := &domain.Product{ID: id, Name: name, Brand: brand, Category: category, Stock: stock, Price: price, Barcode: barcode}
			p.Retag()
			got, err := DecodeProduct(EncodeProduct(p))
			if err != nil {
				return false
			}
			return *got == *p
		},
		gen.IntRange(1, 1_000_000),
		cleanText, cleanText, cleanText,
		gen.IntRange(0, 100000),
		gen.Float64Range(0, 1e7),
		cleanText,
	))

	properties.TestingRun(t)
}
