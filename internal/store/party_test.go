package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jbpos/internal/domain"
)

func TestCustomerDirectoryCRUD(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.txt")
	d, err := OpenCustomerDirectory(path, zap.NewNop())
	require.NoError(t, err)

	c, err := d.Add(domain.Customer{Name: "Juan Cruz", Contact: "0917"})
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)

	// Names carry no uniqueness.
	c2, err := d.Add(domain.Customer{Name: "Juan Cruz", Contact: "0918"})
	require.NoError(t, err)
	assert.Equal(t, 2, c2.ID)

	contact := "0999"
	updated, err := d.Edit(c.ID, PartyPatch{Contact: &contact})
	require.NoError(t, err)
	assert.Equal(t, "0999", updated.Contact)
	assert.Equal(t, "Juan Cruz", updated.Name)

	require.NoError(t, d.Delete(c2.ID))
	assert.Nil(t, d.ByID(c2.ID))
	assert.ErrorIs(t, d.Delete(c2.ID), ErrCustomerNotFound)

	reloaded, err := OpenCustomerDirectory(path, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, reloaded.All(), 1)
	assert.Equal(t, "0999", reloaded.ByID(1).Contact)
	assert.Equal(t, 2, reloaded.nextID)
}

func TestSupplierDirectoryCRUD(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppliers.txt")
	d, err := OpenSupplierDirectory(path, zap.NewNop())
	require.NoError(t, err)

	s, err := d.Add(domain.Supplier{Name: "Acme Trading", Contact: "acme@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, s.ID)

	_, err = d.Add(domain.Supplier{Name: ""})
	assert.Error(t, err)
	assert.Len(t, d.All(), 1)

	name := "Acme Trading Corp"
	_, err = d.Edit(s.ID, PartyPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Acme Trading Corp", d.ByID(s.ID).Name)

	_, err = d.Edit(99, PartyPatch{})
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestDirectoryNextIDFromExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.txt")
	require.NoError(t, os.WriteFile(path, []byte("3|A|x\n7|B|y\n1|C|z\n"), 0o644))

	d, err := OpenCustomerDirectory(path, zap.NewNop())
	require.NoError(t, err)
	c, err := d.Add(domain.Customer{Name: "D"})
	require.NoError(t, err)
	assert.Equal(t, 8, c.ID)
}
