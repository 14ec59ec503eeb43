package cart

import (
	"errors"
	"testing"

	"github.com/michelstore/storefront-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	state   []byte
	saves   int
	loadErr error
}

func (m *memStorage) Load() ([]byte, error) {
	return m.state, m.loadErr
}

func (m *memStorage) Save(state []byte) error {
	m.state = state
	m.saves++
	return nil
}

func shoe() Item {
	return Item{ID: "p1", Name: "Tênis Runner", Price: 19.90, ImageURL: "https://i.ibb.co/abc/shoe.jpg", Kind: domain.ItemKindIndividual}
}

func sock() Item {
	return Item{ID: "p2", Name: "Meia Esportiva", Price: 5.00, ImageURL: "https://i.ibb.co/def/sock.jpg", Kind: domain.ItemKindIndividual}
}

func gymKit() Item {
	return Item{ID: "k1", Name: "Kit Academia", Price: 89.90, ImageURL: "https://i.ibb.co/ghi/kit.jpg", Kind: domain.ItemKindKit}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	store := NewStore(&memStorage{})

	store.AddItem(shoe())
	store.AddItem(shoe())
	store.AddItem(sock())
	store.AddItem(shoe())

	lines := store.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].ID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, "p2", lines[1].ID)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 4, store.TotalItemCount())
}

func TestAddItemSnapshotsAtAddTime(t *testing.T) {
	store := NewStore(&memStorage{})

	item := shoe()
	store.AddItem(item)

	item.Name = "renamed"
	item.Price = 99.99

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Tênis Runner", lines[0].Name)
	assert.True(t, lines[0].Price.Equal(decimal.RequireFromString("19.9")))
}

func TestSetQuantityZeroBehavesAsRemove(t *testing.T) {
	store := NewStore(&memStorage{})
	store.AddItem(shoe())
	store.AddItem(shoe())
	store.AddItem(sock())

	before := store.TotalItemCount()
	store.SetQuantity("p1", 0)

	assert.Len(t, store.Lines(), 1)
	assert.Equal(t, before-2, store.TotalItemCount())

	store.SetQuantity("p2", -3)
	assert.Empty(t, store.Lines())
}

func TestSetQuantityKeepsSnapshot(t *testing.T) {
	store := NewStore(&memStorage{})
	store.AddItem(shoe())

	store.SetQuantity("p1", 5)

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.True(t, lines[0].Price.Equal(decimal.RequireFromString("19.9")))
}

func TestRemoveItemIdempotent(t *testing.T) {
	store := NewStore(&memStorage{})
	store.AddItem(shoe())
	store.AddItem(sock())

	store.RemoveItem("p1")
	after := store.Lines()

	store.RemoveItem("p1")
	assert.Equal(t, after, store.Lines())

	store.RemoveItem("never-added")
	assert.Equal(t, after, store.Lines())
}

func TestClearZeroesTotals(t *testing.T) {
	store := NewStore(&memStorage{})
	store.AddItem(shoe())
	store.AddItem(gymKit())

	store.Clear()

	assert.Empty(t, store.Lines())
	assert.Equal(t, 0, store.TotalItemCount())
	assert.True(t, store.TotalPrice().IsZero())
}

func TestTotals(t *testing.T) {
	store := NewStore(&memStorage{})
	store.AddItem(shoe())
	store.AddItem(shoe())
	store.AddItem(sock())

	assert.Equal(t, 3, store.TotalItemCount())
	assert.True(t, store.TotalPrice().Equal(decimal.RequireFromString("44.80")), "got %s", store.TotalPrice())
	assert.Equal(t, "44.80", store.TotalPrice().StringFixed(2))
}

func TestMutationsPersist(t *testing.T) {
	storage := &memStorage{}
	store := NewStore(storage)

	store.AddItem(shoe())
	store.SetQuantity("p1", 4)
	store.RemoveItem("p1")
	store.Clear()

	assert.Equal(t, 4, storage.saves)
}

func TestRehydratesFromStorage(t *testing.T) {
	storage := &memStorage{}

	first := NewStore(storage)
	first.AddItem(shoe())
	first.AddItem(gymKit())
	first.SetQuantity("p1", 2)

	second := NewStore(storage)
	lines := second.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, domain.ItemKindKit, lines[1].Kind)
	assert.True(t, second.TotalPrice().Equal(decimal.RequireFromString("129.70")))
}

func TestCorruptStateStartsEmpty(t *testing.T) {
	storage := &memStorage{state: []byte("{not json")}

	store := NewStore(storage)

	assert.Empty(t, store.Lines())
	assert.Equal(t, 0, store.TotalItemCount())
}

func TestLoadFailureStartsEmpty(t *testing.T) {
	storage := &memStorage{loadErr: errors.New("storage unavailable")}

	store := NewStore(storage)

	assert.Empty(t, store.Lines())
}
