// Package cart tracks the shopper's selection prior to the WhatsApp
// handoff. It lives entirely on the shopper's side: lines snapshot the
// catalog item at the moment it is added and never chase later price or
// name changes.
package cart

import (
	"encoding/json"

	"github.com/michelstore/storefront-service/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Item is the catalog view a line is snapshotted from.
type Item struct {
	ID       string
	Name     string
	Price    float64
	ImageURL string
	Kind     domain.ItemKind
}

// Line is one cart entry. Identity is the catalog item id; adding the same
// id again bumps the quantity instead of duplicating the line.
type Line struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
	Kind     domain.ItemKind `json:"kind"`
	Quantity int             `json:"quantity"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Storage is the persistence port standing in for browser-local storage.
type Storage interface {
	Load() ([]byte, error)
	Save(state []byte) error
}

// Store keeps the lines in insertion order for display.
type Store struct {
	storage Storage
	lines   []Line
}

// NewStore rehydrates from storage; missing or corrupt state starts an
// empty cart rather than failing.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}

	state, err := storage.Load()
	if err != nil || len(state) == 0 {
		return s
	}

	if err := json.Unmarshal(state, &s.lines); err != nil {
		log.Warn().Err(err).Msg("discarding corrupt cart state")
		s.lines = nil
	}

	return s
}

func (s *Store) AddItem(item Item) {
	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity++
			s.persist()
			return
		}
	}

	s.lines = append(s.lines, Line{
		ID:       item.ID,
		Name:     item.Name,
		Price:    decimal.NewFromFloat(item.Price),
		ImageURL: item.ImageURL,
		Kind:     item.Kind,
		Quantity: 1,
	})
	s.persist()
}

func (s *Store) RemoveItem(id string) {
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// SetQuantity replaces a line's quantity without re-snapshotting its price
// or name. Zero or negative removes the line.
func (s *Store) SetQuantity(id string, qty int) {
	if qty <= 0 {
		s.RemoveItem(id)
		return
	}

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = qty
			s.persist()
			return
		}
	}
}

func (s *Store) Clear() {
	s.lines = nil
	s.persist()
}

func (s *Store) Lines() []Line {
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

func (s *Store) TotalItemCount() int {
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// TotalPrice sums snapshot prices times quantities. Rounding to currency
// precision happens only when the total is formatted for display.
func (s *Store) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

func (s *Store) persist() {
	state, err := json.Marshal(s.lines)
	if err != nil {
		log.Error().Err(err).Msg("failed to serialize cart state")
		return
	}

	if err := s.storage.Save(state); err != nil {
		log.Error().Err(err).Msg("failed to persist cart state")
	}
}
