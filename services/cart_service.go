package services

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"think-shop/models"
	"think-shop/storage"
)

const cartStorageKey = "thinkPlusBDCart"

var ErrInvalidProduct = errors.New("invalid product")

// CartOutcome tells the caller whether an addition created a new line or
// merged into an existing one.
type CartOutcome string

const (
	CartOutcomeAdded   CartOutcome = "added"
	CartOutcomeUpdated CartOutcome = "updated"
)

// CartService owns the cart line sequence. Lines are keyed by the composite
// (product id, unit price, duration label); every mutation persists the full
// sequence before returning. Construction reloads whatever the adapter holds,
// treating corrupt or non-array state as an empty cart.
type CartService struct {
	mu       sync.Mutex
	store    storage.Storage
	lines    []models.CartLine
	onChange func([]models.CartLine)
}

func NewCartService(store storage.Storage) *CartService {
	s := &CartService{store: store}
	s.load()
	return s
}

// OnChange registers an observer invoked with a snapshot after every
// mutation. Rendering belongs to the observer, not the store. The callback
// runs inside the store's critical section and must not call back in.
func (s *CartService) OnChange(fn func([]models.CartLine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *CartService) load() {
	raw, ok, err := s.store.Get(cartStorageKey)
	if err != nil {
		log.Printf("Error reading cart from storage: %v", err)
		return
	}
	if !ok {
		return
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		log.Printf("Error parsing cart from storage: %v", err)
		s.lines = nil
		return
	}
	s.lines = lines
}

// AddItem puts one unit of the product into the cart at the given price and
// duration selection. A line with the same composite key gains quantity
// instead of a duplicate line.
func (s *CartService) AddItem(product *models.Product, unitPrice decimal.Decimal, durationLabel *string) (CartOutcome, error) {
	if product == nil || product.ID == 0 {
		return "", ErrInvalidProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Matches(product.ID, unitPrice, durationLabel) {
			s.lines[i].Quantity++
			s.persist()
			return CartOutcomeUpdated, nil
		}
	}

	s.lines = append(s.lines, models.CartLine{
		ProductID:             product.ID,
		Name:                  product.Name,
		Category:              product.Category,
		Image:                 product.Image,
		Price:                 unitPrice,
		Quantity:              1,
		SelectedDurationLabel: durationLabel,
	})
	s.persist()
	return CartOutcomeAdded, nil
}

// ChangeQuantity adjusts a line's quantity by delta, flooring at 1.
// Decrementing a quantity-1 line keeps it; removal is RemoveItem's job.
// The line still persists on a floored no-op.
func (s *CartService) ChangeQuantity(productID int, delta int, unitPrice decimal.Decimal, durationLabel *string) (models.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Matches(productID, unitPrice, durationLabel) {
			quantity := s.lines[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}
			s.lines[i].Quantity = quantity
			s.persist()
			return s.lines[i], true
		}
	}
	return models.CartLine{}, false
}

// RemoveItem deletes the line with the given composite key, if present.
func (s *CartService) RemoveItem(productID int, unitPrice decimal.Decimal, durationLabel *string) (models.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Matches(productID, unitPrice, durationLabel) {
			removed := s.lines[i]
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return removed, true
		}
	}
	return models.CartLine{}, false
}

// Clear empties the cart, used after a confirmed checkout.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist()
}

// Lines returns a snapshot of the cart contents.
func (s *CartService) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// TotalCount is the sum of quantities across lines, the cart badge number.
func (s *CartService) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// TotalAmount is the sum of price x quantity across lines.
func (s *CartService) TotalAmount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *CartService) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// snapshot is always a non-nil copy so it serializes as a JSON array.
func (s *CartService) snapshot() []models.CartLine {
	return append(make([]models.CartLine, 0, len(s.lines)), s.lines...)
}

// persist serializes the full line sequence under the cart key.
// Caller must hold the mutex.
func (s *CartService) persist() {
	raw, err := json.Marshal(s.snapshot())
	if err != nil {
		log.Printf("Error encoding cart: %v", err)
		return
	}
	if err := s.store.Set(cartStorageKey, string(raw)); err != nil {
		log.Printf("Error saving cart to storage: %v", err)
	}
	if s.onChange != nil {
		s.onChange(s.snapshot())
	}
}
