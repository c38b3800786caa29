package services

import (
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"think-shop/models"
	"think-shop/storage"
)

const (
	ordersStorageKey = "thinkPlusBDLocalOrders"

	// maxStoredOrders caps retention; the oldest beyond it are dropped for
	// good, not hidden.
	maxStoredOrders = 10
)

// OrderService owns the past-order sequence, most recent first. Orders are
// immutable after creation except for the viewed flag.
type OrderService struct {
	mu       sync.Mutex
	store    storage.Storage
	orders   []models.Order
	onChange func([]models.Order)
}

func NewOrderService(store storage.Storage) *OrderService {
	s := &OrderService{store: store}
	s.Load()
	return s
}

func (s *OrderService) OnChange(fn func([]models.Order)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Load reads the persisted order sequence, resetting to empty when the top
// level is not an array and skipping individual records that will not decode.
// Each surviving record is normalized (strict-boolean viewed, epoch default
// for a missing timestamp), then the sequence is sorted newest-first and cut
// to the retention cap.
func (s *OrderService) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = nil

	raw, ok, err := s.store.Get(ordersStorageKey)
	if err != nil {
		log.Printf("Error reading orders from storage: %v", err)
		return
	}
	if !ok {
		return
	}

	var records []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("Error parsing orders from storage: %v", err)
		return
	}

	// Records are decoded one by one so a single bad entry (say an
	// unparseable timestamp) drops that entry, not the whole store.
	orders := make([]models.Order, 0, len(records))
	for _, rec := range records {
		var order models.Order
		if err := json.Unmarshal(rec, &order); err != nil {
			log.Printf("Skipping unreadable order record: %v", err)
			continue
		}
		if order.Timestamp.IsZero() {
			order.Timestamp = time.Unix(0, 0).UTC()
		}
		orders = append(orders, order)
	}

	s.orders = orders
	s.sortAndTruncateLocked()
}

// Append inserts a freshly placed order at the front and persists the
// capped, newest-first sequence.
func (s *OrderService) Append(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]models.Order{order}, s.orders...)
	s.sortAndTruncateLocked()
	s.persist()
}

// Orders returns a snapshot, newest first.
func (s *OrderService) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *OrderService) Get(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// UnreadCount counts orders the customer has not viewed yet.
func (s *OrderService) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, o := range s.orders {
		if !o.Viewed {
			count++
		}
	}
	return count
}

// MarkAllViewed flips every unviewed order to viewed. Persists only when at
// least one record changed.
func (s *OrderService) MarkAllViewed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.orders {
		if !s.orders[i].Viewed {
			s.orders[i].Viewed = true
			changed = true
		}
	}
	if changed {
		s.persist()
	}
}

func (s *OrderService) sortAndTruncateLocked() {
	sort.SliceStable(s.orders, func(i, j int) bool {
		return s.orders[i].Timestamp.After(s.orders[j].Timestamp)
	})
	if len(s.orders) > maxStoredOrders {
		s.orders = s.orders[:maxStoredOrders]
	}
}

func (s *OrderService) snapshot() []models.Order {
	return append(make([]models.Order, 0, len(s.orders)), s.orders...)
}

// persist serializes the full order sequence. Caller must hold the mutex.
func (s *OrderService) persist() {
	raw, err := json.Marshal(s.snapshot())
	if err != nil {
		log.Printf("Error encoding orders: %v", err)
		return
	}
	if err := s.store.Set(ordersStorageKey, string(raw)); err != nil {
		log.Printf("Error saving orders to storage: %v", err)
	}
	if s.onChange != nil {
		s.onChange(s.snapshot())
	}
}
