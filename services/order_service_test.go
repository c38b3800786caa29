package services

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"think-shop/models"
	"think-shop/storage"
)

func testOrder(id string, placed time.Time, viewed bool) models.Order {
	return models.Order{
		ID:       id,
		Customer: models.Customer{Name: "Rahim", Email: "rahim@example.com", Phone: "01712345678"},
		Items: []models.OrderLine{
			{ProductID: 1, Name: "CAPCUT PRO (pc version)", Price: decimal.NewFromInt(249), Quantity: 2},
		},
		TotalAmount:   decimal.NewFromInt(498),
		PaymentMethod: models.PaymentBkash,
		Status:        models.OrderStatusPending,
		Timestamp:     placed,
		TransactionID: "TRX12345",
		Viewed:        viewed,
	}
}

func TestAppendCapsAtTenNewestFirst(t *testing.T) {
	store := storage.NewMemoryStorage()
	orders := NewOrderService(store)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ {
		orders.Append(testOrder(fmt.Sprintf("TPBD-%06d", 100000+i), base.Add(time.Duration(i)*time.Hour), false))
	}

	got := orders.Orders()
	require.Len(t, got, 10)
	assert.Equal(t, "TPBD-100012", got[0].ID)
	assert.Equal(t, "TPBD-100003", got[9].ID)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Timestamp.After(got[i-1].Timestamp), "orders must be newest first")
	}
}

func TestLoadSortsTruncatesAndNormalizes(t *testing.T) {
	store := storage.NewMemoryStorage()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	stored := make([]map[string]any, 0, 12)
	for i := 0; i < 12; i++ {
		stored = append(stored, map[string]any{
			"id":        fmt.Sprintf("TPBD-%06d", 200000+i),
			"timestamp": base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			"viewed":    true,
		})
	}
	// Legacy records: viewed as a string, and no timestamp at all.
	stored[11]["viewed"] = "yes"
	delete(stored[10], "timestamp")

	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, store.Set(ordersStorageKey, string(raw)))

	orders := NewOrderService(store)
	got := orders.Orders()
	require.Len(t, got, 10)

	// The record without a timestamp sank to the epoch and fell off the cap.
	for _, o := range got {
		assert.NotEqual(t, "TPBD-200010", o.ID)
	}

	// "yes" is not a strict boolean true.
	unviewed, ok := orders.Get("TPBD-200011")
	require.True(t, ok)
	assert.False(t, unviewed.Viewed)
	assert.Equal(t, 1, orders.UnreadCount())
}

func TestLoadMissingTimestampDefaultsToEpoch(t *testing.T) {
	store := storage.NewMemoryStorage()
	require.NoError(t, store.Set(ordersStorageKey, `[{"id":"TPBD-300000","viewed":true}]`))

	orders := NewOrderService(store)
	got := orders.Orders()
	require.Len(t, got, 1)
	assert.Equal(t, time.Unix(0, 0).UTC(), got[0].Timestamp)
	assert.True(t, got[0].Viewed)
}

func TestLoadCorruptStateResetsToEmpty(t *testing.T) {
	for _, blob := range []string{"not json at all", `{"orders":[]}`, `"hello"`} {
		store := storage.NewMemoryStorage()
		require.NoError(t, store.Set(ordersStorageKey, blob))

		orders := NewOrderService(store)
		assert.Empty(t, orders.Orders(), "blob %q should reset the order store", blob)
	}
}

func TestLoadSkipsUnreadableRecordsKeepsRest(t *testing.T) {
	store := storage.NewMemoryStorage()
	blob := `[
		{"id":"TPBD-600000","timestamp":"2025-06-01T10:00:00Z","viewed":false},
		{"id":"TPBD-600001","timestamp":"yesterday","viewed":false},
		{"id":"TPBD-600002","timestamp":"2025-06-01T12:00:00Z","viewed":true}
	]`
	require.NoError(t, store.Set(ordersStorageKey, blob))

	orders := NewOrderService(store)
	got := orders.Orders()
	require.Len(t, got, 2, "one bad record must not take the rest down")
	assert.Equal(t, "TPBD-600002", got[0].ID)
	assert.Equal(t, "TPBD-600000", got[1].ID)

	_, ok := orders.Get("TPBD-600001")
	assert.False(t, ok)
}

func TestUnreadCountAndMarkAllViewed(t *testing.T) {
	store := newRecordingStorage()
	orders := NewOrderService(store)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		orders.Append(testOrder(fmt.Sprintf("TPBD-%06d", 400000+i), base.Add(time.Duration(i)*time.Hour), i >= 3))
	}
	assert.Equal(t, 3, orders.UnreadCount())

	writesBefore := store.setCalls
	orders.MarkAllViewed()
	assert.Equal(t, 0, orders.UnreadCount())
	assert.Equal(t, writesBefore+1, store.setCalls, "marking viewed persists exactly once")

	orders.MarkAllViewed()
	assert.Equal(t, writesBefore+1, store.setCalls, "nothing changed, nothing persisted")
}

func TestOrderPersistRoundTrip(t *testing.T) {
	store := storage.NewMemoryStorage()

	orders := NewOrderService(store)
	placed := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	orders.Append(testOrder("TPBD-500000", placed, false))

	reloaded := NewOrderService(store)
	got, ok := reloaded.Get("TPBD-500000")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusPending, got.Status)
	assert.Equal(t, models.PaymentBkash, got.PaymentMethod)
	assert.Equal(t, "TRX12345", got.TransactionID)
	assert.Equal(t, "rahim@example.com", got.Customer.Email)
	assert.True(t, got.Timestamp.Equal(placed))
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(498)))
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.False(t, got.Viewed)
}
