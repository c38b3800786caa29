package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const OrderStatusPending OrderStatus = "Pending"

type PaymentMethod string

const (
	PaymentBkash  PaymentMethod = "bkash"
	PaymentNagad  PaymentMethod = "nagad"
	PaymentRocket PaymentMethod = "rocket"
)

var PaymentMethods = []PaymentMethod{PaymentBkash, PaymentNagad, PaymentRocket}

func ValidPaymentMethod(m PaymentMethod) bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderLine is a frozen copy of a cart line taken at checkout time. Later
// catalog or cart changes never alter it.
type OrderLine struct {
	ProductID             int             `json:"id"`
	Name                  string          `json:"name"`
	Price                 decimal.Decimal `json:"price"`
	Quantity              int             `json:"quantity"`
	SelectedDurationLabel *string         `json:"selectedDurationLabel"`
}

func (l *OrderLine) DisplayName() string {
	if l.SelectedDurationLabel != nil && *l.SelectedDurationLabel != "" {
		return l.Name + " (" + *l.SelectedDurationLabel + ")"
	}
	return l.Name
}

type Order struct {
	ID            string          `json:"id"`
	Customer      Customer        `json:"customer"`
	Items         []OrderLine     `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        OrderStatus     `json:"status"`
	Timestamp     time.Time       `json:"timestamp"`
	TransactionID string          `json:"transactionId"`
	Viewed        bool            `json:"viewed"`
}

// UnmarshalJSON coerces the viewed flag to a strict boolean: stored blobs
// that carry it as a string, number, or not at all all come back unviewed.
func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	aux := struct {
		*alias
		Viewed any `json:"viewed"`
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	viewed, _ := aux.Viewed.(bool)
	o.Viewed = viewed
	return nil
}
