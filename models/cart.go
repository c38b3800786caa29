package models

import "github.com/shopspring/decimal"

// CartLine is one distinct product+price+duration combination in the cart.
// Two additions with the same (product id, price, duration label) merge into
// one line by incrementing its quantity.
type CartLine struct {
	ProductID             int             `json:"id"`
	Name                  string          `json:"name"`
	Category              Category        `json:"category"`
	Image                 string          `json:"image,omitempty"`
	Price                 decimal.Decimal `json:"price"`
	Quantity              int             `json:"quantity"`
	SelectedDurationLabel *string         `json:"selectedDurationLabel"`
}

// Matches reports whether the line carries the given composite key.
func (l *CartLine) Matches(productID int, price decimal.Decimal, durationLabel *string) bool {
	return l.ProductID == productID &&
		l.Price.Equal(price) &&
		SameDurationLabel(l.SelectedDurationLabel, durationLabel)
}

func (l *CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// DisplayName is the name shown on cart rows and toasts, with the selected
// duration in parentheses when one was picked.
func (l *CartLine) DisplayName() string {
	if l.SelectedDurationLabel != nil && *l.SelectedDurationLabel != "" {
		return l.Name + " (" + *l.SelectedDurationLabel + ")"
	}
	return l.Name
}

// SameDurationLabel compares two optional duration labels; nil and empty
// string both mean "no variant selected".
func SameDurationLabel(a, b *string) bool {
	norm := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	return norm(a) == norm(b)
}
