package services

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"think-shop/models"
)

// CheckoutState is the terminal state of one submission. A submission moves
// Idle -> Validating -> Submitting -> Confirmed, falling into Rejected on the
// first validation failure; Rejected keeps no partial state, the customer
// corrects the form and submits again from Idle.
type CheckoutState string

const (
	CheckoutConfirmed CheckoutState = "Confirmed"
	CheckoutRejected  CheckoutState = "Rejected"
)

// CheckoutResult carries the outcome of a submission: the new order on
// Confirmed, the first validation failure on Rejected.
type CheckoutResult struct {
	State  CheckoutState
	Order  *models.Order
	Reason string
}

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	// Bangladeshi mobile numbers: 11 digits, 01 prefix, operator digit 3-9.
	phonePattern = regexp.MustCompile(`^01[3-9]\d{8}$`)
)

// CheckoutService turns the current cart into an order. Validation rules run
// in a fixed order and the first failure wins.
type CheckoutService struct {
	cart   *CartService
	orders *OrderService
	now    func() time.Time
	randN  func(n int) int
}

func NewCheckoutService(cart *CartService, orders *OrderService) *CheckoutService {
	return &CheckoutService{
		cart:   cart,
		orders: orders,
		now:    time.Now,
		randN:  rand.Intn,
	}
}

// Submit validates the form and, on success, snapshots the cart into a new
// pending order, appends it to the order store, and clears the cart.
func (s *CheckoutService) Submit(req models.CheckoutRequest) CheckoutResult {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	trxID := strings.TrimSpace(req.TransactionID)
	method := models.PaymentMethod(strings.TrimSpace(req.PaymentMethod))

	if name == "" || email == "" || phone == "" || trxID == "" {
		return rejected("Please fill all fields.")
	}
	if !emailPattern.MatchString(email) {
		return rejected("Invalid email.")
	}
	if !phonePattern.MatchString(phone) {
		return rejected("Invalid Bangladeshi phone number.")
	}
	if utf8.RuneCountInString(trxID) < 5 {
		return rejected("Transaction ID seems too short.")
	}
	if !models.ValidPaymentMethod(method) {
		return rejected("Please select a payment method.")
	}

	// One snapshot feeds both the lines and the total: a cart mutation
	// racing this handler must not leave an order whose totalAmount
	// disagrees with its own items.
	lines := s.cart.Lines()
	items := make([]models.OrderLine, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		items = append(items, models.OrderLine{
			ProductID:             l.ProductID,
			Name:                  l.Name,
			Price:                 l.Price,
			Quantity:              l.Quantity,
			SelectedDurationLabel: l.SelectedDurationLabel,
		})
		total = total.Add(l.Subtotal())
	}

	order := models.Order{
		ID:            s.newOrderID(),
		Customer:      models.Customer{Name: name, Email: email, Phone: phone},
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: method,
		Status:        models.OrderStatusPending,
		Timestamp:     s.now().UTC(),
		TransactionID: trxID,
		Viewed:        false,
	}

	s.orders.Append(order)
	s.cart.Clear()

	return CheckoutResult{State: CheckoutConfirmed, Order: &order}
}

// newOrderID builds the human-readable order token. The 6-digit suffix is
// random and deliberately not checked against existing orders; at a
// 10-order retention cap the collision odds are accepted.
func (s *CheckoutService) newOrderID() string {
	return fmt.Sprintf("TPBD-%d", 100000+s.randN(900000))
}

func rejected(reason string) CheckoutResult {
	return CheckoutResult{State: CheckoutRejected, Reason: reason}
}
