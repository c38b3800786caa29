package libs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"

	"think-shop/config"
	"think-shop/models"
	"think-shop/utils"
)

// Mailer sends the order confirmation email. The storefront works fine
// without it; checkout only logs a send failure.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer() (*Mailer, error) {
	cfg := config.AppConfig

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

func (m *Mailer) SendOrderConfirmation(toEmail string, order models.Order) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Order Confirmation %s - ThinkPlus BD", order.ID))

	var itemRows strings.Builder
	for _, item := range order.Items {
		itemRows.WriteString(fmt.Sprintf(
			"<li>%s (x%d) - %s</li>",
			item.DisplayName(), item.Quantity,
			utils.FormatTaka(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))),
		))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #2563eb; }
        .order-box { background-color: #eff6ff; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">ThinkPlus BD</div>
        </div>
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Thank you for your order, %s!</p>

        <div class="order-box">
            <p><strong>Order ID:</strong> %s</p>
            <p><strong>Payment Method:</strong> %s</p>
            <p><strong>TrxID:</strong> %s</p>
            <p><strong>Items:</strong></p>
            <ul>%s</ul>
            <p><strong>Total Amount:</strong> %s</p>
        </div>

        <p>Your order is being verified. We'll reach out on your phone number once the payment is confirmed.</p>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, order.Customer.Name, order.ID, order.PaymentMethod, order.TransactionID,
		itemRows.String(), utils.FormatTaka(order.TotalAmount))

	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
