package controllers

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"think-shop/libs"
	"think-shop/models"
	"think-shop/services"
)

type CheckoutController struct {
	cart     *services.CartService
	checkout *services.CheckoutService
	mailer   *libs.Mailer
}

// NewCheckoutController wires the orchestrator; mailer may be nil when SMTP
// is unconfigured.
func NewCheckoutController(cart *services.CartService, checkout *services.CheckoutService, mailer *libs.Mailer) *CheckoutController {
	return &CheckoutController{cart: cart, checkout: checkout, mailer: mailer}
}

// @Summary Place order
// @Description Validate the checkout form and turn the cart into a pending order
// @Tags Checkout
// @Accept json
// @Produce json
// @Param order body models.CheckoutRequest true "Checkout form"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if ctrl.cart.TotalCount() == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Your cart is empty."})
		return
	}

	result := ctrl.checkout.Submit(req)
	if result.State == services.CheckoutRejected {
		c.JSON(400, gin.H{"success": false, "message": result.Reason})
		return
	}

	order := result.Order

	if ctrl.mailer != nil {
		if err := ctrl.mailer.SendOrderConfirmation(order.Customer.Email, *order); err != nil {
			log.Printf("Failed to send order confirmation email for %s: %v", order.ID, err)
		}
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: fmt.Sprintf("Order %s placed successfully!", order.ID),
		Data: gin.H{
			"order_id": order.ID,
			"order":    order,
		},
	})
}
