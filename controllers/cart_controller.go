package controllers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"think-shop/models"
	"think-shop/repositories"
	"think-shop/services"
	"think-shop/utils"
)

type CartController struct {
	cart    *services.CartService
	catalog *repositories.CatalogRepository
}

func NewCartController(cart *services.CartService, catalog *repositories.CatalogRepository) *CartController {
	return &CartController{cart: cart, catalog: catalog}
}

// @Summary Get cart
// @Description Current cart lines with item count and total
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	lines := ctrl.cart.Lines()

	c.JSON(200, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data: gin.H{
			"items":        lines,
			"total_count":  ctrl.cart.TotalCount(),
			"total_amount": ctrl.cart.TotalAmount(),
		},
	})
}

// @Summary Add to cart
// @Description Add one unit of a product, optionally selecting a duration variant
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if _, err := ctrl.catalog.FetchCatalog(c.Request.Context()); err != nil {
		c.JSON(503, gin.H{"success": false, "message": "Error loading products."})
		return
	}

	product, ok := ctrl.catalog.GetProductByID(req.ProductID)
	if !ok {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product."})
		return
	}

	price, durationLabel := product.DefaultSelection()
	if req.DurationLabel != "" {
		duration, found := product.FindDuration(req.DurationLabel)
		if !found {
			c.JSON(400, gin.H{"success": false, "message": "Invalid duration for this product."})
			return
		}
		price = duration.Price
		label := duration.Label
		durationLabel = &label
	}

	outcome, err := ctrl.cart.AddItem(product, price, durationLabel)
	if err != nil {
		if errors.Is(err, services.ErrInvalidProduct) {
			c.JSON(400, gin.H{"success": false, "message": "Invalid product."})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	display := product.Name
	if durationLabel != nil {
		display = fmt.Sprintf("%s (%s)", product.Name, *durationLabel)
	}
	message := fmt.Sprintf("%s added to cart!", display)
	if outcome == services.CartOutcomeUpdated {
		message = fmt.Sprintf("%s quantity updated!", display)
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: message,
		Data: gin.H{
			"outcome":     outcome,
			"total_count": ctrl.cart.TotalCount(),
		},
	})
}

// @Summary Change line quantity
// @Description Adjust a cart line's quantity by a delta; quantity never drops below 1
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.UpdateCartItemRequest true "Line key and delta"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
		return
	}

	line, found := ctrl.cart.ChangeQuantity(req.ProductID, req.Delta, price, durationLabelParam(req.DurationLabel))
	if !found {
		c.JSON(404, gin.H{"success": false, "message": "Item not in cart"})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: fmt.Sprintf("%s quantity updated!", line.DisplayName()),
		Data: gin.H{
			"item":         line,
			"total_count":  ctrl.cart.TotalCount(),
			"total_amount": ctrl.cart.TotalAmount(),
		},
	})
}

// @Summary Remove from cart
// @Description Delete the cart line with the given composite key
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.RemoveCartItemRequest true "Line key"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	var req models.RemoveCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
		return
	}

	removed, found := ctrl.cart.RemoveItem(req.ProductID, price, durationLabelParam(req.DurationLabel))
	if !found {
		c.JSON(404, gin.H{"success": false, "message": "Item not in cart"})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: fmt.Sprintf("%s removed from cart.", removed.DisplayName()),
		Data: gin.H{
			"total_count":  ctrl.cart.TotalCount(),
			"total_amount": ctrl.cart.TotalAmount(),
		},
	})
}

// @Summary Clear cart
// @Description Remove every line from the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.cart.Clear()

	c.JSON(200, models.Response{
		Success: true,
		Message: "Cart cleared",
	})
}

// @Summary Cart summary
// @Description Checkout page summary: lines with subtotals and the formatted total
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/summary [get]
func (ctrl *CartController) GetSummary(c *gin.Context) {
	lines := ctrl.cart.Lines()

	items := make([]gin.H, 0, len(lines))
	for _, l := range lines {
		items = append(items, gin.H{
			"name":     l.DisplayName(),
			"quantity": l.Quantity,
			"subtotal": utils.FormatTaka(l.Subtotal()),
		})
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Cart summary retrieved successfully",
		Data: gin.H{
			"items": items,
			"total": utils.FormatTaka(ctrl.cart.TotalAmount()),
		},
	})
}

// durationLabelParam maps the wire value to the composite-key form: "" and
// the literal "null" both mean no variant.
func durationLabelParam(label string) *string {
	if label == "" || label == "null" {
		return nil
	}
	return &label
}
