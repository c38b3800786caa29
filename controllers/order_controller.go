package controllers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"think-shop/models"
	"think-shop/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (ctrl *OrderController) getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func (ctrl *OrderController) generateLinks(c *gin.Context, page, limit, totalPages int) models.PaginationLinks {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	host := c.Request.Host
	path := c.Request.URL.Path
	queryParams := c.Request.URL.Query()

	makeURL := func(pageNum int) string {
		newParams := url.Values{}
		for key, values := range queryParams {
			if key != "page" {
				for _, value := range values {
					newParams.Add(key, value)
				}
			}
		}
		newParams.Set("page", strconv.Itoa(pageNum))
		newParams.Set("limit", strconv.Itoa(limit))
		return fmt.Sprintf("%s://%s%s?%s", scheme, host, path, newParams.Encode())
	}

	links := models.PaginationLinks{
		Self: makeURL(page),
	}

	if page > 1 {
		links.Prev = makeURL(page - 1)
	}
	if page < totalPages {
		links.Next = makeURL(page + 1)
	}

	return links
}

func (ctrl *OrderController) buildResponse(c *gin.Context, message string, data interface{}, page, limit, totalItems int) models.HATEOASResponse {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	if page > totalPages && totalPages > 0 {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	return models.HATEOASResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: totalItems,
			TotalPages: totalPages,
		},
		Links: ctrl.generateLinks(c, page, limit, totalPages),
	}
}

// @Summary Get order history
// @Description Past orders, most recent first (the store retains at most 10)
// @Tags Orders
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.HATEOASResponse
// @Router /orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := ctrl.getPaginationParams(c, 10)

	orders := ctrl.orders.Orders()
	total := len(orders)

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	response := ctrl.buildResponse(c, "Orders retrieved successfully", orders[start:end], page, limit, total)
	c.JSON(200, response)
}

// @Summary Get order by ID
// @Description Order details for the confirmation page
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	order, ok := ctrl.orders.Get(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}

// @Summary Get unread order count
// @Description Count of orders not yet viewed, for the notification badge
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders/unread-count [get]
func (ctrl *OrderController) GetUnreadCount(c *gin.Context) {
	count := ctrl.orders.UnreadCount()

	// The badge shows at most "9+", matching the storefront header.
	display := strconv.Itoa(count)
	if count > 9 {
		display = "9+"
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Unread count retrieved successfully",
		Data: gin.H{
			"unread_count": count,
			"display":      display,
		},
	})
}

// @Summary Mark orders viewed
// @Description Flip every unviewed order to viewed (called when the orders page opens)
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders/mark-viewed [post]
func (ctrl *OrderController) MarkAllViewed(c *gin.Context) {
	ctrl.orders.MarkAllViewed()

	c.JSON(200, models.Response{
		Success: true,
		Message: "All orders marked as viewed",
	})
}
