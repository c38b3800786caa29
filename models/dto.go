package models

type AddCartItemRequest struct {
	ProductID     int    `json:"product_id" form:"product_id" binding:"required"`
	DurationLabel string `json:"duration_label" form:"duration_label"`
}

type UpdateCartItemRequest struct {
	ProductID     int    `json:"product_id" form:"product_id" binding:"required"`
	Delta         int    `json:"delta" form:"delta" binding:"required"`
	Price         string `json:"price" form:"price" binding:"required"`
	DurationLabel string `json:"duration_label" form:"duration_label"`
}

type RemoveCartItemRequest struct {
	ProductID     int    `json:"product_id" form:"product_id" binding:"required"`
	Price         string `json:"price" form:"price" binding:"required"`
	DurationLabel string `json:"duration_label" form:"duration_label"`
}

type CheckoutRequest struct {
	Name          string `json:"name" form:"name"`
	Email         string `json:"email" form:"email"`
	Phone         string `json:"phone" form:"phone"`
	TransactionID string `json:"transaction_id" form:"transaction_id"`
	PaymentMethod string `json:"payment_method" form:"payment_method"`
}
