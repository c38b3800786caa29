package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"think-shop/models"
	"think-shop/repositories"
)

type ProductController struct {
	catalog *repositories.CatalogRepository
}

func NewProductController(catalog *repositories.CatalogRepository) *ProductController {
	return &ProductController{catalog: catalog}
}

func (ctrl *ProductController) ensureCatalog(c *gin.Context) bool {
	if _, err := ctrl.catalog.FetchCatalog(c.Request.Context()); err != nil {
		c.JSON(503, gin.H{"success": false, "message": "Error loading products."})
		return false
	}
	return true
}

// @Summary Get all products
// @Description List catalog products with pagination, category filter, and search
// @Tags Products
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param category query string false "Filter by category"
// @Param search query string false "Search by name or description"
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	if !ctrl.ensureCatalog(c) {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	if limit > 100 {
		limit = 100
	}

	category := models.Category(c.Query("category"))
	search := c.Query("search")

	matched := ctrl.catalog.Search(category, search)
	total := len(matched)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	items := make([]gin.H, 0, end-start)
	for _, p := range matched[start:end] {
		items = append(items, productCard(p))
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    items,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

// @Summary Get featured products
// @Description List products flagged for the storefront landing sections
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/featured [get]
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	if !ctrl.ensureCatalog(c) {
		return
	}

	items := []gin.H{}
	for _, p := range ctrl.catalog.GetFeaturedProducts() {
		items = append(items, productCard(p))
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Featured products retrieved successfully",
		Data:    items,
	})
}

// @Summary Get product by ID
// @Description Get full product details including duration variants
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	if !ctrl.ensureCatalog(c) {
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, ok := ctrl.catalog.GetProductByID(id)
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Product retrieved successfully",
		Data:    product,
	})
}

// @Summary Get product by slug
// @Description Get product details by category and slug
// @Tags Products
// @Produce json
// @Param category path string true "Category"
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{category}/{slug} [get]
func (ctrl *ProductController) GetProductBySlug(c *gin.Context) {
	if !ctrl.ensureCatalog(c) {
		return
	}

	category := models.Category(c.Param("category"))
	if !models.ValidCategory(category) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category"})
		return
	}

	product, ok := ctrl.catalog.GetProductBySlug(category, c.Param("slug"))
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Product retrieved successfully",
		Data:    product,
	})
}

// @Summary Get categories
// @Description Category list with product counts and display names
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	if !ctrl.ensureCatalog(c) {
		return
	}

	counts := ctrl.catalog.CategoryCounts()

	categories := []gin.H{}
	for _, cat := range repositories.SortedCategories(counts) {
		display := models.CategoryDisplayNames[cat]
		label := display.Plural
		if counts[cat] == 1 {
			label = display.Singular
		}
		categories = append(categories, gin.H{
			"name":  cat,
			"count": counts[cat],
			"label": fmt.Sprintf("%d %s", counts[cat], label),
		})
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Categories retrieved successfully",
		Data:    categories,
	})
}

// productCard is the listing shape: display price instead of the raw base
// price so variant products advertise their cheapest duration.
func productCard(p models.Product) gin.H {
	return gin.H{
		"id":            p.ID,
		"name":          p.Name,
		"slug":          p.Slug,
		"description":   p.Description,
		"category":      p.Category,
		"display_price": p.DisplayPrice(),
		"image":         p.Image,
		"is_featured":   p.IsFeatured,
		"has_durations": p.HasDurations(),
	}
}
