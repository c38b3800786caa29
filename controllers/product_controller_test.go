package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"think-shop/models"
	"think-shop/repositories"
)

func newProductRouter(catalog *repositories.CatalogRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewProductController(catalog)
	router := gin.New()
	router.GET("/products", ctrl.GetAllProducts)
	router.GET("/products/featured", ctrl.GetFeaturedProducts)
	router.GET("/products/:id", ctrl.GetProductByID)
	return router
}

func TestGetAllProductsCatalogDown(t *testing.T) {
	catalog := repositories.NewCatalogRepositoryWithSource(func() ([]models.Product, error) {
		return nil, errors.New("upstream down")
	})
	router := newProductRouter(catalog)

	for _, path := range []string{"/products", "/products/featured", "/products/1"} {
		w := doJSON(router, http.MethodGet, path, "")
		assert.Equal(t, 503, w.Code, "path %s", path)
		assert.Contains(t, w.Body.String(), "Error loading products.")
	}
}

func TestGetAllProductsListsCatalog(t *testing.T) {
	router := newProductRouter(repositories.NewCatalogRepository())

	w := doJSON(router, http.MethodGet, "/products?limit=100", "")
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "CAPCUT PRO (pc version)")
	assert.Contains(t, w.Body.String(), "CANVA PRO (official)")
}
