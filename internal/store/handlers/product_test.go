package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/apisuite/apisuite/internal/store/db"
	"github.com/apisuite/apisuite/internal/store/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminEndpointsRequireAdmin(t *testing.T) {
	env := setupStore(t)
	_, token := createUser(t, "shopper", false)

	w := doJSON(t, env.router, http.MethodPost, "/admin/products", token, gin.H{"name": "Widget", "price": 10.0, "stock": 5})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, env.router, http.MethodPost, "/admin/products", "", gin.H{"name": "Widget", "price": 10.0, "stock": 5})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProduct(t *testing.T) {
	env := setupStore(t)
	_, token := createUser(t, "admin", true)

	w := doJSON(t, env.router, http.MethodPost, "/admin/products", token, gin.H{"name": "Widget", "price": 10.0, "stock": 5})
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.NotZero(t, product.ID)
	assert.Equal(t, "Widget", product.Name)

	// Zero stock is allowed, non-positive price is not.
	w = doJSON(t, env.router, http.MethodPost, "/admin/products", token, gin.H{"name": "Freebie", "price": 0.0, "stock": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, env.router, http.MethodPost, "/admin/products", token, gin.H{"name": "OutOfStock", "price": 1.0, "stock": 0})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPartialUpdateProduct(t *testing.T) {
	env := setupStore(t)
	product := createProduct(t, "Widget", 10, 5)
	_, token := createUser(t, "admin", true)

	w := doJSON(t, env.router, http.MethodPut, "/admin/products/1", token, gin.H{"price": 12.5})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Product
	require.NoError(t, db.DB.First(&stored, product.ID).Error)
	assert.Equal(t, 12.5, stored.Price)
	assert.Equal(t, "Widget", stored.Name)
	assert.Equal(t, 5, stored.Stock)
}

func TestDeleteProductTwice(t *testing.T) {
	env := setupStore(t)
	createProduct(t, "Widget", 10, 5)
	_, token := createUser(t, "admin", true)

	w := doJSON(t, env.router, http.MethodDelete, "/admin/products/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, env.router, http.MethodDelete, "/admin/products/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAndGetProducts(t *testing.T) {
	env := setupStore(t)
	createProduct(t, "Widget", 10, 5)
	createProduct(t, "Gadget", 4, 2)

	w := doJSON(t, env.router, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)

	w = doJSON(t, env.router, http.MethodGet, "/products?skip=1&limit=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 1)

	w = doJSON(t, env.router, http.MethodGet, "/products/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchProductsCaseInsensitive(t *testing.T) {
	env := setupStore(t)
	createProduct(t, "Mechanical Keyboard", 80, 3)
	createProduct(t, "Mouse", 20, 3)

	w := doJSON(t, env.router, http.MethodGet, "/products/search/KEYB", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Mechanical Keyboard", products[0].Name)
}

func TestProcessTimeHeader(t *testing.T) {
	env := setupStore(t)

	w := doJSON(t, env.router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Process-Time"))
}
