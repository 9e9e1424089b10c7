package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/apisuite/apisuite/internal/store/cart"
	"github.com/apisuite/apisuite/internal/store/db"
	"github.com/apisuite/apisuite/internal/store/middleware"
	"github.com/apisuite/apisuite/internal/store/models"
	"github.com/apisuite/apisuite/internal/store/orders"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartResponse struct {
	Items       []orders.LineItem `json:"items"`
	TotalAmount float64           `json:"total_amount"`
}

// checkoutError carries the HTTP status for a checkout validation failure
// out of the transaction closure.
type checkoutError struct {
	status  int
	message string
}

func (e *checkoutError) Error() string {
	return e.message
}

type CartHandler struct {
	Carts  *cart.Store
	Orders *orders.Log
}

func NewCartHandler(carts *cart.Store, orderLog *orders.Log) *CartHandler {
	return &CartHandler{Carts: carts, Orders: orderLog}
}

func (h *CartHandler) Add(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var item cart.Item

	if err := ctx.ShouldBindJSON(&item); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product

	if err := db.DB.First(&product, item.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	if product.Stock < item.Quantity {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
		return
	}

	h.Carts.Add(user.ID, item)

	ctx.JSON(http.StatusOK, gin.H{"message": "Item added to cart successfully"})
}

// View re-fetches every product so the cart always reflects current names and
// prices. Lines whose product has since been deleted are dropped.
func (h *CartHandler) View(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response := CartResponse{Items: []orders.LineItem{}}

	for _, item := range h.Carts.Items(user.ID) {
		var product models.Product

		if err := db.DB.First(&product, item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
			return
		}

		lineTotal := product.Price * float64(item.Quantity)

		response.Items = append(response.Items, orders.LineItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    item.Quantity,
			Total:       lineTotal,
		})
		response.TotalAmount += lineTotal
	}

	ctx.JSON(http.StatusOK, response)
}

// Checkout validates stock, decrements it, and appends the order to the log
// inside one database transaction. Any failure, including the order log
// write, rolls everything back and leaves the cart untouched. The log file
// itself is not transactional with the database: a commit failure after a
// successful append leaves the logged order without its stock decrement.
func (h *CartHandler) Checkout(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var placed orders.Order

	err = h.Carts.Checkout(user.ID, func(items []cart.Item) error {
		return db.DB.Transaction(func(tx *gorm.DB) error {
			var lines []orders.LineItem
			var total float64

			for _, item := range items {
				var product models.Product

				if err := tx.First(&product, item.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return &checkoutError{http.StatusNotFound, fmt.Sprintf("Product %d not found", item.ProductID)}
					}
					return err
				}

				if product.Stock < item.Quantity {
					return &checkoutError{http.StatusBadRequest, fmt.Sprintf("Insufficient stock for product %s", product.Name)}
				}

				product.Stock -= item.Quantity

				if err := tx.Save(&product).Error; err != nil {
					return err
				}

				lineTotal := product.Price * float64(item.Quantity)

				lines = append(lines, orders.LineItem{
					ProductID:   product.ID,
					ProductName: product.Name,
					Price:       product.Price,
					Quantity:    item.Quantity,
					Total:       lineTotal,
				})
				total += lineTotal
			}

			placed = orders.Order{
				ID:          uuid.NewString(),
				UserID:      user.ID,
				Items:       lines,
				TotalAmount: total,
				CreatedAt:   time.Now(),
			}

			return h.Orders.Append(placed)
		})
	})

	if err != nil {
		if errors.Is(err, cart.ErrEmptyCart) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		var ce *checkoutError

		if errors.As(err, &ce) {
			ctx.JSON(ce.status, gin.H{"error": ce.message})
			return
		}

		log.Printf("Checkout failed for user %d: %v", user.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":      "Order placed successfully",
		"order_id":     placed.ID,
		"total_amount": placed.TotalAmount,
	})
}

func (h *CartHandler) Clear(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	h.Carts.Clear(user.ID)

	ctx.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}
