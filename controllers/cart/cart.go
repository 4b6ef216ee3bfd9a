package cartControllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/cart"
)

// TokenHeader carries the cart session token on every cart request.
const TokenHeader = "X-Cart-Token"

type AddItemInput struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"min=0"`
	ImageURL  string  `json:"image_url"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

func sessionCart(c *gin.Context, store *cart.Store) (*cart.Cart, bool) {
	token := c.GetHeader(TokenHeader)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart token is required"})
		return nil, false
	}
	crt, ok := store.Get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart session not found"})
		return nil, false
	}
	return crt, true
}

func cartResponse(crt *cart.Cart) gin.H {
	return gin.H{
		"items":        crt.Items(),
		"total_amount": math.Round(crt.TotalAmount()*100) / 100,
		"total_items":  crt.TotalItemCount(),
	}
}

// POST /cart/session
func CreateSession(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"cart_token": store.NewSession()})
	}
}

// GET /cart
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt, ok := sessionCart(c, store)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartResponse(crt))
	}
}

// POST /cart/items
func AddItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt, ok := sessionCart(c, store)
		if !ok {
			return
		}
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		crt.Add(cart.Item{
			ProductID: input.ProductID,
			Name:      input.Name,
			Price:     input.Price,
			ImageURL:  input.ImageURL,
		})
		c.JSON(http.StatusOK, cartResponse(crt))
	}
}

// PUT /cart/items/:product_id
func SetItemQuantity(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt, ok := sessionCart(c, store)
		if !ok {
			return
		}
		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		// quantity <= 0 removes the line; an unknown id is a no-op
		crt.SetQuantity(c.Param("product_id"), input.Quantity)
		c.JSON(http.StatusOK, cartResponse(crt))
	}
}

// DELETE /cart/items/:product_id
func RemoveItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt, ok := sessionCart(c, store)
		if !ok {
			return
		}
		crt.Remove(c.Param("product_id"))
		c.JSON(http.StatusOK, cartResponse(crt))
	}
}

// DELETE /cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt, ok := sessionCart(c, store)
		if !ok {
			return
		}
		crt.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
