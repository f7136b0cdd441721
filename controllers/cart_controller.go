package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-backend/pkg/resp"
	"restaurant-backend/services"
	"restaurant-backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController { return &CartController{Svc: svc} }

func isJSON(c *gin.Context) bool { return c.ContentType() == "application/json" }

// Mutations accept either a JSON body {"item_id": ...} (number or string) or
// a form field; the response mode follows the request mode.
func parseItemID(c *gin.Context) (string, bool) {
	if isJSON(c) {
		var body struct {
			ItemID any `json:"item_id"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			return "", false
		}
		switch v := body.ItemID.(type) {
		case string:
			return v, v != ""
		case float64:
			return strconv.FormatInt(int64(v), 10), true
		}
		return "", false
	}
	v := c.PostForm("item_id")
	return v, v != ""
}

func (h *CartController) done(c *gin.Context, qty, count int) {
	if isJSON(c) {
		c.JSON(http.StatusOK, gin.H{"success": true, "quantity": qty, "cart_count": count})
		return
	}
	c.Redirect(http.StatusFound, "/cart/")
}

// fail answers 4xx JSON for JSON requests and falls back to the cart page for
// form posts; bad cart input is never a 5xx.
func (h *CartController) fail(c *gin.Context, status int, msg string) {
	if isJSON(c) {
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}
	c.Redirect(http.StatusFound, "/cart/")
}

// GET /cart/
func (h *CartController) Show(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	items, subtotal, err := h.Svc.Totals(c.Request.Context(), sid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	fee := services.DeliveryFee(subtotal)
	resp.OK(c, gin.H{
		"items":        items,
		"subtotal":     subtotal,
		"delivery_fee": fee,
		"total":        subtotal + fee,
	})
}

// GET /cart/count/
func (h *CartController) Count(c *gin.Context) {
	count := h.Svc.Count(c.Request.Context(), utils.CurrentSessionID(c))
	c.JSON(http.StatusOK, gin.H{"cart_count": count})
}

// POST /cart/increase/
func (h *CartController) Increase(c *gin.Context) {
	itemID, ok := parseItemID(c)
	if !ok {
		h.fail(c, http.StatusBadRequest, "missing item_id")
		return
	}
	qty, count, err := h.Svc.Increase(c.Request.Context(), utils.CurrentSessionID(c), itemID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidItemID):
			h.fail(c, http.StatusBadRequest, "invalid item_id")
		case errors.Is(err, services.ErrItemNotFound):
			h.fail(c, http.StatusNotFound, "item not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	h.done(c, qty, count)
}

// POST /cart/decrease/
func (h *CartController) Decrease(c *gin.Context) {
	itemID, ok := parseItemID(c)
	if !ok {
		h.fail(c, http.StatusBadRequest, "missing item_id")
		return
	}
	qty, count, err := h.Svc.Decrease(c.Request.Context(), utils.CurrentSessionID(c), itemID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidItemID) {
			h.fail(c, http.StatusBadRequest, "invalid item_id")
			return
		}
		resp.ServerError(c, err)
		return
	}
	h.done(c, qty, count)
}

// POST /cart/remove/
func (h *CartController) Remove(c *gin.Context) {
	itemID, ok := parseItemID(c)
	if !ok {
		h.fail(c, http.StatusBadRequest, "missing item_id")
		return
	}
	count, err := h.Svc.Remove(c.Request.Context(), utils.CurrentSessionID(c), itemID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidItemID) {
			h.fail(c, http.StatusBadRequest, "invalid item_id")
			return
		}
		resp.ServerError(c, err)
		return
	}
	h.done(c, 0, count)
}
