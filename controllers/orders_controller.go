package controllers

import (
	"errors"
	"net/http"

	"restaurant-backend/pkg/resp"
	"restaurant-backend/services"
	"restaurant-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrdersController struct{ Svc *services.CheckoutService }

func NewOrdersController(svc *services.CheckoutService) *OrdersController {
	return &OrdersController{Svc: svc}
}

// GET /orders/ — this session's orders, newest first.
func (h *OrdersController) List(c *gin.Context) {
	orders := h.Svc.ListOrders(c.Request.Context(), utils.CurrentSessionID(c))
	resp.OK(c, gin.H{"orders": orders})
}

// GET /orders/:orderId/
func (h *OrdersController) Detail(c *gin.Context) {
	code := c.Param("orderId")
	order, err := h.Svc.FindOrder(c.Request.Context(), utils.CurrentSessionID(c), code)
	if errors.Is(err, services.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found", "order_id": code})
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}
