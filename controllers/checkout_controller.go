package controllers

import (
	"errors"
	"net/http"
	"strings"

	"restaurant-backend/entity"
	"restaurant-backend/pkg/resp"
	"restaurant-backend/services"
	"restaurant-backend/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Cart *services.CartService
	Svc  *services.CheckoutService
}

func NewCheckoutController(cart *services.CartService, svc *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Cart: cart, Svc: svc}
}

type checkoutRequest struct {
	Name          string `json:"name" form:"name"`
	Email         string `json:"email" form:"email"`
	Phone         string `json:"phone" form:"phone"`
	Address       string `json:"address" form:"address"`
	Instructions  string `json:"instructions" form:"instructions"`
	PaymentMethod string `json:"paymentMethod" form:"paymentMethod"`
}

// GET /checkout/ — the cart recap shown above the customer form.
func (h *CheckoutController) Show(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	items, subtotal, err := h.Cart.Totals(c.Request.Context(), sid)
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

// POST /checkout/ — COD places the order right away; online methods park the
// form data and send the visitor to the payment-confirmation step.
func (h *CheckoutController) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	sid := utils.CurrentSessionID(c)

	items, _, err := h.Cart.Totals(ctx, sid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(items) == 0 {
		c.Redirect(http.StatusFound, "/cart/")
		return
	}

	var req checkoutRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	method := req.PaymentMethod
	if method == "" {
		method = entity.PaymentMethodCOD
	}

	customer := services.CustomerInfo{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		Instructions: strings.TrimSpace(req.Instructions),
	}

	if method == entity.PaymentMethodCOD {
		orderID, err := h.Svc.PlaceOrder(ctx, sid, customer, method, false)
		if errors.Is(err, services.ErrEmptyCart) {
			c.Redirect(http.StatusFound, "/cart/")
			return
		}
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		c.Redirect(http.StatusFound, "/orders/"+orderID+"/")
		return
	}

	pending := services.PendingOrder{Customer: customer, PaymentMethod: method}
	if err := h.Svc.StashPending(ctx, sid, pending); err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/payment/confirm/")
}

// GET /payment/confirm/ — data for the simulated payment screen. No gateway
// and no OTP check happen server-side.
func (h *CheckoutController) PaymentConfirm(c *gin.Context) {
	ctx := c.Request.Context()
	sid := utils.CurrentSessionID(c)

	items, subtotal, err := h.Cart.Totals(ctx, sid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	pending, _ := h.Svc.PeekPending(ctx, sid)
	fee := services.DeliveryFee(subtotal)
	resp.OK(c, gin.H{
		"pending":      pending,
		"items":        items,
		"subtotal":     subtotal,
		"delivery_fee": fee,
		"total":        subtotal + fee,
	})
}

// GET|POST /place-order/ — finalizes the online-payment order from the
// pending stash. Cart edits made between the two phases are honored: the
// order is built from the cart as it is now.
func (h *CheckoutController) PlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()
	sid := utils.CurrentSessionID(c)

	items, _, err := h.Cart.Totals(ctx, sid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(items) == 0 {
		c.Redirect(http.StatusFound, "/cart/")
		return
	}

	pending, err := h.Svc.TakePending(ctx, sid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	orderID, err := h.Svc.PlaceOrder(ctx, sid, pending.Customer, pending.PaymentMethod, true)
	if errors.Is(err, services.ErrEmptyCart) {
		c.Redirect(http.StatusFound, "/cart/")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/orders/"+orderID+"/")
}
