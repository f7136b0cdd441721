package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"restaurant-backend/entity"
	"restaurant-backend/pkg/session"
	"restaurant-backend/repository"
)

// Flat delivery fee in paise, charged on any non-empty order.
const deliveryFeePaise int64 = 3000

const orderIDPrefix = "ORD"

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrBadStatus     = errors.New("unknown status")
	ErrOrderNotFound = errors.New("order not found")
)

// Staff may move session orders between these states only.
var allowedOrderStatuses = []string{"Pending", "Preparing", "Delivered"}

func DeliveryFee(subtotal int64) int64 {
	if subtotal > 0 {
		return deliveryFeePaise
	}
	return 0
}

type CustomerInfo struct {
	Name         string `json:"name" form:"name"`
	Email        string `json:"email" form:"email"`
	Phone        string `json:"phone" form:"phone"`
	Address      string `json:"address" form:"address"`
	Instructions string `json:"instructions" form:"instructions"`
}

type SessionOrderItem struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url"`
	LineTotal int64  `json:"line_total"`
}

// SessionOrder is what customers and staff actually see. It lives in the
// originating session only; the persistent Order model is not written by this
// flow.
type SessionOrder struct {
	OrderID       string             `json:"order_id"`
	Items         []SessionOrderItem `json:"items"`
	Subtotal      int64              `json:"subtotal"`
	DeliveryFee   int64              `json:"delivery_fee"`
	Total         int64              `json:"total"`
	CreatedAt     string             `json:"created_at"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	PaymentStatus string             `json:"payment_status"`
	Customer      CustomerInfo       `json:"customer"`
}

// PendingOrder bridges the checkout form and the payment-confirmation step
// for online payment methods.
type PendingOrder struct {
	Customer      CustomerInfo `json:"customer"`
	PaymentMethod string       `json:"payment_method"`
}

type CheckoutService struct {
	Store session.Store
	Cart  *CartService
	Menu  *repository.MenuRepository

	// Now is swappable so order-id minting is testable.
	Now func() time.Time
}

func NewCheckoutService(store session.Store, cart *CartService, menu *repository.MenuRepository) *CheckoutService {
	return &CheckoutService{Store: store, Cart: cart, Menu: menu, Now: time.Now}
}

// newOrderID mints a code from the wall clock in milliseconds. Unique under
// serial issuance in one process; two orders in the same millisecond collide
// and nothing checks for that.
func (s *CheckoutService) newOrderID() string {
	return orderIDPrefix + strconv.FormatInt(s.Now().UnixMilli(), 10)
}

// PlaceOrder assembles an order from the current cart, appends it to the
// session order list and clears the cart. online marks the simulated
// online-payment path; no gateway is ever called.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sid string, customer CustomerInfo, paymentMethod string, online bool) (string, error) {
	items, subtotal, err := s.Cart.Totals(ctx, sid)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	fee := DeliveryFee(subtotal)
	orderID := s.newOrderID()

	orderItems := make([]SessionOrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, SessionOrderItem{
			ID:        it.ID,
			Name:      it.Name,
			Category:  it.Category,
			Price:     it.Price,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
			LineTotal: it.LineTotal,
		})
	}

	paymentStatus := "Pending"
	switch {
	case paymentMethod == entity.PaymentMethodCOD:
		paymentStatus = "COD"
	case online:
		paymentStatus = "Paid"
	}

	order := SessionOrder{
		OrderID:       orderID,
		Items:         orderItems,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         subtotal + fee,
		CreatedAt:     s.Now().Format("2006-01-02 15:04"),
		Status:        "Pending",
		PaymentMethod: paymentMethod,
		PaymentStatus: paymentStatus,
		Customer:      customer,
	}

	orders := s.loadOrders(ctx, sid)
	orders = append(orders, order)
	if err := session.SetJSON(ctx, s.Store, sid, session.KeyOrders, orders); err != nil {
		return "", err
	}
	if err := s.Cart.Clear(ctx, sid); err != nil {
		return "", err
	}
	return orderID, nil
}

// StashPending parks the checkout form data while the visitor walks through
// the simulated payment screens.
func (s *CheckoutService) StashPending(ctx context.Context, sid string, pending PendingOrder) error {
	return session.SetJSON(ctx, s.Store, sid, session.KeyPendingOrder, pending)
}

// TakePending pops the stash. An absent stash yields an empty customer and
// COD.
func (s *CheckoutService) TakePending(ctx context.Context, sid string) (PendingOrder, error) {
	pending := PendingOrder{PaymentMethod: entity.PaymentMethodCOD}
	_, err := session.GetJSON(ctx, s.Store, sid, session.KeyPendingOrder, &pending)
	if err != nil {
		return pending, err
	}
	if pending.PaymentMethod == "" {
		pending.PaymentMethod = entity.PaymentMethodCOD
	}
	return pending, s.Store.Delete(ctx, sid, session.KeyPendingOrder)
}

func (s *CheckoutService) PeekPending(ctx context.Context, sid string) (PendingOrder, bool) {
	var pending PendingOrder
	found, err := session.GetJSON(ctx, s.Store, sid, session.KeyPendingOrder, &pending)
	if err != nil || !found {
		return PendingOrder{}, false
	}
	return pending, true
}

func (s *CheckoutService) loadOrders(ctx context.Context, sid string) []SessionOrder {
	orders := []SessionOrder{}
	_, _ = session.GetJSON(ctx, s.Store, sid, session.KeyOrders, &orders)
	return orders
}

// ListOrders returns the session's orders newest first.
func (s *CheckoutService) ListOrders(ctx context.Context, sid string) []SessionOrder {
	orders := s.loadOrders(ctx, sid)
	out := make([]SessionOrder, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		out = append(out, orders[i])
	}
	return out
}

func (s *CheckoutService) FindOrder(ctx context.Context, sid, code string) (*SessionOrder, error) {
	for _, o := range s.loadOrders(ctx, sid) {
		if o.OrderID == code {
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateStatus overwrites the status of the first order matching code. An
// unknown status is an error; an unknown code is a silent no-op.
func (s *CheckoutService) UpdateStatus(ctx context.Context, sid, code, status string) error {
	allowed := false
	for _, st := range allowedOrderStatuses {
		if st == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrBadStatus
	}

	orders := s.loadOrders(ctx, sid)
	for i := range orders {
		if orders[i].OrderID == code {
			orders[i].Status = status
			break
		}
	}
	return session.SetJSON(ctx, s.Store, sid, session.KeyOrders, orders)
}

type DashboardStats struct {
	TotalOrders    int            `json:"totalOrders"`
	PendingOrders  int            `json:"pendingOrders"`
	TotalRevenue   int64          `json:"totalRevenue"`
	TotalMenuItems int64          `json:"totalMenuItems"`
	Orders         []SessionOrder `json:"orders"`
}

// DashboardStats aggregates the staff session's own orders. Orders placed in
// other sessions are invisible here; that is the session-as-database
// trade-off.
func (s *CheckoutService) DashboardStats(ctx context.Context, sid string) (*DashboardStats, error) {
	orders := s.loadOrders(ctx, sid)

	stats := &DashboardStats{TotalOrders: len(orders)}
	for _, o := range orders {
		if o.Status == "Pending" || o.Status == "Placed" {
			stats.PendingOrders++
		}
		stats.TotalRevenue += o.Total
	}

	n, err := s.Menu.Count()
	if err != nil {
		return nil, err
	}
	stats.TotalMenuItems = n
	stats.Orders = s.ListOrders(ctx, sid)
	return stats, nil
}
