package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant-backend/entity"
	"restaurant-backend/pkg/resp"
	"restaurant-backend/repository"
	"restaurant-backend/services"
	"restaurant-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController covers the staff workbench over session orders plus the
// persistent catalog/order CRUD.
type AdminController struct {
	Checkout *services.CheckoutService
	Menu     *repository.MenuRepository
	Orders   *repository.OrderRepository
}

func NewAdminController(checkout *services.CheckoutService, menu *repository.MenuRepository, orders *repository.OrderRepository) *AdminController {
	return &AdminController{Checkout: checkout, Menu: menu, Orders: orders}
}

// GET /admin-dashboard/ — aggregates over the orders held by the staff
// member's own session, which is all this deployment can see.
func (h *AdminController) Dashboard(c *gin.Context) {
	stats, err := h.Checkout.DashboardStats(c.Request.Context(), utils.CurrentSessionID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /admin-order-status/:orderId/:status/ — a status outside the allowed
// set is a 404, as if the route did not exist; an unknown order id is
// silently ignored.
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	code := c.Param("orderId")
	status := c.Param("status")

	err := h.Checkout.UpdateStatus(c.Request.Context(), utils.CurrentSessionID(c), code, status)
	if errors.Is(err, services.ErrBadStatus) {
		resp.NotFound(c, "invalid status")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin-dashboard/")
}

// ----- catalog CRUD -----

type menuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       int64   `json:"price" binding:"min=0"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	IsPopular   bool    `json:"isPopular"`
	IsAvailable *bool   `json:"isAvailable"`
	Image       string  `json:"image"`
	ImageURL    string  `json:"imageUrl"`
}

// GET /admin/menu-items
func (h *AdminController) ListMenuItems(c *gin.Context) {
	items, err := h.Menu.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/menu-items
func (h *AdminController) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !entity.ValidMenuCategory(req.Category) {
		resp.BadRequest(c, "unknown category")
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	item := entity.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Rating:      req.Rating,
		IsPopular:   req.IsPopular,
		IsAvailable: available,
		Image:       req.Image,
		ImageURL:    req.ImageURL,
	}
	if err := h.Menu.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

type menuItemPatch struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *int64   `json:"price"`
	Description *string  `json:"description"`
	Rating      *float64 `json:"rating"`
	IsPopular   *bool    `json:"isPopular"`
	IsAvailable *bool    `json:"isAvailable"`
	Image       *string  `json:"image"`
	ImageURL    *string  `json:"imageUrl"`
}

// PATCH /admin/menu-items/:id
func (h *AdminController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req menuItemPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Category != nil && !entity.ValidMenuCategory(*req.Category) {
		resp.BadRequest(c, "unknown category")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.IsPopular != nil {
		updates["is_popular"] = *req.IsPopular
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	item, err := h.Menu.Update(uint(id), updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "menu item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu-items/:id
func (h *AdminController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	err = h.Menu.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "menu item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /admin/categories
func (h *AdminController) ListCategories(c *gin.Context) {
	cats, err := h.Menu.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

// POST /admin/categories
func (h *AdminController) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := entity.Category{Name: req.Name}
	if err := h.Menu.CreateCategory(&cat); err != nil {
		resp.BadRequest(c, "category already exists")
		return
	}
	resp.Created(c, cat)
}

// ----- persistent orders (system of record; not used by the customer flow) -----

type adminOrderItemIn struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Price    int64  `json:"price" binding:"min=0"`
	Quantity int    `json:"quantity" binding:"min=1"`
}

type adminOrderRequest struct {
	CustomerName  string             `json:"customerName" binding:"required"`
	CustomerEmail string             `json:"customerEmail"`
	CustomerPhone string             `json:"customerPhone"`
	Address       string             `json:"address"`
	Instructions  string             `json:"instructions"`
	PaymentMethod string             `json:"paymentMethod" binding:"required"`
	Items         []adminOrderItemIn `json:"items" binding:"required,dive"`
}

// POST /admin/orders
func (h *AdminController) CreateOrder(c *gin.Context) {
	var req adminOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !entity.ValidPaymentMethod(req.PaymentMethod) {
		resp.BadRequest(c, "unknown payment method")
		return
	}
	if len(req.Items) == 0 {
		resp.BadRequest(c, "items is required")
		return
	}

	order := entity.Order{
		OrderID:       "ORD" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		Instructions:  req.Instructions,
		PaymentMethod: req.PaymentMethod,
		DeliveryFee:   3000,
	}
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.OrderItem{
			Name:     it.Name,
			Category: it.Category,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	if err := h.Orders.CreateWithItems(&order, items); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /admin/orders
func (h *AdminController) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := h.Orders.List(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}
