package routes

import (
	"restaurant-backend/configs"
	"restaurant-backend/controllers"
	"restaurant-backend/middlewares"
	"restaurant-backend/pkg/session"
	"restaurant-backend/repository"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store session.Store, cfg *configs.Config) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	contactRepo := repository.NewContactRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	cartSvc := services.NewCartService(store, menuRepo)
	checkoutSvc := services.NewCheckoutService(store, cartSvc, menuRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(cartSvc, checkoutSvc)
	ordersCtrl := controllers.NewOrdersController(checkoutSvc)
	adminCtrl := controllers.NewAdminController(checkoutSvc, menuRepo, orderRepo)
	authCtrl := controllers.NewAuthController(authSvc)
	contactCtrl := controllers.NewContactController(contactRepo)

	// Public
	r.GET("/menu/", menuCtrl.List)

	r.GET("/cart/", cartCtrl.Show)
	r.GET("/cart/count/", cartCtrl.Count)
	r.POST("/cart/increase/", cartCtrl.Increase)
	r.POST("/cart/decrease/", cartCtrl.Decrease)
	r.POST("/cart/remove/", cartCtrl.Remove)

	r.GET("/checkout/", checkoutCtrl.Show)
	r.POST("/checkout/", checkoutCtrl.Submit)
	r.GET("/payment/confirm/", checkoutCtrl.PaymentConfirm)
	r.GET("/place-order/", checkoutCtrl.PlaceOrder)
	r.POST("/place-order/", checkoutCtrl.PlaceOrder)

	r.GET("/orders/", ordersCtrl.List)
	r.GET("/orders/:orderId/", ordersCtrl.Detail)

	r.POST("/contact/", contactCtrl.Submit)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/signup", authCtrl.Signup)
		a.POST("/login", authCtrl.Login)
		a.POST("/admin-login", authCtrl.AdminLogin)
	}

	// Staff workbench over session orders
	staff := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		staff.GET("/admin-dashboard/", adminCtrl.Dashboard)
		staff.GET("/admin-order-status/:orderId/:status/", adminCtrl.UpdateOrderStatus)
	}

	// Persistent catalog/order CRUD (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/menu-items", adminCtrl.ListMenuItems)
		admin.POST("/menu-items", adminCtrl.CreateMenuItem)
		admin.PATCH("/menu-items/:id", adminCtrl.UpdateMenuItem)
		admin.DELETE("/menu-items/:id", adminCtrl.DeleteMenuItem)
		admin.GET("/categories", adminCtrl.ListCategories)
		admin.POST("/categories", adminCtrl.CreateCategory)
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.POST("/orders", adminCtrl.CreateOrder)
	}
}
