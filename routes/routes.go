package routes

import (
	"github.com/Orbe-ERP/pos-backend/configs"
	"github.com/Orbe-ERP/pos-backend/controllers"
	"github.com/Orbe-ERP/pos-backend/middlewares"
	"github.com/Orbe-ERP/pos-backend/repository"
	"github.com/Orbe-ERP/pos-backend/services"
	"github.com/Orbe-ERP/pos-backend/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settleRepo := repository.NewSettlementRepository(db)
	feeRepo := repository.NewPaymentConfigRepository(db)

	// Services — one lock table shared by everything that mutates a table
	locks := services.NewTableLocks()
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	feeSvc := services.NewPaymentConfigService(feeRepo)
	orderSvc := services.NewOrderService(db, orderRepo, hub, locks)
	settleSvc := services.NewSettlementService(db, orderRepo, settleRepo, feeSvc, locks)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(db)
	kitchenCtrl := controllers.NewKitchenController(db, orderRepo)
	catalogCtrl := controllers.NewCatalogController(db)
	orderCtrl := controllers.NewOrderController(orderSvc, settleSvc)
	feeCtrl := controllers.NewPaymentConfigController(feeSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Restaurants (admin)
	admin := r.Group("/restaurants", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("", restCtrl.Create)
		admin.GET("/:id", restCtrl.Detail)
	}

	// Back-office reference data (admin)
	ref := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		ref.POST("/kitchens", kitchenCtrl.Create)
		ref.PATCH("/kitchens/:id", kitchenCtrl.Update)
		ref.DELETE("/kitchens/:id", kitchenCtrl.Delete)
		ref.POST("/tables", catalogCtrl.CreateTable)
		ref.POST("/categories", catalogCtrl.CreateCategory)
		ref.POST("/products", catalogCtrl.CreateProduct)
		ref.POST("/modifiers", catalogCtrl.CreateModifier)

		ref.POST("/payment-config", feeCtrl.Upsert)
		ref.DELETE("/payment-config", feeCtrl.Delete)
	}

	// Reads available to every staff role
	staff := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		staff.GET("/kitchens", kitchenCtrl.List)
		staff.GET("/tables", catalogCtrl.ListTables)
		staff.GET("/categories", catalogCtrl.ListCategories)
		staff.GET("/products", catalogCtrl.ListProducts)
		staff.GET("/modifiers", catalogCtrl.ListModifiers)
		staff.GET("/payment-config", feeCtrl.List)

		// Orders
		staff.POST("/orders", orderCtrl.Create)
		staff.POST("/order-lines", orderCtrl.AppendLines)
		staff.GET("/orders", orderCtrl.List)
		staff.GET("/orders/table/:tableId", orderCtrl.ListForTable)
		staff.GET("/orders/kitchen-queue", orderCtrl.KitchenQueue)
		staff.PATCH("/order-lines/status", orderCtrl.AdvanceLines)
		staff.PATCH("/order-lines/quantity", orderCtrl.UpdateLineQuantity)
		staff.PATCH("/orders/payment-method", orderCtrl.SetPaymentMethod)
		staff.POST("/orders/conclude", orderCtrl.Conclude)
		staff.GET("/orders/summary/:identifier", orderCtrl.Summary)
	}

	// Realtime channel per restaurant
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
