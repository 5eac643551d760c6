package router

import (
	"time"

	"github.com/zorguiala/domdom/internal/authz"
	"github.com/zorguiala/domdom/internal/config"
	"github.com/zorguiala/domdom/internal/handler"
	"github.com/zorguiala/domdom/internal/middleware"
	"github.com/zorguiala/domdom/internal/repository"
	"github.com/zorguiala/domdom/internal/service"
	"github.com/zorguiala/domdom/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	bomRepo := repository.NewBomRepository(db)
	productionRepo := repository.NewProductionOrderRepository(db)
	clientRepo := repository.NewClientRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	commercialRepo := repository.NewCommercialRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo)
	inventorySvc := service.NewInventoryService(productRepo, movementRepo, dispatcher, cfg.AlertEmail)
	expenseSvc := service.NewExpenseService(expenseRepo)
	bomSvc := service.NewBomService(bomRepo, productRepo)
	productionSvc := service.NewProductionService(productionRepo, productRepo, bomRepo, movementRepo)
	clientSvc := service.NewClientService(clientRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	commercialSvc := service.NewCommercialService(commercialRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo, movementRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, supplierRepo, productRepo, movementRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	bomH := handler.NewBomHandler(bomSvc)
	productionH := handler.NewProductionHandler(productionSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	commercialsH := handler.NewCommercialsHandler(commercialSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)

		readProducts := middleware.Authorize(authz.ActionRead, authz.ResourceProducts)
		writeProducts := middleware.Authorize(authz.ActionWrite, authz.ResourceProducts)
		v1.GET("/products", readProducts, productsH.List)
		v1.GET("/products/:id", readProducts, productsH.GetByID)
		v1.POST("/products", writeProducts, productsH.Create)
		v1.PUT("/products/:id", writeProducts, productsH.Update)
		v1.DELETE("/products/:id", writeProducts, productsH.Delete)

		readInv := middleware.Authorize(authz.ActionRead, authz.ResourceInventory)
		writeInv := middleware.Authorize(authz.ActionWrite, authz.ResourceInventory)
		v1.PATCH("/products/:id/stock", writeInv, inventoryH.AdjustStock)
		v1.GET("/inventory/movements", readInv, inventoryH.ListMovements)
		v1.GET("/inventory/alerts", readInv, inventoryH.ListAlerts)

		readExp := middleware.Authorize(authz.ActionRead, authz.ResourceExpenses)
		writeExp := middleware.Authorize(authz.ActionWrite, authz.ResourceExpenses)
		v1.GET("/expenses", readExp, expensesH.List)
		v1.GET("/expenses/:id", readExp, expensesH.GetByID)
		v1.GET("/expenses/:id/payments", readExp, expensesH.ListPayments)
		v1.POST("/expenses", writeExp, expensesH.Create)
		v1.POST("/expenses/:id/payments", writeExp, expensesH.RecordPayment)

		readProd := middleware.Authorize(authz.ActionRead, authz.ResourceProduction)
		writeProd := middleware.Authorize(authz.ActionWrite, authz.ResourceProduction)
		v1.GET("/production/bom", readProd, bomH.List)
		v1.GET("/production/bom/:id", readProd, bomH.GetByID)
		v1.POST("/production/bom", writeProd, bomH.Create)
		v1.PUT("/production/bom/:id", writeProd, bomH.Update)
		v1.DELETE("/production/bom/:id", writeProd, bomH.Delete)
		v1.GET("/production/orders", readProd, productionH.List)
		v1.GET("/production/orders/:id", readProd, productionH.GetByID)
		v1.POST("/production/orders", writeProd, productionH.Create)
		v1.PUT("/production/orders/:id", writeProd, productionH.Update)
		v1.DELETE("/production/orders/:id", writeProd, productionH.Delete)

		readContacts := middleware.Authorize(authz.ActionRead, authz.ResourceContacts)
		writeContacts := middleware.Authorize(authz.ActionWrite, authz.ResourceContacts)
		mountContacts(v1, "/clients", clientsH, readContacts, writeContacts)
		mountContacts(v1, "/suppliers", suppliersH, readContacts, writeContacts)
		mountContacts(v1, "/commercials", commercialsH, readContacts, writeContacts)

		readSales := middleware.Authorize(authz.ActionRead, authz.ResourceSales)
		writeSales := middleware.Authorize(authz.ActionWrite, authz.ResourceSales)
		v1.GET("/sales", readSales, salesH.List)
		v1.GET("/sales/:id", readSales, salesH.GetByID)
		v1.POST("/sales", writeSales, salesH.Create)
		v1.DELETE("/sales/:id", writeSales, salesH.Cancel)

		readPur := middleware.Authorize(authz.ActionRead, authz.ResourcePurchases)
		writePur := middleware.Authorize(authz.ActionWrite, authz.ResourcePurchases)
		v1.GET("/purchases", readPur, purchasesH.List)
		v1.GET("/purchases/:id", readPur, purchasesH.GetByID)
		v1.POST("/purchases", writePur, purchasesH.Create)
		v1.PATCH("/purchases/:id/status", writePur, purchasesH.UpdateStatus)

		readEmp := middleware.Authorize(authz.ActionRead, authz.ResourceEmployees)
		writeEmp := middleware.Authorize(authz.ActionWrite, authz.ResourceEmployees)
		v1.GET("/employees", readEmp, employeesH.List)
		v1.GET("/employees/:id", readEmp, employeesH.GetByID)
		v1.POST("/employees", writeEmp, employeesH.Create)
		v1.PUT("/employees/:id", writeEmp, employeesH.Update)
		v1.DELETE("/employees/:id", writeEmp, employeesH.Delete)
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// mountContacts registers the uniform CRUD surface shared by the three
// contact tables.
func mountContacts[T repository.Contact](g *gin.RouterGroup, prefix string, h *handler.ContactsHandler[T], read, write gin.HandlerFunc) {
	g.GET(prefix, read, h.List)
	g.GET(prefix+"/:id", read, h.GetByID)
	g.POST(prefix, write, h.Create)
	g.PUT(prefix+"/:id", write, h.Update)
	g.DELETE(prefix+"/:id", write, h.Delete)
}
