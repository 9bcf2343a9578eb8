// Package routes defines the API routing configuration. It wires
// repositories, services and handlers together and groups routes by
// authentication requirements.
package routes

import (
	"walletbook/internal/handlers"
	"walletbook/internal/middleware"
	"walletbook/internal/repositories"
	"walletbook/internal/repositories/cache"
	"walletbook/internal/services/auth"
	"walletbook/internal/services/expense"
	"walletbook/internal/services/income"
	"walletbook/internal/services/user"
	"walletbook/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes. cacheSvc may be nil,
// in which case wallet reads always hit the database.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheSvc *cache.Service) {
	walletRepo := repositories.NewWalletRepository(db)
	incomeRepo := repositories.NewIncomeRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// *cache.Service satisfies the service-side cache interfaces, but a
	// typed nil must not leak into a non-nil interface value.
	var walletCache wallet.Cache
	var entryCache income.WalletCache
	if cacheSvc != nil {
		walletCache = cacheSvc
		entryCache = cacheSvc
	}

	walletService := wallet.NewService(walletRepo, walletCache)
	incomeService := income.NewService(incomeRepo, entryCache)
	expenseService := expense.NewService(expenseRepo, entryCache)
	userService := user.NewService(userRepo)
	authService := auth.NewService(userRepo)

	walletHandler := handlers.NewWalletHandler(walletService)
	incomeHandler := handlers.NewIncomeHandler(incomeService, walletService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, walletService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(db, cacheSvc)

	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", userHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	// Protected routes
	protected := api.Use(middleware.Auth())

	protected.Get("/me", userHandler.Me)

	wallets := protected.Group("/wallets")
	wallets.Post("/", walletHandler.CreateWallet)
	wallets.Get("/", walletHandler.ListWallets)
	wallets.Get("/:walletId", walletHandler.GetWallet)
	wallets.Put("/:walletId", walletHandler.UpdateWallet)
	wallets.Delete("/:walletId", walletHandler.DeleteWallet)

	incomes := wallets.Group("/:walletId/incomes")
	incomes.Post("/", incomeHandler.CreateIncome)
	incomes.Get("/", incomeHandler.ListIncomes)
	incomes.Get("/:incomeId", incomeHandler.GetIncome)
	incomes.Put("/:incomeId", incomeHandler.UpdateIncome)
	incomes.Delete("/:incomeId", incomeHandler.DeleteIncome)

	expenses := wallets.Group("/:walletId/expenses")
	expenses.Post("/", expenseHandler.CreateExpense)
	expenses.Get("/", expenseHandler.ListExpenses)
	expenses.Get("/:expenseId", expenseHandler.GetExpense)
	expenses.Put("/:expenseId", expenseHandler.UpdateExpense)
	expenses.Delete("/:expenseId", expenseHandler.DeleteExpense)

	// User account routes; listing is admin-only, per-id reads are
	// admin-or-owner (enforced in the handler).
	protected.Get("/users", middleware.AdminOnly, userHandler.ListUsers)
	protected.Get("/users/:id", userHandler.GetUser)
}
