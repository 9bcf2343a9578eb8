// Command seed populates the database with a demo account and a set of
// fake wallets, incomes and expenses. All data goes through the real
// services, so seeded wallets obey the balance invariant.
package main

import (
	"context"
	"log"

	"walletbook/internal/config"
	"walletbook/internal/models"
	"walletbook/internal/repositories"
	"walletbook/internal/services/expense"
	"walletbook/internal/services/income"
	"walletbook/internal/services/user"
	"walletbook/internal/services/wallet"

	"github.com/brianvoe/gofakeit/v6"
)

func main() {
	config.LoadEnv()

	db, err := repositories.Connect()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	userService := user.NewService(repositories.NewUserRepository(db))
	walletService := wallet.NewService(repositories.NewWalletRepository(db), nil)
	incomeService := income.NewService(repositories.NewIncomeRepository(db), nil)
	expenseService := expense.NewService(repositories.NewExpenseRepository(db), nil)

	email := config.GetEnv("SEED_EMAIL", "demo@walletbook.local")
	password := config.GetEnv("SEED_PASSWORD", "demo-password-1")

	demo, err := userService.Register(models.CreateUserInput{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     email,
		Password:  password,
		Birthday:  gofakeit.Date().Format("2006-01-02"),
	})
	if err != nil {
		log.Fatalf("failed to create demo user: %v", err)
	}
	log.Printf("demo user created: %s (password %q)", demo.Email, password)

	ctx := context.Background()
	numWallets := config.GetIntEnv("SEED_WALLETS", 3)

	for i := 0; i < numWallets; i++ {
		w, err := walletService.Create(ctx, demo.ID, wallet.Input{
			Name:            gofakeit.NounAbstract(),
			Description:     gofakeit.Sentence(6),
			StartingBalance: gofakeit.Price(100, 5000),
		})
		if err != nil {
			log.Fatalf("failed to create wallet: %v", err)
		}

		for j := 0; j < gofakeit.Number(2, 6); j++ {
			_, err := incomeService.Create(ctx, w.ID, demo.ID, income.Input{
				Name:   gofakeit.JobTitle(),
				Type:   "salary",
				Amount: gofakeit.Price(50, 2000),
			})
			if err != nil {
				log.Fatalf("failed to create income: %v", err)
			}
		}

		for j := 0; j < gofakeit.Number(2, 8); j++ {
			_, err := expenseService.Create(ctx, w.ID, demo.ID, expense.Input{
				Name:   gofakeit.ProductName(),
				Type:   "purchase",
				Amount: gofakeit.Price(5, 400),
			})
			if err != nil {
				log.Fatalf("failed to create expense: %v", err)
			}
		}

		fresh, err := walletService.Get(ctx, w.ID)
		if err != nil {
			log.Fatalf("failed to reload wallet: %v", err)
		}
		log.Printf("wallet %q seeded: starting %.2f, current %.2f",
			fresh.Name, fresh.StartingBalance, fresh.CurrentBalance)
	}
}
