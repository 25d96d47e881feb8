package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/realty/internal/agent"
	"github.com/MrJamesThe3rd/realty/internal/commission"
	"github.com/MrJamesThe3rd/realty/internal/config"
	"github.com/MrJamesThe3rd/realty/internal/database"
	realtyHttp "github.com/MrJamesThe3rd/realty/internal/http"
	agentHandler "github.com/MrJamesThe3rd/realty/internal/http/agent"
	txHandler "github.com/MrJamesThe3rd/realty/internal/http/transaction"
	userHandler "github.com/MrJamesThe3rd/realty/internal/http/user"
	"github.com/MrJamesThe3rd/realty/internal/transaction"
	txStore "github.com/MrJamesThe3rd/realty/internal/transaction/store"
	"github.com/MrJamesThe3rd/realty/internal/user"
	userStore "github.com/MrJamesThe3rd/realty/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		transactions = txStore.New(db)
		users        = userStore.New(db)

		userService        = user.NewService(users)
		ratePolicy         = commission.PolicyFromName(cfg.Commission.RatePolicy)
		transactionService = transaction.NewService(transactions, userService, ratePolicy)
		agentService       = agent.NewService(transactions)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		userH        = userHandler.NewHandler(userService)
		agentH       = agentHandler.NewHandler(agentService)
	)

	router := realtyHttp.New(transactionH, userH, agentH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "rate_policy", cfg.Commission.RatePolicy)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
