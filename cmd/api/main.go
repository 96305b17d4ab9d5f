package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "lendwise/internal/adapter/http"
	appmw "lendwise/internal/adapter/middleware"
	"lendwise/internal/adapter/repository/mysql"
	"lendwise/internal/config"
	"lendwise/internal/domain/investment"
	"lendwise/internal/domain/ledger"
	"lendwise/internal/domain/loan"
	"lendwise/internal/domain/user"
	"lendwise/internal/infrastructure/cache"
	"lendwise/internal/infrastructure/db"
	"lendwise/internal/logging"
	investmentUC "lendwise/internal/usecase/investment"
	loanUC "lendwise/internal/usecase/loan"
	userUC "lendwise/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg)

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&user.User{},
		&loan.LoanRequest{},
		&investment.Investment{},
		&ledger.Transaction{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := mysql.NewUserRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	investmentRepo := mysql.NewInvestmentRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	userHandler := httpadp.NewUserHandler(userUC.NewUsecase(userRepo))
	loanHandler := httpadp.NewLoanHandler(loanUC.NewUsecase(loanRepo, guow))
	investmentHandler := httpadp.NewInvestmentHandler(investmentUC.NewUsecase(investmentRepo, guow))
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	// Registration happens before the caller has an actor id, so it stays
	// outside the idempotency group.
	e.POST("/api/users", userHandler.Register)

	api := e.Group("/api", appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	api.GET("/users/:user_id", userHandler.Get)
	api.PUT("/users/:user_id/financials", userHandler.UpdateFinancials)

	api.POST("/loans", loanHandler.Create)
	api.GET("/loans/explore", loanHandler.Explore)
	api.GET("/loans/recommended", loanHandler.Recommended)
	api.GET("/loans/my-loans/:user_id", loanHandler.MyLoans)
	api.GET("/loans/:loan_id", loanHandler.Get)
	api.POST("/loans/:loan_id/certificate", loanHandler.SubmitCertificate)

	api.POST("/investments", investmentHandler.Fund)
	api.GET("/investments/my-portfolio/:user_id", investmentHandler.Portfolio)

	addr := ":" + cfg.AppPort
	logger.Info("listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
