package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "goldloan-backend/internal/adapter/http"
	"goldloan-backend/internal/adapter/middleware"
	"goldloan-backend/internal/adapter/repository/mysql"
	"goldloan-backend/internal/config"
	"goldloan-backend/internal/infrastructure/cache"
	"goldloan-backend/internal/infrastructure/db"
	"goldloan-backend/internal/infrastructure/goldapi"
	"goldloan-backend/internal/infrastructure/mailer"
	"goldloan-backend/internal/infrastructure/scheduler"
	"goldloan-backend/internal/usecase/auction"
	branchuc "goldloan-backend/internal/usecase/branch"
	customeruc "goldloan-backend/internal/usecase/customer"
	"goldloan-backend/internal/usecase/master"
	"goldloan-backend/internal/usecase/notify"
	"goldloan-backend/internal/usecase/origination"
	"goldloan-backend/internal/usecase/overdue"
	paymentuc "goldloan-backend/internal/usecase/payment"
	"goldloan-backend/internal/usecase/report"
	schemerequc "goldloan-backend/internal/usecase/schemereq"
	voucheruc "goldloan-backend/internal/usecase/voucher"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// repositories
	loans := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	vouchers := mysql.NewVoucherRepository(gdb)
	schemes := mysql.NewSchemeRepository(gdb)
	rates := mysql.NewGoldRateRepository(gdb)
	requests := mysql.NewSchemeRequestRepository(gdb)
	customers := mysql.NewCustomerRepository(gdb)
	branches := mysql.NewBranchRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	notifications := mysql.NewNotificationRepository(gdb)
	unitOfWork := mysql.NewGormUoW(gdb)

	// collaborators
	var mail notify.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	}
	notifier := notify.NewService(users, notifications, mail)

	var fetcher master.RateFetcher
	if cfg.GoldAPIKey != "" {
		fetcher = goldapi.NewClient(cfg.GoldAPIURL, cfg.GoldAPIKey)
	}

	// usecases
	masterUC := master.NewUsecase(rates, schemes, fetcher)
	schemeReqUC := schemerequc.NewUsecase(requests, notifier)
	originationUC := origination.NewUsecase(loans, customers, schemes, rates, requests, unitOfWork, notifier)
	paymentUC := paymentuc.NewUsecase(loans, payments, unitOfWork)
	auctionUC := auction.NewUsecase(loans, unitOfWork, notifier)
	overdueUC := overdue.NewUsecase(loans, notifier)
	reportUC := report.NewUsecase(loans, payments, vouchers, schemes)
	customerUC := customeruc.NewUsecase(customers, loans)
	voucherUC := voucheruc.NewUsecase(vouchers)
	branchUC := branchuc.NewUsecase(branches)

	// handlers
	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(originationUC)
	paymentH := httpadp.NewPaymentHandler(paymentUC)
	auctionH := httpadp.NewAuctionHandler(auctionUC)
	masterH := httpadp.NewMasterHandler(masterUC)
	schemeReqH := httpadp.NewSchemeRequestHandler(schemeReqUC)
	reportH := httpadp.NewReportHandler(reportUC, cfg.DemandWindowDays)
	voucherH := httpadp.NewVoucherHandler(voucherUC)
	customerH := httpadp.NewCustomerHandler(customerUC)
	branchH := httpadp.NewBranchHandler(branchUC)
	notificationH := httpadp.NewNotificationHandler(notifier)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api", middleware.ActorMiddleware())

	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	api.POST("/loans", loanH.CreateLoan, idemp)
	api.GET("/loans", loanH.ListLoans)
	api.GET("/loans/stats", loanH.DashboardStats)
	api.GET("/loans/:loan_id", loanH.GetLoan)
	api.GET("/loans/:loan_id/payments", paymentH.ListByLoan)

	api.POST("/payments", paymentH.AddPayment, idemp)

	api.GET("/auctions/eligible", auctionH.EligibleLoans)
	api.POST("/auctions/:loan_id", auctionH.RecordSale, middleware.RequireAdmin(), idemp)

	api.POST("/masters/gold-rates", masterH.AddGoldRate, middleware.RequireAdmin())
	api.GET("/masters/gold-rates/latest", masterH.LatestGoldRate)
	api.DELETE("/masters/gold-rates/:id", masterH.DeleteGoldRate, middleware.RequireAdmin())
	api.POST("/masters/schemes", masterH.AddScheme, middleware.RequireAdmin())
	api.GET("/masters/schemes", masterH.ListSchemes)
	api.GET("/masters/schemes/:id", masterH.GetScheme)
	api.PUT("/masters/schemes/:id", masterH.UpdateScheme, middleware.RequireAdmin())
	api.DELETE("/masters/schemes/:id", masterH.DeactivateScheme, middleware.RequireAdmin())

	api.POST("/scheme-requests", schemeReqH.Create)
	api.GET("/scheme-requests", schemeReqH.List)
	api.GET("/scheme-requests/:request_id", schemeReqH.Get)
	api.PUT("/scheme-requests/:request_id/review", schemeReqH.Review, middleware.RequireAdmin())

	api.GET("/reports/day-book", reportH.DayBook)
	api.GET("/reports/financial-stats", reportH.FinancialStats)
	api.GET("/reports/demand-list", reportH.DemandList)
	api.GET("/reports/business", reportH.BusinessReport, middleware.RequireAdmin())

	api.POST("/vouchers", voucherH.Create)
	api.GET("/vouchers", voucherH.List)
	api.GET("/vouchers/:voucher_id", voucherH.Get)
	api.PUT("/vouchers/:voucher_id", voucherH.Update)
	api.DELETE("/vouchers/:voucher_id", voucherH.Delete, middleware.RequireAdmin())

	api.POST("/customers", customerH.Create)
	api.GET("/customers", customerH.List)
	api.GET("/customers/:customer_id", customerH.Get)
	api.PUT("/customers/:customer_id", customerH.Update)
	api.DELETE("/customers/:customer_id", customerH.Delete, middleware.RequireAdmin())

	api.POST("/branches", branchH.Create, middleware.RequireAdmin())
	api.GET("/branches", branchH.List)
	api.GET("/branches/:branch_id", branchH.Get)
	api.PUT("/branches/:branch_id", branchH.Update, middleware.RequireAdmin())
	api.DELETE("/branches/:branch_id", branchH.Delete, middleware.RequireAdmin())

	api.GET("/notifications", notificationH.List)
	api.PUT("/notifications/:id/read", notificationH.MarkRead)

	// background jobs
	sched := scheduler.New(overdueUC, masterUC)
	if err := sched.Start(cfg.OverdueSweepSpec, cfg.RateRefreshSpec); err != nil {
		log.Fatal(err)
	}
	defer sched.Stop()

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
