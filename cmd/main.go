package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	addressapp "github.com/muhammadheryan/storefront/application/address"
	cartapp "github.com/muhammadheryan/storefront/application/cart"
	checkoutapp "github.com/muhammadheryan/storefront/application/checkout"
	contactapp "github.com/muhammadheryan/storefront/application/contact"
	identityapp "github.com/muhammadheryan/storefront/application/identity"
	orderapp "github.com/muhammadheryan/storefront/application/order"
	paymentapp "github.com/muhammadheryan/storefront/application/payment"
	productapp "github.com/muhammadheryan/storefront/application/product"
	userapp "github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/cmd/config"
	redisclient "github.com/muhammadheryan/storefront/cmd/redis"
	_ "github.com/muhammadheryan/storefront/docs"
	addressRepo "github.com/muhammadheryan/storefront/repository/address"
	cartRepo "github.com/muhammadheryan/storefront/repository/cart"
	customerRepo "github.com/muhammadheryan/storefront/repository/customer"
	inventoryRepo "github.com/muhammadheryan/storefront/repository/inventory"
	orderRepo "github.com/muhammadheryan/storefront/repository/order"
	paymentRepo "github.com/muhammadheryan/storefront/repository/payment"
	productRepo "github.com/muhammadheryan/storefront/repository/product"
	redisRepo "github.com/muhammadheryan/storefront/repository/redis"
	txRepo "github.com/muhammadheryan/storefront/repository/tx"
	userRepo "github.com/muhammadheryan/storefront/repository/user"
	"github.com/muhammadheryan/storefront/thirdparty/jwks"
	"github.com/muhammadheryan/storefront/thirdparty/payfast"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/transport"
	"github.com/muhammadheryan/storefront/utils/logger"
	validatorx "github.com/muhammadheryan/storefront/utils/validator"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title STOREFRONT API
// @version 1.0
// @description Storefront API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("auth_provider", cfg.Auth.Provider))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Redis is optional: guests fall back to unpersisted ids without it
	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Warn("redis unavailable, guest sessions disabled", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var publisher rabbitmq.NotificationPublisher = rabbitmq.NopPublisher{}
	if p, err := rabbitmq.NewPublisher(cfg.RabbitMQ); err != nil {
		logger.Warn("rabbitmq unavailable, emails disabled", zap.Error(err))
	} else {
		publisher = p
		defer p.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	CartRepo := cartRepo.NewCartRepository(db)
	CustomerRepo := customerRepo.NewCustomerRepository(db)
	AddressRepo := addressRepo.NewAddressRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	PaymentRepo := paymentRepo.NewPaymentRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize application layers
	var (
		UserApp  userapp.UserApp
		verifier identityapp.TokenVerifier
	)
	switch cfg.Auth.Provider {
	case "jwks":
		jwksVerifier, err := jwks.New(ctx, cfg.Auth, &http.Client{Timeout: 5 * time.Second})
		if err != nil {
			logger.Fatal("err init jwks verifier", zap.Error(err))
		}
		verifier = jwksVerifier
	default:
		UserApp = userapp.NewUserApp(cfg, UserRepo, RedisRepo)
		verifier = UserApp
	}

	rh := &transport.RestHandler{
		Config:      cfg,
		Health:      db,
		IdentityApp: identityapp.NewIdentityApp(cfg, verifier, RedisRepo),
		UserApp:     UserApp,
		CartApp:     cartapp.NewCartApp(cfg, TxRepo, CartRepo),
		CheckoutApp: checkoutapp.NewCheckoutApp(cfg, TxRepo, CartRepo, CustomerRepo, AddressRepo, OrderRepo, InventoryRepo, publisher),
		PaymentApp:  paymentapp.NewPaymentApp(payfast.New(cfg.PayFast), TxRepo, OrderRepo, PaymentRepo),
		AddressApp:  addressapp.NewAddressApp(AddressRepo),
		ProductApp:  productapp.NewProductApp(ProductRepo),
		ContactApp:  contactapp.NewContactApp(cfg, CustomerRepo, publisher),
		OrderApp:    orderapp.NewOrderApp(OrderRepo),
	}

	httpTransport := otelhttp.NewHandler(transport.NewTransport(rh), "storefront")

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
