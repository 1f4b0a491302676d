package container

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"storefront-backend/internal/config"
	addresshandler "storefront-backend/internal/domains/address/handler"
	addressrepo "storefront-backend/internal/domains/address/repository"
	addressservice "storefront-backend/internal/domains/address/service"
	carthandler "storefront-backend/internal/domains/cart/handler"
	cartrepo "storefront-backend/internal/domains/cart/repository"
	cartservice "storefront-backend/internal/domains/cart/service"
	cataloghandler "storefront-backend/internal/domains/catalog/handler"
	catalogrepo "storefront-backend/internal/domains/catalog/repository"
	catalogservice "storefront-backend/internal/domains/catalog/service"
	orderhandler "storefront-backend/internal/domains/order/handler"
	orderrepo "storefront-backend/internal/domains/order/repository"
	orderservice "storefront-backend/internal/domains/order/service"
	phonehandler "storefront-backend/internal/domains/phone/handler"
	phonerepo "storefront-backend/internal/domains/phone/repository"
	phoneservice "storefront-backend/internal/domains/phone/service"
	promotionhandler "storefront-backend/internal/domains/promotion/handler"
	promotionrepo "storefront-backend/internal/domains/promotion/repository"
	promotionservice "storefront-backend/internal/domains/promotion/service"
	userhandler "storefront-backend/internal/domains/user/handler"
	userrepo "storefront-backend/internal/domains/user/repository"
	userservice "storefront-backend/internal/domains/user/service"
	"storefront-backend/internal/infrastructure/cache"
	"storefront-backend/internal/infrastructure/database"
	"storefront-backend/internal/infrastructure/sms"
	"storefront-backend/internal/infrastructure/storage"
	"storefront-backend/pkg/jwt"
)

// Container wires infrastructure, services and handlers for the API process.
type Container struct {
	Config *config.Config

	DB          *database.PostgresDB
	Redis       *cache.RedisClient
	Storage     *storage.MinIOStorage
	AsynqClient *asynq.Client
	JWTManager  *jwt.Manager

	// Services shared with the worker process.
	CatalogService   catalogservice.ServiceInterface
	PromotionService promotionservice.ServiceInterface
	CartService      cartservice.ServiceInterface
	OrderService     orderservice.ServiceInterface

	AuthHandler      *userhandler.AuthHandler
	PhoneHandler     *phonehandler.PhoneHandler
	AddressHandler   *addresshandler.AddressHandler
	CatalogHandler   *cataloghandler.CatalogHandler
	PromotionHandler *promotionhandler.PromotionHandler
	CartHandler      *carthandler.CartHandler
	OrderHandler     *orderhandler.OrderHandler
}

// New connects infrastructure and builds the full dependency graph.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	c.Redis = cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("redis: %w", err)
	}

	store, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("storage: %w", err)
	}
	c.Storage = store

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	smsSender := sms.NewMockSMSService()

	pool := c.DB.Pool

	catalogRepo := catalogrepo.NewPostgresRepository(pool)
	promotionRepo := promotionrepo.NewPostgresRepository(pool)
	cartRepo := cartrepo.NewPostgresRepository(pool)
	orderRepo := orderrepo.NewPostgresRepository(pool)
	addressRepo := addressrepo.NewPostgresRepository(pool)
	phoneRepo := phonerepo.NewPostgresRepository(pool)
	userRepo := userrepo.NewPostgresRepository(pool)

	c.CatalogService = catalogservice.NewCatalogService(catalogRepo, c.Redis.Client, c.Storage)
	c.PromotionService = promotionservice.NewPromotionService(promotionRepo)
	c.CartService = cartservice.NewCartService(cartRepo, catalogRepo, c.PromotionService)
	c.OrderService = orderservice.NewOrderService(
		pool, orderRepo, cartRepo, catalogRepo, addressRepo,
		c.PromotionService, promotionRepo, c.AsynqClient,
	)

	authService := userservice.NewAuthService(
		userRepo, c.Redis.Client, smsSender, c.JWTManager,
		cfg.OTP.TTLSeconds, cfg.OTP.MaxAttempts,
	)
	phoneService := phoneservice.NewPhoneService(phoneRepo)
	addressService := addressservice.NewAddressService(addressRepo)

	c.AuthHandler = userhandler.NewAuthHandler(authService)
	c.PhoneHandler = phonehandler.NewPhoneHandler(phoneService)
	c.AddressHandler = addresshandler.NewAddressHandler(addressService)
	c.CatalogHandler = cataloghandler.NewCatalogHandler(c.CatalogService)
	c.PromotionHandler = promotionhandler.NewPromotionHandler(c.PromotionService)
	c.CartHandler = carthandler.NewCartHandler(c.CartService)
	c.OrderHandler = orderhandler.NewOrderHandler(c.OrderService)

	return c, nil
}

// Cleanup closes all connections in reverse dependency order.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		_ = c.AsynqClient.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
