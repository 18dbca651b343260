package routes

import (
	"context"
	"log"
	"net/http"
	"strconv"

	_ "donations_core/docs"
	"donations_core/internal/adapter/cache"
	"donations_core/internal/adapter/http/handlers"
	"donations_core/internal/adapter/persistence/repository"
	"donations_core/internal/domain/entities"
	"donations_core/internal/infrastructure/config"
	cacheinfra "donations_core/internal/infrastructure/cache"
	"donations_core/internal/infrastructure/database"
	"donations_core/internal/infrastructure/events"
	"donations_core/internal/infrastructure/payments"
	"donations_core/internal/usecase"
	"donations_core/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const cacheKeyPrefix = "donations:"

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(context.Background(), cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg config.Config) {
	ddb := database.ConnectDynamoDB(ctx)

	donationRepo := repository.NewDonationDynamoRepository(ddb)
	campaignRepo := repository.NewCampaignDynamoRepository(ddb)
	historyRepo := repository.NewEventHistoryDynamoRepository(ddb)

	ttlCache := newCache(ctx, cfg)

	campaignUseCase := usecase.NewCampaignUseCase(campaignRepo, cfg.DefaultCurrency)
	historyRecorder := usecase.NewEventHistoryRecorder(historyRepo)

	bus := events.NewBus()
	bus.Subscribe("receipt-logger", events.ReceiptLogger)
	bus.Subscribe("campaign-totals", campaignUseCase.OnDonationEvent, entities.DonationEventCompleted, entities.DonationEventRefunded)

	lifecycle := usecase.NewDonationLifecycle(donationRepo, historyRecorder, bus)
	validator := usecase.NewIntentValidator(campaignRepo, cfg.DefaultCurrency)

	var (
		gateways []interfaces.IPaymentGateway
		sources  []interfaces.IWebhookSource
	)

	if cfg.StripeEnabled() {
		stripeClient := payments.NewStripeClient(cfg.StripeSecretKey, cfg.ProviderTimeout)
		gateways = append(gateways, usecase.NewStripeGateway(stripeClient, donationRepo, lifecycle, validator, cfg.StripeReturnURL))
		sources = append(sources, usecase.NewStripeWebhookSource(stripeClient, cfg.StripeWebhookSecret, cfg.WebhookAllowUnverified))
	} else {
		log.Printf("[routes] stripe gateway not configured")
	}

	if cfg.PayPalEnabled() {
		creds := entities.ProviderCredentials{ClientID: cfg.PayPalClientID, ClientSecret: cfg.PayPalClientSecret}
		paypalClient := payments.NewPayPalClient(cfg.PayPalMode, creds, cfg.ProviderTimeout)
		tokens := usecase.NewAccessTokenCache(ttlCache, map[entities.PaymentMethod]interfaces.ITokenFetcher{
			entities.PaymentMethodPayPal: payments.NewPayPalTokenFetcher(cfg.ProviderTimeout),
		})
		gateways = append(gateways, usecase.NewPayPalGateway(usecase.PayPalGatewayDeps{
			Client:    paypalClient,
			Tokens:    tokens,
			Orders:    usecase.NewPendingOrderStore(ttlCache),
			Repo:      donationRepo,
			Lifecycle: lifecycle,
			History:   historyRecorder,
			Validator: validator,
			ReturnURL: cfg.PayPalReturnURL,
			CancelURL: cfg.PayPalCancelURL,
		}))
		sources = append(sources, usecase.NewPayPalWebhookSource(paypalClient, tokens, cfg.PayPalWebhookID, cfg.WebhookAllowUnverified))
	} else {
		log.Printf("[routes] paypal gateway not configured")
	}

	if cfg.MercadoPagoEnabled() {
		mpClient, err := payments.NewMercadoPagoClient(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
		if err != nil {
			log.Printf("[routes] mercadopago gateway not configured: %v", err)
		} else {
			gateways = append(gateways, usecase.NewMercadoPagoGateway(mpClient, donationRepo, lifecycle, validator))
		}
	}

	if cfg.BankTransferEnabled {
		gateways = append(gateways, usecase.NewBankTransferGateway(donationRepo, lifecycle, validator, cfg.BankTransferInstructions))
	}

	registry := usecase.NewGatewayRegistry(gateways...)
	log.Printf("[routes] payment gateways registered methods=%v", registry.Methods())

	donationUseCase := usecase.NewDonationUseCase(registry, donationRepo, historyRecorder)
	reconciler := usecase.NewWebhookReconciler(donationRepo, lifecycle, sources...)

	donationHandler := handlers.NewDonationHandler(donationUseCase)
	webhookHandler := handlers.NewWebhookHandler(reconciler)
	campaignHandler := handlers.NewCampaignHandler(campaignUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDonationRoutes(v1, donationHandler)
	addWebhookRoutes(v1, webhookHandler)
	addCampaignRoutes(v1, campaignHandler)
}

func newCache(ctx context.Context, cfg config.Config) interfaces.ICache {
	if cfg.CacheBackend == config.CacheBackendMemory {
		log.Printf("[routes] using in-process cache")
		return cache.NewMemoryCache()
	}
	client := cacheinfra.ConnectRedis(ctx, cfg.CacheAddr(), cfg.CachePassword)
	return cache.NewRedisCache(client, cacheKeyPrefix)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
