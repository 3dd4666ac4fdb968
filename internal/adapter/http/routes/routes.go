package routes

import (
	_ "taller_xpto/docs" // This will be auto-generated
	"taller_xpto/internal/adapter/http/handlers"
	repository2 "taller_xpto/internal/adapter/persistence/repository"
	"taller_xpto/internal/config"
	"taller_xpto/internal/infrastructure/database"
	"taller_xpto/internal/infrastructure/payments"
	"taller_xpto/internal/usecase"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(cfg *config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	workOrderRepo := repository2.NewWorkOrderDynamoRepository(ddb)
	processRepo := repository2.NewProcessDynamoRepository(ddb)
	partsRequestRepo := repository2.NewPartsRequestDynamoRepository(ddb)
	authorizationRepo := repository2.NewAuthorizationDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	commissionRepo := repository2.NewCommissionDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		log.Fatal().Err(err).Str("tax_rate", cfg.TaxRate).Msg("invalid TAX_RATE")
	}

	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, processRepo, invoiceRepo, paymentRepo, taxRate)
	processUseCase := usecase.NewProcessUseCase(processRepo, workOrderRepo)
	partsRequestUseCase := usecase.NewPartsRequestUseCase(partsRequestRepo, workOrderRepo)
	authorizationUseCase := usecase.NewAuthorizationUseCase(authorizationRepo, workOrderRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, workOrderRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, invoiceRepo, workOrderRepo, paymentGateway)
	commissionUseCase := usecase.NewCommissionUseCase(commissionRepo)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	processHandler := handlers.NewProcessHandler(processUseCase)
	partsRequestHandler := handlers.NewPartsRequestHandler(partsRequestUseCase)
	authorizationHandler := handlers.NewAuthorizationHandler(authorizationUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	commissionHandler := handlers.NewCommissionHandler(commissionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, workshopHandlers{
		workOrders:     workOrderHandler,
		processes:      processHandler,
		partsRequests:  partsRequestHandler,
		authorizations: authorizationHandler,
		invoices:       invoiceHandler,
		payments:       paymentHandler,
		commissions:    commissionHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
