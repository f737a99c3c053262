package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	_ "pos_payments/docs" // swag-generated swagger doc
	"pos_payments/internal/adapter/http/handlers"
	"pos_payments/internal/adapter/persistence/repository"
	"pos_payments/internal/infrastructure/database"
	"pos_payments/internal/infrastructure/metrics"
	"pos_payments/internal/infrastructure/payments"
	"pos_payments/internal/usecase"
	"pos_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PORT = 8080

// Run wires the service from environment configuration and starts the server.
func Run() {
	router := newRouter()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// newRouter builds the full dependency graph once: record store, gateway
// registry, active gateway, use case and handlers. Everything is passed by
// injection; there is no package-level gateway state.
func newRouter() *gin.Engine {
	router := gin.Default()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	records := buildRecordRepository()
	registry := buildGatewayRegistry(records)
	active := payments.SelectGateway(os.Getenv("PAYMENT_GW"), registry, payments.GatewayInMemory)

	paymentUseCase := usecase.NewPaymentUseCase(active, records)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	addPaymentRoutes(router, paymentHandler)
	return router
}

// buildRecordRepository selects the payment record store. The in-memory map
// is the default; PAYMENT_STORE=DYNAMO switches to DynamoDB.
func buildRecordRepository() interfaces.IPaymentRecordRepository {
	switch strings.ToUpper(strings.TrimSpace(os.Getenv("PAYMENT_STORE"))) {
	case "DYNAMO", "DYNAMODB":
		log.Printf("[payment][routes] using DynamoDB payment record store")
		return repository.NewPaymentRecordDynamoRepository(database.ConnectDynamoDB())
	default:
		log.Printf("[payment][routes] using in-memory payment record store")
		return repository.NewPaymentRecordMemoryRepository()
	}
}

// buildGatewayRegistry registers every constructible gateway. IN_MEMORY is
// always present (it is the selector fallback); MERCADO_PAGO joins only when
// its credentials are configured or mock mode is on.
func buildGatewayRegistry(records interfaces.IPaymentRecordRepository) *payments.GatewayRegistry {
	registry := payments.NewGatewayRegistry()
	registry.Register(payments.GatewayInMemory, payments.NewInMemoryGateway(records))

	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), records)
	if err != nil {
		log.Printf("[payment][routes] Mercado Pago gateway not configured: %v", err)
	} else {
		registry.Register(payments.GatewayMercadoPago, mpGateway)
	}

	return registry
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.Middleware)
	router.Use(corsMiddleware())
}

// corsMiddleware allows cross-site requests from any origin for paths under
// /api/, matching the point-of-sale front-end expectations.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
