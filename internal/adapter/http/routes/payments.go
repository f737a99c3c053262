package routes

import (
	"pos_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPay      = "/pay"
	PathPayments = "/payments"
)

func addPaymentRoutes(r *gin.Engine, paymentHandler *handlers.PaymentHandler) {
	r.GET("/", handlers.Home)
	r.GET("/ready", handlers.Readiness)
	r.GET("/healthy", handlers.Liveness)

	r.POST(PathPay, paymentHandler.Pay)
	r.GET(PathPayments+"/:payment_id", paymentHandler.GetPaymentByID)

	// Same surface for CORS-enabled front-end clients.
	api := r.Group("/api")
	{
		api.POST(PathPay, paymentHandler.Pay)
		api.GET(PathPayments+"/:payment_id", paymentHandler.GetPaymentByID)
	}
}
