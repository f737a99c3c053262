package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "pos_payments/internal/adapter/http/dto/request"
	response "pos_payments/internal/adapter/http/dto/response"
	"pos_payments/internal/usecase"
	"pos_payments/internal/usecase/interfaces"
	"pos_payments/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment processing.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Pay processes a payment through the active gateway and returns the bill.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p := payload.ToPayment()
	log.Printf("[payment][handler] pay start payment_id=%s amount=%v", p.ID, p.PaidAmount)

	bill, err := h.usecase.ProcessPayment(c.Request.Context(), p)
	if err != nil {
		msg := fmt.Sprintf("Failed to process payment id '%s' with amount $%v", p.ID, p.PaidAmount)
		log.Printf("[payment][handler] pay failed payment_id=%s err=%v", p.ID, err)
		appErr := mapPaymentError(err, msg)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] pay success payment_id=%s status=%s", bill.PaymentID, bill.Status)
	c.JSON(http.StatusOK, response.FromBill(bill))
}

// GetPaymentByID returns the stored record of a processed payment.
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	paymentID := c.Param("payment_id")

	rec, err := h.usecase.GetRecordByID(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", paymentID, err)
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

func mapPaymentError(err error, msg string) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrInvalidPayment):
		return pkg.NewDomainError("INVALID_PAYMENT", msg, err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("PAYMENT_PROCESSING_FAILED", msg, err, http.StatusInternalServerError)
	}
}

func mapRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
