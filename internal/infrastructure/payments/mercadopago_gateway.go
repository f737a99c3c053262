package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"pos_payments/internal/domain/entities"
	"pos_payments/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway processes payments through the Mercado Pago API. It is
// registered under GatewayMercadoPago only when an access token is configured,
// so the in-memory fallback stays available regardless.
//
// Mock mode (PAYMENT_GATEWAY_MOCK) synthesizes an approved provider response
// without calling the API; useful for local runs and integration tests.

type MercadoPagoGateway struct {
	client   payment.Client
	records  interfaces.IPaymentRecordRepository
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, records interfaces.IPaymentRecordRepository) (*MercadoPagoGateway, error) {
	if isMockModeEnabled() {
		log.Printf("[payment][gateway] mercado pago mock mode enabled")
		return &MercadoPagoGateway{records: records, mockMode: true}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating mercado pago sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), records: records}, nil
}

func (g *MercadoPagoGateway) Pay(ctx context.Context, p entities.Payment) (entities.Bill, error) {
	if err := validatePayment(p); err != nil {
		return entities.Bill{}, err
	}

	providerStatus, err := g.createProviderPayment(ctx, p)
	if err != nil {
		return entities.Bill{}, fmt.Errorf("%w: mercado pago create for payment %s: %v", interfaces.ErrPaymentProcessing, p.ID, err)
	}

	now := time.Now().UTC()
	status := entities.BillStatusFailure
	if providerStatus == "approved" {
		status = entities.BillStatusSuccess
	}
	bill := entities.Bill{
		PaymentID: p.ID,
		Amount:    p.PaidAmount,
		Status:    status,
		Timestamp: now,
	}

	rec := entities.PaymentRecord{
		PaymentID:   p.ID,
		Payment:     p,
		Bill:        bill,
		ProcessedAt: now,
	}
	if _, err := g.records.Save(ctx, rec); err != nil {
		log.Printf("[payment][gateway] record store failed payment_id=%s err=%v", p.ID, err)
		return entities.Bill{}, fmt.Errorf("%w: storing payment %s: %v", interfaces.ErrPaymentProcessing, p.ID, err)
	}

	log.Printf("[payment][gateway] mercado pago pay done payment_id=%s provider_status=%s", p.ID, providerStatus)
	return bill, nil
}

func (g *MercadoPagoGateway) createProviderPayment(ctx context.Context, p entities.Payment) (string, error) {
	if g.mockMode {
		log.Printf("[payment][gateway] mock create payment_id=%s amount=%.2f", p.ID, p.PaidAmount)
		return "approved", nil
	}

	body := map[string]any{
		"transaction_amount": p.PaidAmount,
		"description":        fmt.Sprintf("Payment %s", p.ID),
		"external_reference": p.ID,
	}
	if method := strings.TrimSpace(p.Type); method != "" {
		body["payment_method_id"] = strings.ToLower(method)
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		body["payer"] = map[string]any{"email": email}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	var req payment.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return "", err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed payment_id=%s err=%v", p.ID, err)
		return "", err
	}
	log.Printf("[payment][gateway] sdk create success payment_id=%s provider_payment_id=%s provider_status=%s",
		p.ID, strconv.Itoa(resp.ID), resp.Status)
	return resp.Status, nil
}

func isMockModeEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
