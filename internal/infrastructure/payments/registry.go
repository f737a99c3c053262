package payments

import (
	"fmt"
	"log"
	"strings"

	"pos_payments/internal/usecase/interfaces"
)

// Gateway type names recognized by the registry. GatewayInMemory is the
// default/fallback entry and must always be registered.
const (
	GatewayInMemory    = "IN_MEMORY"
	GatewayMercadoPago = "MERCADO_PAGO"
)

// GatewayRegistry holds every constructible payment gateway keyed by type
// name. It is populated once during startup, before the server accepts
// traffic, and is read-only afterwards.

type GatewayRegistry struct {
	gateways map[string]interfaces.IPaymentGateway
}

func NewGatewayRegistry() *GatewayRegistry {
	return &GatewayRegistry{gateways: make(map[string]interfaces.IPaymentGateway)}
}

// Register adds a gateway under a unique non-empty name. A blank or duplicate
// name is a startup-time programming error, not a user-facing condition.
func (r *GatewayRegistry) Register(name string, gw interfaces.IPaymentGateway) {
	if strings.TrimSpace(name) == "" {
		panic("payments: gateway name must not be empty")
	}
	if gw == nil {
		panic(fmt.Sprintf("payments: gateway %q must not be nil", name))
	}
	if _, exists := r.gateways[name]; exists {
		panic(fmt.Sprintf("payments: gateway %q registered twice", name))
	}
	r.gateways[name] = gw
}

func (r *GatewayRegistry) Lookup(name string) (interfaces.IPaymentGateway, bool) {
	gw, ok := r.gateways[name]
	return gw, ok
}

// SelectGateway resolves the active gateway from the configured type name
// (normally the PAYMENT_GW environment variable). The chain never fails:
// a blank or unknown name degrades to defaultName with a warning, and the
// default entry is guaranteed present by startup registration.
func SelectGateway(configured string, registry *GatewayRegistry, defaultName string) interfaces.IPaymentGateway {
	name := strings.TrimSpace(configured)
	if name == "" {
		log.Printf("[payment][gateway] PAYMENT_GW is not set; defaulting to %s", defaultName)
		name = defaultName
	}

	gw, ok := registry.Lookup(name)
	if !ok {
		log.Printf("[payment][gateway] no gateway registered for %q; defaulting to %s", name, defaultName)
		name = defaultName
		gw, ok = registry.Lookup(name)
		if !ok {
			panic(fmt.Sprintf("payments: default gateway %q not registered", defaultName))
		}
	}

	log.Printf("[payment][gateway] active gateway type: %s", name)
	return gw
}
