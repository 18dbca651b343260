package usecase

import (
	"sort"
	"strings"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"
)

// GatewayRegistry maps payment method ids to their gateways. It is built
// once at startup and passed to consumers.
type GatewayRegistry struct {
	gateways map[entities.PaymentMethod]interfaces.IPaymentGateway
}

func NewGatewayRegistry(gateways ...interfaces.IPaymentGateway) *GatewayRegistry {
	r := &GatewayRegistry{gateways: make(map[entities.PaymentMethod]interfaces.IPaymentGateway, len(gateways))}
	for _, g := range gateways {
		if g != nil {
			r.gateways[g.ID()] = g
		}
	}
	return r
}

func (r *GatewayRegistry) Get(method entities.PaymentMethod) (interfaces.IPaymentGateway, error) {
	g, ok := r.gateways[entities.PaymentMethod(strings.ToLower(strings.TrimSpace(string(method))))]
	if !ok {
		return nil, ErrGatewayNotFound
	}
	return g, nil
}

func (r *GatewayRegistry) Methods() []entities.PaymentMethod {
	out := make([]entities.PaymentMethod, 0, len(r.gateways))
	for id := range r.gateways {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
