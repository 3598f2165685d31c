package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"novo_seguros/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrPixGatewayNotConfigured = errors.New("pix gateway not configured")
var ErrEmptyPixCode = errors.New("provider returned empty pix code")

// MercadoPagoPixGateway creates PIX charges through Mercado Pago and returns
// the provider's copy-and-paste BR Code.
//
// With PIX_GATEWAY_MOCK enabled no external call is made; a static-format
// code is generated locally, useful for local runs and CI.

type MercadoPagoPixGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPixGateway = (*MercadoPagoPixGateway)(nil)

func NewMercadoPagoPixGateway(accessToken string) (*MercadoPagoPixGateway, error) {
	if isPixGatewayMockEnabled() {
		log.Printf("[pix][gateway] mock mode enabled")
		return &MercadoPagoPixGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[pix][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[pix][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[pix][gateway] Mercado Pago client initialized")

	return &MercadoPagoPixGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoPixGateway) CreatePixCharge(ctx context.Context, amount float64, description string) (string, error) {
	if g != nil && g.mockMode {
		code := fmt.Sprintf(
			"00020126580014BR.GOV.BCB.PIX0136mock-%d5204000053039865802BR5925NOVO SEGUROS LTDA6009SAO PAULO62070503***6304MOCK",
			time.Now().UTC().UnixNano(),
		)
		log.Printf("[pix][gateway] mock charge amount=%.2f", amount)
		return code, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[pix][gateway] gateway not configured")
		return "", ErrPixGatewayNotConfigured
	}

	req := payment.Request{
		TransactionAmount: amount,
		Description:       description,
		PaymentMethodID:   "pix",
		Payer: &payment.PayerRequest{
			Email: payerEmailFromEnv(),
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[pix][gateway] sdk create failed err=%v", err)
		return "", err
	}

	code := resp.PointOfInteraction.TransactionData.QRCode
	if code == "" {
		log.Printf("[pix][gateway] empty qr code provider_payment_id=%d", resp.ID)
		return "", ErrEmptyPixCode
	}
	log.Printf("[pix][gateway] charge created provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return code, nil
}

func payerEmailFromEnv() string {
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_PAYER_EMAIL")); email != "" {
		return email
	}
	// Sandbox-safe fallback recommended by Mercado Pago examples.
	if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return "test_user_br@testuser.com"
	}
	return ""
}

func isPixGatewayMockEnabled() bool {
	for _, key := range []string{"PIX_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
