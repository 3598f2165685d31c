package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"novo_seguros/internal/domain/entities"
	"novo_seguros/internal/usecase/interfaces"
)

var (
	ErrSlipNotFound   = errors.New("payment slip not found")
	ErrInvalidPixCode = errors.New("invalid pix code")
)

// pixCopiedIndicatorTTL is how long the UI keeps the "copiado" indicator up.
const pixCopiedIndicatorTTL = 3 * time.Second

// PixPayload is everything the payment modal renders: the slip details plus
// the copy-and-paste BR Code.
//
// With no gateway configured the code is generated locally and embeds the
// current time and a random suffix, so two payloads for the same slip carry
// different codes. Gateway-created charges return the provider's code, which
// is stable per charge.

type PixPayload struct {
	SlipID       string `json:"slipId"`
	Period       string `json:"period"`
	LicensePlate string `json:"licensePlate"`
	Amount       string `json:"amount"`
	Code         string `json:"code"`
}

type IPixUseCase interface {
	CreatePayload(ctx context.Context, slipID string) (PixPayload, error)
	CopyCode(ctx context.Context, code string) (copied bool, notifications []entities.Notification, err error)
	CopiedIndicatorSeconds() int
}

type PixUseCase struct {
	slipRepo  interfaces.IPaymentSlipRepository
	gateway   interfaces.IPixGateway
	clipboard interfaces.IClipboard

	now          func() time.Time
	randomSuffix func() string
}

var _ IPixUseCase = (*PixUseCase)(nil)

// NewPixUseCase wires the PIX flow. gateway may be nil: the BR Code is then
// generated locally in the fixed dashboard format.
func NewPixUseCase(slipRepo interfaces.IPaymentSlipRepository, gateway interfaces.IPixGateway, clipboard interfaces.IClipboard) *PixUseCase {
	return &PixUseCase{
		slipRepo:     slipRepo,
		gateway:      gateway,
		clipboard:    clipboard,
		now:          time.Now,
		randomSuffix: randomPixSuffix,
	}
}

func (u *PixUseCase) CreatePayload(ctx context.Context, slipID string) (PixPayload, error) {
	slipID = strings.TrimSpace(slipID)
	if slipID == "" {
		return PixPayload{}, ErrInvalidSlipID
	}

	slip, err := u.slipRepo.GetByID(ctx, slipID)
	if err != nil {
		return PixPayload{}, err
	}
	if slip.ID == "" {
		return PixPayload{}, ErrSlipNotFound
	}

	code := u.codeFor(ctx, slip)
	return PixPayload{
		SlipID:       slip.ID,
		Period:       slip.Period,
		LicensePlate: slip.LicensePlate,
		Amount:       slip.Amount,
		Code:         code,
	}, nil
}

func (u *PixUseCase) codeFor(ctx context.Context, slip entities.PaymentSlip) string {
	if u.gateway != nil {
		amount, err := slip.AmountValue()
		if err == nil {
			code, gwErr := u.gateway.CreatePixCharge(ctx, amount, fmt.Sprintf("Comprovante %s", slip.ID))
			if gwErr == nil && code != "" {
				return code
			}
			log.Printf("[pix][usecase] gateway charge failed slip_id=%s err=%v; falling back to local code", slip.ID, gwErr)
		} else {
			log.Printf("[pix][usecase] unparseable amount slip_id=%s amount=%q; falling back to local code", slip.ID, slip.Amount)
		}
	}
	return u.localCode(slip)
}

// localCode builds the static-format BR Code used by the dashboard mock:
// merchant NOVO SEGUROS LTDA, the slip and vehicle ids plus a millisecond
// timestamp in the PIX key field, and a random 4-character CRC placeholder.
func (u *PixUseCase) localCode(slip entities.PaymentSlip) string {
	return fmt.Sprintf(
		"00020126580014BR.GOV.BCB.PIX0136%s-%s-%d5204000053039865802BR5925NOVO SEGUROS LTDA6009SAO PAULO62070503***6304%s",
		slip.ID, slip.CarID, u.now().UnixMilli(), u.randomSuffix(),
	)
}

func (u *PixUseCase) CopyCode(ctx context.Context, code string) (bool, []entities.Notification, error) {
	if strings.TrimSpace(code) == "" {
		return false, nil, ErrInvalidPixCode
	}

	if err := u.clipboard.WriteText(code); err != nil {
		log.Printf("[pix][usecase] clipboard write failed err=%v", err)
		notifications := []entities.Notification{
			entities.DestructiveNotification(
				"Erro ao copiar",
				"Não foi possível copiar o código PIX. Tente novamente.",
			),
		}
		return false, notifications, err
	}

	notifications := []entities.Notification{
		entities.InfoNotification(
			"Código PIX copiado",
			"O código PIX foi copiado para a área de transferência.",
		),
	}
	return true, notifications, nil
}

// CopiedIndicatorSeconds tells clients how long to show the transient
// "copiado" state.
func (u *PixUseCase) CopiedIndicatorSeconds() int {
	return int(pixCopiedIndicatorTTL / time.Second)
}

const pixSuffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomPixSuffix() string {
	b := make([]byte, 4)
	for i := range b {
		b[i] = pixSuffixAlphabet[rand.Intn(len(pixSuffixAlphabet))]
	}
	return string(b)
}
