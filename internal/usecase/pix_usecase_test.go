package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"novo_seguros/internal/domain/entities"
	mock_interfaces "novo_seguros/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixedClock(t *testing.T, uc *PixUseCase) time.Time {
	t.Helper()
	at := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return at }
	uc.randomSuffix = func() string { return "ABCD" }
	return at
}

func TestPixUseCase_CreatePayload(t *testing.T) {
	t.Run("empty slip id", func(t *testing.T) {
		uc := NewPixUseCase(nil, nil, nil)
		_, err := uc.CreatePayload(context.Background(), " ")
		if !errors.Is(err, ErrInvalidSlipID) {
			t.Fatalf("expected ErrInvalidSlipID, got %v", err)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		slipRepo := mock_interfaces.NewMockIPaymentSlipRepository(ctrl)
		slipRepo.EXPECT().GetByID(gomock.Any(), "COMP-001").Return(entities.PaymentSlip{}, errors.New("db"))

		uc := NewPixUseCase(slipRepo, nil, nil)
		_, err := uc.CreatePayload(context.Background(), "COMP-001")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("unknown slip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		slipRepo := mock_interfaces.NewMockIPaymentSlipRepository(ctrl)
		slipRepo.EXPECT().GetByID(gomock.Any(), "COMP-999").Return(entities.PaymentSlip{}, nil)

		uc := NewPixUseCase(slipRepo, nil, nil)
		_, err := uc.CreatePayload(context.Background(), "COMP-999")
		if !errors.Is(err, ErrSlipNotFound) {
			t.Fatalf("expected ErrSlipNotFound, got %v", err)
		}
	})

	t.Run("local code follows the BR Code layout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		slipRepo := mock_interfaces.NewMockIPaymentSlipRepository(ctrl)
		slip := entities.PaymentSlip{ID: "COMP-001", CarID: "car-001", Period: "Jan 2025", LicensePlate: "ABC-1234", Amount: "R$ 745,00"}
		slipRepo.EXPECT().GetByID(gomock.Any(), "COMP-001").Return(slip, nil)

		uc := NewPixUseCase(slipRepo, nil, nil)
		at := fixedClock(t, uc)

		payload, err := uc.CreatePayload(context.Background(), "COMP-001")
		if err != nil {
			t.Fatalf("CreatePayload failed: %v", err)
		}
		if payload.SlipID != "COMP-001" || payload.Period != "Jan 2025" || payload.LicensePlate != "ABC-1234" || payload.Amount != "R$ 745,00" {
			t.Fatalf("unexpected payload: %+v", payload)
		}
		want := fmt.Sprintf(
			"00020126580014BR.GOV.BCB.PIX0136COMP-001-car-001-%d5204000053039865802BR5925NOVO SEGUROS LTDA6009SAO PAULO62070503***6304ABCD",
			at.UnixMilli(),
		)
		if payload.Code != want {
			t.Fatalf("unexpected code:\n got %s\nwant %s", payload.Code, want)
		}
	})

	t.Run("gateway code wins when available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		slipRepo := mock_interfaces.NewMockIPaymentSlipRepository(ctrl)
		gateway := mock_interfaces.NewMockIPixGateway(ctrl)
		slip := entities.PaymentSlip{ID: "COMP-002", CarID: "car-002", Amount: "R$ 892,00"}
		slipRepo.EXPECT().GetByID(gomock.Any(), "COMP-002").Return(slip, nil)
		gateway.EXPECT().CreatePixCharge(gomock.Any(), 892.00, "Comprovante COMP-002").Return("qr-data-from-gateway", nil)

		uc := NewPixUseCase(slipRepo, gateway, nil)
		payload, err := uc.CreatePayload(context.Background(), "COMP-002")
		if err != nil {
			t.Fatalf("CreatePayload failed: %v", err)
		}
		if payload.Code != "qr-data-from-gateway" {
			t.Fatalf("expected gateway code, got %s", payload.Code)
		}
	})

	t.Run("gateway failure falls back to the local code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		slipRepo := mock_interfaces.NewMockIPaymentSlipRepository(ctrl)
		gateway := mock_interfaces.NewMockIPixGateway(ctrl)
		slip := entities.PaymentSlip{ID: "COMP-003", CarID: "car-003", Amount: "R$ 1.120,00"}
		slipRepo.EXPECT().GetByID(gomock.Any(), "COMP-003").Return(slip, nil)
		gateway.EXPECT().CreatePixCharge(gomock.Any(), 1120.00, "Comprovante COMP-003").Return("", errors.New("unavailable"))

		uc := NewPixUseCase(slipRepo, gateway, nil)
		at := fixedClock(t, uc)

		payload, err := uc.CreatePayload(context.Background(), "COMP-003")
		if err != nil {
			t.Fatalf("CreatePayload failed: %v", err)
		}
		want := fmt.Sprintf(
			"00020126580014BR.GOV.BCB.PIX0136COMP-003-car-003-%d5204000053039865802BR5925NOVO SEGUROS LTDA6009SAO PAULO62070503***6304ABCD",
			at.UnixMilli(),
		)
		if payload.Code != want {
			t.Fatalf("expected local fallback code, got %s", payload.Code)
		}
	})
}

func TestPixUseCase_CopyCode(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		uc := NewPixUseCase(nil, nil, nil)
		_, _, err := uc.CopyCode(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPixCode) {
			t.Fatalf("expected ErrInvalidPixCode, got %v", err)
		}
	})

	t.Run("clipboard failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clip := mock_interfaces.NewMockIClipboard(ctrl)
		clip.EXPECT().WriteText("0002...").Return(errors.New("no display"))

		uc := NewPixUseCase(nil, nil, clip)
		copied, notifications, err := uc.CopyCode(context.Background(), "0002...")
		if err == nil || copied {
			t.Fatalf("expected failed copy, got copied=%v err=%v", copied, err)
		}
		if len(notifications) != 1 || notifications[0].Title != "Erro ao copiar" {
			t.Fatalf("unexpected notifications: %+v", notifications)
		}
		if notifications[0].Severity != entities.SeverityDestructive {
			t.Fatalf("expected destructive severity, got %s", notifications[0].Severity)
		}
	})

	t.Run("clipboard success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clip := mock_interfaces.NewMockIClipboard(ctrl)
		clip.EXPECT().WriteText("0002...").Return(nil)

		uc := NewPixUseCase(nil, nil, clip)
		copied, notifications, err := uc.CopyCode(context.Background(), "0002...")
		if err != nil || !copied {
			t.Fatalf("expected successful copy, got copied=%v err=%v", copied, err)
		}
		if len(notifications) != 1 || notifications[0].Title != "Código PIX copiado" {
			t.Fatalf("unexpected notifications: %+v", notifications)
		}
	})
}

func TestPixUseCase_CopiedIndicatorSeconds(t *testing.T) {
	uc := NewPixUseCase(nil, nil, nil)
	if got := uc.CopiedIndicatorSeconds(); got != 3 {
		t.Fatalf("expected 3 seconds, got %d", got)
	}
}

func TestRandomPixSuffix(t *testing.T) {
	for i := 0; i < 50; i++ {
		suffix := randomPixSuffix()
		if len(suffix) != 4 {
			t.Fatalf("expected 4 characters, got %q", suffix)
		}
		for _, r := range suffix {
			if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'Z') {
				t.Fatalf("unexpected character %q in suffix %q", r, suffix)
			}
		}
	}
}
