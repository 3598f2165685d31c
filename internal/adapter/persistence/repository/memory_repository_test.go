package repository

import (
	"context"
	"testing"

	"novo_seguros/internal/infrastructure/fixture"
)

func TestMemoryVehicleRepository(t *testing.T) {
	repo := NewMemoryVehicleRepository(fixture.Vehicles())
	ctx := context.Background()

	t.Run("list returns a copy", func(t *testing.T) {
		first, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("ListAll failed: %v", err)
		}
		if len(first) != 8 {
			t.Fatalf("expected 8 vehicles, got %d", len(first))
		}
		first[0].Make = "mutated"

		second, _ := repo.ListAll(ctx)
		if second[0].Make == "mutated" {
			t.Fatal("ListAll leaked the backing slice")
		}
	})

	t.Run("get by id", func(t *testing.T) {
		v, err := repo.GetByID(ctx, "car-003")
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if v.Make != "Honda" || v.Model != "Civic" {
			t.Fatalf("unexpected vehicle: %+v", v)
		}
	})

	t.Run("missing id yields the zero value", func(t *testing.T) {
		v, err := repo.GetByID(ctx, "car-999")
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if v.ID != "" {
			t.Fatalf("expected zero value, got %+v", v)
		}
	})
}

func TestMemoryPaymentSlipRepository(t *testing.T) {
	repo := NewMemoryPaymentSlipRepository(fixture.PaymentSlips())
	ctx := context.Background()

	slips, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(slips) != 13 {
		t.Fatalf("expected 13 slips, got %d", len(slips))
	}

	s, err := repo.GetByID(ctx, "COMP-006")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if s.CarID != "car-006" {
		t.Fatalf("unexpected slip: %+v", s)
	}

	missing, err := repo.GetByID(ctx, "COMP-999")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if missing.ID != "" {
		t.Fatalf("expected zero value, got %+v", missing)
	}
}
