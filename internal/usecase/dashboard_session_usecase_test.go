package usecase

import (
	"context"
	"errors"
	"testing"

	"novo_seguros/internal/domain/entities"
	"novo_seguros/internal/infrastructure/fixture"
	mock_interfaces "novo_seguros/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSessionUseCase(t *testing.T) (*DashboardSessionUseCase, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
	slipRepo := mock_interfaces.NewMockIPaymentSlipRepository(ctrl)
	vehicleRepo.EXPECT().ListAll(gomock.Any()).Return(fixture.Vehicles(), nil)
	slipRepo.EXPECT().ListAll(gomock.Any()).Return(fixture.PaymentSlips(), nil)

	uc := NewDashboardSessionUseCase(vehicleRepo, slipRepo)
	view, err := uc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	return uc, view.SessionID
}

func groupByVehicle(t *testing.T, view DashboardView, vehicleID string) GroupView {
	t.Helper()
	for _, g := range view.Groups {
		if g.VehicleID == vehicleID {
			return g
		}
	}
	t.Fatalf("group %s not present in view", vehicleID)
	return GroupView{}
}

func TestDashboardSessionUseCase_CreateSession(t *testing.T) {
	t.Run("vehicle repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		slipRepo := mock_interfaces.NewMockIPaymentSlipRepository(ctrl)
		vehicleRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		uc := NewDashboardSessionUseCase(vehicleRepo, slipRepo)
		_, err := uc.CreateSession(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("fresh session starts with defaults", func(t *testing.T) {
		uc, sessionID := newSessionUseCase(t)
		view, err := uc.View(context.Background(), sessionID)
		if err != nil {
			t.Fatalf("View failed: %v", err)
		}

		if view.SortBy != entities.SortByDate || view.SortOrder != entities.SortDesc {
			t.Fatalf("expected default sort date/desc, got %s/%s", view.SortBy, view.SortOrder)
		}
		if view.ActiveTab != entities.TabAll {
			t.Fatalf("expected default tab all, got %s", view.ActiveTab)
		}
		if view.SelectedVehicleID != entities.FilterValueAll {
			t.Fatalf("expected vehicle selection all, got %s", view.SelectedVehicleID)
		}
		if view.Statistics.TotalSlips != 13 {
			t.Fatalf("expected 13 total slips, got %d", view.Statistics.TotalSlips)
		}
		if view.AllSlips.TotalPages != 3 || len(view.AllSlips.Items) != 5 {
			t.Fatalf("expected first page of 3x5, got totalPages=%d items=%d", view.AllSlips.TotalPages, len(view.AllSlips.Items))
		}
		if len(view.Groups) != 8 {
			t.Fatalf("expected 8 vehicle groups, got %d", len(view.Groups))
		}
	})
}

func TestDashboardSessionUseCase_SessionLookup(t *testing.T) {
	uc, _ := newSessionUseCase(t)

	t.Run("blank session id", func(t *testing.T) {
		_, err := uc.View(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("unknown session id", func(t *testing.T) {
		_, err := uc.View(context.Background(), "nope")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestDashboardSessionUseCase_Filters(t *testing.T) {
	uc, sessionID := newSessionUseCase(t)
	ctx := context.Background()

	t.Run("partial update counts active criteria", func(t *testing.T) {
		term := "comp"
		mk := "Chevrolet"
		view, err := uc.UpdateFilters(ctx, sessionID, FilterUpdate{SearchTerm: &term, Make: &mk})
		if err != nil {
			t.Fatalf("UpdateFilters failed: %v", err)
		}
		if view.Statistics.ActiveFiltersCount != 2 {
			t.Fatalf("expected 2 active filters, got %d", view.Statistics.ActiveFiltersCount)
		}
		if view.Filters.SearchTerm != "comp" || view.Filters.Make != "Chevrolet" {
			t.Fatalf("filters not applied: %+v", view.Filters)
		}
	})

	t.Run("clear one field keeps the rest", func(t *testing.T) {
		view, err := uc.ClearFilter(ctx, sessionID, entities.FilterFieldSearchTerm)
		if err != nil {
			t.Fatalf("ClearFilter failed: %v", err)
		}
		if view.Filters.SearchTerm != "" || view.Filters.Make != "Chevrolet" {
			t.Fatalf("expected only searchTerm cleared, got %+v", view.Filters)
		}
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, err := uc.ClearFilter(ctx, sessionID, "color")
		if !errors.Is(err, ErrInvalidFilterField) {
			t.Fatalf("expected ErrInvalidFilterField, got %v", err)
		}
	})

	t.Run("clear all resets and notifies", func(t *testing.T) {
		view, notifications, err := uc.ClearFilters(ctx, sessionID)
		if err != nil {
			t.Fatalf("ClearFilters failed: %v", err)
		}
		if view.Statistics.ActiveFiltersCount != 0 {
			t.Fatalf("expected 0 active filters, got %d", view.Statistics.ActiveFiltersCount)
		}
		if len(notifications) != 1 || notifications[0].Title != "Filtros limpos" {
			t.Fatalf("unexpected notifications: %+v", notifications)
		}
	})
}

func TestDashboardSessionUseCase_SortAndTab(t *testing.T) {
	uc, sessionID := newSessionUseCase(t)
	ctx := context.Background()

	t.Run("invalid sort spec", func(t *testing.T) {
		_, err := uc.SetSort(ctx, sessionID, "premium", entities.SortAsc)
		if !errors.Is(err, ErrInvalidSortSpec) {
			t.Fatalf("expected ErrInvalidSortSpec, got %v", err)
		}
	})

	t.Run("invalid tab", func(t *testing.T) {
		_, err := uc.SetTab(ctx, sessionID, "archived")
		if !errors.Is(err, ErrInvalidTab) {
			t.Fatalf("expected ErrInvalidTab, got %v", err)
		}
	})

	t.Run("overdue tab shows only overdue slips", func(t *testing.T) {
		view, err := uc.SetTab(ctx, sessionID, entities.TabOverdue)
		if err != nil {
			t.Fatalf("SetTab failed: %v", err)
		}
		if view.Statistics.FilteredSlips != 3 {
			t.Fatalf("expected 3 overdue slips, got %d", view.Statistics.FilteredSlips)
		}
		// Badge counts are unaffected by the active tab.
		if view.Statistics.AllCount != 13 || view.Statistics.PaidCount != 6 {
			t.Fatalf("tab changed the badge counts: %+v", view.Statistics)
		}
	})

	t.Run("amount ascending across groups", func(t *testing.T) {
		if _, err := uc.SetTab(ctx, sessionID, entities.TabAll); err != nil {
			t.Fatalf("SetTab failed: %v", err)
		}
		view, err := uc.SetSort(ctx, sessionID, entities.SortByAmount, entities.SortAsc)
		if err != nil {
			t.Fatalf("SetSort failed: %v", err)
		}
		first := view.AllSlips.Items[0]
		if first.Amount != "R$ 598,00" {
			t.Fatalf("expected cheapest slip first, got %s", first.Amount)
		}
	})
}

func TestDashboardSessionUseCase_VehicleSelection(t *testing.T) {
	uc, sessionID := newSessionUseCase(t)
	ctx := context.Background()

	t.Run("unknown vehicle", func(t *testing.T) {
		_, err := uc.SelectVehicle(ctx, sessionID, "car-999")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("selection scopes groups and badge counts", func(t *testing.T) {
		view, err := uc.SelectVehicle(ctx, sessionID, "car-001")
		if err != nil {
			t.Fatalf("SelectVehicle failed: %v", err)
		}
		if len(view.Groups) != 1 || view.Groups[0].VehicleID != "car-001" {
			t.Fatalf("expected only the car-001 group, got %d groups", len(view.Groups))
		}
		if view.Statistics.AllCount != 2 || view.Statistics.PaidCount != 2 {
			t.Fatalf("unexpected scoped counts: %+v", view.Statistics)
		}
	})

	t.Run("selecting all restores every group", func(t *testing.T) {
		view, err := uc.SelectVehicle(ctx, sessionID, entities.FilterValueAll)
		if err != nil {
			t.Fatalf("SelectVehicle failed: %v", err)
		}
		if len(view.Groups) != 8 {
			t.Fatalf("expected 8 groups, got %d", len(view.Groups))
		}
	})

	t.Run("slip selection is free-form", func(t *testing.T) {
		view, err := uc.SelectSlip(ctx, sessionID, "COMP-003")
		if err != nil {
			t.Fatalf("SelectSlip failed: %v", err)
		}
		if view.SelectedSlipID != "COMP-003" {
			t.Fatalf("expected COMP-003 selected, got %s", view.SelectedSlipID)
		}
	})
}

func TestDashboardSessionUseCase_Expansion(t *testing.T) {
	uc, sessionID := newSessionUseCase(t)
	ctx := context.Background()

	t.Run("toggle expands one group under individual control", func(t *testing.T) {
		view, err := uc.ToggleGroup(ctx, sessionID, "car-001")
		if err != nil {
			t.Fatalf("ToggleGroup failed: %v", err)
		}
		g := groupByVehicle(t, view, "car-001")
		if !g.IsExpanded || g.IsGloballyControlled {
			t.Fatalf("expected expanded individual control, got %+v", g)
		}
		other := groupByVehicle(t, view, "car-002")
		if other.IsExpanded {
			t.Fatal("toggle leaked into another group")
		}
	})

	t.Run("collapse all overrides individual state", func(t *testing.T) {
		view, notifications, err := uc.CollapseAll(ctx, sessionID)
		if err != nil {
			t.Fatalf("CollapseAll failed: %v", err)
		}
		if len(notifications) != 1 || notifications[0].Title != "Todos os grupos recolhidos" {
			t.Fatalf("unexpected notifications: %+v", notifications)
		}
		for _, g := range view.Groups {
			if g.IsExpanded || !g.IsGloballyControlled {
				t.Fatalf("group %s escaped the broadcast: %+v", g.VehicleID, g)
			}
		}
		if view.Statistics.GloballyControlledCount != 8 {
			t.Fatalf("expected 8 globally controlled, got %d", view.Statistics.GloballyControlledCount)
		}
	})

	t.Run("toggle after broadcast reclaims individual control", func(t *testing.T) {
		view, err := uc.ToggleGroup(ctx, sessionID, "car-003")
		if err != nil {
			t.Fatalf("ToggleGroup failed: %v", err)
		}
		g := groupByVehicle(t, view, "car-003")
		if !g.IsExpanded || g.IsGloballyControlled {
			t.Fatalf("expected expanded individual control, got %+v", g)
		}
	})

	t.Run("stale broadcast does not replay", func(t *testing.T) {
		view, err := uc.View(ctx, sessionID)
		if err != nil {
			t.Fatalf("View failed: %v", err)
		}
		g := groupByVehicle(t, view, "car-003")
		if !g.IsExpanded {
			t.Fatal("old collapse broadcast re-applied to a toggled group")
		}
	})

	t.Run("expand all issues a fresh sequence", func(t *testing.T) {
		view, notifications, err := uc.ExpandAll(ctx, sessionID)
		if err != nil {
			t.Fatalf("ExpandAll failed: %v", err)
		}
		if len(notifications) != 1 || notifications[0].Title != "Todos os grupos expandidos" {
			t.Fatalf("unexpected notifications: %+v", notifications)
		}
		for _, g := range view.Groups {
			if !g.IsExpanded || !g.IsGloballyControlled {
				t.Fatalf("group %s missed the expand broadcast: %+v", g.VehicleID, g)
			}
		}
		if view.Statistics.ExpandedCount != 8 {
			t.Fatalf("expected 8 expanded, got %d", view.Statistics.ExpandedCount)
		}
	})

	t.Run("toggle on unknown vehicle", func(t *testing.T) {
		_, err := uc.ToggleGroup(ctx, sessionID, "car-999")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})
}

func TestDashboardSessionUseCase_Pagination(t *testing.T) {
	uc, sessionID := newSessionUseCase(t)
	ctx := context.Background()

	t.Run("page below one", func(t *testing.T) {
		_, err := uc.SetPage(ctx, sessionID, entities.FilterValueAll, 0)
		if !errors.Is(err, ErrInvalidPage) {
			t.Fatalf("expected ErrInvalidPage, got %v", err)
		}
	})

	t.Run("unknown cursor key", func(t *testing.T) {
		_, err := uc.SetPage(ctx, sessionID, "car-999", 1)
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("flat cursor moves independently of group cursors", func(t *testing.T) {
		view, err := uc.SetPage(ctx, sessionID, entities.FilterValueAll, 2)
		if err != nil {
			t.Fatalf("SetPage failed: %v", err)
		}
		if view.AllSlips.CurrentPage != 2 {
			t.Fatalf("expected flat cursor at 2, got %d", view.AllSlips.CurrentPage)
		}
		if g := groupByVehicle(t, view, "car-001"); g.Page.CurrentPage != 1 {
			t.Fatalf("group cursor moved with the flat one: %d", g.Page.CurrentPage)
		}
	})

	t.Run("cursor survives filter and tab changes", func(t *testing.T) {
		view, err := uc.SetTab(ctx, sessionID, entities.TabPaid)
		if err != nil {
			t.Fatalf("SetTab failed: %v", err)
		}
		if view.AllSlips.CurrentPage != 2 {
			t.Fatalf("tab change reset the cursor to %d", view.AllSlips.CurrentPage)
		}

		mk := "Jeep"
		view, err = uc.UpdateFilters(ctx, sessionID, FilterUpdate{Make: &mk})
		if err != nil {
			t.Fatalf("UpdateFilters failed: %v", err)
		}
		// One matching slip, one total page; the stale cursor yields an
		// empty slice instead of snapping back.
		if view.AllSlips.CurrentPage != 2 || len(view.AllSlips.Items) != 0 {
			t.Fatalf("expected stale empty page, got page=%d items=%d", view.AllSlips.CurrentPage, len(view.AllSlips.Items))
		}
	})
}
