package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"novo_seguros/internal/domain/entities"
	"novo_seguros/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound    = errors.New("dashboard session not found")
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrInvalidFilterField = errors.New("invalid filter field")
	ErrInvalidSortSpec    = errors.New("invalid sort specification")
	ErrInvalidTab         = errors.New("invalid tab")
	ErrInvalidPage        = errors.New("invalid page number")
	ErrVehicleNotFound    = errors.New("vehicle not found")
)

// DashboardSession is the mutable per-user state of the slip dashboard. The
// vehicle and slip collections are loaded once at session start and never
// change afterwards; everything else mutates only through the use case's
// transition methods.

type DashboardSession struct {
	ID       string
	Vehicles []entities.Vehicle
	Slips    []entities.PaymentSlip

	Filters           entities.FilterCriteria
	SortBy            entities.SortField
	SortOrder         entities.SortOrder
	ActiveTab         entities.Tab
	SelectedVehicleID string
	SelectedSlipID    string

	// Page cursors keyed by vehicle id, plus "all" for the flat view.
	// Cursors are deliberately NOT reset when filters, sort or tab change.
	GroupPages map[string]int

	GroupStates  map[string]*entities.GroupState
	GlobalAction *entities.GlobalAction
	nextSequence int64

	vehicleIndex entities.VehicleIndex
}

// GroupView is one vehicle group as the dashboard renders it: the group
// summary, its expansion state and its current page slice.

type GroupView struct {
	VehicleID            string                 `json:"vehicleId"`
	Vehicle              entities.Vehicle       `json:"vehicle"`
	TotalAmount          float64                `json:"totalAmount"`
	PendingCount         int                    `json:"pendingCount"`
	OverdueCount         int                    `json:"overdueCount"`
	PaidCount            int                    `json:"paidCount"`
	IsExpanded           bool                   `json:"isExpanded"`
	IsGloballyControlled bool                   `json:"isGloballyControlled"`
	Page                 Page                   `json:"page"`
	Slips                []entities.PaymentSlip `json:"slips"`
}

// DashboardView is the full derived state for one session: the grouped and
// the flat paginated views stay mutually consistent because both are computed
// from the same filtered+sorted collection.

type DashboardView struct {
	SessionID         string                 `json:"sessionId"`
	Filters           entities.FilterCriteria `json:"filters"`
	SortBy            entities.SortField     `json:"sortBy"`
	SortOrder         entities.SortOrder     `json:"sortOrder"`
	ActiveTab         entities.Tab           `json:"activeTab"`
	SelectedVehicleID string                 `json:"selectedVehicleId"`
	SelectedSlipID    string                 `json:"selectedSlipId"`
	Groups            []GroupView            `json:"groups"`
	AllSlips          Page                   `json:"allSlips"`
	Statistics        entities.Statistics    `json:"statistics"`
	FilterOptions     entities.FilterOptions `json:"filterOptions"`
}

// FilterUpdate carries a partial criteria change; nil fields are untouched.

type FilterUpdate struct {
	SearchTerm   *string
	Make         *string
	Model        *string
	Year         *string
	Status       *string
	LicensePlate *string
	PolicyNumber *string
}

func (u FilterUpdate) applyTo(c *entities.FilterCriteria) {
	if u.SearchTerm != nil {
		c.SearchTerm = *u.SearchTerm
	}
	if u.Make != nil {
		c.Make = *u.Make
	}
	if u.Model != nil {
		c.Model = *u.Model
	}
	if u.Year != nil {
		c.Year = *u.Year
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.LicensePlate != nil {
		c.LicensePlate = *u.LicensePlate
	}
	if u.PolicyNumber != nil {
		c.PolicyNumber = *u.PolicyNumber
	}
}

// IDashboardSessionUseCase exposes the dashboard session transitions and the
// derived view. Operations that the original dashboard surfaced as toasts
// return their notifications as values; the caller renders them.

type IDashboardSessionUseCase interface {
	CreateSession(ctx context.Context) (DashboardView, error)
	View(ctx context.Context, sessionID string) (DashboardView, error)
	UpdateFilters(ctx context.Context, sessionID string, update FilterUpdate) (DashboardView, error)
	ClearFilters(ctx context.Context, sessionID string) (DashboardView, []entities.Notification, error)
	ClearFilter(ctx context.Context, sessionID string, field entities.FilterField) (DashboardView, error)
	SetSort(ctx context.Context, sessionID string, field entities.SortField, order entities.SortOrder) (DashboardView, error)
	SetTab(ctx context.Context, sessionID string, tab entities.Tab) (DashboardView, error)
	SelectVehicle(ctx context.Context, sessionID, vehicleID string) (DashboardView, error)
	SelectSlip(ctx context.Context, sessionID, slipID string) (DashboardView, error)
	ToggleGroup(ctx context.Context, sessionID, vehicleID string) (DashboardView, error)
	ExpandAll(ctx context.Context, sessionID string) (DashboardView, []entities.Notification, error)
	CollapseAll(ctx context.Context, sessionID string) (DashboardView, []entities.Notification, error)
	SetPage(ctx context.Context, sessionID, key string, page int) (DashboardView, error)
}

type DashboardSessionUseCase struct {
	vehicleRepo interfaces.IVehicleRepository
	slipRepo    interfaces.IPaymentSlipRepository

	mu       sync.Mutex
	sessions map[string]*DashboardSession
}

var _ IDashboardSessionUseCase = (*DashboardSessionUseCase)(nil)

func NewDashboardSessionUseCase(vehicleRepo interfaces.IVehicleRepository, slipRepo interfaces.IPaymentSlipRepository) *DashboardSessionUseCase {
	return &DashboardSessionUseCase{
		vehicleRepo: vehicleRepo,
		slipRepo:    slipRepo,
		sessions:    make(map[string]*DashboardSession),
	}
}

func (u *DashboardSessionUseCase) CreateSession(ctx context.Context) (DashboardView, error) {
	vehicles, err := u.vehicleRepo.ListAll(ctx)
	if err != nil {
		return DashboardView{}, err
	}
	slips, err := u.slipRepo.ListAll(ctx)
	if err != nil {
		return DashboardView{}, err
	}

	s := &DashboardSession{
		ID:                uuid.NewString(),
		Vehicles:          vehicles,
		Slips:             slips,
		Filters:           entities.DefaultFilterCriteria(),
		SortBy:            entities.SortByDate,
		SortOrder:         entities.SortDesc,
		ActiveTab:         entities.TabAll,
		SelectedVehicleID: entities.FilterValueAll,
		GroupPages:        make(map[string]int),
		GroupStates:       make(map[string]*entities.GroupState),
		vehicleIndex:      entities.IndexVehicles(vehicles),
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.sessions[s.ID] = s
	log.Printf("[session][usecase] created session_id=%s vehicles=%d slips=%d", s.ID, len(vehicles), len(slips))
	return u.buildView(s), nil
}

func (u *DashboardSessionUseCase) View(ctx context.Context, sessionID string) (DashboardView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.session(sessionID)
	if err != nil {
		return DashboardView{}, err
	}
	return u.buildView(s), nil
}

func (u *DashboardSessionUseCase) UpdateFilters(ctx context.Context, sessionID string, update FilterUpdate) (DashboardView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.session(sessionID)
	if err != nil {
		return DashboardView{}, err
	}
	update.applyTo(&s.Filters)
	return u.buildView(s), nil
}

func (u *DashboardSessionUseCase) ClearFilters(ctx context.Context, sessionID string) (DashboardView, []entities.Notification, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.session(sessionID)
	if err != nil {
		return DashboardView{}, nil, err
	}
	s.Filters = entities.DefaultFilterCriteria()
	notifications := []entities.Notification{
		entities.InfoNotification("Filtros limpos", "Todos os filtros foram removidos."),
	}
	return u.buildView(s), notifications, nil
}

func (u *DashboardSessionUseCase) ClearFilter(ctx context.Context, sessionID string, field entities.FilterField) (DashboardView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.session(sessionID)
	if err != nil {
		return DashboardView{}, err
	}
	if !s.Filters.Clear(field) {
		return DashboardView{}, ErrInvalidFilterField
	}
	return u.buildView(s), nil
}

func (u *DashboardSessionUseCase) SetSort(ctx context.Context, sessionID string, field entities.SortField, order entities.SortOrder) (DashboardView, error) {
	if !field.Valid() || !order.Valid() {
		return DashboardView{}, ErrInvalidSortSpec
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.session(sessionID)
	if err != nil {
		return DashboardView{}, err
	}
	s.SortBy = field
	s.SortOrder = order
	return u.buildView(s), nil
}

func (u *DashboardSessionUseCase) SetTab(ctx context.Context, sessionID string, tab entities.Tab) (DashboardView, error) {
	if !tab.Valid() {
		return DashboardView{}, ErrInvalidTab
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.session(sessionID)
	if err != nil {
		return DashboardView{}, err
	}
	s.ActiveTab = tab
	return u.buildView(s), nil
}

func (u *DashboardSessionUseCase) SelectVehicle(ctx context.Context, sessionID, vehicleID string) (DashboardView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.session(sessionID)
	if err != nil {
		return DashboardView{}, err
	}
	if vehicleID != entities.FilterValueAll {
		if _, ok := s.vehicleIndex[vehicleID]; !ok {
			return DashboardView{}, ErrVehicleNotFound
		}
	}
	s.SelectedVehicleID = vehicleID
	return u.buildView(s), nil
}

func (u *DashboardSessionUseCase) SelectSlip(ctx context.Context, sessionID, slipID string) (DashboardView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.session(sessionID)
	if err != nil {
		return DashboardView{}, err
	}
	s.SelectedSlipID = slipID
	return u.buildView(s), nil
}

// ToggleGroup flips one group's expansion. Any pending broadcast is consumed
// first so the toggle flips the state the user actually sees; the toggle then
// always hands control back to the user (isGloballyControlled = false).
func (u *DashboardSessionUseCase) ToggleGroup(ctx context.Context, sessionID, vehicleID string) (DashboardView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.session(sessionID)
	if err != nil {
		return DashboardView{}, err
	}
	if _, ok := s.vehicleIndex[vehicleID]; !ok {
		return DashboardView{}, ErrVehicleNotFound
	}

	state := s.ensureGroupState(vehicleID)
	s.consumeGlobalAction(state)
	state.IsExpanded = !state.IsExpanded
	state.IsGloballyControlled = false
	return u.buildView(s), nil
}

func (u *DashboardSessionUseCase) ExpandAll(ctx context.Context, sessionID string) (DashboardView, []entities.Notification, error) {
	return u.broadcast(sessionID, entities.GlobalExpand,
		entities.InfoNotification(
			"Todos os grupos expandidos",
			"Todos os grupos de veículos foram expandidos. Clique em qualquer cabeçalho para controle individual.",
		))
}

func (u *DashboardSessionUseCase) CollapseAll(ctx context.Context, sessionID string) (DashboardView, []entities.Notification, error) {
	return u.broadcast(sessionID, entities.GlobalCollapse,
		entities.InfoNotification(
			"Todos os grupos recolhidos",
			"Todos os grupos de veículos foram recolhidos. Clique em qualquer cabeçalho para controle individual.",
		))
}

func (u *DashboardSessionUseCase) broadcast(sessionID string, kind entities.GlobalActionKind, n entities.Notification) (DashboardView, []entities.Notification, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.session(sessionID)
	if err != nil {
		return DashboardView{}, nil, err
	}
	s.nextSequence++
	s.GlobalAction = &entities.GlobalAction{Kind: kind, Sequence: s.nextSequence}
	log.Printf("[session][usecase] broadcast session_id=%s kind=%s sequence=%d", s.ID, kind, s.nextSequence)
	return u.buildView(s), []entities.Notification{n}, nil
}

// SetPage moves the cursor for one group (vehicle id) or the flat view
// ("all"). It does not clamp against the current total pages; an out-of-range
// cursor simply yields an empty page until the caller steers back.
func (u *DashboardSessionUseCase) SetPage(ctx context.Context, sessionID, key string, page int) (DashboardView, error) {
	if page < 1 {
		return DashboardView{}, ErrInvalidPage
	}
	if strings.TrimSpace(key) == "" {
		return DashboardView{}, ErrVehicleNotFound
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.session(sessionID)
	if err != nil {
		return DashboardView{}, err
	}
	if key != entities.FilterValueAll {
		if _, ok := s.vehicleIndex[key]; !ok {
			return DashboardView{}, ErrVehicleNotFound
		}
	}
	s.GroupPages[key] = page
	return u.buildView(s), nil
}

func (u *DashboardSessionUseCase) session(sessionID string) (*DashboardSession, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSessionID
	}
	s, ok := u.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (s *DashboardSession) ensureGroupState(vehicleID string) *entities.GroupState {
	state, ok := s.GroupStates[vehicleID]
	if !ok {
		state = &entities.GroupState{}
		s.GroupStates[vehicleID] = state
	}
	return state
}

// consumeGlobalAction applies the live broadcast to one group if that group
// has not seen its sequence yet. Replays of an already-seen sequence are
// no-ops.
func (s *DashboardSession) consumeGlobalAction(state *entities.GroupState) {
	action := s.GlobalAction
	if action == nil || state.LastSeenSequence >= action.Sequence {
		return
	}
	state.IsExpanded = action.Kind == entities.GlobalExpand
	state.IsGloballyControlled = true
	state.LastSeenSequence = action.Sequence
}

func (s *DashboardSession) pageFor(key string) int {
	if page, ok := s.GroupPages[key]; ok {
		return page
	}
	return 1
}

// buildView recomputes every derived view from the session state. Groups
// present in the current filtered view consume the live broadcast here;
// groups filtered out keep their last-seen sequence and catch up when they
// reappear.
func (u *DashboardSessionUseCase) buildView(s *DashboardSession) DashboardView {
	filtered := FilterSlips(s.Slips, s.vehicleIndex, s.Filters, s.ActiveTab, s.SelectedVehicleID)
	sorted := SortSlips(filtered, s.SortBy, s.SortOrder)
	order, groups := GroupSlips(sorted, s.vehicleIndex)

	groupViews := make([]GroupView, 0, len(order))
	for _, vehicleID := range order {
		group := groups[vehicleID]

		// Group states are created lazily on the first real transition: a
		// toggle or a broadcast consumption. A group that never transitioned
		// renders from the zero value without materializing an entry.
		state, ok := s.GroupStates[vehicleID]
		if !ok {
			if s.GlobalAction == nil {
				state = &entities.GroupState{}
			} else {
				state = s.ensureGroupState(vehicleID)
			}
		}
		s.consumeGlobalAction(state)

		groupViews = append(groupViews, GroupView{
			VehicleID:            vehicleID,
			Vehicle:              group.Vehicle,
			TotalAmount:          group.TotalAmount,
			PendingCount:         group.PendingCount,
			OverdueCount:         group.OverdueCount,
			PaidCount:            group.PaidCount,
			IsExpanded:           state.IsExpanded,
			IsGloballyControlled: state.IsGloballyControlled,
			Page:                 Paginate(group.Slips, SlipsPerPage, s.pageFor(vehicleID)),
			Slips:                group.Slips,
		})
	}

	return DashboardView{
		SessionID:         s.ID,
		Filters:           s.Filters,
		SortBy:            s.SortBy,
		SortOrder:         s.SortOrder,
		ActiveTab:         s.ActiveTab,
		SelectedVehicleID: s.SelectedVehicleID,
		SelectedSlipID:    s.SelectedSlipID,
		Groups:            groupViews,
		AllSlips:          Paginate(sorted, SlipsPerPage, s.pageFor(entities.FilterValueAll)),
		Statistics:        ComputeStatistics(s.Slips, filtered, s.vehicleIndex, s.Filters, s.GroupStates, s.SelectedVehicleID),
		FilterOptions:     CollectFilterOptions(s.Slips, s.Vehicles),
	}
}
