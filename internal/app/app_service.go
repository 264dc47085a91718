package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"clearview-wipers/internal/core"
	"clearview-wipers/internal/geo"
	"clearview-wipers/internal/photoid"
	"clearview-wipers/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements ApplicationService on top of the document store. Core
// logic runs synchronously over an in-memory snapshot that store
// subscriptions keep current; writes go through the store and are also
// applied to the snapshot immediately so callers read their own writes.
type Service struct {
	store   store.Store
	geo     *geo.Client
	photoID photoid.Identifier
	log     *zap.Logger

	mu        sync.RWMutex
	customers []core.Customer
	jobs      []core.Job
	expenses  []core.Expense
	ledger    core.Ledger
}

func NewService(st store.Store, geoClient *geo.Client, identifier photoid.Identifier, log *zap.Logger) *Service {
	return &Service{
		store:   st,
		geo:     geoClient,
		photoID: identifier,
		log:     log,
		ledger:  core.Ledger{},
	}
}

// Start subscribes to every collection the snapshot is built from. It must
// be called once before the service handles requests.
func (s *Service) Start(ctx context.Context) error {
	if _, err := s.store.Subscribe(ctx, store.CollectionCustomers, s.onCustomers); err != nil {
		return fmt.Errorf("failed to subscribe to customers: %w", err)
	}
	if _, err := s.store.Subscribe(ctx, store.CollectionJobs, s.onJobs); err != nil {
		return fmt.Errorf("failed to subscribe to jobs: %w", err)
	}
	if _, err := s.store.Subscribe(ctx, store.CollectionExpenses, s.onExpenses); err != nil {
		return fmt.Errorf("failed to subscribe to expenses: %w", err)
	}
	if _, err := s.store.Subscribe(ctx, store.CollectionData, s.onData); err != nil {
		return fmt.Errorf("failed to subscribe to inventory: %w", err)
	}
	return nil
}

// ── Snapshot maintenance ────────────────────────────────────────────────────

func (s *Service) onCustomers(docs []store.Document) {
	customers := make([]core.Customer, 0, len(docs))
	for _, d := range docs {
		var c core.Customer
		if err := json.Unmarshal(d.Data, &c); err != nil {
			s.log.Warn("skipping unreadable customer record", zap.String("id", d.ID), zap.Error(err))
			continue
		}
		customers = append(customers, c)
	}
	s.mu.Lock()
	s.customers = customers
	s.mu.Unlock()
}

func (s *Service) onJobs(docs []store.Document) {
	jobs := make([]core.Job, 0, len(docs))
	for _, d := range docs {
		var j core.Job
		if err := json.Unmarshal(d.Data, &j); err != nil {
			s.log.Warn("skipping unreadable job record", zap.String("id", d.ID), zap.Error(err))
			continue
		}
		jobs = append(jobs, j)
	}
	s.mu.Lock()
	s.jobs = jobs
	s.mu.Unlock()
}

func (s *Service) onExpenses(docs []store.Document) {
	expenses := make([]core.Expense, 0, len(docs))
	for _, d := range docs {
		var e core.Expense
		if err := json.Unmarshal(d.Data, &e); err != nil {
			s.log.Warn("skipping unreadable expense record", zap.String("id", d.ID), zap.Error(err))
			continue
		}
		expenses = append(expenses, e)
	}
	s.mu.Lock()
	s.expenses = expenses
	s.mu.Unlock()
}

func (s *Service) onData(docs []store.Document) {
	for _, d := range docs {
		if d.ID != store.InventoryDocID {
			continue
		}
		var inv store.InventoryDoc
		if err := json.Unmarshal(d.Data, &inv); err != nil {
			s.log.Warn("skipping unreadable inventory document", zap.Error(err))
			return
		}
		s.mu.Lock()
		s.ledger = core.Ledger(inv.Counts)
		if s.ledger == nil {
			s.ledger = core.Ledger{}
		}
		s.mu.Unlock()
		return
	}
}

// ── Resolver ────────────────────────────────────────────────────────────────

func (s *Service) ResolveVehicle(make, model string) *core.SizeEntry {
	return core.Resolve(make, model)
}

func (s *Service) Makes() []string {
	return core.Makes()
}

func (s *Service) SuggestModels(make, partial string) []string {
	return core.SuggestModels(make, partial)
}

// ── Customers ───────────────────────────────────────────────────────────────

func (s *Service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*core.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	customer := core.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Address:   strings.TrimSpace(req.Address),
		Vehicles:  buildVehicles(req.Vehicles),
		CreatedAt: time.Now(),
	}

	if err := s.store.Upsert(ctx, store.CollectionCustomers, customer.ID, customer); err != nil {
		return nil, err
	}
	s.applyCustomer(customer)
	return &customer, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id string, req CreateCustomerRequest) (*core.Customer, error) {
	existing, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	updated := core.Customer{
		ID:        existing.ID,
		Name:      name,
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Address:   strings.TrimSpace(req.Address),
		Vehicles:  buildVehicles(req.Vehicles),
		CreatedAt: existing.CreatedAt,
	}

	if err := s.store.Upsert(ctx, store.CollectionCustomers, updated.ID, updated); err != nil {
		return nil, err
	}
	s.applyCustomer(updated)

	if updated.Name != existing.Name {
		s.renameJobsFor(ctx, updated.ID, updated.Name)
	}
	return &updated, nil
}

// renameJobsFor pushes a customer's new name onto the denormalized
// customerName of every job that references them. Each job is updated
// individually; a failure is logged and the rest proceed, so retrying the
// rename converges (at-least-once).
func (s *Service) renameJobsFor(ctx context.Context, customerID, name string) {
	docs, err := s.store.QueryByField(ctx, store.CollectionJobs, "customerId", customerID)
	if err != nil {
		s.log.Error("failed to query jobs for rename", zap.String("customerId", customerID), zap.Error(err))
		return
	}
	for _, d := range docs {
		var j core.Job
		if err := json.Unmarshal(d.Data, &j); err != nil {
			s.log.Warn("skipping unreadable job during rename", zap.String("id", d.ID), zap.Error(err))
			continue
		}
		j.CustomerName = name
		if err := s.store.Upsert(ctx, store.CollectionJobs, j.ID, j); err != nil {
			s.log.Error("failed to rename job", zap.String("id", j.ID), zap.Error(err))
			continue
		}
		s.applyJob(j)
	}
}

func (s *Service) ListCustomers(_ context.Context) []core.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Customer, len(s.customers))
	copy(out, s.customers)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *Service) GetCustomer(_ context.Context, id string) (*core.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.ID == id {
			cc := c
			return &cc, nil
		}
	}
	return nil, fmt.Errorf("customer %s not found", id)
}

func buildVehicles(inputs []VehicleInput) []core.Vehicle {
	vehicles := make([]core.Vehicle, 0, len(inputs))
	for _, in := range inputs {
		vehicles = append(vehicles, core.Vehicle{
			Make:       strings.TrimSpace(in.Make),
			Model:      strings.TrimSpace(in.Model),
			Year:       strings.TrimSpace(in.Year),
			WiperSizes: core.Resolve(in.Make, in.Model),
		})
	}
	return vehicles
}

// ── Jobs ────────────────────────────────────────────────────────────────────

func (s *Service) CreateJob(ctx context.Context, customerID string, vehicleIndex int) (*core.Job, error) {
	customer, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	job, err := core.NewJob(uuid.NewString(), customer, vehicleIndex, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.store.Upsert(ctx, store.CollectionJobs, job.ID, job); err != nil {
		return nil, err
	}
	s.applyJob(*job)
	return job, nil
}

func (s *Service) ListJobs(_ context.Context, status string) []core.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if status != "" && string(j.Status) != status {
			continue
		}
		out = append(out, j)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *Service) GetJob(_ context.Context, id string) (*core.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, j := range s.jobs {
		if j.ID == id {
			jj := j
			return &jj, nil
		}
	}
	return nil, fmt.Errorf("job %s not found", id)
}

func (s *Service) ScheduleJob(ctx context.Context, id, date string) (*core.Job, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := job.Schedule(date); err != nil {
		return nil, err
	}
	if err := s.store.Upsert(ctx, store.CollectionJobs, job.ID, job); err != nil {
		return nil, err
	}
	s.applyJob(*job)
	return job, nil
}

func (s *Service) CompleteJob(ctx context.Context, id, date, price string) (*core.Job, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	led := s.ledger.Clone()
	s.mu.RUnlock()

	if err := job.Complete(led, date, price, time.Now()); err != nil {
		return nil, err
	}

	if err := s.store.Upsert(ctx, store.CollectionData, store.InventoryDocID, store.InventoryDoc{Counts: led}); err != nil {
		return nil, err
	}
	if err := s.store.Upsert(ctx, store.CollectionJobs, job.ID, job); err != nil {
		return nil, err
	}
	s.applyLedger(led)
	s.applyJob(*job)
	return job, nil
}

// ── Inventory ───────────────────────────────────────────────────────────────

func (s *Service) Inventory(_ context.Context) *InventoryResult {
	s.mu.RLock()
	led := s.ledger.Clone()
	s.mu.RUnlock()

	view := led.View(nil)
	result := &InventoryResult{TotalUnits: led.TotalUnits()}
	for _, size := range led.Sizes() {
		result.Lines = append(result.Lines, StockLine{Size: size, Stock: view[size]})
	}
	return result
}

func (s *Service) AdjustStock(ctx context.Context, size string, delta int) (int, error) {
	s.mu.RLock()
	led := s.ledger.Clone()
	s.mu.RUnlock()

	qty := led.Adjust(size, delta)
	if err := s.store.Upsert(ctx, store.CollectionData, store.InventoryDocID, store.InventoryDoc{Counts: led}); err != nil {
		return 0, err
	}
	s.applyLedger(led)
	return qty, nil
}

func (s *Service) SetStock(ctx context.Context, size string, qty int) (int, error) {
	s.mu.RLock()
	led := s.ledger.Clone()
	s.mu.RUnlock()

	if err := led.SetQuantity(size, qty); err != nil {
		return 0, err
	}
	if err := s.store.Upsert(ctx, store.CollectionData, store.InventoryDocID, store.InventoryDoc{Counts: led}); err != nil {
		return 0, err
	}
	s.applyLedger(led)
	return qty, nil
}

func (s *Service) BladesNeeded(_ context.Context) []core.ShoppingLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.ShoppingList(s.jobs)
}

func (s *Service) SurveyEstimate(_ context.Context, vehicles []SurveyVehicle) *SurveyResult {
	result := &SurveyResult{}

	// Express the surveyed vehicles as pending pseudo-jobs so the ledger's
	// shopping list logic can price the demand.
	var pseudo []core.Job
	for _, v := range vehicles {
		entry := core.Resolve(v.Make, v.Model)
		if entry == nil {
			result.Unresolved++
			continue
		}
		result.Resolved++
		blades := []core.BladeLineItem{
			{Size: entry.Driver, Position: core.PositionDriver},
			{Size: entry.Passenger, Position: core.PositionPassenger},
		}
		if entry.Rear != "" {
			blades = append(blades, core.BladeLineItem{Size: entry.Rear, Position: core.PositionRear})
		}
		pseudo = append(pseudo, core.Job{Status: core.JobPending, Blades: blades})
	}

	s.mu.RLock()
	result.Lines = s.ledger.ShoppingList(pseudo)
	s.mu.RUnlock()
	return result
}

// ── Expenses & analytics ────────────────────────────────────────────────────

func (s *Service) AddExpense(ctx context.Context, req AddExpenseRequest) (*core.Expense, error) {
	expense, err := core.NewExpense(uuid.NewString(), req.Description, req.Amount, req.Date, core.ExpenseCategory(req.Category), time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.store.Upsert(ctx, store.CollectionExpenses, expense.ID, expense); err != nil {
		return nil, err
	}
	s.applyExpense(*expense)
	return expense, nil
}

func (s *Service) ListExpenses(_ context.Context) []core.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Expense, len(s.expenses))
	copy(out, s.expenses)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func (s *Service) Metrics(_ context.Context, timeRange string) (*core.Metrics, error) {
	r, err := core.ParseTimeRange(timeRange)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	jobs := make([]core.Job, len(s.jobs))
	copy(jobs, s.jobs)
	expenses := make([]core.Expense, len(s.expenses))
	copy(expenses, s.expenses)
	inv := s.ledger.View(nil)
	s.mu.RUnlock()

	return core.ComputeMetrics(jobs, expenses, inv, r, time.Now()), nil
}

func (s *Service) DashboardSummary(_ context.Context) *DashboardSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := &DashboardSummary{
		Customers:     len(s.customers),
		BladesInStock: s.ledger.TotalUnits(),
	}

	today := time.Now().Format("2006-01-02")
	var scheduled []core.Job
	for _, j := range s.jobs {
		switch j.Status {
		case core.JobPending:
			summary.ActiveJobs++
		case core.JobScheduled:
			summary.ActiveJobs++
			scheduled = append(scheduled, j)
			if j.ScheduledDate == today {
				summary.Today = append(summary.Today, j)
			}
		case core.JobCompleted:
			summary.CompletedJobs++
		}
	}

	sort.SliceStable(scheduled, func(i, j int) bool { return scheduled[i].ScheduledDate < scheduled[j].ScheduledDate })
	if len(scheduled) > 3 {
		scheduled = scheduled[:3]
	}
	summary.Upcoming = scheduled
	return summary
}

// ── Roles, geocoding, photo identification ──────────────────────────────────

// RoleForUser reads the user's profile record. Anything other than an
// explicit employee role, including a missing or unreadable record, is
// treated as admin.
func (s *Service) RoleForUser(ctx context.Context, userID string) core.Role {
	docs, err := s.store.Load(ctx, store.CollectionUsers)
	if err != nil {
		s.log.Warn("failed to load user profiles, defaulting to admin", zap.Error(err))
		return core.RoleAdmin
	}
	for _, d := range docs {
		if d.ID != userID {
			continue
		}
		var u store.UserDoc
		if err := json.Unmarshal(d.Data, &u); err != nil {
			return core.RoleAdmin
		}
		if u.Role == string(core.RoleEmployee) {
			return core.RoleEmployee
		}
		return core.RoleAdmin
	}
	return core.RoleAdmin
}

func (s *Service) VerifyAddress(ctx context.Context, query string) (*geo.Place, error) {
	return s.geo.Search(ctx, query)
}

func (s *Service) SuggestAddresses(ctx context.Context, query string) ([]geo.Place, error) {
	return s.geo.Suggest(ctx, query)
}

func (s *Service) IdentifyVehicle(ctx context.Context) (*IdentifyResult, error) {
	res, err := s.photoID.IdentifyFromPhoto(ctx)
	if err != nil {
		return nil, fmt.Errorf("photo identification failed: %w", err)
	}
	return &IdentifyResult{
		Make:       res.Make,
		Model:      res.Model,
		WiperSizes: core.Resolve(res.Make, res.Model),
	}, nil
}

// ── Local snapshot writes ───────────────────────────────────────────────────
//
// Writes are applied to the snapshot immediately after a successful upsert.
// The store subscription delivers the same state again shortly; the
// wholesale replace makes that harmless.

func (s *Service) applyCustomer(c core.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return
		}
	}
	s.customers = append(s.customers, c)
}

func (s *Service) applyJob(j core.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.jobs {
		if s.jobs[i].ID == j.ID {
			s.jobs[i] = j
			return
		}
	}
	s.jobs = append(s.jobs, j)
}

func (s *Service) applyExpense(e core.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
}

func (s *Service) applyLedger(led core.Ledger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = led
}
