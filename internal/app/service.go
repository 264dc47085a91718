package app

import (
	"context"

	"clearview-wipers/internal/core"
	"clearview-wipers/internal/geo"
)

// ApplicationService is the single interface UI adapters call. It decouples
// presentation from business logic. Implementations must contain no display
// logic of any kind.
type ApplicationService interface {
	// ResolveVehicle looks up wiper sizes for a make/model pair. A nil
	// result means the vehicle is unknown; that is not an error.
	ResolveVehicle(make, model string) *core.SizeEntry

	// Makes returns the vehicle makes offered on intake forms.
	Makes() []string

	// SuggestModels returns up to 8 model suggestions for a make.
	SuggestModels(make, partial string) []string

	// CreateCustomer registers a customer, resolving wiper sizes for each
	// vehicle.
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*core.Customer, error)

	// UpdateCustomer replaces a customer's details, re-resolving wiper
	// sizes on vehicle changes. A name change fans out to the denormalized
	// customerName on all of the customer's jobs.
	UpdateCustomer(ctx context.Context, id string, req CreateCustomerRequest) (*core.Customer, error)

	// ListCustomers returns all customers, newest first.
	ListCustomers(ctx context.Context) []core.Customer

	// GetCustomer returns one customer by id.
	GetCustomer(ctx context.Context, id string) (*core.Customer, error)

	// CreateJob opens a pending job for one of a customer's vehicles,
	// copying the vehicle's blade sizes onto the job.
	CreateJob(ctx context.Context, customerID string, vehicleIndex int) (*core.Job, error)

	// ListJobs returns jobs, optionally filtered by status.
	ListJobs(ctx context.Context, status string) []core.Job

	// GetJob returns one job by id.
	GetJob(ctx context.Context, id string) (*core.Job, error)

	// ScheduleJob puts a job on the calendar. The date is required.
	ScheduleJob(ctx context.Context, id, date string) (*core.Job, error)

	// CompleteJob finishes a job: verifies stock and a schedule date,
	// consumes blades from inventory, and applies the price override.
	CompleteJob(ctx context.Context, id, date, price string) (*core.Job, error)

	// Inventory returns the current stock with unit costs, sizes in
	// ascending order.
	Inventory(ctx context.Context) *InventoryResult

	// AdjustStock moves a size's quantity by delta, floored at zero, and
	// returns the new quantity.
	AdjustStock(ctx context.Context, size string, delta int) (int, error)

	// SetStock replaces a size's quantity. Negative values are rejected.
	SetStock(ctx context.Context, size string, qty int) (int, error)

	// BladesNeeded compares open-job demand against stock and returns the
	// restock list.
	BladesNeeded(ctx context.Context) []core.ShoppingLine

	// SurveyEstimate sizes up an ad-hoc list of vehicles (e.g. a street
	// survey) into per-size demand and a buy list.
	SurveyEstimate(ctx context.Context, vehicles []SurveyVehicle) *SurveyResult

	// AddExpense records a business expense.
	AddExpense(ctx context.Context, req AddExpenseRequest) (*core.Expense, error)

	// ListExpenses returns all expenses, newest first.
	ListExpenses(ctx context.Context) []core.Expense

	// Metrics recomputes the profit analytics for a time range
	// ("week", "month", or "all").
	Metrics(ctx context.Context, timeRange string) (*core.Metrics, error)

	// DashboardSummary returns the home screen numbers and upcoming work.
	DashboardSummary(ctx context.Context) *DashboardSummary

	// RoleForUser resolves a user's role from their profile record.
	// Missing or unreadable profiles default to admin.
	RoleForUser(ctx context.Context, userID string) core.Role

	// VerifyAddress geocodes an address within the service area. A nil
	// place means no match.
	VerifyAddress(ctx context.Context, query string) (*geo.Place, error)

	// SuggestAddresses returns address completions for the intake form.
	SuggestAddresses(ctx context.Context, query string) ([]geo.Place, error)

	// IdentifyVehicle asks the photo recognition collaborator for a
	// make/model and resolves its wiper sizes.
	IdentifyVehicle(ctx context.Context) (*IdentifyResult, error)
}
