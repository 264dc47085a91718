package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobScheduled JobStatus = "scheduled"
	JobCompleted JobStatus = "completed"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// BladePosition identifies which wiper arm a blade line item belongs to.
type BladePosition string

const (
	PositionDriver    BladePosition = "Driver"
	PositionPassenger BladePosition = "Passenger"
	PositionRear      BladePosition = "Rear"
)

// DefaultJobPrice is the price a new job starts with before any adjustment.
var DefaultJobPrice = decimal.NewFromInt(50)

// DefaultUnitCost is the assumed wholesale cost of one blade when no
// per-size cost has been recorded.
var DefaultUnitCost = decimal.NewFromInt(7)

// SizeEntry holds the wiper blade sizes for one vehicle. Sizes are display
// strings in inches (e.g. `26"`). Rear is empty for vehicles without a rear
// wiper.
type SizeEntry struct {
	Driver    string `json:"driver"`
	Passenger string `json:"passenger"`
	Rear      string `json:"rear,omitempty"`
}

type Vehicle struct {
	Make       string     `json:"make"`
	Model      string     `json:"model"`
	Year       string     `json:"year"`
	WiperSizes *SizeEntry `json:"wiperSizes,omitempty"`
}

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Vehicles  []Vehicle `json:"vehicles"`
	CreatedAt time.Time `json:"createdAt"`
}

// BladeLineItem is a blade requirement captured on a job. Sizes are copied
// from the vehicle at job creation time so later reference-table edits never
// change existing jobs.
type BladeLineItem struct {
	Size     string        `json:"size"`
	Position BladePosition `json:"position"`
}

// Job tracks a wiper installation from creation through completion.
// CustomerName is denormalized for display and kept in sync by a batch
// update when the customer is renamed.
type Job struct {
	ID            string           `json:"id"`
	CustomerID    string           `json:"customerId"`
	CustomerName  string           `json:"customerName"`
	VehicleIndex  int              `json:"vehicleIndex"`
	Status        JobStatus        `json:"status"`
	ScheduledDate string           `json:"scheduledDate,omitempty"`
	Blades        []BladeLineItem  `json:"blades"`
	CreatedAt     time.Time        `json:"createdAt"`
	CompletedAt   *time.Time       `json:"completedAt,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	BladeCosts    *decimal.Decimal `json:"bladeCosts,omitempty"`
}

type ExpenseCategory string

const (
	ExpenseTransport ExpenseCategory = "transport"
	ExpenseMarketing ExpenseCategory = "marketing"
	ExpenseSupplies  ExpenseCategory = "supplies"
	ExpenseOther     ExpenseCategory = "other"
)

type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    ExpenseCategory `json:"category"`
}

// StockInfo is the per-size inventory view used by analytics: on-hand
// quantity plus the unit cost applied when valuing or costing that size.
type StockInfo struct {
	Qty      int             `json:"qty"`
	UnitCost decimal.Decimal `json:"unitCost"`
}
