package app

import (
	"clearview-wipers/internal/core"
)

// StockLine is one row of the inventory view.
type StockLine struct {
	Size  string         `json:"size"`
	Stock core.StockInfo `json:"stock"`
}

// InventoryResult is returned by Inventory.
type InventoryResult struct {
	Lines      []StockLine `json:"lines"`
	TotalUnits int         `json:"totalUnits"`
}

// SurveyResult sizes up an ad-hoc vehicle list: how many of each blade size
// the vehicles need, and what would have to be bought given current stock.
type SurveyResult struct {
	Resolved   int                 `json:"resolved"`
	Unresolved int                 `json:"unresolved"`
	Lines      []core.ShoppingLine `json:"lines"`
}

// DashboardSummary is the home screen: headline counts plus the next
// scheduled visits and today's work.
type DashboardSummary struct {
	Customers     int        `json:"customers"`
	ActiveJobs    int        `json:"activeJobs"`
	CompletedJobs int        `json:"completedJobs"`
	BladesInStock int        `json:"bladesInStock"`
	Upcoming      []core.Job `json:"upcoming"`
	Today         []core.Job `json:"today"`
}

// IdentifyResult is returned by IdentifyVehicle: the recognized vehicle and
// its resolved wiper sizes (nil when the vehicle is not in the reference
// table).
type IdentifyResult struct {
	Make       string          `json:"make"`
	Model      string          `json:"model"`
	WiperSizes *core.SizeEntry `json:"wiperSizes,omitempty"`
}
