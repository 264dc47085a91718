package store

import (
	"context"
	"time"

	"clearview-wipers/internal/core"

	"github.com/shopspring/decimal"
)

// SeedDemo writes the starter dataset into any Store: two customers, their
// open jobs, and a stocked shelf. Upserts are idempotent, so re-running over
// an already seeded database just refreshes the demo documents.
func SeedDemo(ctx context.Context, st Store) error {
	now := time.Now()
	customers := []core.Customer{
		{
			ID: "demo1", Name: "Sarah Johnson", Phone: "555-0123",
			Email: "sarah@example.com", Address: "142 Oak Street",
			Vehicles: []core.Vehicle{{
				Make: "Toyota", Model: "Camry", Year: "2021",
				WiperSizes: &core.SizeEntry{Driver: `26"`, Passenger: `18"`},
			}},
			CreatedAt: now,
		},
		{
			ID: "demo2", Name: "Mike Chen", Phone: "555-0456",
			Email: "mike@example.com", Address: "88 Elm Avenue",
			Vehicles: []core.Vehicle{{
				Make: "Honda", Model: "CR-V", Year: "2020",
				WiperSizes: &core.SizeEntry{Driver: `26"`, Passenger: `17"`, Rear: `12"`},
			}},
			CreatedAt: now,
		},
	}
	jobs := []core.Job{
		{
			ID: "j1", CustomerID: "demo1", CustomerName: "Sarah Johnson",
			Status: core.JobScheduled, ScheduledDate: "2026-02-15",
			Blades: []core.BladeLineItem{
				{Size: `26"`, Position: core.PositionDriver},
				{Size: `18"`, Position: core.PositionPassenger},
			},
			CreatedAt: now, Price: decimal.NewFromInt(35),
		},
		{
			ID: "j2", CustomerID: "demo2", CustomerName: "Mike Chen",
			Status: core.JobPending,
			Blades: []core.BladeLineItem{
				{Size: `26"`, Position: core.PositionDriver},
				{Size: `17"`, Position: core.PositionPassenger},
				{Size: `12"`, Position: core.PositionRear},
			},
			CreatedAt: now, Price: decimal.NewFromInt(45),
		},
	}
	inventory := InventoryDoc{Counts: map[string]int{
		`12"`: 4, `14"`: 3, `16"`: 5, `17"`: 6, `18"`: 8, `19"`: 4,
		`20"`: 3, `21"`: 2, `22"`: 5, `24"`: 4, `25"`: 2, `26"`: 10, `28"`: 3,
	}}

	for _, c := range customers {
		if err := st.Upsert(ctx, CollectionCustomers, c.ID, c); err != nil {
			return err
		}
	}
	for _, j := range jobs {
		if err := st.Upsert(ctx, CollectionJobs, j.ID, j); err != nil {
			return err
		}
	}
	return st.Upsert(ctx, CollectionData, InventoryDocID, inventory)
}
