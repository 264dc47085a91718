package core_test

import (
	"errors"
	"testing"
	"time"

	"clearview-wipers/internal/core"

	"github.com/shopspring/decimal"
)

func testCustomer() *core.Customer {
	return &core.Customer{
		ID:   "c1",
		Name: "Sarah Johnson",
		Vehicles: []core.Vehicle{
			{Make: "Toyota", Model: "Camry", Year: "2021", WiperSizes: &core.SizeEntry{Driver: `26"`, Passenger: `18"`}},
			{Make: "Honda", Model: "CR-V", Year: "2020", WiperSizes: &core.SizeEntry{Driver: `26"`, Passenger: `17"`, Rear: `12"`}},
			{Make: "Yugo", Model: "GV", Year: "1990"},
		},
	}
}

func TestNewJobCopiesBlades(t *testing.T) {
	now := time.Now()

	t.Run("no rear wiper", func(t *testing.T) {
		job, err := core.NewJob("j1", testCustomer(), 0, now)
		if err != nil {
			t.Fatalf("NewJob failed: %v", err)
		}
		if len(job.Blades) != 2 {
			t.Fatalf("expected 2 blades, got %d", len(job.Blades))
		}
		if job.Blades[0].Position != core.PositionDriver || job.Blades[0].Size != `26"` {
			t.Errorf("driver blade = %+v", job.Blades[0])
		}
		if job.Blades[1].Position != core.PositionPassenger || job.Blades[1].Size != `18"` {
			t.Errorf("passenger blade = %+v", job.Blades[1])
		}
		if job.Status != core.JobPending {
			t.Errorf("status = %s, want pending", job.Status)
		}
		if !job.Price.Equal(decimal.NewFromInt(50)) {
			t.Errorf("price = %s, want default 50", job.Price)
		}
		if job.CustomerName != "Sarah Johnson" {
			t.Errorf("customerName = %q, want denormalized name", job.CustomerName)
		}
	})

	t.Run("with rear wiper", func(t *testing.T) {
		job, err := core.NewJob("j2", testCustomer(), 1, now)
		if err != nil {
			t.Fatalf("NewJob failed: %v", err)
		}
		if len(job.Blades) != 3 {
			t.Fatalf("expected 3 blades, got %d", len(job.Blades))
		}
		if job.Blades[2].Position != core.PositionRear || job.Blades[2].Size != `12"` {
			t.Errorf("rear blade = %+v", job.Blades[2])
		}
	})

	t.Run("unresolved vehicle has no blades", func(t *testing.T) {
		job, err := core.NewJob("j3", testCustomer(), 2, now)
		if err != nil {
			t.Fatalf("NewJob failed: %v", err)
		}
		if len(job.Blades) != 0 {
			t.Errorf("expected no blades for unresolved vehicle, got %v", job.Blades)
		}
	})

	t.Run("vehicle index out of range", func(t *testing.T) {
		if _, err := core.NewJob("j4", testCustomer(), 9, now); err == nil {
			t.Error("expected error for out-of-range vehicle index")
		}
	})
}

func TestJobSchedule(t *testing.T) {
	now := time.Now()
	job, _ := core.NewJob("j1", testCustomer(), 0, now)

	if err := job.Schedule(""); err == nil {
		t.Error("Schedule with empty date succeeded, want rejection")
	}
	if job.Status != core.JobPending {
		t.Errorf("status after rejected schedule = %s, want pending", job.Status)
	}

	if err := job.Schedule("2026-09-01"); err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	if job.Status != core.JobScheduled || job.ScheduledDate != "2026-09-01" {
		t.Errorf("job = %s on %s, want scheduled on 2026-09-01", job.Status, job.ScheduledDate)
	}

	// rescheduling a scheduled job is allowed
	if err := job.Schedule("2026-09-02"); err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}
	if job.ScheduledDate != "2026-09-02" {
		t.Errorf("scheduledDate = %s, want 2026-09-02", job.ScheduledDate)
	}
}

func TestJobComplete(t *testing.T) {
	now := time.Now()

	t.Run("happy path with override price", func(t *testing.T) {
		job, _ := core.NewJob("j1", testCustomer(), 0, now)
		led := core.Ledger{`26"`: 2, `18"`: 1}

		if err := job.Complete(led, "2026-09-01", "65", now); err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if job.Status != core.JobCompleted {
			t.Errorf("status = %s, want completed", job.Status)
		}
		if job.CompletedAt == nil {
			t.Error("completedAt not set")
		}
		if !job.Price.Equal(decimal.NewFromInt(65)) {
			t.Errorf("price = %s, want override 65", job.Price)
		}
		if led[`26"`] != 1 || led[`18"`] != 0 {
			t.Errorf("ledger after completion = %v, want 26\"=1 18\"=0", led)
		}
	})

	t.Run("unparseable price keeps prior price", func(t *testing.T) {
		job, _ := core.NewJob("j1", testCustomer(), 0, now)
		led := core.Ledger{`26"`: 1, `18"`: 1}

		if err := job.Complete(led, "2026-09-01", "abc", now); err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if !job.Price.Equal(decimal.NewFromInt(50)) {
			t.Errorf("price = %s, want prior 50", job.Price)
		}
	})

	t.Run("no schedule date", func(t *testing.T) {
		job, _ := core.NewJob("j1", testCustomer(), 0, now)
		led := core.Ledger{`26"`: 1, `18"`: 1}

		err := job.Complete(led, "", "", now)
		if !errors.Is(err, core.ErrNotScheduled) {
			t.Fatalf("err = %v, want ErrNotScheduled", err)
		}
		if job.Status != core.JobPending || led[`26"`] != 1 {
			t.Error("rejected completion must leave job and ledger untouched")
		}
	})

	t.Run("previously scheduled date suffices", func(t *testing.T) {
		job, _ := core.NewJob("j1", testCustomer(), 0, now)
		led := core.Ledger{`26"`: 1, `18"`: 1}
		if err := job.Schedule("2026-09-01"); err != nil {
			t.Fatal(err)
		}
		if err := job.Complete(led, "", "", now); err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		job, _ := core.NewJob("j1", testCustomer(), 0, now)
		led := core.Ledger{`26"`: 1, `18"`: 0}

		err := job.Complete(led, "2026-09-01", "65", now)
		if !errors.Is(err, core.ErrInsufficientStock) {
			t.Fatalf("err = %v, want ErrInsufficientStock", err)
		}
		if job.Status != core.JobPending {
			t.Errorf("status = %s, want pending (no state change)", job.Status)
		}
		if !job.Price.Equal(decimal.NewFromInt(50)) {
			t.Errorf("price = %s, want unchanged 50", job.Price)
		}
		if led[`26"`] != 1 {
			t.Errorf("ledger mutated on rejected completion: %v", led)
		}
	})

	t.Run("completed is terminal", func(t *testing.T) {
		job, _ := core.NewJob("j1", testCustomer(), 0, now)
		led := core.Ledger{`26"`: 5, `18"`: 5}
		if err := job.Complete(led, "2026-09-01", "", now); err != nil {
			t.Fatal(err)
		}

		if err := job.Complete(led, "2026-09-02", "99", now); !errors.Is(err, core.ErrJobCompleted) {
			t.Errorf("second Complete err = %v, want ErrJobCompleted", err)
		}
		if err := job.Schedule("2026-09-03"); !errors.Is(err, core.ErrJobCompleted) {
			t.Errorf("Schedule after completion err = %v, want ErrJobCompleted", err)
		}
		if led[`26"`] != 4 {
			t.Errorf("ledger decremented twice: %v", led)
		}
	})
}
