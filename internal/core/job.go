package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrJobCompleted is returned for any transition attempted on a
	// completed job. Completed is terminal.
	ErrJobCompleted = errors.New("job is already completed")

	// ErrNotScheduled is returned when completion is attempted without a
	// schedule date on record or supplied with the request.
	ErrNotScheduled = errors.New("job has no scheduled date")

	// ErrInsufficientStock is returned when a blade size required by the
	// job has zero stock on hand.
	ErrInsufficientStock = errors.New("insufficient blade stock")
)

// NewJob opens a pending job for one of the customer's vehicles. The blade
// line items are copied from the vehicle's resolved sizes at this moment.
func NewJob(id string, c *Customer, vehicleIndex int, now time.Time) (*Job, error) {
	if vehicleIndex < 0 || vehicleIndex >= len(c.Vehicles) {
		return nil, fmt.Errorf("customer %s has no vehicle at index %d", c.ID, vehicleIndex)
	}
	v := c.Vehicles[vehicleIndex]

	var blades []BladeLineItem
	if ws := v.WiperSizes; ws != nil {
		if ws.Driver != "" {
			blades = append(blades, BladeLineItem{Size: ws.Driver, Position: PositionDriver})
		}
		if ws.Passenger != "" {
			blades = append(blades, BladeLineItem{Size: ws.Passenger, Position: PositionPassenger})
		}
		if ws.Rear != "" {
			blades = append(blades, BladeLineItem{Size: ws.Rear, Position: PositionRear})
		}
	}

	return &Job{
		ID:           id,
		CustomerID:   c.ID,
		CustomerName: c.Name,
		VehicleIndex: vehicleIndex,
		Status:       JobPending,
		Blades:       blades,
		CreatedAt:    now,
		Price:        DefaultJobPrice,
	}, nil
}

// Schedule sets the job's visit date and moves it to scheduled. A scheduled
// job may be rescheduled; a completed job may not.
func (j *Job) Schedule(date string) error {
	if j.Status == JobCompleted {
		return ErrJobCompleted
	}
	if strings.TrimSpace(date) == "" {
		return errors.New("a schedule date is required")
	}
	j.ScheduledDate = strings.TrimSpace(date)
	j.Status = JobScheduled
	return nil
}

// Complete finishes the job: it verifies stock and a schedule date, consumes
// one blade per line from the ledger, stamps the completion time, and
// applies the price override. An override that does not parse as a number
// leaves the existing price in place. On any rejection both the job and the
// ledger are left untouched.
func (j *Job) Complete(led Ledger, date, priceOverride string, now time.Time) error {
	if j.Status == JobCompleted {
		return ErrJobCompleted
	}

	schedDate := j.ScheduledDate
	if schedDate == "" {
		schedDate = strings.TrimSpace(date)
	}
	if schedDate == "" {
		return ErrNotScheduled
	}
	if !led.CanFulfill(j.Blades) {
		return ErrInsufficientStock
	}

	led.DecrementForJob(j.Blades)

	if p, err := decimal.NewFromString(strings.TrimSpace(priceOverride)); err == nil {
		j.Price = p
	}

	j.ScheduledDate = schedDate
	j.Status = JobCompleted
	completed := now
	j.CompletedAt = &completed
	return nil
}
