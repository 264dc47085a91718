package core_test

import (
	"reflect"
	"testing"

	"clearview-wipers/internal/core"

	"github.com/shopspring/decimal"
)

func TestLedgerCanFulfill(t *testing.T) {
	led := core.Ledger{`26"`: 1, `18"`: 0}

	tests := []struct {
		name   string
		blades []core.BladeLineItem
		want   bool
	}{
		{
			"all sizes stocked",
			[]core.BladeLineItem{{Size: `26"`, Position: core.PositionDriver}},
			true,
		},
		{
			"one size out of stock",
			[]core.BladeLineItem{
				{Size: `26"`, Position: core.PositionDriver},
				{Size: `18"`, Position: core.PositionPassenger},
			},
			false,
		},
		{
			"size never stocked",
			[]core.BladeLineItem{{Size: `14"`, Position: core.PositionRear}},
			false,
		},
		{
			// Lines are checked independently, so two lines of the same
			// size pass on a single unit.
			"duplicate size with one unit",
			[]core.BladeLineItem{
				{Size: `26"`, Position: core.PositionDriver},
				{Size: `26"`, Position: core.PositionPassenger},
			},
			true,
		},
		{"no blades", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := led.CanFulfill(tc.blades); got != tc.want {
				t.Errorf("CanFulfill(%v) = %v, want %v", tc.blades, got, tc.want)
			}
		})
	}
}

func TestLedgerDecrementForJob(t *testing.T) {
	led := core.Ledger{`26"`: 1, `18"`: 2}
	led.DecrementForJob([]core.BladeLineItem{
		{Size: `26"`, Position: core.PositionDriver},
		{Size: `26"`, Position: core.PositionPassenger},
		{Size: `18"`, Position: core.PositionRear},
		{Size: `14"`, Position: core.PositionRear},
	})

	if led[`26"`] != 0 {
		t.Errorf("26\" after decrement = %d, want 0 (floored, never negative)", led[`26"`])
	}
	if led[`18"`] != 1 {
		t.Errorf("18\" after decrement = %d, want 1", led[`18"`])
	}
	if led[`14"`] != 0 {
		t.Errorf("14\" after decrement = %d, want 0", led[`14"`])
	}
}

func TestLedgerAdjust(t *testing.T) {
	led := core.Ledger{`22"`: 2}

	if got := led.Adjust(`22"`, 3); got != 5 {
		t.Errorf("Adjust(+3) = %d, want 5", got)
	}
	if got := led.Adjust(`22"`, -10); got != 0 {
		t.Errorf("Adjust(-10) = %d, want 0 (floored)", got)
	}
	if got := led.Adjust(`16"`, -1); got != 0 {
		t.Errorf("Adjust on missing size = %d, want 0", got)
	}
}

func TestLedgerSetQuantity(t *testing.T) {
	led := core.Ledger{`22"`: 2}

	if err := led.SetQuantity(`22"`, 7); err != nil {
		t.Fatalf("SetQuantity(7) failed: %v", err)
	}
	if led[`22"`] != 7 {
		t.Errorf("quantity = %d, want 7", led[`22"`])
	}

	if err := led.SetQuantity(`22"`, -1); err == nil {
		t.Error("SetQuantity(-1) succeeded, want rejection")
	}
	if led[`22"`] != 7 {
		t.Errorf("quantity after rejected set = %d, want unchanged 7", led[`22"`])
	}
}

func TestLedgerSizesNumericOrder(t *testing.T) {
	led := core.Ledger{`26"`: 1, `12"`: 1, `18"`: 1, `14"`: 1}
	want := []string{`12"`, `14"`, `18"`, `26"`}
	if got := led.Sizes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sizes() = %v, want %v", got, want)
	}
}

func TestLedgerShoppingList(t *testing.T) {
	led := core.Ledger{`26"`: 1, `18"`: 5}
	jobs := []core.Job{
		{Status: core.JobPending, Blades: []core.BladeLineItem{
			{Size: `26"`, Position: core.PositionDriver},
			{Size: `18"`, Position: core.PositionPassenger},
		}},
		{Status: core.JobScheduled, Blades: []core.BladeLineItem{
			{Size: `26"`, Position: core.PositionDriver},
			{Size: `12"`, Position: core.PositionRear},
		}},
		// completed jobs contribute no demand
		{Status: core.JobCompleted, Blades: []core.BladeLineItem{
			{Size: `26"`, Position: core.PositionDriver},
		}},
	}

	got := led.ShoppingList(jobs)
	want := []core.ShoppingLine{
		{Size: `12"`, Needed: 1, OnHand: 0, ToBuy: 1},
		{Size: `18"`, Needed: 1, OnHand: 5, ToBuy: 0},
		{Size: `26"`, Needed: 2, OnHand: 1, ToBuy: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShoppingList = %+v, want %+v", got, want)
	}
}

func TestLedgerView(t *testing.T) {
	led := core.Ledger{`26"`: 3, `18"`: 1}
	costs := map[string]decimal.Decimal{`26"`: decimal.NewFromInt(9)}

	view := led.View(costs)
	if !view[`26"`].UnitCost.Equal(decimal.NewFromInt(9)) {
		t.Errorf("26\" unit cost = %s, want 9", view[`26"`].UnitCost)
	}
	if !view[`18"`].UnitCost.Equal(core.DefaultUnitCost) {
		t.Errorf("18\" unit cost = %s, want default %s", view[`18"`].UnitCost, core.DefaultUnitCost)
	}
	if view[`26"`].Qty != 3 || view[`18"`].Qty != 1 {
		t.Errorf("view quantities = %+v, want 3 and 1", view)
	}
}
