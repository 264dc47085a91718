package core

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// Ledger is the on-hand blade stock, keyed by display size (e.g. `26"`).
// Quantities never go below zero.
type Ledger map[string]int

// Clone returns an independent copy of the ledger.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for size, qty := range l {
		out[size] = qty
	}
	return out
}

// CanFulfill reports whether every blade line's size has stock on hand.
// Each line is checked independently: a job needing two blades of one size
// passes with a single unit in stock. Completion then floors at zero, so
// the ledger still never goes negative.
func (l Ledger) CanFulfill(blades []BladeLineItem) bool {
	for _, b := range blades {
		if l[b.Size] <= 0 {
			return false
		}
	}
	return true
}

// DecrementForJob consumes one unit per blade line, flooring at zero.
func (l Ledger) DecrementForJob(blades []BladeLineItem) {
	for _, b := range blades {
		if l[b.Size] > 0 {
			l[b.Size]--
		}
	}
}

// Adjust moves a size's quantity by delta, flooring at zero, and returns
// the new quantity.
func (l Ledger) Adjust(size string, delta int) int {
	qty := l[size] + delta
	if qty < 0 {
		qty = 0
	}
	l[size] = qty
	return qty
}

// SetQuantity replaces a size's quantity. Negative values are rejected and
// leave the ledger unchanged.
func (l Ledger) SetQuantity(size string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("quantity for %s cannot be negative", size)
	}
	l[size] = qty
	return nil
}

// TotalUnits returns the total blade count across all sizes.
func (l Ledger) TotalUnits() int {
	total := 0
	for _, qty := range l {
		total += qty
	}
	return total
}

// Sizes returns the stocked sizes in ascending numeric order.
func (l Ledger) Sizes() []string {
	sizes := make([]string, 0, len(l))
	for size := range l {
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool {
		return sizeInches(sizes[i]) < sizeInches(sizes[j])
	})
	return sizes
}

// View builds the per-size analytics view, applying unit costs from the
// cost table with DefaultUnitCost as fallback.
func (l Ledger) View(unitCosts map[string]decimal.Decimal) map[string]StockInfo {
	view := make(map[string]StockInfo, len(l))
	for size, qty := range l {
		cost, ok := unitCosts[size]
		if !ok {
			cost = DefaultUnitCost
		}
		view[size] = StockInfo{Qty: qty, UnitCost: cost}
	}
	return view
}

// Demand tallies blade counts required by jobs that have not been
// completed yet.
func Demand(jobs []Job) map[string]int {
	needed := make(map[string]int)
	for _, j := range jobs {
		if j.Status == JobCompleted {
			continue
		}
		for _, b := range j.Blades {
			needed[b.Size]++
		}
	}
	return needed
}

// ShoppingLine is one row of the restock list.
type ShoppingLine struct {
	Size   string `json:"size"`
	Needed int    `json:"needed"`
	OnHand int    `json:"onHand"`
	ToBuy  int    `json:"toBuy"`
}

// ShoppingList compares open-job demand against stock and returns what to
// buy, in ascending size order.
func (l Ledger) ShoppingList(jobs []Job) []ShoppingLine {
	needed := Demand(jobs)
	sizes := make([]string, 0, len(needed))
	for size := range needed {
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool {
		return sizeInches(sizes[i]) < sizeInches(sizes[j])
	})

	out := make([]ShoppingLine, 0, len(sizes))
	for _, size := range sizes {
		toBuy := needed[size] - l[size]
		if toBuy < 0 {
			toBuy = 0
		}
		out = append(out, ShoppingLine{Size: size, Needed: needed[size], OnHand: l[size], ToBuy: toBuy})
	}
	return out
}

// sizeInches parses the leading number off a display size like `26"`.
func sizeInches(size string) int {
	end := 0
	for end < len(size) && size[end] >= '0' && size[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(size[:end])
	return n
}
