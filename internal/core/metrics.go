package core

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type TimeRange string

const (
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeAll   TimeRange = "all"
)

// ParseTimeRange validates a range string, defaulting empty to "all".
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case RangeWeek, RangeMonth, RangeAll:
		return TimeRange(s), nil
	case "":
		return RangeAll, nil
	}
	return "", fmt.Errorf("unknown time range %q", s)
}

// JobMargin is one completed job's profitability line.
type JobMargin struct {
	JobID        string          `json:"jobId"`
	CustomerName string          `json:"customerName"`
	Price        decimal.Decimal `json:"price"`
	Margin       decimal.Decimal `json:"margin"`
}

// WeeklyPoint is one bucket of the trailing revenue/profit series.
type WeeklyPoint struct {
	Week    string          `json:"week"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
	Jobs    int             `json:"jobs"`
}

// BladeUsage aggregates consumption of one blade size across completed jobs.
type BladeUsage struct {
	Size  string          `json:"size"`
	Count int             `json:"count"`
	Cost  decimal.Decimal `json:"cost"`
}

// Snapshot is the business-position summary shown alongside the profit
// figures.
type Snapshot struct {
	InventoryValue  decimal.Decimal `json:"inventoryValue"`
	PipelineRevenue decimal.Decimal `json:"pipelineRevenue"`
	NetProfit       decimal.Decimal `json:"netProfit"`
	ProjectedTotal  decimal.Decimal `json:"projectedTotal"`
}

type Metrics struct {
	Range          TimeRange       `json:"range"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalBladeCost decimal.Decimal `json:"totalBladeCost"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	GrossProfit    decimal.Decimal `json:"grossProfit"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	GrossMargin    decimal.Decimal `json:"grossMargin"`
	NetMargin      decimal.Decimal `json:"netMargin"`
	AvgJobRevenue  decimal.Decimal `json:"avgJobRevenue"`
	AvgJobProfit   decimal.Decimal `json:"avgJobProfit"`
	CompletedJobs  int             `json:"completedJobs"`
	BestJob        *JobMargin      `json:"bestJob,omitempty"`
	WorstJob       *JobMargin      `json:"worstJob,omitempty"`
	Weekly         []WeeklyPoint   `json:"weekly"`
	BladeUsage     []BladeUsage    `json:"bladeUsage"`
	Snapshot       Snapshot        `json:"snapshot"`
}

// BladeCost returns the recorded blade cost for a job, or derives it from
// the inventory view's unit costs (DefaultUnitCost when the size is not
// stocked).
func BladeCost(j Job, inv map[string]StockInfo) decimal.Decimal {
	if j.BladeCosts != nil {
		return *j.BladeCosts
	}
	cost := decimal.Zero
	for _, b := range j.Blades {
		if info, ok := inv[b.Size]; ok {
			cost = cost.Add(info.UnitCost)
		} else {
			cost = cost.Add(DefaultUnitCost)
		}
	}
	return cost
}

// ComputeMetrics recomputes the full analytics picture from scratch. The
// time range filters completed jobs (by completion time) and expenses; the
// weekly series and blade breakdown always cover all completed jobs, and
// the snapshot covers current stock and the open-job pipeline.
func ComputeMetrics(jobs []Job, expenses []Expense, inv map[string]StockInfo, r TimeRange, now time.Time) *Metrics {
	var completed []Job
	for _, j := range jobs {
		if j.Status == JobCompleted && j.CompletedAt != nil {
			completed = append(completed, j)
		}
	}
	sort.Slice(completed, func(i, k int) bool {
		return completed[i].CompletedAt.Before(*completed[k].CompletedAt)
	})

	var filtered []Job
	for _, j := range completed {
		if timeInRange(*j.CompletedAt, r, now) {
			filtered = append(filtered, j)
		}
	}

	m := &Metrics{Range: r, CompletedJobs: len(filtered)}

	for _, j := range filtered {
		m.TotalRevenue = m.TotalRevenue.Add(j.Price)
		m.TotalBladeCost = m.TotalBladeCost.Add(BladeCost(j, inv))
	}
	for _, e := range expenses {
		if expenseInRange(e, r, now) {
			m.TotalExpenses = m.TotalExpenses.Add(e.Amount)
		}
	}

	m.GrossProfit = m.TotalRevenue.Sub(m.TotalBladeCost)
	m.NetProfit = m.GrossProfit.Sub(m.TotalExpenses)
	if m.TotalRevenue.IsPositive() {
		m.GrossMargin = m.GrossProfit.Div(m.TotalRevenue)
		m.NetMargin = m.NetProfit.Div(m.TotalRevenue)
	}
	if len(filtered) > 0 {
		n := decimal.NewFromInt(int64(len(filtered)))
		m.AvgJobRevenue = m.TotalRevenue.Div(n)
		m.AvgJobProfit = m.GrossProfit.Div(n)
	}

	m.BestJob, m.WorstJob = rankJobs(filtered, inv)
	m.Weekly = weeklySeries(completed, inv)
	m.BladeUsage = bladeBreakdown(completed, inv)
	m.Snapshot = snapshot(jobs, inv, m.NetProfit)
	return m
}

// rankJobs sorts the filtered jobs by margin and returns the best and worst
// lines. Rankings only make sense with at least two jobs to compare.
func rankJobs(filtered []Job, inv map[string]StockInfo) (best, worst *JobMargin) {
	if len(filtered) < 2 {
		return nil, nil
	}

	margins := make([]JobMargin, 0, len(filtered))
	for _, j := range filtered {
		margin := decimal.Zero
		if j.Price.IsPositive() {
			margin = j.Price.Sub(BladeCost(j, inv)).Div(j.Price)
		}
		margins = append(margins, JobMargin{
			JobID:        j.ID,
			CustomerName: j.CustomerName,
			Price:        j.Price,
			Margin:       margin,
		})
	}
	sort.SliceStable(margins, func(i, k int) bool {
		return margins[i].Margin.GreaterThan(margins[k].Margin)
	})

	b, w := margins[0], margins[len(margins)-1]
	return &b, &w
}

// weeklySeries buckets all completed jobs (already sorted by completion
// time) by calendar week number and keeps the trailing 8 buckets.
func weeklySeries(completed []Job, inv map[string]StockInfo) []WeeklyPoint {
	index := make(map[string]int)
	var series []WeeklyPoint
	for _, j := range completed {
		label := weekLabel(*j.CompletedAt)
		i, ok := index[label]
		if !ok {
			i = len(series)
			index[label] = i
			series = append(series, WeeklyPoint{Week: label})
		}
		series[i].Revenue = series[i].Revenue.Add(j.Price)
		series[i].Profit = series[i].Profit.Add(j.Price.Sub(BladeCost(j, inv)))
		series[i].Jobs++
	}
	if len(series) > 8 {
		series = series[len(series)-8:]
	}
	return series
}

// weekLabel computes the calendar week number within the year, counting
// partial first weeks from whatever weekday January 1 falls on.
func weekLabel(d time.Time) string {
	jan1 := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, d.Location())
	days := d.Sub(jan1).Hours() / 24
	week := int(math.Ceil((days + float64(jan1.Weekday()) + 1) / 7))
	return fmt.Sprintf("W%d", week)
}

// bladeBreakdown tallies blade consumption by size over all completed jobs,
// most used first.
func bladeBreakdown(completed []Job, inv map[string]StockInfo) []BladeUsage {
	index := make(map[string]int)
	var usage []BladeUsage
	for _, j := range completed {
		for _, b := range j.Blades {
			i, ok := index[b.Size]
			if !ok {
				i = len(usage)
				index[b.Size] = i
				usage = append(usage, BladeUsage{Size: b.Size})
			}
			unitCost := DefaultUnitCost
			if info, found := inv[b.Size]; found {
				unitCost = info.UnitCost
			}
			usage[i].Count++
			usage[i].Cost = usage[i].Cost.Add(unitCost)
		}
	}
	sort.SliceStable(usage, func(i, k int) bool {
		if usage[i].Count != usage[k].Count {
			return usage[i].Count > usage[k].Count
		}
		return usage[i].Size < usage[k].Size
	})
	return usage
}

func snapshot(jobs []Job, inv map[string]StockInfo, netProfit decimal.Decimal) Snapshot {
	s := Snapshot{NetProfit: netProfit}
	for _, info := range inv {
		s.InventoryValue = s.InventoryValue.Add(info.UnitCost.Mul(decimal.NewFromInt(int64(info.Qty))))
	}
	for _, j := range jobs {
		if j.Status == JobPending || j.Status == JobScheduled {
			s.PipelineRevenue = s.PipelineRevenue.Add(j.Price)
		}
	}
	s.ProjectedTotal = netProfit.Add(s.PipelineRevenue)
	return s
}

func timeInRange(t time.Time, r TimeRange, now time.Time) bool {
	switch r {
	case RangeWeek:
		return !t.Before(now.AddDate(0, 0, -7))
	case RangeMonth:
		return t.Month() == now.Month() && t.Year() == now.Year()
	}
	return true
}

// expenseInRange applies the time filter to an expense's recorded date.
// Unparseable dates only survive the unfiltered range.
func expenseInRange(e Expense, r TimeRange, now time.Time) bool {
	if r == RangeAll {
		return true
	}
	d, err := time.ParseInLocation("2006-01-02", e.Date, now.Location())
	if err != nil {
		return false
	}
	return timeInRange(d, r, now)
}
