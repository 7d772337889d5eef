// Package analysis derives summary statistics from a fetched activity
// history.
package analysis

import (
	"sort"
	"time"

	"github.com/lildude/stravastats/internal/strava"
)

// Table is an ordered collection of activities in fetch order. Records
// without a start timestamp are dropped at construction; records with a zero
// distance or moving time stay in the table but never take part in pace
// calculations.
type Table struct {
	rows     []strava.Activity
	excluded int
}

// NewTable builds an activity table from a fetched history. A record missing
// either start timestamp cannot be grouped by date, so it is excluded and
// counted rather than aborting the whole build.
func NewTable(activities []strava.Activity) *Table {
	rows := make([]strava.Activity, 0, len(activities))
	excluded := 0
	for _, a := range activities {
		if a.StartDate.IsZero() || a.StartDateLocal.IsZero() {
			excluded++
			continue
		}
		rows = append(rows, a)
	}

	return &Table{rows: rows, excluded: excluded}
}

// Len returns the number of activities in the table.
func (t *Table) Len() int { return len(t.rows) }

// Excluded returns the number of fetched records dropped at build time.
func (t *Table) Excluded() int { return t.excluded }

// DayDistance is the total distance covered on one calendar day.
type DayDistance struct {
	Date       time.Time
	Kilometres float64
}

// DistanceByDay sums distance per calendar day, ascending by date. Days are
// taken from the activity's local start time, so an evening run stays on the
// day the athlete ran it regardless of UTC offset. Days with no activity are
// absent, not zero.
func (t *Table) DistanceByDay() []DayDistance {
	byDay := make(map[time.Time]float64)
	for _, a := range t.rows {
		y, m, d := a.StartDateLocal.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		byDay[day] += a.Distance
	}

	out := make([]DayDistance, 0, len(byDay))
	for day, metres := range byDay {
		out = append(out, DayDistance{Date: day, Kilometres: metres / 1000})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out
}

// TypeCounts returns how many activities of each type the table holds.
func (t *Table) TypeCounts() map[string]int {
	counts := make(map[string]int)
	for _, a := range t.rows {
		counts[a.Type]++
	}

	return counts
}

// SplitEstimate is the fastest estimated time over one target distance. OK
// is false when no activity was long enough to estimate from.
type SplitEstimate struct {
	TargetKm float64
	Estimate time.Duration
	OK       bool
}

// SplitEstimates computes the fastest estimated time for each target
// distance, in the order given.
func (t *Table) SplitEstimates(targets []float64) []SplitEstimate {
	out := make([]SplitEstimate, 0, len(targets))
	for _, km := range targets {
		est, ok := t.FastestEstimatedTime(km)
		out = append(out, SplitEstimate{TargetKm: km, Estimate: est, OK: ok})
	}

	return out
}

// FastestEstimatedTime estimates the fastest time over targetKm by assuming
// each qualifying activity's average pace holds for the whole target
// distance. Only activities at least as long as the target qualify. This is
// a linear extrapolation, not a true best-effort split: a long slow run
// yields a slower estimate than the athlete's actual fastest targetKm within
// it. The boolean is false when no activity qualifies, which is distinct
// from a genuine zero duration.
func (t *Table) FastestEstimatedTime(targetKm float64) (time.Duration, bool) {
	targetMetres := targetKm * 1000

	var best time.Duration
	found := false
	for _, a := range t.rows {
		if a.Distance < targetMetres || a.Distance <= 0 || a.MovingTime <= 0 {
			continue
		}
		paceSecPerKm := float64(a.MovingTime) / (a.Distance / 1000)
		est := time.Duration(paceSecPerKm * targetKm * float64(time.Second))
		if !found || est < best {
			best = est
			found = true
		}
	}

	return best, found
}
