// Package report aggregates completed KMC sessions into the three windows
// the ward cares about: today, the Monday-first week, and all time.
package report

import (
	"time"

	"github.com/karthikas/kmcward/internal/db"
	"github.com/karthikas/kmcward/internal/models"
	"github.com/karthikas/kmcward/internal/timeutil"
)

// LowKMCThresholdMS marks babies with under an hour of skin-to-skin contact
// today, the figure the ward escalates on.
const LowKMCThresholdMS int64 = 3600000

// Stats holds completed-session duration sums for one parent or baby.
type Stats struct {
	TodayMS   int64
	WeekMS    int64
	AllTimeMS int64
	Sessions  int
}

// Sum adds up session durations. Only completed sessions carry a duration;
// zero or missing values contribute nothing, and the result does not depend
// on iteration order.
func Sum(sessions []models.Session) int64 {
	var total int64
	for _, s := range sessions {
		if s.DurationMS > 0 {
			total += s.DurationMS
		}
	}
	return total
}

// ForParent computes a parent's KMC totals relative to ref.
func ForParent(parentID uint, ref time.Time) (Stats, error) {
	dayStart, dayEnd := timeutil.DayRange(ref)
	weekStart, weekEnd := timeutil.WeekRange(ref)

	today, err := db.CompletedByParentInRange(parentID, dayStart, dayEnd)
	if err != nil {
		return Stats{}, err
	}
	week, err := db.CompletedByParentInRange(parentID, weekStart, weekEnd)
	if err != nil {
		return Stats{}, err
	}
	all, err := db.CompletedByParent(parentID)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		TodayMS:   Sum(today),
		WeekMS:    Sum(week),
		AllTimeMS: Sum(all),
		Sessions:  len(all),
	}, nil
}

// ForBaby computes a baby's KMC totals relative to ref, across every parent
// who held them.
func ForBaby(babyID uint, ref time.Time) (Stats, error) {
	dayStart, dayEnd := timeutil.DayRange(ref)
	weekStart, weekEnd := timeutil.WeekRange(ref)

	today, err := db.CompletedByBabyInRange(babyID, dayStart, dayEnd)
	if err != nil {
		return Stats{}, err
	}
	week, err := db.CompletedByBabyInRange(babyID, weekStart, weekEnd)
	if err != nil {
		return Stats{}, err
	}
	all, err := db.CompletedByBaby(babyID)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		TodayMS:   Sum(today),
		WeekMS:    Sum(week),
		AllTimeMS: Sum(all),
		Sessions:  len(all),
	}, nil
}

// WardRow is one baby's line on the staff dashboard.
type WardRow struct {
	Baby    models.Baby
	TodayMS int64
	WeekMS  int64
}

// LowKMC reports whether the baby is under the daily contact threshold.
func (r WardRow) LowKMC() bool {
	return r.TodayMS < LowKMCThresholdMS
}

// Ward computes today/week totals for every baby on the ward, ordered by
// baby name.
func Ward(ref time.Time) ([]WardRow, error) {
	babies, err := db.GetBabies()
	if err != nil {
		return nil, err
	}

	rows := make([]WardRow, 0, len(babies))
	for _, baby := range babies {
		stats, err := ForBaby(baby.ID, ref)
		if err != nil {
			return nil, err
		}
		rows = append(rows, WardRow{
			Baby:    baby,
			TodayMS: stats.TodayMS,
			WeekMS:  stats.WeekMS,
		})
	}
	return rows, nil
}
