package stats

import (
	"time"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
)

// Aggregation over daily activity records. All functions are pure: they
// take an explicit snapshot of records plus a reference time and return a
// fresh result, so concurrent calls cannot interfere.

// activeWindowDays is the trailing window for the "active rider" predicate.
const activeWindowDays = 3

// WeekStart returns the start of the current week: the most recent Sunday
// at local midnight. The boundary is computed from calendar fields, not by
// subtracting a fixed duration, so it stays correct across DST transitions.
// Time-of-day is normalized to midnight BEFORE the day-of-week shift,
// otherwise the boundary can drift by a day depending on call time.
func WeekStart(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// InCurrentWeek reports whether date is on or after the current week start.
func InCurrentWeek(date, now time.Time) bool {
	return !date.Before(WeekStart(now))
}

// Weekly computes a rider's statistics over the current week window.
// Input order is preserved in the returned Activities (the store supplies
// records most-recent-first). Empty input yields all-zero stats, never an
// error: statistics over no data are well-defined.
func Weekly(activities []models.Activity, now time.Time) models.WeeklyStats {
	weekStart := WeekStart(now)

	weekly := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		if !a.Date.Before(weekStart) {
			weekly = append(weekly, a)
		}
	}

	var totalEarnings, totalHours float64
	var ratingSum int
	for _, a := range weekly {
		totalEarnings += a.Earnings
		totalHours += a.HoursWorked
		ratingSum += a.SatisfactionRating
	}

	var avgRating float64
	if len(weekly) > 0 {
		avgRating = float64(ratingSum) / float64(len(weekly))
	}

	return models.WeeklyStats{
		TotalEarnings: totalEarnings,
		TotalHours:    totalHours,
		AvgRating:     avgRating,
		DaysWorked:    len(weekly),
		Activities:    weekly,
	}
}

// Summarize computes a rider's lifetime summary for the fleet view.
// CurrentEarnings is intentionally the CURRENT-WEEK total, not lifetime:
// it is compared against the rider's weekly goal. AvgDailyHours and the
// satisfaction figure are lifetime means. LastActive is the date of the
// most recent record, falling back to the registration date when the rider
// has no records yet.
func Summarize(profile models.RiderProfile, activities []models.Activity, now time.Time) models.RiderSummary {
	weekly := Weekly(activities, now)

	var hoursSum float64
	var ratingSum int
	for _, a := range activities {
		hoursSum += a.HoursWorked
		ratingSum += a.SatisfactionRating
	}

	var avgDailyHours, avgRating float64
	if len(activities) > 0 {
		avgDailyHours = hoursSum / float64(len(activities))
		avgRating = float64(ratingSum) / float64(len(activities))
	}

	lastActive := profile.CreatedAt
	if len(activities) > 0 {
		// Store contract: records arrive date-descending
		lastActive = activities[0].Date
	}

	return models.RiderSummary{
		Profile:            profile,
		CurrentEarnings:    weekly.TotalEarnings,
		AvgDailyHours:      avgDailyHours,
		LastActive:         lastActive,
		SatisfactionRating: avgRating,
		Activities:         activities,
	}
}

// Fleet rolls per-rider summaries up into fleet-level statistics.
// A rider is active if their last activity falls within the trailing
// 3-day window from now: wall-clock comparison with a strict lower bound,
// so a rider active 71 hours ago counts and one active 73 hours ago does
// not. TotalEarnings sums each rider's weekly CurrentEarnings.
func Fleet(summaries []models.RiderSummary, now time.Time) models.FleetStats {
	cutoff := now.AddDate(0, 0, -activeWindowDays)

	var active int
	var totalEarnings, satisfactionSum float64
	for _, s := range summaries {
		if s.LastActive.After(cutoff) {
			active++
		}
		totalEarnings += s.CurrentEarnings
		satisfactionSum += s.SatisfactionRating
	}

	var avgSatisfaction float64
	if len(summaries) > 0 {
		avgSatisfaction = satisfactionSum / float64(len(summaries))
	}

	return models.FleetStats{
		TotalRiders:     len(summaries),
		ActiveRiders:    active,
		TotalEarnings:   totalEarnings,
		AvgSatisfaction: avgSatisfaction,
	}
}

// TopPlatform returns the platform with the highest summed earnings over
// the given records. Grouping is stable: ties are broken by the platform's
// first appearance in the record sequence. The second return value is
// false when there are no records.
func TopPlatform(activities []models.Activity) (models.PlatformTotal, bool) {
	if len(activities) == 0 {
		return models.PlatformTotal{}, false
	}

	index := make(map[string]int, len(activities))
	totals := make([]models.PlatformTotal, 0, len(activities))
	for _, a := range activities {
		i, ok := index[a.PrimaryPlatform]
		if !ok {
			i = len(totals)
			index[a.PrimaryPlatform] = i
			totals = append(totals, models.PlatformTotal{Platform: a.PrimaryPlatform})
		}
		totals[i].Earnings += a.Earnings
	}

	top := totals[0]
	for _, t := range totals[1:] {
		// Strict > keeps the earliest first-appearance on ties
		if t.Earnings > top.Earnings {
			top = t
		}
	}

	return top, true
}

// GoalProgress returns the percentage of the weekly goal reached, capped
// at 100. A non-positive goal yields 0.
func GoalProgress(currentEarnings, weeklyGoal float64) float64 {
	if weeklyGoal <= 0 {
		return 0
	}
	p := currentEarnings / weeklyGoal * 100
	if p > 100 {
		return 100
	}
	return p
}
