package stats

import (
	"math"
	"testing"
	"time"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func activity(d time.Time, earnings, hours float64, rating int, platform string) models.Activity {
	return models.Activity{
		Date:               d,
		Earnings:           earnings,
		HoursWorked:        hours,
		SatisfactionRating: rating,
		PrimaryPlatform:    platform,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWeekStart_NormalizesToSundayMidnight(t *testing.T) {
	// Wednesday 2025-06-18 15:42 local -> Sunday 2025-06-15 00:00
	now := time.Date(2025, time.June, 18, 15, 42, 7, 0, time.Local)
	got := WeekStart(now)
	want := date(2025, time.June, 15)

	if !got.Equal(want) {
		t.Fatalf("WeekStart = %v, want %v", got, want)
	}
	if got.Weekday() != time.Sunday {
		t.Fatalf("week must start on Sunday, got %v", got.Weekday())
	}
}

func TestWeekStart_OnSundayIsSameDay(t *testing.T) {
	// Calling late on Sunday must not slide the boundary into the
	// previous week: midnight is applied before the weekday shift.
	now := time.Date(2025, time.June, 15, 23, 59, 59, 0, time.Local)
	got := WeekStart(now)
	want := date(2025, time.June, 15)

	if !got.Equal(want) {
		t.Fatalf("WeekStart on Sunday = %v, want %v", got, want)
	}
}

func TestWeekly_EmptyInput(t *testing.T) {
	got := Weekly(nil, time.Now())

	if got.TotalEarnings != 0 || got.TotalHours != 0 || got.AvgRating != 0 || got.DaysWorked != 0 {
		t.Fatalf("empty input must yield all-zero stats, got %+v", got)
	}
	if got.Activities == nil || len(got.Activities) != 0 {
		t.Fatalf("empty input must yield an empty (non-nil) activity list")
	}
}

func TestWeekly_Example(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	records := []models.Activity{
		activity(date(2025, time.June, 17), 650, 8, 4, "Swiggy"),
		activity(date(2025, time.June, 16), 580, 7.5, 3, "Zomato"),
	}

	got := Weekly(records, now)

	if !almostEqual(got.TotalEarnings, 1230) {
		t.Fatalf("TotalEarnings = %v, want 1230", got.TotalEarnings)
	}
	if !almostEqual(got.TotalHours, 15.5) {
		t.Fatalf("TotalHours = %v, want 15.5", got.TotalHours)
	}
	if !almostEqual(got.AvgRating, 3.5) {
		t.Fatalf("AvgRating = %v, want 3.5", got.AvgRating)
	}
	if got.DaysWorked != 2 {
		t.Fatalf("DaysWorked = %d, want 2", got.DaysWorked)
	}
}

func TestWeekly_SundayBoundary(t *testing.T) {
	// Week starts Sunday 2025-06-15. A record dated Saturday 2025-06-14
	// 23:59 belongs to the previous week; one dated exactly on the
	// boundary is included.
	now := time.Date(2025, time.June, 18, 9, 0, 0, 0, time.Local)
	saturdayNight := time.Date(2025, time.June, 14, 23, 59, 0, 0, time.Local)
	records := []models.Activity{
		activity(date(2025, time.June, 15), 100, 4, 5, "Swiggy"), // exactly on boundary
		activity(saturdayNight, 999, 8, 1, "Swiggy"),             // previous week
	}

	got := Weekly(records, now)

	if got.DaysWorked != 1 {
		t.Fatalf("DaysWorked = %d, want 1 (Saturday record must be excluded)", got.DaysWorked)
	}
	if !almostEqual(got.TotalEarnings, 100) {
		t.Fatalf("TotalEarnings = %v, want 100", got.TotalEarnings)
	}
}

func TestWeekly_PreservesInputOrder(t *testing.T) {
	now := time.Date(2025, time.June, 18, 9, 0, 0, 0, time.Local)
	records := []models.Activity{
		activity(date(2025, time.June, 17), 1, 1, 1, "A"),
		activity(date(2025, time.June, 16), 2, 1, 1, "B"),
		activity(date(2025, time.June, 15), 3, 1, 1, "C"),
	}

	got := Weekly(records, now)

	if len(got.Activities) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(got.Activities))
	}
	for i, a := range got.Activities {
		if a.PrimaryPlatform != records[i].PrimaryPlatform {
			t.Fatalf("activity order changed at index %d: got %s want %s",
				i, a.PrimaryPlatform, records[i].PrimaryPlatform)
		}
	}
}

func TestSummarize_NoRecords(t *testing.T) {
	registered := date(2025, time.May, 1)
	profile := models.RiderProfile{Name: "Arman", CreatedAt: registered}

	got := Summarize(profile, nil, time.Now())

	if got.CurrentEarnings != 0 || got.AvgDailyHours != 0 || got.SatisfactionRating != 0 {
		t.Fatalf("summary over no records must be zero-valued, got %+v", got)
	}
	if !got.LastActive.Equal(registered) {
		t.Fatalf("LastActive must fall back to registration date, got %v", got.LastActive)
	}
}

func TestSummarize_WeeklyVsLifetime(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	profile := models.RiderProfile{Name: "Arman", CreatedAt: date(2025, time.January, 1)}
	records := []models.Activity{
		activity(date(2025, time.June, 17), 500, 8, 5, "Swiggy"), // this week
		activity(date(2025, time.June, 10), 300, 4, 3, "Zomato"), // last week
	}

	got := Summarize(profile, records, now)

	// CurrentEarnings is the weekly figure, by design, not lifetime 800.
	if !almostEqual(got.CurrentEarnings, 500) {
		t.Fatalf("CurrentEarnings = %v, want 500 (weekly, not lifetime)", got.CurrentEarnings)
	}
	// Hours and rating are lifetime means.
	if !almostEqual(got.AvgDailyHours, 6) {
		t.Fatalf("AvgDailyHours = %v, want 6", got.AvgDailyHours)
	}
	if !almostEqual(got.SatisfactionRating, 4) {
		t.Fatalf("SatisfactionRating = %v, want 4", got.SatisfactionRating)
	}
	if !got.LastActive.Equal(date(2025, time.June, 17)) {
		t.Fatalf("LastActive = %v, want 2025-06-17", got.LastActive)
	}
}

func TestFleet_Empty(t *testing.T) {
	got := Fleet(nil, time.Now())
	if got.TotalRiders != 0 || got.ActiveRiders != 0 || got.TotalEarnings != 0 || got.AvgSatisfaction != 0 {
		t.Fatalf("fleet stats over zero riders must be all-zero, got %+v", got)
	}
}

func TestFleet_ActiveWindow(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	summaries := []models.RiderSummary{
		{LastActive: now.Add(-71 * time.Hour), CurrentEarnings: 100, SatisfactionRating: 4},
		{LastActive: now.Add(-73 * time.Hour), CurrentEarnings: 200, SatisfactionRating: 2},
	}

	got := Fleet(summaries, now)

	// 71h ago is inside the 3-day wall-clock window, 73h ago is not.
	if got.ActiveRiders != 1 {
		t.Fatalf("ActiveRiders = %d, want 1", got.ActiveRiders)
	}
	if got.TotalRiders != 2 {
		t.Fatalf("TotalRiders = %d, want 2", got.TotalRiders)
	}
	if !almostEqual(got.TotalEarnings, 300) {
		t.Fatalf("TotalEarnings = %v, want 300", got.TotalEarnings)
	}
	if !almostEqual(got.AvgSatisfaction, 3) {
		t.Fatalf("AvgSatisfaction = %v, want 3", got.AvgSatisfaction)
	}
}

func TestFleet_ActiveCountNonIncreasingOverTime(t *testing.T) {
	base := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	summaries := []models.RiderSummary{
		{LastActive: base.Add(-12 * time.Hour)},
		{LastActive: base.Add(-40 * time.Hour)},
		{LastActive: base.Add(-70 * time.Hour)},
	}

	prev := Fleet(summaries, base).ActiveRiders
	for _, shift := range []time.Duration{24, 48, 96, 240} {
		cur := Fleet(summaries, base.Add(shift*time.Hour)).ActiveRiders
		if cur > prev {
			t.Fatalf("active count grew from %d to %d as now moved forward", prev, cur)
		}
		prev = cur
	}
	if prev != 0 {
		t.Fatalf("all riders should age out eventually, still %d active", prev)
	}
}

func TestTopPlatform_SumsAndTieBreak(t *testing.T) {
	records := []models.Activity{
		activity(date(2025, time.June, 17), 300, 8, 4, "Zomato"),
		activity(date(2025, time.June, 16), 200, 8, 4, "Swiggy"),
		activity(date(2025, time.June, 15), 100, 8, 4, "Swiggy"),
	}

	top, ok := TopPlatform(records)
	if !ok {
		t.Fatalf("expected a top platform")
	}
	// Zomato 300 vs Swiggy 300: tie broken by first appearance.
	if top.Platform != "Zomato" {
		t.Fatalf("top platform = %s, want Zomato (first appearance wins ties)", top.Platform)
	}
	if !almostEqual(top.Earnings, 300) {
		t.Fatalf("top earnings = %v, want 300", top.Earnings)
	}
}

func TestTopPlatform_Empty(t *testing.T) {
	if _, ok := TopPlatform(nil); ok {
		t.Fatalf("no records must yield ok=false")
	}
}

func TestGoalProgress(t *testing.T) {
	if got := GoalProgress(500, 1000); !almostEqual(got, 50) {
		t.Fatalf("GoalProgress(500,1000) = %v, want 50", got)
	}
	if got := GoalProgress(1500, 1000); !almostEqual(got, 100) {
		t.Fatalf("progress must cap at 100, got %v", got)
	}
	if got := GoalProgress(5, 0); got != 0 {
		t.Fatalf("zero goal must yield 0, got %v", got)
	}
}
