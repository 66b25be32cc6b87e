package hr

import (
	"sort"
	"strings"
	"time"

	"github.com/hundredplus/onboard-tracker/constants"
	"github.com/hundredplus/onboard-tracker/internal/entity"
)

// onboardingDateLayouts are the date formats accepted on the form: ISO and
// the slash style the paper form uses.
var onboardingDateLayouts = []string{"2006-01-02", "2006/01/02"}

// ComputeStats derives dashboard statistics from a record snapshot. It is a
// pure projection: no caching, no incremental counters, recomputed on every
// observed store mutation.
//
// Department groups keep first-seen order over the snapshot; the hiring
// trend is bucketed by onboarding month in chronological order, labeled
// with the English month name plus year ("April 2024") so the same month
// in different years stays a distinct bucket. Records with an empty or
// unparseable onboarding date are excluded from the trend series but
// still count toward the total.
func ComputeStats(records []entity.Employee) entity.DashboardStats {
	stats := entity.DashboardStats{
		TotalEmployees:         len(records),
		DepartmentDistribution: []entity.DepartmentCount{},
		HiringTrends:           []entity.MonthlyHires{},
	}

	completed := 0
	deptIndex := map[string]int{}
	monthCounts := map[string]int{}
	monthStart := map[string]time.Time{}

	for _, r := range records {
		if r.Status == constants.StatusCompleted {
			completed++
		}

		if i, seen := deptIndex[r.Department]; seen {
			stats.DepartmentDistribution[i].Value++
		} else {
			deptIndex[r.Department] = len(stats.DepartmentDistribution)
			stats.DepartmentDistribution = append(stats.DepartmentDistribution,
				entity.DepartmentCount{Name: r.Department, Value: 1})
		}

		if t, ok := parseOnboardingDate(r.OnboardingDate); ok {
			key := t.Format("2006-01")
			monthCounts[key]++
			monthStart[key] = t
		}
	}

	total := len(records)
	if total < 1 {
		total = 1
	}
	stats.OnboardingProgress = 100 * float64(completed) / float64(total)

	keys := make([]string, 0, len(monthCounts))
	for key := range monthCounts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		stats.HiringTrends = append(stats.HiringTrends, entity.MonthlyHires{
			Month: monthStart[key].Format("January 2006"),
			Count: monthCounts[key],
		})
	}
	return stats
}

func parseOnboardingDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range onboardingDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
