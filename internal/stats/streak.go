package stats

import (
	"sort"
	"time"

	"github.com/focuspulse/pulse/internal/domain"
)

// activeDays returns the distinct calendar days containing at least one
// completed focus session, normalized via calendarDay and sorted
// ascending.
func activeDays(sessions []domain.FocusSession) []time.Time {
	seen := make(map[time.Time]bool)
	for _, s := range sessions {
		if s.Type.IsFocus() && s.WasCompleted {
			seen[calendarDay(s.StartedAt)] = true
		}
	}
	days := make([]time.Time, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// LongestStreak returns the length of the longest run of consecutive
// calendar days that each contain a completed focus session. An empty
// history yields 0; any completed focus session yields at least 1.
func LongestStreak(sessions []domain.FocusSession) int {
	days := activeDays(sessions)
	if len(days) == 0 {
		return 0
	}

	best, current := 1, 1
	for i := 1; i < len(days); i++ {
		if sameDay(days[i-1].AddDate(0, 0, 1), days[i]) {
			current++
			if current > best {
				best = current
			}
		} else {
			current = 1
		}
	}
	return best
}

// CurrentStreak counts consecutive active days ending at today, walking
// backward one calendar day at a time until the first gap. A day without
// a completed focus session today means 0, regardless of earlier streaks.
func CurrentStreak(sessions []domain.FocusSession, today time.Time) int {
	days := activeDays(sessions)
	active := make(map[time.Time]bool, len(days))
	for _, day := range days {
		active[day] = true
	}

	streak := 0
	cursor := calendarDay(today)
	for active[cursor] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
