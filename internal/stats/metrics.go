// Package stats computes derived statistics from the persisted session
// history. Every function is pure: it takes the full session collection
// as an argument and returns a fresh result, so callers decide when to
// recompute. Day bucketing uses the calendar day (local midnight) of the
// reference time's location.
package stats

import (
	"sort"
	"time"

	"github.com/focuspulse/pulse/internal/domain"
)

// DailyStats aggregates one calendar day of session history.
type DailyStats struct {
	Date              time.Time
	FocusTime         time.Duration
	SessionsCompleted int
	Distractions      int
}

// SeasonStats summarizes the calendar month containing the reference day.
type SeasonStats struct {
	MonthStart        time.Time
	TotalFocusTime    time.Duration
	SessionsCompleted int
	BestDay           *time.Time
}

// TagTime is the accumulated focus time for one tag.
type TagTime struct {
	Tag   string
	Total time.Duration
}

// startOfDay truncates a time to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// calendarDay normalizes a time to midnight of its calendar day in UTC.
// Persisted sessions can carry fixed-offset zones after JSON decoding,
// and time.Time map keys compare locations, so day buckets must key on
// the date components rather than a zoned midnight.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sameDay reports whether two times fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Daily computes the stats for the calendar day containing day.
// Focus time sums recorded actual durations of focus sessions (sessions
// without one contribute zero); the completed count covers focus sessions
// only; distractions are counted across every session type.
func Daily(sessions []domain.FocusSession, day time.Time) DailyStats {
	stats := DailyStats{Date: startOfDay(day)}
	for _, s := range sessions {
		if !sameDay(s.StartedAt, day) {
			continue
		}
		stats.Distractions += s.DistractionsCount
		if !s.Type.IsFocus() {
			continue
		}
		if s.ActualDuration != nil {
			stats.FocusTime += *s.ActualDuration
		}
		if s.WasCompleted {
			stats.SessionsCompleted++
		}
	}
	return stats
}

// Week computes per-day stats for the 7 calendar days ending at the
// reference day. Days without any sessions are omitted, so the result
// holds at most 7 entries, sorted ascending by date.
func Week(sessions []domain.FocusSession, referenceDay time.Time) []DailyStats {
	ref := startOfDay(referenceDay)
	var week []DailyStats
	for offset := 0; offset < 7; offset++ {
		day := ref.AddDate(0, 0, -offset)
		hasSessions := false
		for _, s := range sessions {
			if sameDay(s.StartedAt, day) {
				hasSessions = true
				break
			}
		}
		if !hasSessions {
			continue
		}
		week = append(week, Daily(sessions, day))
	}
	sort.Slice(week, func(i, j int) bool {
		return week[i].Date.Before(week[j].Date)
	})
	return week
}

// Season computes the month summary for the month containing the
// reference day: total focus time and completed count over completed
// focus sessions, plus the day with the most focus time. Effective
// duration (actual, else planned) is used throughout. Best-day ties go
// to the earliest date.
func Season(sessions []domain.FocusSession, referenceDay time.Time) SeasonStats {
	ref := startOfDay(referenceDay)
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	season := SeasonStats{MonthStart: monthStart}
	byDay := make(map[time.Time]time.Duration)
	for _, s := range sessions {
		if !s.Type.IsFocus() || !s.WasCompleted {
			continue
		}
		if s.StartedAt.Before(monthStart) || !s.StartedAt.Before(nextMonth) {
			continue
		}
		season.TotalFocusTime += s.EffectiveDuration()
		season.SessionsCompleted++
		byDay[calendarDay(s.StartedAt)] += s.EffectiveDuration()
	}

	if len(byDay) == 0 {
		return season
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best := days[0]
	for _, day := range days[1:] {
		if byDay[day] > byDay[best] {
			best = day
		}
	}
	season.BestDay = &best
	return season
}

// TagBreakdown accumulates the effective duration of the day's focus
// sessions per tag. A session carrying multiple tags contributes its full
// duration to each of them. The result is sorted descending by time,
// ties broken by tag name.
func TagBreakdown(sessions []domain.FocusSession, day time.Time) []TagTime {
	byTag := make(map[string]time.Duration)
	for _, s := range sessions {
		if !s.Type.IsFocus() || !sameDay(s.StartedAt, day) {
			continue
		}
		for _, tag := range s.Tags {
			byTag[tag] += s.EffectiveDuration()
		}
	}

	breakdown := make([]TagTime, 0, len(byTag))
	for tag, total := range byTag {
		breakdown = append(breakdown, TagTime{Tag: tag, Total: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Total != breakdown[j].Total {
			return breakdown[i].Total > breakdown[j].Total
		}
		return breakdown[i].Tag < breakdown[j].Tag
	})
	return breakdown
}

// RecentNotes returns up to limit sessions carrying a non-blank note,
// newest first.
func RecentNotes(sessions []domain.FocusSession, limit int) []domain.FocusSession {
	var noted []domain.FocusSession
	for _, s := range sessions {
		if isBlank(s.Notes) {
			continue
		}
		noted = append(noted, s)
	}
	sort.SliceStable(noted, func(i, j int) bool {
		return noted[i].StartedAt.After(noted[j].StartedAt)
	})
	if len(noted) > limit {
		noted = noted[:limit]
	}
	return noted
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
