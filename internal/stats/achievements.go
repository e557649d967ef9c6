package stats

import (
	"fmt"
	"time"

	"github.com/focuspulse/pulse/internal/domain"
)

// deepDiveThreshold is the single-session focus duration that unlocks
// the Deep Dive achievement.
const deepDiveThreshold = 45 * time.Minute

// Achievement is one entry of the fixed unlock catalog. Achievements are
// recomputed fully on every evaluation; no unlock state is persisted.
type Achievement struct {
	ID          string
	Title       string
	Description string
	IsUnlocked  bool
}

// Challenge is a time-boxed progress target derived from completed focus
// session counts. Challenges are derived views, never persisted.
type Challenge struct {
	ID          string
	Title       string
	Description string
	Target      int
	Progress    int
	IsCompleted bool
}

// ProgressRatio returns progress/target clamped to [0, 1] for display.
// A target below 1 is treated as 1 to keep the ratio defined.
func (c Challenge) ProgressRatio() float64 {
	target := c.Target
	if target < 1 {
		target = 1
	}
	ratio := float64(c.Progress) / float64(target)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// Achievements evaluates the full catalog against the session history.
// All four predicates are evaluated on every call, in catalog order.
func Achievements(sessions []domain.FocusSession) []Achievement {
	var focusSessions []domain.FocusSession
	for _, s := range sessions {
		if s.Type.IsFocus() {
			focusSessions = append(focusSessions, s)
		}
	}

	// Any focus session counts, completed or interrupted.
	firstFocus := len(focusSessions) >= 1

	deepDive := false
	for _, s := range focusSessions {
		if s.EffectiveDuration() >= deepDiveThreshold {
			deepDive = true
			break
		}
	}

	completedByDay := make(map[time.Time]int)
	maxPerDay := 0
	for _, s := range focusSessions {
		if !s.WasCompleted {
			continue
		}
		day := calendarDay(s.StartedAt)
		completedByDay[day]++
		if completedByDay[day] > maxPerDay {
			maxPerDay = completedByDay[day]
		}
	}

	return []Achievement{
		{
			ID:          "first_focus",
			Title:       "First Focus",
			Description: "Complete your first focus session.",
			IsUnlocked:  firstFocus,
		},
		{
			ID:          "deep_dive",
			Title:       "Deep Dive",
			Description: "Stay focused for at least 45 minutes in a single session.",
			IsUnlocked:  deepDive,
		},
		{
			ID:          "four_in_row",
			Title:       "Four in a Row",
			Description: "Complete 4 or more focus sessions in a single day.",
			IsUnlocked:  maxPerDay >= 4,
		},
		{
			ID:          "week_streak",
			Title:       "7-Day Streak",
			Description: "Keep a daily focus habit for 7 days in a row.",
			IsUnlocked:  LongestStreak(sessions) >= 7,
		},
	}
}

// Challenges builds the daily and weekly challenges from the session
// history and the user's daily goal. The weekly window is the 7 calendar
// days ending at today: [today-6d, today+1d).
func Challenges(sessions []domain.FocusSession, prefs domain.UserPreferences, today time.Time) (daily, weekly Challenge) {
	day := startOfDay(today)
	weekStart := day.AddDate(0, 0, -6)
	weekEnd := day.AddDate(0, 0, 1)

	dailyCompleted := 0
	weeklyCompleted := 0
	for _, s := range sessions {
		if !s.Type.IsFocus() || !s.WasCompleted {
			continue
		}
		if sameDay(s.StartedAt, day) {
			dailyCompleted++
		}
		if !s.StartedAt.Before(weekStart) && s.StartedAt.Before(weekEnd) {
			weeklyCompleted++
		}
	}

	daily = Challenge{
		ID:          "daily_sessions",
		Title:       "Daily focus goal",
		Description: fmt.Sprintf("Complete %d focus sessions today.", prefs.DailySessionGoal),
		Target:      prefs.DailySessionGoal,
		Progress:    dailyCompleted,
		IsCompleted: dailyCompleted >= prefs.DailySessionGoal,
	}

	weeklyTarget := prefs.DailySessionGoal * 5
	if weeklyTarget < 10 {
		weeklyTarget = 10
	}
	weekly = Challenge{
		ID:          "weekly_sessions",
		Title:       "Weekly focus streak",
		Description: fmt.Sprintf("Reach %d focus sessions this week.", weeklyTarget),
		Target:      weeklyTarget,
		Progress:    weeklyCompleted,
		IsCompleted: weeklyCompleted >= weeklyTarget,
	}
	return daily, weekly
}
