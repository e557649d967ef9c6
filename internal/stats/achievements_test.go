package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focuspulse/pulse/internal/domain"
)

func achievementByID(t *testing.T, achievements []Achievement, id string) Achievement {
	t.Helper()
	for _, a := range achievements {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("achievement %q not in catalog", id)
	return Achievement{}
}

func TestAchievements(t *testing.T) {
	base := day(2025, time.March, 10, 9)

	t.Run("empty history leaves everything locked", func(t *testing.T) {
		achievements := Achievements(nil)
		require.Len(t, achievements, 4)
		for _, a := range achievements {
			assert.False(t, a.IsUnlocked, "%s should be locked", a.ID)
		}
	})

	t.Run("first focus unlocks on an interrupted session", func(t *testing.T) {
		interrupted := domain.FocusSession{
			Type:            domain.SessionTypeFocus,
			StartedAt:       base,
			PlannedDuration: 25 * time.Minute,
		}
		achievements := Achievements([]domain.FocusSession{interrupted})
		assert.True(t, achievementByID(t, achievements, "first_focus").IsUnlocked)
	})

	t.Run("breaks never unlock first focus", func(t *testing.T) {
		brk := domain.FocusSession{
			Type:      domain.SessionTypeShortBreak,
			StartedAt: base,
		}
		brk.MarkCompleted()
		achievements := Achievements([]domain.FocusSession{brk})
		assert.False(t, achievementByID(t, achievements, "first_focus").IsUnlocked)
	})

	t.Run("deep dive threshold is exactly 45 minutes", func(t *testing.T) {
		just := mkSession(base, 45*time.Minute)
		achievements := Achievements([]domain.FocusSession{just})
		assert.True(t, achievementByID(t, achievements, "deep_dive").IsUnlocked)

		short := mkSession(base, 45*time.Minute-time.Second)
		achievements = Achievements([]domain.FocusSession{short})
		assert.False(t, achievementByID(t, achievements, "deep_dive").IsUnlocked)
	})

	t.Run("four in a row needs four completed in one day", func(t *testing.T) {
		var sessions []domain.FocusSession
		for i := 0; i < 4; i++ {
			sessions = append(sessions, mkSession(base.Add(time.Duration(i)*time.Hour), 25*time.Minute))
		}
		achievements := Achievements(sessions)
		assert.True(t, achievementByID(t, achievements, "four_in_row").IsUnlocked)

		// Spread across two days it stays locked.
		sessions[3].StartedAt = base.AddDate(0, 0, 1)
		achievements = Achievements(sessions)
		assert.False(t, achievementByID(t, achievements, "four_in_row").IsUnlocked)
	})

	t.Run("week streak follows the longest streak", func(t *testing.T) {
		var sessions []domain.FocusSession
		for offset := 0; offset < 7; offset++ {
			sessions = append(sessions, mkSession(base.AddDate(0, 0, offset), 25*time.Minute))
		}
		achievements := Achievements(sessions)
		assert.True(t, achievementByID(t, achievements, "week_streak").IsUnlocked)

		achievements = Achievements(sessions[:6])
		assert.False(t, achievementByID(t, achievements, "week_streak").IsUnlocked)
	})
}

func TestChallenges(t *testing.T) {
	today := day(2025, time.March, 10, 9)
	prefs := domain.DefaultPreferences()
	prefs.DailySessionGoal = 5

	t.Run("daily challenge completes at the goal", func(t *testing.T) {
		var sessions []domain.FocusSession
		for i := 0; i < 5; i++ {
			sessions = append(sessions, mkSession(today.Add(time.Duration(i)*time.Hour), 25*time.Minute))
		}

		daily, _ := Challenges(sessions, prefs, today)
		assert.Equal(t, 5, daily.Target)
		assert.Equal(t, 5, daily.Progress)
		assert.True(t, daily.IsCompleted)
		assert.InDelta(t, 1.0, daily.ProgressRatio(), 0.0001)
	})

	t.Run("weekly target is at least ten", func(t *testing.T) {
		low := domain.DefaultPreferences()
		low.DailySessionGoal = 1
		_, weekly := Challenges(nil, low, today)
		assert.Equal(t, 10, weekly.Target)

		_, weekly = Challenges(nil, prefs, today)
		assert.Equal(t, 25, weekly.Target)
	})

	t.Run("weekly window covers seven days ending today", func(t *testing.T) {
		inside := mkSession(today.AddDate(0, 0, -6), 25*time.Minute)
		outside := mkSession(today.AddDate(0, 0, -7), 25*time.Minute)

		_, weekly := Challenges([]domain.FocusSession{inside, outside}, prefs, today)
		assert.Equal(t, 1, weekly.Progress)
	})

	t.Run("empty history keeps progress at zero", func(t *testing.T) {
		daily, weekly := Challenges(nil, prefs, today)
		assert.Zero(t, daily.Progress)
		assert.Zero(t, weekly.Progress)
		assert.Zero(t, daily.ProgressRatio())
		assert.False(t, daily.IsCompleted)
		assert.False(t, weekly.IsCompleted)
	})

	t.Run("ratio clamps above the target", func(t *testing.T) {
		c := Challenge{Target: 2, Progress: 7}
		assert.Equal(t, 1.0, c.ProgressRatio())
	})
}

func TestAchievementsWithStoredZoneOffsets(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)

	t.Run("four in a day counts across offsets", func(t *testing.T) {
		sessions := []domain.FocusSession{
			mkSession(day(2025, time.March, 10, 8), 25*time.Minute),
			mkSession(day(2025, time.March, 10, 10), 25*time.Minute),
			mkSession(time.Date(2025, time.March, 10, 14, 0, 0, 0, zone), 25*time.Minute),
			mkSession(time.Date(2025, time.March, 10, 17, 0, 0, 0, zone), 25*time.Minute),
		}
		achievements := Achievements(sessions)
		assert.True(t, achievementByID(t, achievements, "four_in_row").IsUnlocked)
	})
}
