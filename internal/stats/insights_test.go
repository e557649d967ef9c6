package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focuspulse/pulse/internal/domain"
)

func TestInsights(t *testing.T) {
	t.Run("empty history yields exactly the fallback", func(t *testing.T) {
		insights := Insights(nil)
		require.Len(t, insights, 1)
		assert.Equal(t, fallbackInsight, insights[0])
	})

	t.Run("weekday affinity names the busiest weekday", func(t *testing.T) {
		// 2025-03-10 is a Monday, 2025-03-11 a Tuesday.
		monday := day(2025, time.March, 10, 9)
		tuesday := day(2025, time.March, 11, 9)

		sessions := []domain.FocusSession{
			mkSession(monday, 50*time.Minute),
			mkSession(tuesday, 25*time.Minute),
		}

		insights := Insights(sessions)
		require.NotEmpty(t, insights)
		assert.Contains(t, insights[0], "Monday")
	})

	t.Run("fatigue signal compares first three against the rest", func(t *testing.T) {
		base := day(2025, time.March, 10, 8)
		ratings := []int{5, 5, 5, 3}

		var sessions []domain.FocusSession
		for i, rating := range ratings {
			s := mkSession(base.Add(time.Duration(i)*time.Hour), 25*time.Minute)
			require.NoError(t, s.AttachReview(rating, ""))
			sessions = append(sessions, s)
		}

		insights := Insights(sessions)
		found := false
		for _, insight := range insights {
			if strings.Contains(insight, "drop by about 40%") {
				found = true
			}
		}
		assert.True(t, found, "expected a fatigue insight, got %v", insights)
	})

	t.Run("no fatigue signal when quality holds up", func(t *testing.T) {
		base := day(2025, time.March, 10, 8)
		var sessions []domain.FocusSession
		for i := 0; i < 5; i++ {
			s := mkSession(base.Add(time.Duration(i)*time.Hour), 25*time.Minute)
			require.NoError(t, s.AttachReview(4, ""))
			sessions = append(sessions, s)
		}

		for _, insight := range Insights(sessions) {
			assert.NotContains(t, insight, "drop")
		}
	})

	t.Run("distraction summary appears when logged", func(t *testing.T) {
		s := mkSession(day(2025, time.March, 10, 9), 25*time.Minute)
		s.LogDistraction(domain.DistractionManual, s.StartedAt.Add(time.Minute))
		s.LogDistraction(domain.DistractionAppSwitch, s.StartedAt.Add(2*time.Minute))

		insights := Insights([]domain.FocusSession{s})
		found := false
		for _, insight := range insights {
			if strings.Contains(insight, "2 distractions") {
				found = true
			}
		}
		assert.True(t, found, "expected a distraction insight, got %v", insights)
	})

	t.Run("breaks contribute nothing", func(t *testing.T) {
		brk := domain.FocusSession{
			Type:              domain.SessionTypeShortBreak,
			StartedAt:         day(2025, time.March, 10, 9),
			DistractionsCount: 3,
		}
		insights := Insights([]domain.FocusSession{brk})
		require.Len(t, insights, 1)
		assert.Equal(t, fallbackInsight, insights[0])
	})
}
