package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/focuspulse/pulse/internal/domain"
)

// fallbackInsight is emitted when no other observation applies.
const fallbackInsight = "Start logging more focus sessions to unlock deeper insights."

// Insights derives short natural-language observations from the session
// history. The result always has at least one entry.
func Insights(sessions []domain.FocusSession) []string {
	var insights []string

	var focusSessions []domain.FocusSession
	for _, s := range sessions {
		if s.Type.IsFocus() {
			focusSessions = append(focusSessions, s)
		}
	}

	if text, ok := weekdayAffinity(focusSessions); ok {
		insights = append(insights, text)
	}
	if text, ok := fatigueSignal(focusSessions); ok {
		insights = append(insights, text)
	}

	totalDistractions := 0
	for _, s := range focusSessions {
		totalDistractions += s.DistractionsCount
	}
	if totalDistractions > 0 {
		insights = append(insights,
			fmt.Sprintf("You had %d distractions logged across your recent focus sessions.", totalDistractions))
	}

	if len(insights) == 0 {
		insights = append(insights, fallbackInsight)
	}
	return insights
}

// weekdayAffinity names the weekday with the largest accumulated
// effective focus duration. Ties go to the earliest weekday in
// Sunday-first order.
func weekdayAffinity(focusSessions []domain.FocusSession) (string, bool) {
	var byWeekday [7]int64
	any := false
	for _, s := range focusSessions {
		byWeekday[int(s.StartedAt.Weekday())] += int64(s.EffectiveDuration())
		any = true
	}
	if !any {
		return "", false
	}

	best := 0
	for weekday := 1; weekday < 7; weekday++ {
		if byWeekday[weekday] > byWeekday[best] {
			best = weekday
		}
	}
	return fmt.Sprintf("You are most productive on %ss.", time.Weekday(best).String()), true
}

// fatigueSignal compares the average rating of the first three focus
// sessions (in storage order) against the remainder and reports the
// percentage drop when the later sessions score lower.
func fatigueSignal(focusSessions []domain.FocusSession) (string, bool) {
	if len(focusSessions) < 4 {
		return "", false
	}

	first, firstOK := averageRating(focusSessions[:3])
	rest, restOK := averageRating(focusSessions[3:])
	if !firstOK || !restOK || first <= 0 || rest <= 0 || rest >= first {
		return "", false
	}

	drop := int(math.Round((1 - rest/first) * 100))
	return fmt.Sprintf("After 3 focus sessions your focus quality tends to drop by about %d%%.", drop), true
}

// averageRating averages the focus ratings present in the given
// sessions. The second return is false when no session carries a rating.
func averageRating(sessions []domain.FocusSession) (float64, bool) {
	sum, count := 0, 0
	for _, s := range sessions {
		if s.FocusRating != nil {
			sum += *s.FocusRating
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}
