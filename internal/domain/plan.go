package domain

import "time"

// PlanBlock is a scheduled focus block on the daily planner.
type PlanBlock struct {
	ID          string        `json:"id"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Preset      PresetProfile `json:"preset"`
	TaskID      *string       `json:"task_id,omitempty"`
	IsCompleted bool          `json:"is_completed"`
}

// NewPlanBlock creates a planner block for the given window.
func NewPlanBlock(start, end time.Time, preset PresetProfile, taskID *string) (*PlanBlock, error) {
	if !end.After(start) {
		return nil, ErrInvalidPlanBlock
	}
	return &PlanBlock{
		ID:        generateID(),
		StartTime: start,
		EndTime:   end,
		Preset:    preset,
		TaskID:    taskID,
	}, nil
}

// Duration returns the length of the planned window.
func (b *PlanBlock) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}
