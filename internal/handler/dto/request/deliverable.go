package request

import (
	"time"
)

type CreateDeliverableRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	ScheduledAt *time.Time `json:"scheduled_at" binding:"omitempty"`
}

type UpdateDeliverableRequest struct {
	Status        *string    `json:"status" binding:"omitempty,oneof=PLANNED SUBMITTED PUBLISHED"`
	ScheduledAt   *time.Time `json:"scheduled_at" binding:"omitempty"`
	ClearSchedule bool       `json:"clear_schedule"`
}
