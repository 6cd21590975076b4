package dto

import (
	"time"

	"anoa.com/ramadhanpitstop/internal/model"
)

type ScheduleRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Active    bool      `json:"active"`
}

type ScheduleToggleRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type ScheduleStatusResponse struct {
	IsOpen   bool            `json:"is_open"`
	Schedule *model.Schedule `json:"schedule,omitempty"`
}
