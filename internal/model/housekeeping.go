package model

import "time"

// Housekeeping task kinds.
const (
	TaskCleaning    = "cleaning"
	TaskInspection  = "inspection"
	TaskMaintenance = "maintenance"
	TaskTurndown    = "turndown"
)

// Housekeeping task statuses.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskDone       = "done"
)

// HousekeepingTask is a unit of work for housekeeping staff in one room.
type HousekeepingTask struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	RoomID      uint       `gorm:"index;not null" json:"room_id"`
	Kind        string     `gorm:"size:16;not null" json:"kind"`
	Priority    int        `gorm:"not null;default:0" json:"priority"`
	Assignee    string     `gorm:"size:128" json:"assignee"`
	Status      string     `gorm:"size:16;not null;index" json:"status"`
	Notes       string     `gorm:"type:text" json:"notes"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Associations
	Room Room `gorm:"constraint:OnDelete:CASCADE" json:"room,omitempty"`
}
