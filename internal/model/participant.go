package model

import "time"

// Attendance values captured at registration. Niat hadir, bukan kehadiran
// aktual; kehadiran aktual dicatat lewat IsCheckedIn.
const (
	AttendanceHadir      = "hadir"
	AttendanceHadirKocak = "hadir_kocak"
)

// SectionUnassigned is the bucket for participants without a real section
// (walk-in handling).
const SectionUnassigned = "Unassigned"

type Participant struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	NPK         string    `gorm:"size:8;uniqueIndex;not null" json:"npk"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Section     string    `gorm:"size:50" json:"section"`
	Attendance  string    `gorm:"size:20;not null" json:"attendance"`
	IsCheckedIn bool      `gorm:"not null;default:false" json:"is_checked_in"`
	GroupID     *uint     `json:"group_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
