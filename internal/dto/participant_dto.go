package dto

import "time"

type RegisterRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	NPK        string `json:"npk" binding:"required,alphanum,min=1,max=8"`
	Section    string `json:"section" binding:"required,max=50"`
	Attendance string `json:"attendance" binding:"required,oneof=hadir hadir_kocak"`
	Comment    string `json:"comment" binding:"required"`
}

type CheckInRequest struct {
	ID          uint  `json:"id" binding:"required"`
	IsCheckedIn *bool `json:"is_checked_in" binding:"required"`
}

// WalkInRequest mendaftarkan peserta dadakan di hari H. Langsung check-in.
type WalkInRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	NPK     string `json:"npk" binding:"required,alphanum,min=1,max=8"`
	Section string `json:"section" binding:"required,max=50"`
}

// ParticipantPublic adalah proyeksi peserta untuk halaman publik
// (tanpa status check-in dan tanpa kelompok).
type ParticipantPublic struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	NPK        string    `json:"npk"`
	Section    string    `json:"section"`
	Attendance string    `json:"attendance"`
	CreatedAt  time.Time `json:"created_at"`
}
