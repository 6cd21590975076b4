package model

import "time"

// Schedule adalah jendela waktu pendaftaran. Pendaftaran terbuka jika ada
// satu schedule dengan Active=true dan StartTime <= now <= EndTime.
type Schedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	Active    bool      `gorm:"not null;default:false" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
