package model

import "time"

type Group struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	GroupNumber int           `gorm:"not null" json:"group_number"`
	GroupName   string        `gorm:"size:100;not null" json:"group_name"`
	Color       string        `gorm:"size:20;not null" json:"color"`
	Members     []Participant `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"members,omitempty"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
}
