package model

import "time"

// VisitorStat holds one row per calendar day. Counts are only ever mutated
// through atomic SQL increments, never read-modify-write from the client.
type VisitorStat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD
	Count     int64     `gorm:"not null;default:0" json:"count"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
