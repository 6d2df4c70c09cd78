package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WasteLog is the immutable record of one scan. XPEarned is computed once
// at creation and never recomputed; normal flow never mutates or deletes a
// log (admin maintenance may delete).
type WasteLog struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	UserID     string    `gorm:"index;not null" json:"userId"`
	WasteType  string    `gorm:"not null" json:"wasteType"`
	Confidence float64   `json:"confidence"`
	XPEarned   int       `gorm:"column:xp_earned" json:"xpEarned"`
	Fakultas   string    `gorm:"index" json:"fakultas"`
	LokasiID   string    `gorm:"column:lokasi_id" json:"lokasiId"`
	Timestamp  time.Time `gorm:"index" json:"timestamp"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (WasteLog) TableName() string {
	return "waste_logs"
}

func (w *WasteLog) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.Timestamp.IsZero() {
		w.Timestamp = time.Now()
	}
	return
}
