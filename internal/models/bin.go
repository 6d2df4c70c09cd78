package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FakultasList is the fixed set of campus sites a bin location can belong to.
var FakultasList = []string{"FPTI", "FPMIPA", "FPEB", "FPBS", "FPIPS", "FPOK", "FIP", "FK", "FPSD"}

// BinLocation describes one physical disposal point: where it is, which
// bin categories stand there, and an optional photo. Lifecycle is owned by
// admin CRUD; the resolver only reads snapshots.
type BinLocation struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Value       string   `gorm:"uniqueIndex;not null" json:"value"` // machine-readable slug
	Label       string   `gorm:"not null" json:"label"`             // display name, e.g. "Gedung FPMIPA Lantai 1"
	Fakultas    string   `gorm:"index" json:"fakultas"`
	Bins        []string `gorm:"serializer:json;type:text" json:"bins"` // bin categories present
	Description string   `json:"description"`
	ImageURL    string   `gorm:"column:image_url" json:"imageUrl"`
}

func (BinLocation) TableName() string {
	return "bin_locations"
}

func (b *BinLocation) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Bins == nil {
		b.Bins = []string{}
	}
	return
}
