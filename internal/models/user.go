package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"`
	Role     Role   `gorm:"type:text;default:'USER'" json:"role"`

	// Gamification state. Level is derived from TotalXP and cached here;
	// both are mutated only inside the scan reward transaction.
	TotalXP int      `gorm:"column:total_xp;default:0" json:"totalXp"`
	Level   int      `gorm:"default:1" json:"level"`
	Badges  []string `gorm:"serializer:json;type:text" json:"badges"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Level == 0 {
		u.Level = 1
	}
	if u.Badges == nil {
		u.Badges = []string{}
	}
	return
}

// HasBadge reports whether the badge id is already owned.
func (u *User) HasBadge(id string) bool {
	for _, b := range u.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// AddBadges unions new badge ids into the owned set. Badges are never
// revoked and never duplicated.
func (u *User) AddBadges(ids []string) {
	for _, id := range ids {
		if !u.HasBadge(id) {
			u.Badges = append(u.Badges, id)
		}
	}
}
