package services

import (
	"time"

	"github.com/mdaffarh/eco-scan/internal/models"
	"gorm.io/gorm"
)

type CountByKey struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type TopUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TotalXP int    `json:"totalXp"`
	Level   int    `json:"level"`
}

// DashboardStats aggregates the admin dashboard numbers.
type DashboardStats struct {
	TotalScans      int64        `json:"totalScans"`
	TotalUsers      int64        `json:"totalUsers"`
	TotalBins       int64        `json:"totalBins"`
	ScansByType     []CountByKey `json:"scansByType"`
	ScansByFakultas []CountByKey `json:"scansByFakultas"`
	TopUsers        []TopUser    `json:"topUsers"`
}

// timeFilterCutoff returns the start of the requested window, or zero time
// for "all".
func timeFilterCutoff(filter string, now time.Time) time.Time {
	switch filter {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		return now.AddDate(0, 0, -7)
	case "month":
		return now.AddDate(0, -1, 0)
	default:
		return time.Time{}
	}
}

// GetDashboardStats computes the admin dashboard aggregates for the given
// time filter (today, week, month, all).
func GetDashboardStats(db *gorm.DB, timeFilter string) (*DashboardStats, error) {
	stats := &DashboardStats{
		ScansByType:     []CountByKey{},
		ScansByFakultas: []CountByKey{},
		TopUsers:        []TopUser{},
	}

	cutoff := timeFilterCutoff(timeFilter, time.Now())
	logs := db.Model(&models.WasteLog{})
	if !cutoff.IsZero() {
		logs = logs.Where("timestamp >= ?", cutoff)
	}
	// Reusable query root; each aggregate below starts from a fresh clone
	logs = logs.Session(&gorm.Session{})

	if err := logs.Count(&stats.TotalScans).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.BinLocation{}).Count(&stats.TotalBins).Error; err != nil {
		return nil, err
	}

	if err := logs.
		Select("waste_type as key, count(*) as count").
		Group("waste_type").
		Order("count desc").
		Scan(&stats.ScansByType).Error; err != nil {
		return nil, err
	}

	if err := logs.
		Select("fakultas as key, count(*) as count").
		Group("fakultas").
		Order("count desc").
		Scan(&stats.ScansByFakultas).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.User{}).
		Select("id, name, total_xp, level").
		Order("total_xp desc").
		Limit(10).
		Scan(&stats.TopUsers).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
