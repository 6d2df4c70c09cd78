package gamification

// UserStatsSnapshot is the aggregate a badge predicate is evaluated
// against. It is rebuilt from the user's scan history on every reward
// resolution and never persisted.
type UserStatsSnapshot struct {
	TotalScans        int     `json:"totalScans"`
	Level             int     `json:"level"`
	TotalXP           int     `json:"totalXP"`
	HighestConfidence float64 `json:"highestConfidence"`
	WasteTypesScanned int     `json:"wasteTypesScanned"`
	Streak            int     `json:"streak"`
}

// BadgeDefinition is a static catalog entry. Earned is a predicate over
// cumulative stats; once true the badge is awarded and never revoked.
type BadgeDefinition struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	Icon        string                       `json:"icon"`
	Earned      func(UserStatsSnapshot) bool `json:"-"`
}

// Catalog is the full badge catalog in declaration order. Immutable after
// process start; safe for unsynchronized concurrent reads.
var Catalog = []BadgeDefinition{
	// Scan count badges
	{
		ID:          "first_scan",
		Name:        "First Scan",
		Description: "Selesaikan scan pertama kamu",
		Icon:        "🎯",
		Earned:      func(s UserStatsSnapshot) bool { return s.TotalScans >= 1 },
	},
	{
		ID:          "scan_10",
		Name:        "Scanner Novice",
		Description: "Selesaikan 10 scan",
		Icon:        "📸",
		Earned:      func(s UserStatsSnapshot) bool { return s.TotalScans >= 10 },
	},
	{
		ID:          "scan_50",
		Name:        "Scanner Expert",
		Description: "Selesaikan 50 scan",
		Icon:        "📷",
		Earned:      func(s UserStatsSnapshot) bool { return s.TotalScans >= 50 },
	},
	{
		ID:          "scan_100",
		Name:        "Scanner Master",
		Description: "Selesaikan 100 scan",
		Icon:        "🎥",
		Earned:      func(s UserStatsSnapshot) bool { return s.TotalScans >= 100 },
	},

	// Level badges
	{
		ID:          "level_5",
		Name:        "Eco Starter",
		Description: "Capai Level 5",
		Icon:        "🌱",
		Earned:      func(s UserStatsSnapshot) bool { return s.Level >= 5 },
	},
	{
		ID:          "level_10",
		Name:        "Eco Warrior",
		Description: "Capai Level 10",
		Icon:        "🌿",
		Earned:      func(s UserStatsSnapshot) bool { return s.Level >= 10 },
	},
	{
		ID:          "level_20",
		Name:        "Eco Champion",
		Description: "Capai Level 20",
		Icon:        "🌳",
		Earned:      func(s UserStatsSnapshot) bool { return s.Level >= 20 },
	},

	// Confidence badges
	{
		ID:          "high_confidence",
		Name:        "Sharp Eye",
		Description: "Dapatkan confidence 95%+",
		Icon:        "👁️",
		Earned:      func(s UserStatsSnapshot) bool { return s.HighestConfidence >= 0.95 },
	},
	{
		ID:          "perfect_scan",
		Name:        "Perfect Scanner",
		Description: "Dapatkan confidence 100%",
		Icon:        "💯",
		Earned:      func(s UserStatsSnapshot) bool { return s.HighestConfidence >= 1.0 },
	},

	// Waste type diversity badges
	{
		ID:          "waste_explorer",
		Name:        "Waste Explorer",
		Description: "Scan 3 jenis sampah berbeda",
		Icon:        "🗺️",
		Earned:      func(s UserStatsSnapshot) bool { return s.WasteTypesScanned >= 3 },
	},
	{
		ID:          "waste_master",
		Name:        "Waste Master",
		Description: "Scan semua jenis sampah (6 jenis)",
		Icon:        "🏆",
		Earned:      func(s UserStatsSnapshot) bool { return s.WasteTypesScanned >= 6 },
	},

	// Streak badges
	{
		ID:          "streak_7",
		Name:        "Week Warrior",
		Description: "Scan selama 7 hari berturut-turut",
		Icon:        "🔥",
		Earned:      func(s UserStatsSnapshot) bool { return s.Streak >= 7 },
	},
	{
		ID:          "streak_30",
		Name:        "Month Master",
		Description: "Scan selama 30 hari berturut-turut",
		Icon:        "⚡",
		Earned:      func(s UserStatsSnapshot) bool { return s.Streak >= 30 },
	},

	// Special badges
	{
		ID:          "eco_hero",
		Name:        "Eco Hero",
		Description: "Capai 5000 total XP",
		Icon:        "🦸",
		Earned:      func(s UserStatsSnapshot) bool { return s.TotalXP >= 5000 },
	},
}

// EvaluateBadges returns the ids of badges newly earned by the given stats,
// excluding anything already owned. Catalog-declaration order keeps the
// result deterministic.
func EvaluateBadges(stats UserStatsSnapshot, owned []string) []string {
	ownedSet := make(map[string]bool, len(owned))
	for _, id := range owned {
		ownedSet[id] = true
	}

	var earned []string
	for _, badge := range Catalog {
		if ownedSet[badge.ID] {
			continue
		}
		if badge.Earned(stats) {
			earned = append(earned, badge.ID)
		}
	}
	return earned
}

// BadgeByID resolves a badge id to its display metadata.
func BadgeByID(id string) (BadgeDefinition, bool) {
	for _, badge := range Catalog {
		if badge.ID == id {
			return badge, true
		}
	}
	return BadgeDefinition{}, false
}

// BadgeStatus pairs a catalog entry with its unlock state for one user.
type BadgeStatus struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
}

// BadgesWithStatus returns the full catalog annotated with the user's
// unlock state.
func BadgesWithStatus(owned []string) []BadgeStatus {
	ownedSet := make(map[string]bool, len(owned))
	for _, id := range owned {
		ownedSet[id] = true
	}

	statuses := make([]BadgeStatus, 0, len(Catalog))
	for _, badge := range Catalog {
		statuses = append(statuses, BadgeStatus{
			ID:          badge.ID,
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
			Unlocked:    ownedSet[badge.ID],
		})
	}
	return statuses
}
