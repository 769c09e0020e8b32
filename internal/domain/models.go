package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaterialPlastic = "plastic"
	MaterialPaper   = "paper"
	MaterialGlass   = "glass"
	MaterialMetal   = "metal"
	MaterialOrganic = "organic"
	MaterialOther   = "other"
)

// KnownMaterial reports whether m is one of the recognized material categories.
func KnownMaterial(m string) bool {
	switch m {
	case MaterialPlastic, MaterialPaper, MaterialGlass, MaterialMetal, MaterialOrganic, MaterialOther:
		return true
	}
	return false
}

const (
	BinStatusActive      = "active"
	BinStatusInactive    = "inactive"
	BinStatusMaintenance = "maintenance"
	BinStatusFull        = "full"
)

type Detection struct {
	ID            uuid.UUID `db:"id"`
	BinID         uuid.UUID `db:"bin_id"`
	UserCode      string    `db:"user_code"`
	Material      string    `db:"material"`
	Confidence    float64   `db:"confidence"`
	PointsAwarded int       `db:"points_awarded"`
	Rewarded      bool      `db:"rewarded"`
	EventKey      string    `db:"event_key"`
	CreatedAt     time.Time `db:"created_at"`
}

type Bin struct {
	ID             uuid.UUID  `db:"id"`
	Name           string     `db:"name"`
	Location       string     `db:"location"`
	ProximityTag   string     `db:"proximity_tag"`
	CapacityLiters float64    `db:"capacity_liters"`
	FillLiters     float64    `db:"fill_liters"`
	Status         string     `db:"status"`
	IsOpen         bool       `db:"is_open"`
	LastOpenedAt   *time.Time `db:"last_opened_at"`
	LastEmptiedAt  *time.Time `db:"last_emptied_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// FillPercent derives the fill percentage from the absolute fill.
// Fill is tracked in liters so capacity changes never skew it.
func (b *Bin) FillPercent() float64 {
	if b.CapacityLiters <= 0 {
		return 0
	}
	return b.FillLiters / b.CapacityLiters * 100
}

type DailyStats struct {
	Date               time.Time `db:"date"`
	TotalDetections    int       `db:"total_detections"`
	PlasticCount       int       `db:"plastic_count"`
	PaperCount         int       `db:"paper_count"`
	GlassCount         int       `db:"glass_count"`
	MetalCount         int       `db:"metal_count"`
	OrganicCount       int       `db:"organic_count"`
	OtherCount         int       `db:"other_count"`
	TotalPointsAwarded int       `db:"total_points_awarded"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type UsageLog struct {
	ID                 uuid.UUID  `db:"id"`
	BinID              uuid.UUID  `db:"bin_id"`
	UserCode           string     `db:"user_code"`
	OpenedAt           time.Time  `db:"opened_at"`
	ClosedAt           *time.Time `db:"closed_at"`
	DetectionCompleted bool       `db:"detection_completed"`
}
