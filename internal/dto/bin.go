package dto

type OpenBinRequestDTO struct {
	UserCode     string `json:"user_code"`
	ProximityTag string `json:"proximity_tag,omitempty"`
}

type UpdateFillLevelRequestDTO struct {
	FillLevel float64 `json:"fill_level"`
}

type AddTrashRequestDTO struct {
	Liters float64 `json:"liters"`
}

type IncreaseCapacityRequestDTO struct {
	Liters float64 `json:"liters"`
}

type BinResponseDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	CapacityLiters float64 `json:"capacity_liters"`
	FillLiters     float64 `json:"fill_liters"`
	FillPercent    float64 `json:"fill_percent"`
	Status         string  `json:"status"`
	IsOpen         bool    `json:"is_open"`
	LastOpenedAt   string  `json:"last_opened_at,omitempty"`
	LastEmptiedAt  string  `json:"last_emptied_at,omitempty"`
}

type AddTrashResponseDTO struct {
	Bin     BinResponseDTO `json:"bin"`
	NowFull bool           `json:"now_full"`
}

type UsageLogResponseDTO struct {
	ID                 string `json:"id"`
	BinID              string `json:"bin_id"`
	UserCode           string `json:"user_code"`
	OpenedAt           string `json:"opened_at"`
	ClosedAt           string `json:"closed_at,omitempty"`
	DetectionCompleted bool   `json:"detection_completed"`
}
