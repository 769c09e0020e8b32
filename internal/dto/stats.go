package dto

type DailyStatsResponseDTO struct {
	Date               string `json:"date"`
	TotalDetections    int    `json:"total_detections"`
	PlasticCount       int    `json:"plastic_count"`
	PaperCount         int    `json:"paper_count"`
	GlassCount         int    `json:"glass_count"`
	MetalCount         int    `json:"metal_count"`
	OrganicCount       int    `json:"organic_count"`
	OtherCount         int    `json:"other_count"`
	TotalPointsAwarded int    `json:"total_points_awarded"`
}
