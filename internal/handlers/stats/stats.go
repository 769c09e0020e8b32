package stats

import (
	"context"
	"net/http"
	"time"

	"github.com/ecorecycle/smartbin/internal/domain"
	"github.com/ecorecycle/smartbin/internal/dto"
	"github.com/ecorecycle/smartbin/pkg/utils"
)

type Service interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyStats, error)
}

type StatsHandler struct {
	statsService Service
}

func New(statsService Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetDaily godoc
//
//	@Summary		Get the daily detection rollup
//	@Description	Returns the rollup for the given date (YYYY-MM-DD), today when omitted.
//	@Tags			Stats
//	@Produce		json
//	@Param			date	query	string	false	"Calendar date, defaults to today"
//	@Success		200	{object}	dto.DailyStatsResponseDTO
//	@Failure		204	{object}	utils.Response	"No data for that date"
//	@Failure		400	{object}	utils.Response	"Invalid date"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/stats/daily [get]
func (h *StatsHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	stats, err := h.statsService.GetByDate(r.Context(), date)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if stats == nil {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DailyStatsResponseDTO{
		Date:               stats.Date.Format("2006-01-02"),
		TotalDetections:    stats.TotalDetections,
		PlasticCount:       stats.PlasticCount,
		PaperCount:         stats.PaperCount,
		GlassCount:         stats.GlassCount,
		MetalCount:         stats.MetalCount,
		OrganicCount:       stats.OrganicCount,
		OtherCount:         stats.OtherCount,
		TotalPointsAwarded: stats.TotalPointsAwarded,
	})
}
