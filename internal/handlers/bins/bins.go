package bins

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ecorecycle/smartbin/internal/domain"
	"github.com/ecorecycle/smartbin/internal/dto"
	binservice "github.com/ecorecycle/smartbin/internal/service/binservice"
	"github.com/ecorecycle/smartbin/pkg/utils"
)

type Service interface {
	Open(ctx context.Context, binID uuid.UUID, userCode, proximityTag string) (*domain.Bin, error)
	Close(ctx context.Context, binID uuid.UUID) (*domain.Bin, error)
	UpdateFillLevel(ctx context.Context, binID uuid.UUID, percent float64) (*domain.Bin, error)
	AddTrash(ctx context.Context, binID uuid.UUID, liters float64) (*domain.Bin, bool, error)
	IncreaseCapacity(ctx context.Context, binID uuid.UUID, liters float64) (*domain.Bin, error)
	Empty(ctx context.Context, binID uuid.UUID) (*domain.Bin, error)
	Get(ctx context.Context, binID uuid.UUID) (*domain.Bin, error)
	List(ctx context.Context) ([]domain.Bin, error)
	Usage(ctx context.Context, binID uuid.UUID) ([]domain.UsageLog, error)
}

type BinHandler struct {
	binService Service
}

func New(binService Service) *BinHandler {
	return &BinHandler{
		binService: binService,
	}
}

func binIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "binID"))
	return id, err == nil
}

func toBinDTO(bin *domain.Bin) dto.BinResponseDTO {
	out := dto.BinResponseDTO{
		ID:             bin.ID.String(),
		Name:           bin.Name,
		Location:       bin.Location,
		CapacityLiters: bin.CapacityLiters,
		FillLiters:     bin.FillLiters,
		FillPercent:    bin.FillPercent(),
		Status:         bin.Status,
		IsOpen:         bin.IsOpen,
	}
	if bin.LastOpenedAt != nil {
		out.LastOpenedAt = bin.LastOpenedAt.Format(time.RFC3339)
	}
	if bin.LastEmptiedAt != nil {
		out.LastEmptiedAt = bin.LastEmptiedAt.Format(time.RFC3339)
	}
	return out
}

// Open godoc
//
//	@Summary		Open a bin
//	@Description	Starts a deposit session: publishes the open command and records the usage session.
//	@Tags			Bins
//	@Accept			json
//	@Produce		json
//	@Param			binID	path	string					true	"Bin ID"
//	@Param			request	body	dto.OpenBinRequestDTO	true	"User code and optional proximity tag"
//	@Success		200	{object}	dto.BinResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		404	{object}	utils.Response	"Bin not found"
//	@Failure		409	{object}	utils.Response	"Bin unavailable or proximity mismatch"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bins/{binID}/open [post]
func (h *BinHandler) Open(w http.ResponseWriter, r *http.Request) {
	binID, ok := binIDFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bin id")
		return
	}

	var req dto.OpenBinRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserCode == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "User code is required")
		return
	}

	bin, err := h.binService.Open(r.Context(), binID, req.UserCode, req.ProximityTag)
	if err != nil {
		switch {
		case errors.Is(err, binservice.ErrBinNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, binservice.ErrBinUnavailable),
			errors.Is(err, binservice.ErrProximityMismatch):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBinDTO(bin))
}

// Close godoc
//
//	@Summary		Close a bin
//	@Tags			Bins
//	@Produce		json
//	@Param			binID	path	string	true	"Bin ID"
//	@Success		200	{object}	dto.BinResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid bin id"
//	@Failure		404	{object}	utils.Response	"Bin not found"
//	@Failure		409	{object}	utils.Response	"Bin already closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bins/{binID}/close [post]
func (h *BinHandler) Close(w http.ResponseWriter, r *http.Request) {
	binID, ok := binIDFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bin id")
		return
	}

	bin, err := h.binService.Close(r.Context(), binID)
	if err != nil {
		switch {
		case errors.Is(err, binservice.ErrBinNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, binservice.ErrAlreadyClosed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBinDTO(bin))
}

// UpdateFillLevel godoc
//
//	@Summary		Update bin fill level
//	@Description	Sets the fill from a reported percentage; 90/80 hysteresis drives the full/active status.
//	@Tags			Bins
//	@Accept			json
//	@Produce		json
//	@Param			binID	path	string						true	"Bin ID"
//	@Param			request	body	dto.UpdateFillLevelRequestDTO	true	"Fill level percent"
//	@Success		200	{object}	dto.BinResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		404	{object}	utils.Response	"Bin not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bins/{binID}/update-fill-level [post]
func (h *BinHandler) UpdateFillLevel(w http.ResponseWriter, r *http.Request) {
	binID, ok := binIDFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bin id")
		return
	}

	var req dto.UpdateFillLevelRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bin, err := h.binService.UpdateFillLevel(r.Context(), binID, req.FillLevel)
	if err != nil {
		h.respondStateError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBinDTO(bin))
}

// AddTrash godoc
//
//	@Summary		Add a deposit volume to a bin
//	@Description	Increments the fill; reaching capacity clamps the fill and reports the bin as now full.
//	@Tags			Bins
//	@Accept			json
//	@Produce		json
//	@Param			binID	path	string					true	"Bin ID"
//	@Param			request	body	dto.AddTrashRequestDTO	true	"Deposit volume in liters"
//	@Success		200	{object}	dto.AddTrashResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		404	{object}	utils.Response	"Bin not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bins/{binID}/add-trash [post]
func (h *BinHandler) AddTrash(w http.ResponseWriter, r *http.Request) {
	binID, ok := binIDFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bin id")
		return
	}

	var req dto.AddTrashRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bin, nowFull, err := h.binService.AddTrash(r.Context(), binID, req.Liters)
	if err != nil {
		h.respondStateError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AddTrashResponseDTO{
		Bin:     toBinDTO(bin),
		NowFull: nowFull,
	})
}

// IncreaseCapacity godoc
//
//	@Summary		Increase bin capacity
//	@Tags			Bins
//	@Accept			json
//	@Produce		json
//	@Param			binID	path	string							true	"Bin ID"
//	@Param			request	body	dto.IncreaseCapacityRequestDTO	true	"Additional capacity in liters"
//	@Success		200	{object}	dto.BinResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		404	{object}	utils.Response	"Bin not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bins/{binID}/increase-capacity [post]
func (h *BinHandler) IncreaseCapacity(w http.ResponseWriter, r *http.Request) {
	binID, ok := binIDFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bin id")
		return
	}

	var req dto.IncreaseCapacityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bin, err := h.binService.IncreaseCapacity(r.Context(), binID, req.Liters)
	if err != nil {
		h.respondStateError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBinDTO(bin))
}

// Empty godoc
//
//	@Summary		Empty a bin
//	@Description	Resets the fill to zero and reverts a full bin to active.
//	@Tags			Bins
//	@Produce		json
//	@Param			binID	path	string	true	"Bin ID"
//	@Success		200	{object}	dto.BinResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid bin id"
//	@Failure		404	{object}	utils.Response	"Bin not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bins/{binID}/empty [post]
func (h *BinHandler) Empty(w http.ResponseWriter, r *http.Request) {
	binID, ok := binIDFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bin id")
		return
	}

	bin, err := h.binService.Empty(r.Context(), binID)
	if err != nil {
		h.respondStateError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBinDTO(bin))
}

// Get godoc
//
//	@Summary		Get a bin
//	@Tags			Bins
//	@Produce		json
//	@Param			binID	path	string	true	"Bin ID"
//	@Success		200	{object}	dto.BinResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid bin id"
//	@Failure		404	{object}	utils.Response	"Bin not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bins/{binID} [get]
func (h *BinHandler) Get(w http.ResponseWriter, r *http.Request) {
	binID, ok := binIDFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bin id")
		return
	}

	bin, err := h.binService.Get(r.Context(), binID)
	if err != nil {
		h.respondStateError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBinDTO(bin))
}

// List godoc
//
//	@Summary		List bins
//	@Tags			Bins
//	@Produce		json
//	@Success		200	{array}		dto.BinResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bins [get]
func (h *BinHandler) List(w http.ResponseWriter, r *http.Request) {
	binList, err := h.binService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.BinResponseDTO, 0, len(binList))
	for i := range binList {
		response = append(response, toBinDTO(&binList[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Usage godoc
//
//	@Summary		List usage sessions for a bin
//	@Tags			Bins
//	@Produce		json
//	@Param			binID	path	string	true	"Bin ID"
//	@Success		200	{array}		dto.UsageLogResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid bin id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bins/{binID}/usage [get]
func (h *BinHandler) Usage(w http.ResponseWriter, r *http.Request) {
	binID, ok := binIDFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bin id")
		return
	}

	logs, err := h.binService.Usage(r.Context(), binID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UsageLogResponseDTO, 0, len(logs))
	for _, log := range logs {
		entry := dto.UsageLogResponseDTO{
			ID:                 log.ID.String(),
			BinID:              log.BinID.String(),
			UserCode:           log.UserCode,
			OpenedAt:           log.OpenedAt.Format(time.RFC3339),
			DetectionCompleted: log.DetectionCompleted,
		}
		if log.ClosedAt != nil {
			entry.ClosedAt = log.ClosedAt.Format(time.RFC3339)
		}
		response = append(response, entry)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *BinHandler) respondStateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, binservice.ErrBinNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, binservice.ErrInvalidFillLevel),
		errors.Is(err, binservice.ErrInvalidVolume):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
