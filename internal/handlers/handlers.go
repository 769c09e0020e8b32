package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/ecorecycle/smartbin/docs"
	binshandlers "github.com/ecorecycle/smartbin/internal/handlers/bins"
	statshandlers "github.com/ecorecycle/smartbin/internal/handlers/stats"
	"github.com/ecorecycle/smartbin/internal/service"
	"github.com/ecorecycle/smartbin/pkg/utils"
)

type BinHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	UpdateFillLevel(w http.ResponseWriter, r *http.Request)
	AddTrash(w http.ResponseWriter, r *http.Request)
	IncreaseCapacity(w http.ResponseWriter, r *http.Request)
	Empty(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Usage(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	GetDaily(w http.ResponseWriter, r *http.Request)
}

// TransportStatus is what the health endpoint reports about the message bus.
type TransportStatus interface {
	Connected() bool
}

type Handlers struct {
	BinHandler   BinHandler
	StatsHandler StatsHandler
	transport    TransportStatus
}

func New(s *service.Services, transport TransportStatus) *Handlers {
	return &Handlers{
		BinHandler:   binshandlers.New(s.BinService),
		StatsHandler: statshandlers.New(s.StatsService),
		transport:    transport,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/bins", func(r chi.Router) {
			r.Get("/", h.BinHandler.List)
			r.Route("/{binID}", func(r chi.Router) {
				r.Get("/", h.BinHandler.Get)
				r.Post("/open", h.BinHandler.Open)
				r.Post("/close", h.BinHandler.Close)
				r.Post("/update-fill-level", h.BinHandler.UpdateFillLevel)
				r.Post("/add-trash", h.BinHandler.AddTrash)
				r.Post("/increase-capacity", h.BinHandler.IncreaseCapacity)
				r.Post("/empty", h.BinHandler.Empty)
				r.Get("/usage", h.BinHandler.Usage)
			})
		})
		r.Get("/stats/daily", h.StatsHandler.GetDaily)
	})

	return r
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	MQTT    string `json:"mqtt"`
}

// Health godoc
//
//	@Summary	Service health including transport connectivity
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Router		/health [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	mqttStatus := "disconnected"
	if h.transport != nil && h.transport.Connected() {
		mqttStatus = "connected"
	}
	utils.RespondWithJSON(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: "smartbin-core",
		MQTT:    mqttStatus,
	})
}
