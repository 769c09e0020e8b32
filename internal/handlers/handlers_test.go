package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/ecorecycle/smartbin/docs"
	"github.com/ecorecycle/smartbin/internal/handlers/bins"
	"github.com/ecorecycle/smartbin/internal/handlers/stats"
	"github.com/ecorecycle/smartbin/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		BinService:   bins.NewMockService(ctrl),
		StatsService: stats.NewMockService(ctrl),
	}

	h := New(services, NewMockTransportStatus(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBinHandler := NewMockBinHandler(ctrl)
	mockStatsHandler := NewMockStatsHandler(ctrl)
	mockTransport := NewMockTransportStatus(ctrl)

	mockBinHandler.EXPECT().Open(gomock.Any(), gomock.Any()).AnyTimes()
	mockBinHandler.EXPECT().Close(gomock.Any(), gomock.Any()).AnyTimes()
	mockBinHandler.EXPECT().UpdateFillLevel(gomock.Any(), gomock.Any()).AnyTimes()
	mockBinHandler.EXPECT().AddTrash(gomock.Any(), gomock.Any()).AnyTimes()
	mockBinHandler.EXPECT().IncreaseCapacity(gomock.Any(), gomock.Any()).AnyTimes()
	mockBinHandler.EXPECT().Empty(gomock.Any(), gomock.Any()).AnyTimes()
	mockBinHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockBinHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockBinHandler.EXPECT().Usage(gomock.Any(), gomock.Any()).AnyTimes()
	mockStatsHandler.EXPECT().GetDaily(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransport.EXPECT().Connected().Return(true).AnyTimes()

	h := &Handlers{
		BinHandler:   mockBinHandler,
		StatsHandler: mockStatsHandler,
		transport:    mockTransport,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	binID := "8e5c2c2f-5c59-4f6a-9a3e-2a4f0c9b1d10"
	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/api/bins", http.StatusOK},
		{"GET", "/api/bins/" + binID, http.StatusOK},
		{"POST", "/api/bins/" + binID + "/open", http.StatusOK},
		{"POST", "/api/bins/" + binID + "/close", http.StatusOK},
		{"POST", "/api/bins/" + binID + "/update-fill-level", http.StatusOK},
		{"POST", "/api/bins/" + binID + "/add-trash", http.StatusOK},
		{"POST", "/api/bins/" + binID + "/increase-capacity", http.StatusOK},
		{"POST", "/api/bins/" + binID + "/empty", http.StatusOK},
		{"GET", "/api/bins/" + binID + "/usage", http.StatusOK},
		{"GET", "/api/stats/daily", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		connected bool
		expected  string
	}{
		{"Transport connected", true, "connected"},
		{"Transport disconnected", false, "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTransport := NewMockTransportStatus(ctrl)
			mockTransport.EXPECT().Connected().Return(tt.connected)

			h := &Handlers{transport: mockTransport}
			req := httptest.NewRequest("GET", "/health", nil)
			rec := httptest.NewRecorder()

			h.Health(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			var resp healthResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "healthy", resp.Status)
			assert.Equal(t, tt.expected, resp.MQTT)
		})
	}
}
