package get_service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

func TestHandle(t *testing.T) {
	cat := catalog.NewService(catalog.Business{}, domain.WorkingHours{}, []domain.Service{
		{ID: "facial", Name: "Limpieza", DurationMinutes: 60, SessionsCount: 4},
	}, nil, logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/services/{serviceId}", NewHandler(cat, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services/facial", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.ServiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Limpieza", body.Name)
	assert.Equal(t, 4, body.SessionsCount)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
