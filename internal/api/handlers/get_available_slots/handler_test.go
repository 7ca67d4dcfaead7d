package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc GetAvailableSlotsUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/services/{serviceId}/available-slots", NewHandler(uc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:            "2025-08-15",
		ServiceID:       "facial",
		Purpose:         getAvailableSlots.PurposeEvaluation,
		DurationMinutes: 30,
	}}

	rec := serve(uc, "/api/v1/services/facial/available-slots?date=2025-08-15&purpose=evaluation")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "facial", uc.got.ServiceID)
	assert.Equal(t, getAvailableSlots.PurposeEvaluation, uc.got.Purpose)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{}, body.Slots)
	assert.Equal(t, "evaluation", body.Purpose)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "missing date", target: "/api/v1/services/facial/available-slots", status: http.StatusBadRequest},
		{name: "bad date", target: "/api/v1/services/facial/available-slots?date=x", err: getAvailableSlots.ErrInvalidDate, status: http.StatusBadRequest},
		{name: "bad purpose", target: "/api/v1/services/facial/available-slots?date=2025-08-15&purpose=x", err: getAvailableSlots.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "unknown service", target: "/api/v1/services/nope/available-slots?date=2025-08-15", err: getAvailableSlots.ErrServiceNotFound, status: http.StatusNotFound},
		{name: "internal", target: "/api/v1/services/facial/available-slots?date=2025-08-15", err: fmt.Errorf("%w: db", getAvailableSlots.ErrInternal), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
