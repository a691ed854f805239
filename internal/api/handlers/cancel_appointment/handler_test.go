package cancel_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cancelAppointment "github.com/m0rzhov/PTS-TimetableService/internal/usecase/cancel_appointment"
)

type fakeUseCase struct {
	executeFn func(ctx context.Context, req *cancelAppointment.Request) (*cancelAppointment.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *cancelAppointment.Request) (*cancelAppointment.Response, error) {
	return f.executeFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timetable/cancel", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestCancelHandler_Success(t *testing.T) {
	orderID := uuid.New()

	handler := NewHandler(&fakeUseCase{
		executeFn: func(ctx context.Context, req *cancelAppointment.Request) (*cancelAppointment.Response, error) {
			assert.Equal(t, int64(1), req.ClientID)
			assert.Equal(t, orderID, req.OrderID)
			return &cancelAppointment.Response{Success: true}, nil
		},
	}, nopLogger{})

	rec := doRequest(handler, fmt.Sprintf(`{"clientId": 1, "orderId": %q}`, orderID))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CancelResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
}

func TestCancelHandler_InvalidOrderID(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(handler, `{"clientId": 1, "orderId": "not-a-uuid"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", cancelAppointment.ErrAppointmentNotFound, http.StatusNotFound},
		{"already cancelled", cancelAppointment.ErrAlreadyCancelled, http.StatusBadRequest},
		{"internal", cancelAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{
				executeFn: func(ctx context.Context, req *cancelAppointment.Request) (*cancelAppointment.Response, error) {
					return nil, tc.err
				},
			}, nopLogger{})

			rec := doRequest(handler, fmt.Sprintf(`{"clientId": 1, "orderId": %q}`, uuid.New()))

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
