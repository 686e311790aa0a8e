package deactivate_addon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/yydtours/YYD-BookingService/internal/service/catalog"
)

type fakeService struct {
	err  error
	code string
}

func (f *fakeService) DeactivateAddon(_ context.Context, code string) error {
	f.code = code
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func deleteAddon(t *testing.T, h *Handler, code string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/addons/"+code, nil)
	req = mux.SetURLVars(req, map[string]string{"code": code})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := deleteAddon(t, h, "retired-addon")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "retired-addon", svc.code)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &fakeService{err: catalog.ErrAddonNotFound}
	h := NewHandler(svc, nopLogger{})

	rec := deleteAddon(t, h, "no-such-addon")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
