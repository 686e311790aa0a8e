package get_tier_table

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/internal/service/catalog"
	"github.com/yydtours/YYD-BookingService/pkg/money"
)

type fakeService struct {
	table map[domain.Season][]*domain.SeasonPriceTier
	err   error
}

func (f *fakeService) TierTable(context.Context, int64) (map[domain.Season][]*domain.SeasonPriceTier, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.table, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func getTable(t *testing.T, h *Handler, tourID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tours/"+tourID+"/season-prices", nil)
	req = mux.SetURLVars(req, map[string]string{"tourId": tourID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_SortsTiersByMinPeople(t *testing.T) {
	svc := &fakeService{table: map[domain.Season][]*domain.SeasonPriceTier{
		domain.SeasonHigh: {
			{Label: "5-8-people", MinPeople: 5, MaxPeople: 8, Price: money.FromEur(95), PricePerPerson: true},
			{Label: "1-2-people", MinPeople: 1, MaxPeople: 2, Price: money.FromEur(250)},
		},
	}}
	h := NewHandler(svc, nopLogger{})

	rec := getTable(t, h, "7")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TierTableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.TourID)

	high := resp.Seasons["high"]
	require.Len(t, high, 2)
	assert.Equal(t, "1-2-people", high[0].Label)
	assert.Equal(t, "250.00", high[0].Price)
	assert.Equal(t, "5-8-people", high[1].Label)
	assert.True(t, high[1].PricePerPerson)
}

func TestHandle_TourNotFound(t *testing.T) {
	h := NewHandler(&fakeService{err: catalog.ErrTourNotFound}, nopLogger{})
	rec := getTable(t, h, "404")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_BadTourID(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})
	rec := getTable(t, h, "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
