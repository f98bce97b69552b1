package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/in2post/internal/api/dto"
	"github.com/DjordjeVuckovic/in2post/internal/apperr"
	"github.com/DjordjeVuckovic/in2post/internal/calc"
	"github.com/DjordjeVuckovic/in2post/internal/domain"
	"github.com/DjordjeVuckovic/in2post/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/in2post/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(history *in_mem.InMemStorer) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewCalcRouter(e, calc.New(), history).Bind()
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCalcRouter_Convert(t *testing.T) {
	e := newTestEcho(in_mem.NewInMemStorer())

	rec := doRequest(e, http.MethodPost, "/v1/convert", `{"expression": "( 2 + 3 ) * 4"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2 3 + 4 *", resp.Postfix)
	assert.Equal(t, []string{"2", "3", "+", "4", "*"}, resp.Tokens)
}

func TestCalcRouter_Evaluate(t *testing.T) {
	e := newTestEcho(in_mem.NewInMemStorer())

	rec := doRequest(e, http.MethodPost, "/v1/evaluate", `{"postfix": "7 2 /"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3.5, resp.Result)
}

func TestCalcRouter_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantTitle  string
	}{
		{"empty expression", "/v1/convert", `{"expression": "  "}`, http.StatusBadRequest, "validation error"},
		{"malformed json", "/v1/convert", `{"expression": `, http.StatusBadRequest, "validation error"},
		{"operator adjacency", "/v1/convert", `{"expression": "+ 3 4"}`, http.StatusUnprocessableEntity, "syntax error"},
		{"missing paren", "/v1/calculations", `{"expression": "( 3 + 4"}`, http.StatusUnprocessableEntity, "syntax error"},
		{"division by zero", "/v1/calculations", `{"expression": "4 / 0"}`, http.StatusUnprocessableEntity, "evaluation error"},
		{"malformed postfix", "/v1/evaluate", `{"postfix": "3 4"}`, http.StatusUnprocessableEntity, "evaluation error"},
		{"overflowing postfix", "/v1/evaluate", `{"postfix": "1e308 10 *"}`, http.StatusUnprocessableEntity, "evaluation error"},
		{"not a number postfix", "/v1/evaluate", `{"postfix": "1e308 10 * 1e308 10 * -"}`, http.StatusUnprocessableEntity, "evaluation error"},
	}

	e := newTestEcho(in_mem.NewInMemStorer())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantTitle, resp.Title)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestCalcRouter_OverflowIsNotSaved(t *testing.T) {
	history := in_mem.NewInMemStorer()
	e := newTestEcho(history)

	rec := doRequest(e, http.MethodPost, "/v1/calculations", `{"expression": "1e308 * 10"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "result is not a finite number")

	items, total, err := history.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)

	rec = doRequest(e, http.MethodGet, "/v1/calculations", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCalcRouter_CalculationsLifecycle(t *testing.T) {
	history := in_mem.NewInMemStorer()
	e := newTestEcho(history)

	rec := doRequest(e, http.MethodPost, "/v1/calculations", `{"expression": "2 + 3 * 4"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.CalculationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "2 3 4 * +", created.Postfix)
	assert.Equal(t, 14.0, created.Result)
	assert.False(t, created.CreatedAt.IsZero())

	rec = doRequest(e, http.MethodGet, "/v1/calculations/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched dto.CalculationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)

	rec = doRequest(e, http.MethodPost, "/v1/calculations", `{"expression": "4 / 0"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	_, total, err := history.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "failed calculations are not stored")
}

func TestCalcRouter_ListCalculations(t *testing.T) {
	history := in_mem.NewInMemStorer()
	for _, expr := range []string{"1", "2", "3"} {
		_, err := history.Save(context.Background(), domain.Calculation{Expression: expr, Postfix: expr})
		require.NoError(t, err)
	}
	e := newTestEcho(history)

	rec := doRequest(e, http.MethodGet, "/v1/calculations?page=1&size=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page pagination.OffsetResult[dto.CalculationResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(3), page.Total)
	assert.True(t, page.HasMore)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "3", page.Items[0].Expression)

	rec = doRequest(e, http.MethodGet, "/v1/calculations?page=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodGet, "/v1/calculations?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodGet, "/v1/calculations?page=92233720368547760&size=100", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid pagination parameters")
}

func TestCalcRouter_GetCalculation_Errors(t *testing.T) {
	e := newTestEcho(in_mem.NewInMemStorer())

	rec := doRequest(e, http.MethodGet, "/v1/calculations/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodGet, "/v1/calculations/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "calculation not found")
}

type failingHistory struct {
	*in_mem.InMemStorer
}

func (failingHistory) Save(context.Context, domain.Calculation) (uuid.UUID, error) {
	return uuid.Nil, errors.New("disk full")
}

func TestCalcRouter_StorageFailure(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewCalcRouter(e, calc.New(), failingHistory{in_mem.NewInMemStorer()}).Bind()

	rec := doRequest(e, http.MethodPost, "/v1/calculations", `{"expression": "1 + 1"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
