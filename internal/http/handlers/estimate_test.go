package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moving-estimate-service/internal/apperr"
	"moving-estimate-service/internal/domain"
	"moving-estimate-service/internal/logx"
)

type stubEstimateUsecase struct {
	quoteFn       func(ctx context.Context, order *domain.Order) (int, error)
	prefecturesFn func(ctx context.Context) ([]domain.Prefecture, error)
}

func (s *stubEstimateUsecase) Quote(ctx context.Context, order *domain.Order) (int, error) {
	if s.quoteFn == nil {
		panic("Quote not expected in this test")
	}
	return s.quoteFn(ctx, order)
}

func (s *stubEstimateUsecase) Prefectures(ctx context.Context) ([]domain.Prefecture, error) {
	if s.prefecturesFn == nil {
		panic("Prefectures not expected in this test")
	}
	return s.prefecturesFn(ctx)
}

const estimateBody = `{
    "customer_name": "山田太郎",
    "tel": "0312345678",
    "email": "taro@example.com",
    "old_prefecture_id": "13",
    "new_prefecture_id": "27",
    "old_address": "千代田1-1",
    "new_address": "北区2-2",
    "box": 2,
    "bed": 1,
    "bicycle": 0,
    "washing_machine": 1,
    "washing_machine_installation": true
}`

func TestEstimateHandler_Quote_OK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(estimateBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	uc := &stubEstimateUsecase{
		quoteFn: func(ctx context.Context, order *domain.Order) (int, error) {
			require.Equal(t, "13", order.OldPrefectureID)
			require.Equal(t, "27", order.NewPrefectureID)
			require.Equal(t, 2, order.Quantity(domain.PackageBox))
			require.Equal(t, 0, order.Quantity(domain.PackageBicycle))
			require.True(t, order.HasService(domain.ServiceWashingMachineInstall))
			return 10000, nil
		},
	}

	h := NewEstimateHandler(logx.Nop(), uc)
	h.Quote(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"price":10000}`, rr.Body.String())
}

func TestEstimateHandler_Quote_FlagOffMeansNoServices(t *testing.T) {
	t.Parallel()

	body := strings.Replace(estimateBody, `"washing_machine_installation": true`, `"washing_machine_installation": false`, 1)
	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(body))
	rr := httptest.NewRecorder()

	uc := &stubEstimateUsecase{
		quoteFn: func(ctx context.Context, order *domain.Order) (int, error) {
			require.Empty(t, order.OptionalServices)
			return 8000, nil
		},
	}

	NewEstimateHandler(logx.Nop(), uc).Quote(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestEstimateHandler_Quote_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", apperr.ErrInvalid, http.StatusBadRequest},
		{"missing rate", apperr.ErrRateMissing, http.StatusInternalServerError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(estimateBody))
			rr := httptest.NewRecorder()

			uc := &stubEstimateUsecase{
				quoteFn: func(ctx context.Context, order *domain.Order) (int, error) {
					return 0, tc.err
				},
			}

			NewEstimateHandler(logx.Nop(), uc).Quote(rr, req)
			assert.Equal(t, tc.wantStatus, rr.Code)

			var resp map[string]string
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			require.NotEmpty(t, resp["error"])
		})
	}
}

func TestEstimateHandler_Quote_BadJSON(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`not json`, `{"box":1}{"box":2}`, `{"unknown_field":1}`} {
		req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(body))
		rr := httptest.NewRecorder()

		NewEstimateHandler(logx.Nop(), &stubEstimateUsecase{}).Quote(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body: %s", body)
	}
}

func TestEstimateHandler_Prefectures_OK(t *testing.T) {
	t.Parallel()

	uc := &stubEstimateUsecase{
		prefecturesFn: func(ctx context.Context) ([]domain.Prefecture, error) {
			return []domain.Prefecture{{ID: "1", Name: "北海道"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/prefectures", nil)
	rr := httptest.NewRecorder()

	NewEstimateHandler(logx.Nop(), uc).Prefectures(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":"1","name":"北海道"}]`, rr.Body.String())
}

func TestEstimateHandler_Prefectures_Error(t *testing.T) {
	t.Parallel()

	uc := &stubEstimateUsecase{
		prefecturesFn: func(ctx context.Context) ([]domain.Prefecture, error) {
			return nil, errors.New("db down")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/prefectures", nil)
	rr := httptest.NewRecorder()

	NewEstimateHandler(logx.Nop(), uc).Prefectures(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
