package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/handlers"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
)

func newPortalRouter(svc *MockPortalService, rate limiter.Rate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	portal := r.Group("/api/v1/portal",
		middleware.AuthMiddleware(testJWTSecret, ""),
		middleware.RateLimit(limiter.New(memory.NewStore(), rate)),
	)
	handlers.RegisterPortalRoutes(portal, svc)
	return r
}

func getOverview(r *gin.Engine, clientID string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/portal/overview", nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(clientID, ""))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPortalHandler_OverviewUsesTokenSubject(t *testing.T) {
	svc := new(MockPortalService)
	r := newPortalRouter(svc, limiter.Rate{Period: time.Minute, Limit: 10})

	svc.On("GetPortalOverview", mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil }), "client-7").
		Return(&domain.PortalOverview{
			ClientID: "client-7",
			Items: []domain.PortalItem{{
				ID:         "f-1",
				Kind:       domain.KindFlight,
				Status:     domain.StatusPending,
				TotalInEUR: decimal.NewFromInt(150),
				OnAccount:  decimal.NewFromInt(100),
				Balance:    decimal.NewFromInt(50),
			}},
			Outstanding: decimal.NewFromInt(50),
		}, nil).Once()

	w := getOverview(r, "client-7")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.PortalOverviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "50.00", resp.Outstanding)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "150.00", resp.Items[0].TotalInEUR)
	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
	svc.AssertExpectations(t)
}

func TestPortalHandler_RateLimited(t *testing.T) {
	svc := new(MockPortalService)
	r := newPortalRouter(svc, limiter.Rate{Period: time.Minute, Limit: 1})

	svc.On("GetPortalOverview", mock.Anything, "client-7").
		Return(&domain.PortalOverview{ClientID: "client-7"}, nil).Once()

	assert.Equal(t, http.StatusOK, getOverview(r, "client-7").Code)
	assert.Equal(t, http.StatusTooManyRequests, getOverview(r, "client-7").Code)
	svc.AssertExpectations(t)
}
