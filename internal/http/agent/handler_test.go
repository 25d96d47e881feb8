package agent_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/realty/internal/agent"
	agenthttp "github.com/MrJamesThe3rd/realty/internal/http/agent"
)

func newEarningsServer(t *testing.T) (*chi.Mux, *agent.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := agent.NewMockRepository(ctrl)

	r := chi.NewRouter()
	agenthttp.NewHandler(agent.NewService(repo)).Routes(r)

	return r, repo
}

func TestHandler_Earnings_InclusiveDateBounds(t *testing.T) {
	router, repo := newEarningsServer(t)

	agentID := uuid.New()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	// to=2025-01-31 must cover the whole day, up to its last nanosecond.
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)

	repo.EXPECT().
		ListCompletedByAgent(gomock.Any(), agent.ListCompletedParams{
			AgentID: agentID,
			From:    &from,
			To:      &to,
		}).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/"+agentID.String()+"/earnings?from=2025-01-01&to=2025-01-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestHandler_Earnings_NoBounds(t *testing.T) {
	router, repo := newEarningsServer(t)

	agentID := uuid.New()

	repo.EXPECT().
		ListCompletedByAgent(gomock.Any(), agent.ListCompletedParams{AgentID: agentID}).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/"+agentID.String()+"/earnings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Earnings_RejectsMalformedDates(t *testing.T) {
	router, _ := newEarningsServer(t)

	req := httptest.NewRequest(http.MethodGet, "/"+uuid.NewString()+"/earnings?to=31-01-2025", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
