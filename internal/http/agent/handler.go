package agent

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/realty/internal/agent"
	"github.com/MrJamesThe3rd/realty/internal/commission"
	"github.com/MrJamesThe3rd/realty/internal/http/api"
)

type Handler struct {
	svc *agent.Service
}

func NewHandler(svc *agent.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{agentId}/earnings", h.earnings)
}

type earningsItemResponse struct {
	TransactionID   uuid.UUID       `json:"transactionId"`
	Role            commission.Role `json:"role"`
	EarnedMinor     int64           `json:"earnedMinor"`
	EarnedMajor     float64         `json:"earnedMajor"`
	EarnedFormatted string          `json:"earnedFormatted"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type periodResponse struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

type earningsResponse struct {
	AgentID                     uuid.UUID              `json:"agentId"`
	Period                      periodResponse         `json:"period"`
	Currency                    string                 `json:"currency"`
	TotalAgentEarningsMinor     int64                  `json:"totalAgentEarningsMinor"`
	TotalAgentEarningsMajor     float64                `json:"totalAgentEarningsMajor"`
	TotalAgentEarningsFormatted string                 `json:"totalAgentEarningsFormatted"`
	ByTransaction               []earningsItemResponse `json:"byTransaction"`
}

// earnings handles GET /{agentId}/earnings?from=YYYY-MM-DD&to=YYYY-MM-DD.
// Both bounds are inclusive; the to date covers the whole day.
func (h *Handler) earnings(w http.ResponseWriter, r *http.Request) {
	agentID, err := uuid.Parse(chi.URLParam(r, "agentId"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeValidation, "invalid agentId")
		return
	}

	var from, to *time.Time

	if s := r.URL.Query().Get("from"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			api.Error(w, http.StatusBadRequest, api.CodeValidation, "invalid from date")
			return
		}

		from = &t
	}

	if s := r.URL.Query().Get("to"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			api.Error(w, http.StatusBadRequest, api.CodeValidation, "invalid to date")
			return
		}

		end := t.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	report, err := h.svc.Earnings(r.Context(), agentID, from, to)
	if err != nil {
		api.Internal(w)
		return
	}

	api.Success(w, http.StatusOK, toEarningsResponse(report))
}

func toEarningsResponse(report *agent.EarningsReport) earningsResponse {
	items := make([]earningsItemResponse, len(report.ByTransaction))
	for i, item := range report.ByTransaction {
		items[i] = earningsItemResponse{
			TransactionID:   item.TransactionID,
			Role:            item.Role,
			EarnedMinor:     item.EarnedMinor,
			EarnedMajor:     item.EarnedMajor,
			EarnedFormatted: item.EarnedFormatted,
			CreatedAt:       item.CreatedAt,
		}
	}

	return earningsResponse{
		AgentID:                     report.AgentID,
		Period:                      periodResponse{From: dateString(report.From), To: dateString(report.To)},
		Currency:                    report.Currency,
		TotalAgentEarningsMinor:     report.TotalMinor,
		TotalAgentEarningsMajor:     report.TotalMajor,
		TotalAgentEarningsFormatted: report.TotalFormatted,
		ByTransaction:               items,
	}
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.Format(time.DateOnly)

	return &s
}
