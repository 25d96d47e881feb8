package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/realty/internal/commission"
	"github.com/MrJamesThe3rd/realty/internal/http/api"
	"github.com/MrJamesThe3rd/realty/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/advance", h.advance)
	r.Get("/{id}/breakdown", h.breakdown)
}

type createTransactionRequest struct {
	UserID            uuid.UUID `json:"userId"`
	PropertyID        string    `json:"propertyId"`
	PropertyType      string    `json:"propertyType"`
	GrossPrice        int64     `json:"grossPrice"`
	CommissionRateBps *int      `json:"commissionRateBps,omitempty"`
	Currency          string    `json:"currency"`
	ListingAgentID    uuid.UUID `json:"listingAgentId"`
	SellingAgentID    uuid.UUID `json:"sellingAgentId"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeValidation, err.Error())
		return
	}

	if req.Currency == "" {
		req.Currency = "TRY"
	}

	params := transaction.CreateParams{
		UserID:            req.UserID,
		PropertyID:        req.PropertyID,
		PropertyType:      commission.PropertyType(req.PropertyType),
		GrossPrice:        req.GrossPrice,
		CommissionRateBps: req.CommissionRateBps,
		Currency:          req.Currency,
		ListingAgentID:    req.ListingAgentID,
		SellingAgentID:    req.SellingAgentID,
	}

	if errs := params.Validate(); len(errs) > 0 {
		api.ValidationFailed(w, errs)
		return
	}

	tx, err := h.svc.Create(r.Context(), params)
	if err != nil {
		var verr *commission.ValidationError

		if errors.As(err, &verr) {
			api.Error(w, http.StatusBadRequest, api.CodeValidation, verr.Error())
			return
		}

		api.Internal(w)

		return
	}

	api.Success(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 20)

	page = max(page, 1)
	pageSize = min(max(pageSize, 1), 100)

	filter := transaction.ListFilter{
		Skip: (page - 1) * pageSize,
		Take: pageSize,
	}

	if s := r.URL.Query().Get("userId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			api.Error(w, http.StatusBadRequest, api.CodeValidation, "invalid userId")
			return
		}

		filter.UserID = &id
	}

	txs, total, err := h.svc.List(r.Context(), filter)
	if err != nil {
		api.Internal(w)
		return
	}

	api.Success(w, http.StatusOK, listResponse{
		Items:    toResponseList(txs),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeValidation, "invalid id")
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			api.Error(w, http.StatusNotFound, api.CodeNotFound, "Transaction not found")
			return
		}

		api.Internal(w)

		return
	}

	api.Success(w, http.StatusOK, toResponse(tx))
}

func (h *Handler) advance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeValidation, "invalid id")
		return
	}

	result, err := h.svc.Advance(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			api.Error(w, http.StatusNotFound, api.CodeNotFound, "Transaction not found")
			return
		}

		api.Internal(w)

		return
	}

	api.Success(w, http.StatusOK, toAdvanceResponse(result))
}

func (h *Handler) breakdown(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeValidation, "invalid id")
		return
	}

	view, err := h.svc.GetBreakdown(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			api.Error(w, http.StatusNotFound, api.CodeNotFound, "Transaction not found")
			return
		}

		api.Internal(w)

		return
	}

	api.Success(w, http.StatusOK, toBreakdownResponse(view))
}

func queryInt(r *http.Request, key string, fallback int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return fallback
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}

	return n
}
