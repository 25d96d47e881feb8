package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/realty/internal/http/api"
	"github.com/MrJamesThe3rd/realty/internal/user"
)

type Handler struct {
	svc *user.Service
}

func NewHandler(svc *user.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type createUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type userResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func toResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeValidation, err.Error())
		return
	}

	params := user.CreateParams{Email: req.Email, Name: req.Name}
	if errs := params.Validate(); len(errs) > 0 {
		api.ValidationFailed(w, errs)
		return
	}

	u, err := h.svc.Create(r.Context(), params)
	if err != nil {
		if errors.Is(err, user.ErrEmailInUse) {
			api.Error(w, http.StatusConflict, api.CodeEmailInUse, "Email already in use")
			return
		}

		api.Internal(w)

		return
	}

	api.Success(w, http.StatusCreated, toResponse(u))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeValidation, "invalid id")
		return
	}

	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			api.Error(w, http.StatusNotFound, api.CodeNotFound, "User not found")
			return
		}

		api.Internal(w)

		return
	}

	api.Success(w, http.StatusOK, toResponse(u))
}

type listResponse struct {
	Items    []userResponse `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 20)

	users, total, err := h.svc.List(r.Context(), page, pageSize)
	if err != nil {
		api.Internal(w)
		return
	}

	items := make([]userResponse, len(users))
	for i, u := range users {
		items[i] = toResponse(u)
	}

	api.Success(w, http.StatusOK, listResponse{
		Items:    items,
		Total:    total,
		Page:     max(page, 1),
		PageSize: min(max(pageSize, 1), 100),
	})
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
