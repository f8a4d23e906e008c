package item

import (
	"errors"
	"io"
	"itemservice/internal/platform/logger"
	"mime"
	"net/http"

	httpErrors "itemservice/internal/platform/http"

	"github.com/go-chi/chi/v5"

	"itemservice/internal/adapters/binding"
	"itemservice/internal/adapters/http/response"
	"itemservice/internal/core/domain/item"
	"itemservice/internal/platform/validation"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	manager  Manager
	messages *validation.MessageResolver
	recorder ValidationRecorder
}

func NewHandler(manager Manager, messages *validation.MessageResolver, recorder ValidationRecorder) *Handler {
	return &Handler{
		manager:  manager,
		messages: messages,
		recorder: recorder,
	}
}

type ItemResponse struct {
	ID       string `json:"id"`
	ItemName string `json:"itemName"`
	Price    *int   `json:"price"`
	Quantity *int   `json:"quantity"`
}

func newItemResponse(entity *item.Item) ItemResponse {
	return ItemResponse{
		ID:       entity.ID,
		ItemName: entity.Name,
		Price:    entity.Price,
		Quantity: entity.Quantity,
	}
}

type ValidResponse struct {
	Valid bool `json:"valid"`
}

func (h *Handler) mapDomainError(err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return httpErrors.NewNotFound("Item not found", err)
	case errors.Is(err, item.ErrInvalidItemID):
		return httpErrors.NewBadRequest("Invalid item ID", err)
	case errors.Is(err, binding.ErrMalformedBody):
		return httpErrors.NewBadRequest("Invalid request payload", err)
	default:
		var alreadyExistsErr *item.AlreadyExistsError
		if errors.As(err, &alreadyExistsErr) {
			return httpErrors.NewConflict("Item already exists", err)
		}
		return err
	}
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) error {
	items, err := h.manager.ListItems(r.Context())
	if err != nil {
		return h.mapDomainError(err)
	}

	out := make([]ItemResponse, len(items))
	for i, entity := range items {
		out[i] = newItemResponse(entity)
	}

	response.RespondJSON(w, http.StatusOK, out)
	return nil
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) error {
	entity, err := h.manager.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, newItemResponse(entity))
	return nil
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) error {
	draft, violations, err := h.bind(r)
	if err != nil {
		return h.mapDomainError(err)
	}

	created, err := h.manager.CreateItem(r.Context(), draft, violations)
	h.record(r, violations)
	if err != nil {
		return h.handleError(r, err)
	}

	response.RespondJSON(w, http.StatusCreated, newItemResponse(created))
	return nil
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) error {
	draft, violations, err := h.bind(r)
	if err != nil {
		return h.mapDomainError(err)
	}

	updated, err := h.manager.UpdateItem(r.Context(), chi.URLParam(r, "id"), draft, violations)
	h.record(r, violations)
	if err != nil {
		return h.handleError(r, err)
	}

	response.RespondJSON(w, http.StatusOK, newItemResponse(updated))
	return nil
}

// ValidateItem runs binding and validation without storing anything.
func (h *Handler) ValidateItem(w http.ResponseWriter, r *http.Request) error {
	draft, violations, err := h.bind(r)
	if err != nil {
		return h.mapDomainError(err)
	}

	err = h.manager.ValidateItem(r.Context(), draft, violations)
	h.record(r, violations)
	if err != nil {
		return h.handleError(r, err)
	}

	response.RespondJSON(w, http.StatusOK, ValidResponse{Valid: true})
	return nil
}

// handleError renders validation failures with their resolved messages and
// maps everything else through mapDomainError.
func (h *Handler) handleError(r *http.Request, err error) error {
	var validationErr *item.ValidationError
	if !errors.As(err, &validationErr) {
		return h.mapDomainError(err)
	}

	body := response.NewValidationErrorResponse(validationErr.Violations, h.messages)
	for _, v := range body.Errors {
		if !v.Resolved().FromCatalog() {
			h.recorder.RecordUnresolved(r.Context(), v.Code)
		}
	}

	return httpErrors.NewValidationFailed(body, err)
}

// record skips runs that never reached the validators.
func (h *Handler) record(r *http.Request, violations *validation.Violations) {
	if violations.Sealed() {
		h.recorder.RecordValidation(r.Context(), violations)
	}
}

func (h *Handler) bind(r *http.Request) (*item.Item, *validation.Violations, error) {
	values, err := readValues(r)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Failed to decode request body", logger.Error(err))
		return nil, nil, err
	}

	violations := validation.NewViolations(item.ObjectName)
	draft := binding.BindItem(values, violations)
	return draft, violations, nil
}

func readValues(r *http.Request) (binding.Values, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/x-www-form-urlencoded" {
		r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return nil, errors.Join(binding.ErrMalformedBody, err)
		}
		return binding.FromForm(r.PostForm), nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Join(binding.ErrMalformedBody, err)
	}
	return binding.FromJSON(body)
}
