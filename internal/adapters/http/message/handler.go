// Package message exposes the code resolver and the message catalog over HTTP
// so clients can see which keys a violation would be looked up under.
package message

import (
	"errors"
	"net/http"

	"itemservice/internal/adapters/http/response"
	httpErrors "itemservice/internal/platform/http"
	"itemservice/internal/platform/logger"
	"itemservice/internal/platform/validation"
	"itemservice/internal/platform/validator"
)

const lookupObjectName = "messageLookup"

type LookupQuery struct {
	Code    string   `json:"code" validate:"required,max=100"`
	Object  string   `json:"object" validate:"required,max=100"`
	Field   string   `json:"field" validate:"omitempty,max=100"`
	Type    string   `json:"type" validate:"excluded_without=Field,max=200"`
	Args    []string `json:"args" validate:"max=10"`
	Default string   `json:"default" validate:"max=500"`
}

func lookupFromRequest(r *http.Request) LookupQuery {
	query := r.URL.Query()
	return LookupQuery{
		Code:    query.Get("code"),
		Object:  query.Get("object"),
		Field:   query.Get("field"),
		Type:    query.Get("type"),
		Args:    query["args"],
		Default: query.Get("default"),
	}
}

// violation builds the violation the query describes. A field makes it a
// field violation, otherwise it is object level.
func (q LookupQuery) violation() validation.Violation {
	args := make([]any, len(q.Args))
	for i, arg := range q.Args {
		args[i] = arg
	}

	if q.Field == "" {
		return &validation.ObjectViolation{
			Object:    q.Object,
			ErrorCode: q.Code,
			Args:      args,
			Default:   q.Default,
		}
	}
	return &validation.FieldViolation{
		Object:    q.Object,
		Field:     q.Field,
		FieldType: q.Type,
		ErrorCode: q.Code,
		Args:      args,
		Default:   q.Default,
	}
}

type CodesResponse struct {
	Codes []string `json:"codes"`
}

type ResolveResponse struct {
	Key        string   `json:"key"`
	Text       string   `json:"text"`
	Codes      []string `json:"codes"`
	ViaCatalog bool     `json:"viaCatalog"`
}

type Handler struct {
	validator validator.Validator
	messages  *validation.MessageResolver
}

func NewHandler(validator validator.Validator, messages *validation.MessageResolver) *Handler {
	return &Handler{
		validator: validator,
		messages:  messages,
	}
}

func (h *Handler) Codes(w http.ResponseWriter, r *http.Request) error {
	query := lookupFromRequest(r)
	if err := h.validate(r, query); err != nil {
		return err
	}

	response.RespondJSON(w, http.StatusOK, CodesResponse{
		Codes: query.violation().Keys(h.messages.Codes()),
	})
	return nil
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) error {
	query := lookupFromRequest(r)
	if err := h.validate(r, query); err != nil {
		return err
	}

	violation := query.violation()
	resolved := h.messages.Resolve(violation)

	logger.FromContext(r.Context()).Debug("Resolved message",
		logger.String("code", query.Code),
		logger.String("key", resolved.Key))

	response.RespondJSON(w, http.StatusOK, ResolveResponse{
		Key:        resolved.Key,
		Text:       resolved.Text,
		Codes:      violation.Keys(h.messages.Codes()),
		ViaCatalog: resolved.FromCatalog(),
	})
	return nil
}

func (h *Handler) validate(r *http.Request, query LookupQuery) error {
	err := h.validator.Validate(lookupObjectName, query)
	if err == nil {
		return nil
	}

	var validationErr *validator.ValidationError
	if !errors.As(err, &validationErr) {
		return httpErrors.NewInternalServerError("Could not validate lookup", err)
	}

	logger.FromContext(r.Context()).Warn("Rejected message lookup",
		logger.Int("violations", validationErr.Violations.Count()))
	return httpErrors.NewValidationFailed(
		response.NewValidationErrorResponse(validationErr.Violations, h.messages), err)
}
