package response

import (
	"encoding/json"
	"net/http"

	"itemservice/internal/platform/validation"
)

type ViolationResponse struct {
	ObjectName     string   `json:"objectName"`
	Field          string   `json:"field,omitempty"`
	Code           string   `json:"code"`
	Codes          []string `json:"codes"`
	Arguments      []any    `json:"arguments"`
	RejectedValue  any      `json:"rejectedValue"`
	BindingFailure bool     `json:"bindingFailure"`
	Message        string   `json:"message"`

	resolved validation.ResolvedMessage
}

// Resolved reports the catalog entry the message came from, if any.
func (v ViolationResponse) Resolved() validation.ResolvedMessage {
	return v.resolved
}

type ValidationErrorResponse struct {
	Errors []ViolationResponse `json:"errors"`
}

// NewValidationErrorResponse renders every violation, field violations
// first, with its message resolved through messages.
func NewValidationErrorResponse(violations *validation.Violations, messages *validation.MessageResolver) ValidationErrorResponse {
	out := ValidationErrorResponse{Errors: make([]ViolationResponse, 0, violations.Count())}

	for _, v := range violations.FieldViolations() {
		out.Errors = append(out.Errors, newViolationResponse(v, messages, func(r *ViolationResponse) {
			r.Field = v.Field
			r.RejectedValue = v.Rejected.Interface()
			r.BindingFailure = v.BindingFailure
		}))
	}
	for _, v := range violations.ObjectViolations() {
		out.Errors = append(out.Errors, newViolationResponse(v, messages, nil))
	}

	return out
}

func newViolationResponse(v validation.Violation, messages *validation.MessageResolver, fill func(*ViolationResponse)) ViolationResponse {
	resolved := messages.Resolve(v)
	args := v.Arguments()
	if args == nil {
		args = []any{}
	}

	r := ViolationResponse{
		ObjectName: v.ObjectName(),
		Code:       v.Code(),
		Codes:      v.Keys(messages.Codes()),
		Arguments:  args,
		Message:    resolved.Text,
		resolved:   resolved,
	}
	if fill != nil {
		fill(&r)
	}
	return r
}

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func RespondError(w http.ResponseWriter, status int, err error) {
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}
