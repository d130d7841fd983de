package site

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studyitalypro/landing/internal/leads"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// FormResponse is the JSON view of a visitor's form.
type FormResponse struct {
	State      string            `json:"state"`
	Values     leads.Input       `json:"values"`
	Errors     map[string]string `json:"errors"`
	Submitting bool              `json:"submitting"`
	Succeeded  bool              `json:"succeeded"`
	DismissIn  int64             `json:"dismiss_in_ms,omitempty"`
}

// SubmitResponse is returned for an accepted submission.
type SubmitResponse struct {
	SubmissionID string       `json:"submission_id"`
	Form         FormResponse `json:"form"`
}

// ValidateResponse is the result of a dry-run validation.
type ValidateResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// ChangeRequest sets one field of the form.
type ChangeRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ChangeResponse echoes the field's remaining error, if any.
type ChangeResponse struct {
	Field string       `json:"field"`
	Error string       `json:"error,omitempty"`
	Form  FormResponse `json:"form"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors,omitempty"`
	State  string            `json:"state,omitempty"`
}

// GetForm handles GET /api/contact requests.
func (h *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(w, r)
	writeJSON(w, http.StatusOK, h.formResponse(locale, h.form(w, r).Snapshot()))
}

// SubmitJSON handles POST /api/contact requests.
func (h *Handler) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	var in leads.Input
	if !decodeJSON(w, r, &in) {
		return
	}
	locale := h.locale(w, r)
	form := h.form(w, r)

	out, err := form.Submit(r.Context(), in)
	switch {
	case err == nil:
		writeJSON(w, http.StatusAccepted, SubmitResponse{
			SubmissionID: out.Submission.ID,
			Form:         h.formResponse(locale, form.Snapshot()),
		})
	case errors.Is(err, leads.ErrFormBusy):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "form is busy", State: out.State.String()})
	default:
		var fe leads.FieldErrors
		if !errors.As(err, &fe) {
			h.logger.ErrorContext(r.Context(), "contact submit failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "validation failed",
			Errors: h.messages(locale, fe),
		})
	}
}

// ValidateJSON handles POST /api/contact/validate requests. It never touches
// the visitor's form.
func (h *Handler) ValidateJSON(w http.ResponseWriter, r *http.Request) {
	var in leads.Input
	if !decodeJSON(w, r, &in) {
		return
	}
	locale := h.locale(w, r)

	resp := ValidateResponse{Valid: true, Errors: map[string]string{}}
	if _, err := leads.Validate(in); err != nil {
		var fe leads.FieldErrors
		if errors.As(err, &fe) {
			resp.Valid = false
			resp.Errors = h.messages(locale, fe)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ChangeField handles PATCH /api/contact requests.
func (h *Handler) ChangeField(w http.ResponseWriter, r *http.Request) {
	var req ChangeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	locale := h.locale(w, r)
	form := h.form(w, r)

	fieldErr, err := form.Change(leads.Field(req.Field), req.Value)
	switch {
	case errors.Is(err, leads.ErrUnknownField):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown field"})
		return
	case errors.Is(err, leads.ErrFormBusy):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "form is busy", State: form.State().String()})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	resp := ChangeResponse{Field: req.Field, Form: h.formResponse(locale, form.Snapshot())}
	if fieldErr != nil {
		resp.Error = resp.Form.Errors[req.Field]
	}
	writeJSON(w, http.StatusOK, resp)
}

// DismissJSON handles DELETE /api/contact/success requests.
func (h *Handler) DismissJSON(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(w, r)
	form := h.form(w, r)
	form.Reset()
	writeJSON(w, http.StatusOK, h.formResponse(locale, form.Snapshot()))
}

func (h *Handler) formResponse(locale string, snap leads.Snapshot) FormResponse {
	return FormResponse{
		State:      snap.State,
		Values:     snap.Values,
		Errors:     h.messages(locale, snap.Errors),
		Submitting: snap.Submitting,
		Succeeded:  snap.Succeeded,
		DismissIn:  snap.DismissIn.Milliseconds(),
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request payload"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
