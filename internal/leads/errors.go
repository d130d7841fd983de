package leads

import (
	"errors"
	"strings"
)

var (
	// ErrFormBusy is returned when a submit or edit arrives while the form is
	// submitting or showing its success notice.
	ErrFormBusy = errors.New("leads: form is not accepting input")

	// ErrUnknownField is returned when a change names a field the form does not have.
	ErrUnknownField = errors.New("leads: unknown form field")
)

// FieldValidationError describes one field that failed its constraint.
type FieldValidationError struct {
	Field   Field  `json:"field"`
	Rule    string `json:"rule"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

func (e FieldValidationError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// FieldErrors maps every failing field to its error. Fields that are absent
// are valid.
type FieldErrors map[Field]FieldValidationError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range Fields {
		if e, ok := fe[f]; ok {
			parts = append(parts, e.Error())
		}
	}
	return "leads: invalid submission: " + strings.Join(parts, "; ")
}

// Has reports whether field f failed validation.
func (fe FieldErrors) Has(f Field) bool {
	_, ok := fe[f]
	return ok
}

// Messages returns field name to message. When localize is non-nil it is
// asked for the text of each error key, with the English message as fallback.
func (fe FieldErrors) Messages(localize func(key, fallback string) string) map[string]string {
	out := make(map[string]string, len(fe))
	for f, e := range fe {
		msg := e.Message
		if localize != nil {
			msg = localize(e.Key, e.Message)
		}
		out[string(f)] = msg
	}
	return out
}

func (fe FieldErrors) clone() FieldErrors {
	if len(fe) == 0 {
		return nil
	}
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}
