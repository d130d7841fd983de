package leads

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// rule is one field constraint. Tags use validator syntax and are applied to
// the raw field value.
type rule struct {
	field   Field
	tags    string
	key     string
	message string
}

var rules = []rule{
	{FieldName, "min=2", "contact.form.errors.name", "Name must be at least 2 characters"},
	{FieldEmail, "required,email", "contact.form.errors.email", "Please enter a valid email address"},
	{FieldPhone, "min=10", "contact.form.errors.phone", "Phone number must be at least 10 digits"},
	{FieldEducation, "required,education", "contact.form.errors.education", "Please select your education level"},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "education", func(fl validator.FieldLevel) bool {
		return Education(fl.Field().String()).Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("leads: register %q validation: %v", tag, err))
	}
}

func ruleFor(f Field) (rule, bool) {
	for _, r := range rules {
		if r.field == f {
			return r, true
		}
	}
	return rule{}, false
}

func (r rule) check(value string) *FieldValidationError {
	err := validate.Var(value, r.tags)
	if err == nil {
		return nil
	}
	tag := r.tags
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		tag = verrs[0].Tag()
	}
	return &FieldValidationError{Field: r.field, Rule: tag, Key: r.key, Message: r.message}
}

// ValidateField checks a single field. It returns nil when the value satisfies
// the field's constraint or the field has none.
func ValidateField(f Field, value string) *FieldValidationError {
	r, ok := ruleFor(f)
	if !ok {
		return nil
	}
	return r.check(value)
}

// Validate applies every field constraint to in. On failure the returned
// error is a FieldErrors naming each offending field; the submission is only
// meaningful when err is nil.
func Validate(in Input) (Submission, error) {
	var fe FieldErrors
	for _, r := range rules {
		if e := r.check(in.Value(r.field)); e != nil {
			if fe == nil {
				fe = make(FieldErrors)
			}
			fe[r.field] = *e
		}
	}
	if fe != nil {
		return Submission{}, fe
	}
	return Submission{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Education: Education(in.Education),
		Message:   in.Message,
	}, nil
}
