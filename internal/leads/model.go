package leads

import "time"

// Field names one input of the contact form.
type Field string

const (
	FieldName      Field = "name"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
	FieldEducation Field = "education"
	FieldMessage   Field = "message"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldEducation, FieldMessage}

// Education is the highest education level a lead selects.
type Education string

const (
	EducationHighSchool Education = "high-school"
	EducationBachelor   Education = "bachelor"
	EducationMaster     Education = "master"
	EducationPhD        Education = "phd"
)

// EducationLevels lists the selectable education levels in display order.
var EducationLevels = []Education{EducationHighSchool, EducationBachelor, EducationMaster, EducationPhD}

// Valid reports whether e is one of EducationLevels.
func (e Education) Valid() bool {
	for _, level := range EducationLevels {
		if e == level {
			return true
		}
	}
	return false
}

// Input is the raw contact form data as entered by the visitor.
type Input struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Education string `json:"education"`
	Message   string `json:"message,omitempty"`
}

// Value returns the current value of field f.
func (in Input) Value(f Field) string {
	switch f {
	case FieldName:
		return in.Name
	case FieldEmail:
		return in.Email
	case FieldPhone:
		return in.Phone
	case FieldEducation:
		return in.Education
	case FieldMessage:
		return in.Message
	}
	return ""
}

// Set assigns value to field f. It returns false for unknown fields.
func (in *Input) Set(f Field, value string) bool {
	switch f {
	case FieldName:
		in.Name = value
	case FieldEmail:
		in.Email = value
	case FieldPhone:
		in.Phone = value
	case FieldEducation:
		in.Education = value
	case FieldMessage:
		in.Message = value
	default:
		return false
	}
	return true
}

// Submission is a lead that passed validation. It lives only for the
// duration of one submit and is never stored.
type Submission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Education   Education `json:"education"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}
