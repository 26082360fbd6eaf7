package helper

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"gospelmedia_backend/internals/constants"
)

// Validate is the shared validator instance. Field names in error details
// follow the json tag so payloads match the wire format.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("coretype", enumOf(constants.CoreTypes))
	v.RegisterValidation("office", enumOf(constants.Offices))
	return v
}

func enumOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}

// FieldError mirrors the per-field constraint detail emitted to clients:
// {"property": "coreType", "constraints": {"isEnum": "..."}}
type FieldError struct {
	Property    string            `json:"property"`
	Constraints map[string]string `json:"constraints"`
}

func RequiredError(property string) FieldError {
	return FieldError{
		Property:    property,
		Constraints: map[string]string{"isNotEmpty": humanize(property) + " is required"},
	}
}

func DuplicateError(property, value string) FieldError {
	return FieldError{
		Property:    property,
		Constraints: map[string]string{"duplicate": "Duplicate " + humanize(property) + " " + value},
	}
}

func InvalidDataError(property, value string) FieldError {
	return FieldError{
		Property:    property,
		Constraints: map[string]string{"invalid": "Invalid " + humanize(property) + " " + value},
	}
}

// ValidationDetails converts validator.v10 errors into the detail list.
func ValidationDetails(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Property: "body", Constraints: map[string]string{"invalid": "Invalid input"}}}
	}

	details := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		details = append(details, FieldError{
			Property:    fe.Field(),
			Constraints: map[string]string{constraintKey(fe.Tag()): constraintMessage(fe)},
		})
	}
	return details
}

func constraintKey(tag string) string {
	switch tag {
	case "required":
		return "isNotEmpty"
	case "oneof", "coretype", "office":
		return "isEnum"
	default:
		return tag
	}
}

func constraintMessage(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "oneof":
		return label + " should only contain " + enumList(fe.Param())
	case "coretype":
		return label + " should only contain " + enumList(strings.Join(constants.CoreTypes, " "))
	case "office":
		return label + " should only contain " + enumList(strings.Join(constants.Offices, " "))
	default:
		return label + " failed " + fe.Tag() + " validation"
	}
}

// humanize turns a json field name into a label: "coreType" → "Core Type".
func humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// enumList formats oneof params: "music sermon music-sermon" → "music, sermon or music-sermon".
func enumList(param string) string {
	parts := strings.Fields(param)
	if len(parts) <= 1 {
		return param
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
