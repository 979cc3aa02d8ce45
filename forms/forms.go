// forms/forms.go
package forms

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field (lower-cased struct field name) to the message of
// its first failing rule. Submission is blocked while the map is non-empty.
type Errors map[string]string

// HasErrors reports whether any field failed.
func (e Errors) HasErrors() bool { return len(e) > 0 }

// Validator runs the declared field rules of a form payload and produces
// per-field localized messages.
type Validator struct {
	validate *validator.Validate
}

// New builds the validator and registers the custom date rule.
func New() *Validator {
	v := validator.New()

	// beforetoday: a birth date may not lie in the future. Dates travel as
	// yyyy-mm-dd strings; an unparseable value also fails the rule.
	_ = v.RegisterValidation("beforetoday", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		date, err := time.Parse("2006-01-02", value)
		if err != nil {
			return false
		}
		return !date.After(time.Now())
	})

	return &Validator{validate: v}
}

// Check validates a form payload. The returned map is empty when every rule
// passed; only the first failing rule per field is reported.
func (v *Validator) Check(payload interface{}) Errors {
	errs := Errors{}
	err := v.validate.Struct(payload)
	if err == nil {
		return errs
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		errs["_form"] = "Dữ liệu không hợp lệ"
		return errs
	}

	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:]
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = message(fieldErr)
	}
	return errs
}

// Validate implements echo.Validator so handlers can also bind-and-validate
// JSON payloads directly.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// message renders the localized text for one failed rule.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Trường này là bắt buộc"
	case "email":
		return "Email không hợp lệ"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Tối thiểu %s ký tự", fe.Param())
		}
		return fmt.Sprintf("Giá trị tối thiểu là %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Tối đa %s ký tự", fe.Param())
		}
		return fmt.Sprintf("Giá trị tối đa là %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Giá trị phải lớn hơn hoặc bằng %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Giá trị phải nhỏ hơn hoặc bằng %s", fe.Param())
	case "eqfield":
		return "Giá trị xác nhận không khớp"
	case "beforetoday":
		return "Ngày sinh không được ở tương lai"
	case "numeric":
		return "Chỉ được chứa chữ số"
	case "oneof":
		return "Giá trị không hợp lệ"
	default:
		return "Giá trị không hợp lệ"
	}
}
