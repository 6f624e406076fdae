package http

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"agrifin-backend/internal/domain/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type FieldError = apperror.FieldError

var (
	reHex32   = regexp.MustCompile(`^[a-f0-9]{32}$`)
	rePhone10 = regexp.MustCompile(`^[0-9]{10}$`)
	rePincode = regexp.MustCompile(`^\d{6}$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields by their json name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// public ids = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return rePhone10.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return rePincode.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "phone10":
			out = append(out, FieldError{Field: field, Message: "Please provide a valid 10-digit phone number"})
		case "pincode":
			out = append(out, FieldError{Field: field, Message: "Please provide a valid 6-digit pincode"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "Please provide a valid email"})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of: " + e.Param()})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " characters"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}

// bind decodes the body into req and runs the struct validator.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperror.New(apperror.ErrValidation, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return &apperror.ValidationError{Fields: ToFieldErrors(err)}
	}
	return nil
}
