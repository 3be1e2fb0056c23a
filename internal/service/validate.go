package service

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
)

// validate checks api messages against their `validate` tags.
// Initialized in init() with custom validators.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names rather than Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// bcrypt only looks at the first 72 bytes of a password.
	_ = validate.RegisterValidation("maxbytes", validateMaxBytes)
}

func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// validateRequest returns a CodeInvalidArgument error describing the first
// failed rule, or nil.
func validateRequest(msg any) error {
	err := validate.Struct(msg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	fe := verrs[0]
	var msgText string
	switch fe.Tag() {
	case "required":
		msgText = fmt.Sprintf("%s is required", fe.Field())
	case "max", "maxbytes":
		msgText = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		msgText = fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "unique":
		msgText = fmt.Sprintf("%s must not contain duplicates", fe.Field())
	default:
		msgText = fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
	return connect.NewError(connect.CodeInvalidArgument, errors.New(msgText))
}

// trim normalizes user supplied names in place.
func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
