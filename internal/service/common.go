package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("daykey", func(fl validator.FieldLevel) bool {
		return validDayKey(fl.Field().String())
	})
	return v
}

func validDayKey(day string) bool {
	t, err := time.Parse(DayLayout, day)
	return err == nil && t.Format(DayLayout) == day
}

// checkStruct runs the struct tags and reports the first failing field in a
// form a CLI user can act on.
func checkStruct(what string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s %s", ErrValidation, what, describeField(fe))
	}
	return fmt.Errorf("%w: %s: %v", ErrValidation, what, err)
}

func describeField(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func checkDay(day string) error {
	if err := validate.Var(day, "required,daykey"); err != nil {
		return fmt.Errorf("%w: invalid day %q, expected YYYY-MM-DD", ErrValidation, day)
	}
	return nil
}
