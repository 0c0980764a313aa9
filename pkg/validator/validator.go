package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("member", member); err != nil {
		panic(err)
	}
}

func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return fmt.Errorf("validation failed: %w", err)
		}

		var errMsgs []string
		for _, err := range validationErrs {
			errMsgs = append(errMsgs, fmt.Sprintf(
				"Field: %s, Tag: %s, Param: %s", err.Namespace(), err.Tag(), err.Param(),
			))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}

// member reports whether the field value equals one of the elements of the
// sibling slice named by the tag parameter, e.g. `validate:"member=Options"`.
func member(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	list := parent.FieldByName(fl.Param())
	if !list.IsValid() || (list.Kind() != reflect.Slice && list.Kind() != reflect.Array) {
		return false
	}

	value := fl.Field()
	for i := 0; i < list.Len(); i++ {
		item := list.Index(i)
		if item.Kind() == value.Kind() && item.Interface() == value.Interface() {
			return true
		}
	}
	return false
}
