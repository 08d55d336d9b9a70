package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks the struct tags and reports the first failed field.
func Validate(input any) error {
	if err := validate.Struct(input); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			first := vErrs[0]
			return fmt.Errorf("field [%s] failed on rule [%s]", first.Field(), first.Tag())
		}
		return err
	}
	return nil
}
