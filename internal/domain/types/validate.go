package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// Validate checks c against its struct tags. Plug lead violations wrap
// ErrInvalidLeadConfiguration; everything else wraps ErrInvalidConfiguration.
// Cross-lead duplicate letters are left to the plugboard.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	// Return the first validation error in a user-friendly format
	e := verrs[0]
	kind := ErrInvalidConfiguration
	if strings.HasPrefix(e.Namespace(), "Config.PlugLeads") {
		kind = ErrInvalidLeadConfiguration
	}
	return fmt.Errorf("%w: %s", kind, describe(e))
}

func describe(e validator.FieldError) string {
	field := e.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: field is required", field)
	case "min":
		return fmt.Sprintf("%s: must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s: must not exceed %s", field, e.Param())
	case "len":
		return fmt.Sprintf("%s: must be exactly %s letters", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s: %q is not one of [%s]", field, e.Value(), e.Param())
	case "alpha", "uppercase":
		return fmt.Sprintf("%s: %q must be upper-case letters A-Z", field, e.Value())
	default:
		return fmt.Sprintf("%s: validation failed (%s)", field, e.Tag())
	}
}

// Validate checks the message options.
func (o TextOptions) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, describe(verrs[0]))
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
}
