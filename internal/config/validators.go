package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// registerExclusive adds a custom validator ensuring a field is mutually exclusive
// with the space-separated fields named in its parameter.
// It registers both the validation logic and a human-readable error message.
func registerExclusive(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive returns false if the field and any of the named fields are both non-empty.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String || field.String() == "" {
		return true
	}

	for _, name := range strings.Fields(fl.Param()) {
		other := fl.Parent().FieldByName(name)

		if !other.IsValid() || other.Kind() != reflect.String {
			continue
		}

		if other.String() != "" {
			return false
		}
	}

	return true
}

// registerHexKey adds a custom validator for hex-encoded AES keys.
func registerHexKey(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"hexkey",
		validateHexKey,
		"{0} must be 32, 48 or 64 hex characters",
	); err != nil {
		return fmt.Errorf("registering hexkey validation: %w", err)
	}

	return nil
}

// validateHexKey decodes the field the same way the key is resolved and checks
// the decoded length, so a value passing here is accepted by ResolveKey.
func validateHexKey(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	_, err := fromHex(fl.Field().String())

	return err == nil
}
