package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/hunterprice/internal/domain"
)

// Global validator instance for reuse
var validate = validator.New()

// DecodeStrict decodes a JSON document into v. Keys v does not declare are
// rejected with domain.ErrUnknownField and values of the wrong JSON type with
// domain.ErrInvalidFormat, both as *domain.ValidationError naming the key.
func DecodeStrict(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return mapDecodeError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.NewValidationError("", "body must contain a single JSON document", domain.ErrInvalidFormat)
	}
	return nil
}

func mapDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return domain.NewValidationError("", "body must be a JSON object", domain.ErrInvalidFormat)
		}
		return domain.NewValidationError(typeErr.Field,
			fmt.Sprintf("must be of type %s", jsonTypeName(typeErr.Type.Kind().String())),
			domain.ErrInvalidFormat)
	}

	// encoding/json reports unknown keys only through the message text.
	const unknownPrefix = "json: unknown field "
	if msg := err.Error(); strings.HasPrefix(msg, unknownPrefix) {
		field := strings.Trim(strings.TrimPrefix(msg, unknownPrefix), `"`)
		return domain.NewValidationError(field, "is not an allowed field", domain.ErrUnknownField)
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return domain.NewValidationError("", "invalid request body", domain.ErrInvalidFormat)
}

func jsonTypeName(kind string) string {
	switch kind {
	case "string":
		return "string"
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return "integer"
	case "float32", "float64":
		return "number"
	case "slice", "array":
		return "array"
	case "bool":
		return "boolean"
	default:
		return kind
	}
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}
