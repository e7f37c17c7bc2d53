package xlautomaten

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// newWireValidator builds the validator that checks decoded responses
// against each endpoint's guaranteed shape. The guaranteed allowlist
// per entity is expressed as validate:"required" tags on the wire
// structs; closed numeric sets use oneof/min/max.
func newWireValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// checkShape validates a decoded response value. Top-level list
// responses are validated element by element; anything that is not a
// struct or a slice of structs passes through unchecked.
func (c *Client) checkShape(out any) error {
	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if elem.Kind() != reflect.Struct {
				return nil
			}
			if err := c.validate.Struct(elem.Interface()); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		return nil
	case reflect.Struct:
		return c.validate.Struct(v.Interface())
	default:
		return nil
	}
}
