package helper

import (
	"fmt"
	"math"
	"reflect"

	"github.com/spf13/cast"
)

// ToText returns the canonical text form of a resolved template value.
// nil becomes "", booleans "true"/"false", numbers their shortest decimal form.
func ToText(value interface{}) string {
	if isNil(value) {
		return ""
	}
	if s, err := cast.ToStringE(value); err == nil {
		return s
	}
	return fmt.Sprint(value)
}

// ToList converts a slice or array value to a list. nil is an empty list.
func ToList(helperName string, value interface{}) ([]interface{}, error) {
	if value == nil {
		return nil, nil
	}
	if list, ok := value.([]interface{}); ok {
		return list, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		list := make([]interface{}, rv.Len())
		for i := range list {
			list[i] = rv.Index(i).Interface()
		}
		return list, nil
	}

	return nil, &ArgumentError{Helper: helperName, Expected: "a list", Got: fmt.Sprintf("%T", value)}
}

// ToInt converts an integral number or numeric string to an int
func ToInt(helperName string, value interface{}) (int, error) {
	bad := &ArgumentError{Helper: helperName, Expected: "an integer", Got: fmt.Sprintf("%T %v", value, value)}

	// cast turns nil and booleans into numbers and truncates fractions
	switch v := value.(type) {
	case nil, bool:
		return 0, bad
	case float64:
		if v != math.Trunc(v) {
			return 0, bad
		}
	case float32:
		if float64(v) != math.Trunc(float64(v)) {
			return 0, bad
		}
	}

	n, err := cast.ToIntE(value)
	if err != nil {
		return 0, bad
	}
	return n, nil
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
