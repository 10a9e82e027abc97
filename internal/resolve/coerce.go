package resolve

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"

	"schema-typegen/internal/typedesc"
)

var errNotIntegral = errors.New("number has a fractional part")

// converter coerces a decoded JSON value to a literal of one kind.
// A value of a different JSON kind is rejected, never reinterpreted.
type converter func(v any) (typedesc.Value, error)

func kindMismatch(want string, v any) error {
	return fmt.Errorf("expected a JSON %s, got %T", want, v)
}

// jsonNumber accepts only numeric values; strings and booleans are rejected
// even when cast could parse them.
func jsonNumber(v any) (float64, error) {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToFloat64E(v)
	default:
		return 0, kindMismatch("number", v)
	}
}

// jsonInteger accepts numbers with no fractional part within int64 range.
func jsonInteger(v any) (int64, error) {
	f, err := jsonNumber(v)
	if err != nil {
		return 0, err
	}

	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v: %w", v, errNotIntegral)
	}

	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%v is out of the 64-bit integer range", v)
	}

	return cast.ToInt64E(f)
}

func jsonString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", kindMismatch("string", v)
	}

	return s, nil
}

func toBool(v any) (typedesc.Value, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, kindMismatch("boolean", v)
	}

	return typedesc.BoolValue(b), nil
}

// toInt narrows to 32 bits by truncation.
func toInt(v any) (typedesc.Value, error) {
	i, err := jsonInteger(v)
	if err != nil {
		return nil, err
	}

	return typedesc.IntValue(int32(i)), nil
}

func toFloat(v any) (typedesc.Value, error) {
	f, err := jsonNumber(v)
	if err != nil {
		return nil, err
	}

	return typedesc.FloatValue(float32(f)), nil
}

func toString(v any) (typedesc.Value, error) {
	s, err := jsonString(v)
	if err != nil {
		return nil, err
	}

	return typedesc.StringValue(s), nil
}

// coerceDefault converts a scalar default, reporting InvalidDefault on failure.
func coerceDefault(name string, v any, conv converter) (typedesc.Value, error) {
	val, err := conv(v)
	if err != nil {
		return nil, newError(InvalidDefault, name, "", err)
	}

	return val, nil
}

// coerceArrayDefault converts a list default element-wise, keeping order.
func coerceArrayDefault(name string, v any, elem typedesc.Kind, conv converter) (typedesc.Value, error) {
	if _, ok := v.([]any); !ok {
		return nil, newError(InvalidDefault, name, "", kindMismatch("array", v))
	}

	items, err := cast.ToSliceE(v)
	if err != nil {
		return nil, newError(InvalidDefault, name, "", err)
	}

	out := make([]typedesc.Value, 0, len(items))

	for i, item := range items {
		val, err := conv(item)
		if err != nil {
			return nil, newError(InvalidDefault, name, "", fmt.Errorf("element %d: %w", i, err))
		}

		out = append(out, val)
	}

	return typedesc.ArrayValue{Elem: elem, Items: out}, nil
}
