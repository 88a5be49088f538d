package hexa

import (
	"fmt"
	"reflect"
)

// coerceValue converts a dynamically typed value (typically decoded from
// YAML or JSON) to the target type for a reflective call.
//
// Accepted conversions, mirroring what data-file decoding produces:
//   - direct assignability
//   - numeric widening/narrowing between integer and float kinds, only
//     when the round-trip is lossless and the sign is preserved
//   - []any to a slice or array, element by element
//   - map[string]any to map[string]T, value by value
//
// Anything else is an error; callers translate it into a
// TypeMismatchError carrying the registered and requested types.
func coerceValue(v any, target reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch target.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(target), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %s", target)
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(target) {
		return rv, nil
	}

	if isNumeric(rv.Type().Kind()) && isNumeric(target.Kind()) {
		converted := rv.Convert(target)
		// Reject lossy conversions: converting back must reproduce the
		// input and the sign must survive. The round-trip alone cannot
		// catch same-width signed/unsigned flips, which are modular
		// bijections.
		if signFlipped(rv, converted) || converted.Convert(rv.Type()).Interface() != v {
			return reflect.Value{}, fmt.Errorf("lossy conversion of %v to %s", v, target)
		}
		return converted, nil
	}

	switch target.Kind() {
	case reflect.Slice:
		if src, ok := v.([]any); ok {
			out := reflect.MakeSlice(target, len(src), len(src))
			for i, elem := range src {
				ev, err := coerceValue(elem, target.Elem())
				if err != nil {
					return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
				}
				out.Index(i).Set(ev)
			}
			return out, nil
		}
	case reflect.Array:
		if src, ok := v.([]any); ok {
			if len(src) != target.Len() {
				return reflect.Value{}, fmt.Errorf("need %d elements for %s, got %d", target.Len(), target, len(src))
			}
			out := reflect.New(target).Elem()
			for i, elem := range src {
				ev, err := coerceValue(elem, target.Elem())
				if err != nil {
					return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
				}
				out.Index(i).Set(ev)
			}
			return out, nil
		}
	case reflect.Map:
		if src, ok := v.(map[string]any); ok && target.Key().Kind() == reflect.String {
			out := reflect.MakeMapWithSize(target, len(src))
			for key, elem := range src {
				ev, err := coerceValue(elem, target.Elem())
				if err != nil {
					return reflect.Value{}, fmt.Errorf("key %q: %w", key, err)
				}
				out.SetMapIndex(reflect.ValueOf(key).Convert(target.Key()), ev)
			}
			return out, nil
		}
	}

	return reflect.Value{}, fmt.Errorf("cannot use %T as %s", v, target)
}

// signFlipped reports whether a numeric conversion changed the value's
// sign: a negative source landing in an unsigned target, or an unsigned
// source coming out negative.
func signFlipped(src, converted reflect.Value) bool {
	if isUnsigned(converted.Kind()) {
		return isNegative(src)
	}
	if isUnsigned(src.Kind()) && isSigned(converted.Kind()) {
		return converted.Int() < 0
	}
	return false
}

func isNegative(v reflect.Value) bool {
	switch {
	case isSigned(v.Kind()):
		return v.Int() < 0
	case v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64:
		return v.Float() < 0
	}
	return false
}

func isNumeric(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || k == reflect.Float32 || k == reflect.Float64
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
