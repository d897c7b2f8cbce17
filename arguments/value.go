package arguments

import (
	"encoding"
	"reflect"
	"strconv"
	"time"
)

// Value is the set of types Get and GetAll convert to. Named types are
// accepted by underlying type; time.Duration is parsed with time.ParseDuration.
type Value interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// TextUnmarshaler is satisfied by a pointer to T that implements
// encoding.TextUnmarshaler.
type TextUnmarshaler[T any] interface {
	*T
	encoding.TextUnmarshaler
}

var durationType = reflect.TypeFor[time.Duration]()

// Get converts the last value of name to T. It reports false when name is
// absent or its last value does not parse.
func Get[T Value](a *Arguments, name string) (T, bool) {
	values := rawValues(a, name)
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	return parseValue[T](values[len(values)-1])
}

// GetAll converts every value of name to T. A single value that does not
// parse makes the whole result absent.
func GetAll[T Value](a *Arguments, name string) ([]T, bool) {
	values := rawValues(a, name)
	if len(values) == 0 {
		return nil, false
	}
	out := make([]T, 0, len(values))
	for _, raw := range values {
		v, ok := parseValue[T](raw)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// GetText is Get for types that parse themselves, such as netip.Addr or
// time.Time.
func GetText[T any, PT TextUnmarshaler[T]](a *Arguments, name string) (T, bool) {
	values := rawValues(a, name)
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	return unmarshalValue[T, PT](values[len(values)-1])
}

// GetAllText is GetAll for types that parse themselves.
func GetAllText[T any, PT TextUnmarshaler[T]](a *Arguments, name string) ([]T, bool) {
	values := rawValues(a, name)
	if len(values) == 0 {
		return nil, false
	}
	out := make([]T, 0, len(values))
	for _, raw := range values {
		v, ok := unmarshalValue[T, PT](raw)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

func rawValues(a *Arguments, name string) []string {
	if a == nil {
		return nil
	}
	return a.options.raw(name)
}

func unmarshalValue[T any, PT TextUnmarshaler[T]](raw string) (T, bool) {
	var out T
	if err := PT(&out).UnmarshalText([]byte(raw)); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

func parseValue[T Value](raw string) (T, bool) {
	var out T
	v := reflect.ValueOf(&out).Elem()

	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		switch raw {
		case "true":
			v.SetBool(true)
		case "false":
			v.SetBool(false)
		default:
			return out, false
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type() == durationType {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return out, false
			}
			v.SetInt(int64(d))
			break
		}
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return out, false
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			return out, false
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return out, false
		}
		v.SetFloat(f)
	default:
		return out, false
	}
	return out, true
}
