package entities

import (
	"database/sql"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// convertAssign stores a generated key value into dest. Drivers report
// identities in different shapes: SCOPE_IDENTITY() arrives as a decimal
// string, RETURNING and LastInsertId as int64.
func convertAssign(dest, src any) error {
	if src == nil {
		return fmt.Errorf("%w: driver returned NULL", ErrKeyConversion)
	}
	if scanner, ok := dest.(sql.Scanner); ok {
		return scanner.Scan(src)
	}

	switch d := dest.(type) {
	case *int64:
		return identity(d, src)
	case *any:
		*d = src
		return nil
	}
	return reflectAssign(dest, src)
}

// identity reads an integral identity. Fractions and values outside the
// int64 range are rejected rather than truncated.
func identity(d *int64, src any) error {
	switch s := src.(type) {
	case int64:
		*d = s
	case int:
		*d = int64(s)
	case int32:
		*d = int64(s)
	case float64:
		if s != math.Trunc(s) || s < math.MinInt64 || s >= math.MaxInt64 {
			return fmt.Errorf("%w: %v is not an int64 identity", ErrKeyConversion, s)
		}
		*d = int64(s)
	case []byte:
		return parseIdentity(d, string(s))
	case string:
		return parseIdentity(d, s)
	default:
		return fmt.Errorf("%w: %T to int64", ErrKeyConversion, src)
	}
	return nil
}

// parseIdentity accepts decimal text with an all-zero fraction, e.g. "42.0".
func parseIdentity(d *int64, s string) error {
	if whole, frac, ok := strings.Cut(s, "."); ok {
		if strings.Trim(frac, "0") != "" {
			return fmt.Errorf("%w: %q is not integral", ErrKeyConversion, s)
		}
		s = whole
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeyConversion, err)
	}
	*d = v
	return nil
}

// reflectAssign covers the remaining integer widths, named key types and
// text keys.
func reflectAssign(dest, src any) error {
	dpv := reflect.ValueOf(dest)
	if dpv.Kind() != reflect.Pointer || dpv.IsNil() {
		return fmt.Errorf("%w: destination must be a non-nil pointer, got %T", ErrKeyConversion, dest)
	}

	dv := dpv.Elem()
	switch dv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var v int64
		if err := identity(&v, src); err != nil {
			return err
		}
		if dv.OverflowInt(v) {
			return fmt.Errorf("%w: %d overflows %s", ErrKeyConversion, v, dv.Type())
		}
		dv.SetInt(v)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var v int64
		if err := identity(&v, src); err != nil {
			return err
		}
		if v < 0 || dv.OverflowUint(uint64(v)) {
			return fmt.Errorf("%w: %d overflows %s", ErrKeyConversion, v, dv.Type())
		}
		dv.SetUint(uint64(v))
		return nil
	case reflect.String:
		switch s := src.(type) {
		case string:
			dv.SetString(s)
		case []byte:
			dv.SetString(string(s))
		default:
			return fmt.Errorf("%w: %T to %s", ErrKeyConversion, src, dv.Type())
		}
		return nil
	}

	if sv := reflect.ValueOf(src); sv.Type().AssignableTo(dv.Type()) {
		dv.Set(sv)
		return nil
	}
	return fmt.Errorf("%w: %T to %s", ErrKeyConversion, src, dv.Type())
}
