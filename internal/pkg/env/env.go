package env

import (
	"encoding"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
)

const tagName = "env"

// OverrideStruct populates the struct fields with values from environment variables
// based on the 'env' custom tag, recursively handling nested structs.
//
// Fields whose address implements encoding.TextUnmarshaler (such as
// durations) are decoded through UnmarshalText. Unset variables leave the
// field untouched.
func OverrideStruct(v any) error {
	val := reflect.ValueOf(v)

	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("env: OverrideStruct expects a non-nil pointer to a struct, got %T", v)
	}

	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("env: OverrideStruct expects a pointer to a struct, got %T (%s)", v, val.Kind())
	}

	return overrideFields(val)
}

func overrideFields(val reflect.Value) error {
	typ := val.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldValue := val.Field(i)

		if !field.IsExported() {
			continue
		}

		envVarName := field.Tag.Get(tagName)

		if envVarName != "" {
			if err := setFromEnv(fieldValue, field.Name, envVarName); err != nil {
				return err
			}
			continue
		}

		switch {
		case fieldValue.Kind() == reflect.Struct:
			if err := overrideFields(fieldValue); err != nil {
				return fmt.Errorf("env: nested struct %s: %w", field.Name, err)
			}
		case fieldValue.Kind() == reflect.Ptr && fieldValue.Type().Elem().Kind() == reflect.Struct:
			if fieldValue.IsNil() {
				fieldValue.Set(reflect.New(fieldValue.Type().Elem()))
			}
			if err := overrideFields(fieldValue.Elem()); err != nil {
				return fmt.Errorf("env: nested struct %s: %w", field.Name, err)
			}
		}
	}

	return nil
}

func setFromEnv(fieldValue reflect.Value, fieldName, envVarName string) error {
	envVarValue, ok := os.LookupEnv(envVarName)
	if !ok || envVarValue == "" {
		slog.Debug("Environment variable not set for field", "env", envVarName, "field", fieldName)
		return nil
	}

	if fieldValue.CanAddr() {
		if tu, ok := fieldValue.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if err := tu.UnmarshalText([]byte(envVarValue)); err != nil {
				return fmt.Errorf("env: parse field %s from %s: %w", fieldName, envVarName, err)
			}
			return nil
		}
	}

	switch fieldValue.Kind() {
	case reflect.String:
		fieldValue.SetString(envVarValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(envVarValue, 10, 64)
		if err != nil {
			return fmt.Errorf("env: parse int for field %s from %s: %w", fieldName, envVarName, err)
		}
		fieldValue.SetInt(intValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(envVarValue)
		if err != nil {
			return fmt.Errorf("env: parse bool for field %s from %s: %w", fieldName, envVarName, err)
		}
		fieldValue.SetBool(boolValue)
	default:
		return fmt.Errorf("env: unsupported field type %s for field %s (env var: %s)", fieldValue.Kind(), fieldName, envVarName)
	}

	return nil
}

// Env returns the value of the environment variable named by the key.
// If the variable is not present in the environment, it returns the provided fallback value.
func Env(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
