package configparser

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

// LoadAndParseYaml loads the YAML file into the environment and then fills
// the given struct from env vars using `env` and `default` struct tags.
// Nested structs are walked recursively.
func LoadAndParseYaml(filepath string, dst any) error {
	if filepath != "" {
		if err := LoadYamlFile(filepath); err != nil {
			// Missing config file is not fatal: env vars may cover everything
			if !os.IsNotExist(err) {
				return err
			}
		}
	}

	return ParseEnv(dst)
}

// ParseEnv fills the struct pointed to by dst from environment variables.
func ParseEnv(dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("configparser: destination must be a pointer to struct, got %T", dst)
	}

	return parseStruct(v.Elem())
}

func parseStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)

		if !value.CanSet() {
			continue
		}

		// Recurse into nested structs that have no env tag themselves
		// (time.Duration and other named scalar kinds fall through below)
		if value.Kind() == reflect.Struct && field.Tag.Get("env") == "" {
			if err := parseStruct(value); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		raw := os.Getenv(envName)
		if raw == "" {
			raw = field.Tag.Get("default")
		}
		if raw == "" {
			continue
		}

		if err := setField(value, raw); err != nil {
			return fmt.Errorf("configparser: field %s (env %s): %w", field.Name, envName, err)
		}
	}

	return nil
}

func setField(v reflect.Value, raw string) error {
	// time.Duration requires its own parser
	if v.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", v.Kind())
	}

	return nil
}
