package twist

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// payloadToMap converts a request struct into a map keyed by its json tag
// names. Embedded structs are flattened into the parent and fields tagged
// omitempty are dropped when zero. A nil payload yields
// an empty map; a map payload is copied as is.
func payloadToMap(payload any) (map[string]any, error) {
	out := map[string]any{}
	if payload == nil {
		return out, nil
	}

	if m, ok := payload.(map[string]any); ok {
		for k, v := range m {
			out[k] = v
		}

		return out, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Squash:  true,
		Result:  &out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payload decoder: %w", err)
	}

	if err := decoder.Decode(payload); err != nil {
		return nil, fmt.Errorf("failed to shape payload: %w", err)
	}

	return out, nil
}

// encodeParams flattens a payload into string parameters suitable for a
// query string or a form body. Scalars are formatted directly; slices, maps
// and structs are JSON encoded into a single value, which is what the API
// expects for list arguments such as user_ids.
func encodeParams(payload any) (url.Values, error) {
	m, err := payloadToMap(payload)
	if err != nil {
		return nil, err
	}

	values := url.Values{}

	for key, raw := range m {
		s, ok, err := formatParam(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to encode parameter %q: %w", key, err)
		}

		if ok {
			values.Set(key, s)
		}
	}

	return values, nil
}

func formatParam(raw any) (string, bool, error) {
	v := reflect.ValueOf(raw)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false, nil
		}

		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Invalid:
		return "", false, nil
	case reflect.String:
		return v.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true, nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true, nil
	default:
		b, err := json.Marshal(v.Interface())
		if err != nil {
			return "", false, err
		}

		return string(b), true, nil
	}
}
