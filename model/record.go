package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/siherrmann/ragformat/helper"
	"github.com/tiendc/go-deepcopy"
)

// Record is an open key/value record as produced by the retrieval pipeline.
// Values are null, string, number, bool, []interface{} or map[string]interface{}.
type Record map[string]interface{}

// Get returns the value stored under key and whether the key is present.
func (r Record) Get(key string) (interface{}, bool) {
	v, ok := r[key]
	return v, ok
}

// GetOr returns the value stored under key or def if the key is absent.
func (r Record) GetOr(key string, def interface{}) interface{} {
	if v, ok := r[key]; ok {
		return v
	}
	return def
}

// String returns the string stored under key, def if absent or not a string.
func (r Record) String(key string, def string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return def
}

// FirstString returns the first string found under keys, def if none is present.
func (r Record) FirstString(def string, keys ...string) string {
	for _, key := range keys {
		if s, ok := r[key].(string); ok {
			return s
		}
	}
	return def
}

// Float returns the number stored under key as float64, def if absent or not a number.
func (r Record) Float(key string, def float64) float64 {
	if f, ok := toFloat(r[key]); ok {
		return f
	}
	return def
}

// Int returns the number stored under key as int, def if absent or not a number.
func (r Record) Int(key string, def int) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
	}
	if f, ok := toFloat(r[key]); ok {
		return int(f)
	}
	return def
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// Clone returns a deep copy of the record. Nested maps and slices are copied,
// scalar values are shared.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue deep copies maps, slices and pointers of any element type,
// scalar values are returned as is.
func CloneValue(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case Record:
		return v.Clone()
	case map[string]interface{}:
		if v == nil {
			return v
		}
		return map[string]interface{}(Record(v).Clone())
	case []interface{}:
		if v == nil {
			return v
		}
		out := make([]interface{}, len(v))
		for i := range v {
			out[i] = CloneValue(v[i])
		}
		return out
	}

	switch reflect.TypeOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer, reflect.Struct:
		dst := reflect.New(reflect.TypeOf(value))
		if err := deepcopy.Copy(dst.Interface(), value); err != nil {
			return value
		}
		return dst.Elem().Interface()
	}
	return value
}

// Marshal converts the record to JSON bytes.
func (r Record) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal fills the record from JSON bytes, a JSON string or a copy of a map.
// Numbers are kept as json.Number so integers survive a round trip unchanged.
func (r *Record) Unmarshal(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*r = Record{}
		return nil
	case Record:
		*r = v.Clone()
		return nil
	case map[string]interface{}:
		*r = Record(v).Clone()
		return nil
	case string:
		return r.decode([]byte(v))
	case []byte:
		return r.decode(v)
	}
	return helper.NewError("byte assertion", errors.New("type assertion to []byte failed"))
}

func (r *Record) decode(b []byte) error {
	decoded := map[string]interface{}{}
	if err := DecodeJSON(b, &decoded); err != nil {
		return helper.NewError("decode record", err)
	}
	*r = Record(decoded)
	return nil
}

// RecordsFromSlice converts a loosely typed collection into records.
// Any element that is not an object fails the whole conversion with an
// *InvalidRecordError naming the collection and index.
func RecordsFromSlice(collection string, items []interface{}) ([]Record, error) {
	records := make([]Record, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case Record:
			if v == nil {
				return nil, &InvalidRecordError{Collection: collection, Index: i, Got: "null"}
			}
			records = append(records, v)
		case map[string]interface{}:
			if v == nil {
				return nil, &InvalidRecordError{Collection: collection, Index: i, Got: "null"}
			}
			records = append(records, Record(v))
		case nil:
			return nil, &InvalidRecordError{Collection: collection, Index: i, Got: "null"}
		default:
			return nil, &InvalidRecordError{Collection: collection, Index: i, Got: fmt.Sprintf("%T", item)}
		}
	}
	return records, nil
}
