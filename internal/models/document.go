package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// fields is a decoded JSON object. Known keys are taken out one by one;
// whatever remains is kept verbatim on the record.
type fields map[string]any

// decodeFields reads a JSON object. Integers stay int64 so pass-through
// values are stored exactly as sent.
func decodeFields(data []byte) (fields, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var f fields
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	if f == nil {
		return nil, errors.New("document must be a JSON object")
	}
	for k, v := range f {
		f[k] = number(v)
	}
	return f, nil
}

// number replaces every json.Number in v with an int64, or a float64 when
// the literal is not an integer.
func number(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if fl, err := t.Float64(); err == nil {
			return fl
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = number(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = number(e)
		}
		return t
	default:
		return v
	}
}

// toFloat reports v as a float64 when it is any numeric type the JSON
// decoder or the driver produces.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

func (f fields) take(key string) (any, bool) {
	v, ok := f[key]
	delete(f, key)
	return v, ok && v != nil
}

func (f fields) takeString(key string) (string, error) {
	v, ok := f.take(key)
	if !ok {
		return "", nil
	}
	s, isString := v.(string)
	if !isString {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

func (f fields) takeNumber(key string) (*float64, error) {
	v, ok := f.take(key)
	if !ok {
		return nil, nil
	}
	n, isNumber := toFloat(v)
	if !isNumber {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &n, nil
}

func (f fields) takeTime(key string) (*time.Time, error) {
	v, ok := f.take(key)
	if !ok {
		return nil, nil
	}
	t, err := parseTime(key, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseTime(key string, v any) (time.Time, error) {
	s, isString := v.(string)
	if !isString {
		return time.Time{}, fmt.Errorf("%s must be an RFC 3339 timestamp", key)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an RFC 3339 timestamp", key)
	}
	return t, nil
}

func (f fields) takeID() (bson.ObjectID, error) {
	v, ok := f.take("_id")
	if !ok {
		return bson.ObjectID{}, nil
	}
	s, isString := v.(string)
	if !isString {
		return bson.ObjectID{}, errors.New("_id must be a hex string")
	}
	return bson.ObjectIDFromHex(s)
}

// decodeStored reads a document as the driver returns it. The stored*
// helpers below take a typed key only when its value has the expected
// type; anything else stays behind and is served as-is.
func decodeStored(data []byte) (fields, error) {
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return fields(m), nil
}

func (f fields) storedID() bson.ObjectID {
	id, ok := f["_id"].(bson.ObjectID)
	if ok {
		delete(f, "_id")
	}
	return id
}

func (f fields) storedString(key string) string {
	s, ok := f[key].(string)
	if ok {
		delete(f, key)
	}
	return s
}

func (f fields) storedNumber(key string) *float64 {
	n, ok := toFloat(f[key])
	if !ok {
		return nil
	}
	delete(f, key)
	return &n
}

func (f fields) storedTime(key string) *time.Time {
	var t time.Time
	switch v := f[key].(type) {
	case bson.DateTime:
		t = v.Time().UTC()
	case time.Time:
		t = v.UTC()
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil
		}
		t = parsed
	default:
		return nil
	}
	delete(f, key)
	return &t
}

func (f fields) extra() map[string]any {
	if len(f) == 0 {
		return nil
	}
	return map[string]any(f)
}

// jsonObject copies extra into a fresh map with room for n known keys,
// flattening driver types on the way.
func jsonObject(extra map[string]any, n int) map[string]any {
	out := make(map[string]any, len(extra)+n)
	for k, v := range extra {
		out[k] = plain(v)
	}
	return out
}

// putDefault sets key unless a stored value of another type already holds it.
func putDefault(out map[string]any, key string, v any) {
	if _, ok := out[key]; !ok {
		out[key] = v
	}
}

// plain rewrites values decoded by the driver into shapes encoding/json
// renders as ordinary objects and arrays.
func plain(v any) any {
	switch t := v.(type) {
	case bson.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plain(e.Value)
		}
		return m
	case bson.M:
		return plain(map[string]any(t))
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = plain(e)
		}
		return m
	case bson.A:
		return plain([]any(t))
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = plain(e)
		}
		return s
	case bson.ObjectID:
		return t.Hex()
	case bson.DateTime:
		return t.Time().UTC()
	default:
		return v
	}
}
