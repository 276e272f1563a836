package core

import (
	"encoding/json"
	"strconv"
)

// Storage is a string key-value capability used for persisting game state
// and settings.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// GetInt reads an integer, returning def when the key is missing or malformed.
func GetInt(s Storage, key string, def int) int {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// GetBool reads a "true"/"false" flag, returning def when missing or malformed.
func GetBool(s Storage, key string, def bool) bool {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// GetFloat reads a decimal, returning def when missing or malformed.
func GetFloat(s Storage, key string, def float64) float64 {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// GetJSON decodes a JSON value into dst. It reports false, leaving dst
// untouched, when the key is missing or the value is malformed.
func GetJSON(s Storage, key string, dst any) bool {
	v, ok := s.Get(key)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(v), dst) == nil
}

// SetInt stores an integer.
func SetInt(s Storage, key string, v int) error {
	return s.Set(key, strconv.Itoa(v))
}

// SetBool stores a flag as "true" or "false".
func SetBool(s Storage, key string, v bool) error {
	return s.Set(key, strconv.FormatBool(v))
}

// SetJSON stores v encoded as JSON.
func SetJSON(s Storage, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(data))
}
