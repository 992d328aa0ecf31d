package utils

import "encoding/json"

// MarshalJSON marshals a value for caching
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// UnmarshalJSON unmarshals cached bytes into a value
func UnmarshalJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
