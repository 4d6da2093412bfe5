// Package output serializes extraction responses.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xltables-go/pkg/xltables/models"
)

// ToJSON serializes a response, optionally indented.
func ToJSON(resp models.Response, pretty bool) ([]byte, error) {
	return marshal(resp, pretty)
}

// ErrorToJSON serializes an error response, optionally indented.
func ErrorToJSON(resp models.ErrorResponse, pretty bool) ([]byte, error) {
	return marshal(resp, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
