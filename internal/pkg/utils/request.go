package utils

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// DecodeJSONBody decodes the request body keeping numbers as json.Number so
// they can be coerced without float rounding.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	return decoder.Decode(dst)
}

// FirstFormValue returns the first non-blank form value among keys.
func FirstFormValue(r *http.Request, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(r.FormValue(key)); value != "" {
			return value
		}
	}
	return ""
}

var ErrFormFileTooLarge = errors.New("form file too large")

// ReadFormFile reads the named multipart file, failing with
// ErrFormFileTooLarge instead of truncating when it exceeds maxBytes.
func ReadFormFile(r *http.Request, field string, maxBytes int64) ([]byte, *multipart.FileHeader, error) {
	file, fileHeader, err := r.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, nil, ErrFormFileTooLarge
	}
	return data, fileHeader, nil
}
