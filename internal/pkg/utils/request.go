package utils

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

const maxJSONBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSONBody decodes at most 1 MiB of the request body into dst.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	err := decoder.Decode(dst)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	return err
}

func ParseIDParam(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}

func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
