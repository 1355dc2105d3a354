package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Err is an API error carrying the HTTP status it is served with.
type Err struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *Err) Error() string {
	return e.Message
}

// NewErrf builds an Err with a formatted message.
func NewErrf(statusCode int, format string, args ...any) *Err {
	return &Err{
		Message:    fmt.Sprintf(format, args...),
		StatusCode: statusCode,
	}
}

// HandlerFunc is an endpoint implementation working on typed requests and responses.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)

// RegisterFunc registers handler on mux for the given method and path pattern.
//
// The request is built by decoding the JSON body (if any) into Req and then filling the fields
// tagged with `path:"..."` from the pattern wildcards and `query:"..."` from the query string.
// Handler errors of type *Err are served with their status code, anything else as a 500.
func RegisterFunc[Req, Resp any](logger *logrus.Logger, mux *http.ServeMux, method, path string, handler HandlerFunc[Req, Resp]) {
	mux.HandleFunc(method+" "+path, func(w http.ResponseWriter, r *http.Request) {
		logger := logger.WithContext(r.Context()).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		})

		req := new(Req)
		err := json.NewDecoder(r.Body).Decode(req)
		if err != nil && !errors.Is(err, io.EOF) {
			logger.WithError(err).Warn("Failed to decode request body")
			writeJSON(logger, w, http.StatusBadRequest, NewErrf(http.StatusBadRequest, "Invalid request body"))
			return
		}

		err = bindParams(r, req)
		if err != nil {
			logger.WithError(err).Warn("Failed to bind request parameters")
			writeJSON(logger, w, http.StatusBadRequest, NewErrf(http.StatusBadRequest, "%s", err.Error()))
			return
		}

		resp, err := handler(r.Context(), req)
		if err != nil {
			apiErr := &Err{}
			if !errors.As(err, &apiErr) {
				logger.WithError(err).Error("Handler failed with an unexpected error")
				apiErr = NewErrf(http.StatusInternalServerError, "Internal server error")
			}
			writeJSON(logger, w, apiErr.StatusCode, apiErr)
			return
		}

		writeJSON(logger, w, http.StatusOK, resp)
	})
}

func writeJSON(logger *logrus.Entry, w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		logger.WithError(err).Error("Failed to encode response body")
	}
}

// bindParams sets the string, int, *int and bool fields of req tagged with path or query.
func bindParams(r *http.Request, req any) error {
	v := reflect.ValueOf(req).Elem()
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)

		var name, raw string
		if key, ok := field.Tag.Lookup("path"); ok {
			name, raw = key, r.PathValue(key)
		} else if key, ok := field.Tag.Lookup("query"); ok {
			if !r.URL.Query().Has(key) {
				continue
			}
			name, raw = key, r.URL.Query().Get(key)
		} else {
			continue
		}

		err := setField(v.Field(i), raw)
		if err != nil {
			return fmt.Errorf("invalid value for '%s': %w", name, err)
		}
	}

	return nil
}

func setField(f reflect.Value, raw string) error {
	if f.Kind() == reflect.Pointer {
		elem := reflect.New(f.Type().Elem())
		err := setField(elem.Elem(), raw)
		if err != nil {
			return err
		}
		f.Set(elem)
		return nil
	}

	switch f.Kind() {
	case reflect.String:
		f.SetString(raw)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return errors.New("expected an integer")
		}
		f.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.New("expected a boolean")
		}
		f.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", f.Kind())
	}

	return nil
}
