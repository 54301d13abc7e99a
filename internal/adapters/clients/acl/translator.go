package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/clients"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// BaseAdapter wraps a client and turns every failed call into a domain error.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a base adapter for the named service.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{client: client, serviceName: serviceName}
}

// ServiceName returns the name of the remote service.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Get performs a GET request. On success the caller must close the body.
func (a *BaseAdapter) Get(ctx context.Context, path, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path)

	return a.body(resp, err, operation)
}

// PostJSON performs a POST request with v as JSON body.
// On success the caller must close the body.
func (a *BaseAdapter) PostJSON(ctx context.Context, path string, v any, operation string) (io.ReadCloser, error) {
	resp, err := a.client.PostJSON(ctx, path, v)

	return a.body(resp, err, operation)
}

func (a *BaseAdapter) body(resp *http.Response, err error, operation string) (io.ReadCloser, error) {
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, operation)
	}

	return resp.Body, nil
}

// DecodeResponse decodes a JSON body into T and closes it.
// Numbers are kept as json.Number so record ids survive unchanged.
// Any failure is a domain.DecodeError.
func DecodeResponse[T any](body io.ReadCloser, serviceName, operation string) (T, error) {
	var result T

	if body == nil {
		return result, domain.NewDecodeError(serviceName, operation, errors.New("response body is nil"))
	}
	defer func() { _ = body.Close() }()

	dec := json.NewDecoder(body)
	dec.UseNumber()

	if err := dec.Decode(&result); err != nil {
		return result, domain.NewDecodeError(serviceName, operation, err)
	}

	return result, nil
}

// RecordMapper extracts quote fields from a generic remote record.
type RecordMapper struct {
	title    func(ctx context.Context, record any) (any, error)
	id       func(ctx context.Context, record any) (any, error)
	category string
}

// NewRecordMapper compiles the JSONPath expressions. idPath may be empty,
// in which case ids are derived from the title.
func NewRecordMapper(titlePath, idPath, category string) (*RecordMapper, error) {
	title, err := jsonpath.New(titlePath)
	if err != nil {
		return nil, fmt.Errorf("compiling title path %q: %w", titlePath, err)
	}

	m := &RecordMapper{title: title, category: category}

	if idPath != "" {
		id, err := jsonpath.New(idPath)
		if err != nil {
			return nil, fmt.Errorf("compiling id path %q: %w", idPath, err)
		}

		m.id = id
	}

	return m, nil
}

// Map translates one record. It returns false when the record has no usable title.
func (m *RecordMapper) Map(ctx context.Context, record any) (domain.Quote, bool) {
	raw, err := m.title(ctx, record)
	if err != nil {
		return domain.Quote{}, false
	}

	title, ok := scalar(raw)
	if !ok || strings.TrimSpace(title) == "" {
		return domain.Quote{}, false
	}

	text := domain.Capitalize(title)

	key := "text:" + text
	if m.id != nil {
		if raw, err := m.id(ctx, record); err == nil {
			if id, ok := scalar(raw); ok && id != "" {
				key = "remote:" + id
			}
		}
	}

	return domain.Quote{
		ID:       domain.StableID(key),
		Text:     text,
		Category: m.category,
		Pushed:   true,
	}, true
}

// scalar renders a JSONPath result as a string. Wildcard and filter
// expressions yield slices; their first element is used.
func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return fmt.Sprint(t), true
	case bool:
		return fmt.Sprint(t), true
	case []any:
		if len(t) == 0 {
			return "", false
		}

		return scalar(t[0])
	default:
		return "", false
	}
}

// Translator converts one external DTO into a domain value. ok is false when
// the DTO should be dropped.
type Translator[E any, D any] func(ext E) (D, bool)

// TranslateSlice applies translate to every item, dropping rejected ones.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) []D {
	result := make([]D, 0, len(items))

	for _, item := range items {
		if translated, ok := translate(item); ok {
			result = append(result, translated)
		}
	}

	return result
}
