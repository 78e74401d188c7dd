// Package openapi assembles an OpenAPI 3 document for JSON endpoints whose
// bodies use trimdecode field types and trim tags. Schemas come from
// [trimdecode.NewSchemaRefForValue], so trimmed, nullable and drop-empty
// fields are documented as what clients may send.
//
//	doc := openapi.DocBase("orders", "Order intake", "1.0.0")
//	err := openapi.Add(doc, openapi.Route{
//	    Method:    http.MethodPost,
//	    Path:      "/orders",
//	    ID:        "createOrder",
//	    Request:   Order{},
//	    Responses: map[int]any{http.StatusOK: Order{}, http.StatusBadRequest: ErrorResponse{}},
//	})
package openapi

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	td "github.com/Gobd/trimdecode"
)

var methods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// Route describes one JSON operation.
type Route struct {
	Method  string
	Path    string
	ID      string
	Summary string
	// Request is a value of the request body type; nil for no body.
	Request any
	// Responses maps a status code to a value of the response body type.
	// A nil value documents a response without a body. With no entries the
	// operation gets a bare default response.
	Responses map[int]any
}

// DocBase returns a basic OpenAPI 3.0.3 document.
func DocBase(title, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       title,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// Add registers r on doc, replacing any operation already at the same path
// and method.
func Add(doc *openapi3.T, r Route) error {
	if !slices.Contains(methods, r.Method) {
		return fmt.Errorf("unsupported method %q", r.Method)
	}
	if r.Path == "" {
		return errors.New("empty path")
	}

	op := openapi3.NewOperation()
	op.OperationID = r.ID
	op.Summary = r.Summary

	if r.Request != nil {
		ref, err := td.NewSchemaRefForValue(r.Request)
		if err != nil {
			return fmt.Errorf("request schema for %s %s: %w", r.Method, r.Path, err)
		}
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(ref),
		}
	}

	responses, err := newResponses(r.Responses)
	if err != nil {
		return fmt.Errorf("responses for %s %s: %w", r.Method, r.Path, err)
	}
	op.Responses = responses

	item := doc.Paths.Value(r.Path)
	if item == nil {
		item = &openapi3.PathItem{}
	}
	item.SetOperation(r.Method, op)
	doc.Paths.Set(r.Path, item)
	return nil
}

func newResponses(bodies map[int]any) (*openapi3.Responses, error) {
	if len(bodies) == 0 {
		return openapi3.NewResponses(), nil
	}
	opts := make([]openapi3.NewResponsesOption, 0, len(bodies))
	for code, body := range bodies {
		resp := openapi3.NewResponse().WithDescription(http.StatusText(code))
		if body != nil {
			ref, err := td.NewSchemaRefForValue(body)
			if err != nil {
				return nil, err
			}
			resp = resp.WithJSONSchemaRef(ref)
		}
		opts = append(opts, openapi3.WithName(strconv.Itoa(code), resp))
	}
	return openapi3.NewResponses(opts...), nil
}
