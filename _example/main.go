// Command example demonstrates trimdecode with an HTTP server that trims
// and validates a JSON request body and serves its OpenAPI document.
//
// Run:
//
//	go run ./_example
//
// Then try:
//
//	curl -s localhost:8080/orders -d '{"customer_name":"  Ada ","notes":" ","tags":["rush "," ","rush"]}'
//	curl -s localhost:8080/openapi.json
package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	td "github.com/Gobd/trimdecode"
	"github.com/Gobd/trimdecode/openapi"
)

// Order is a sample request/response type.
type Order struct {
	CustomerName string                     `json:"customer_name"`
	Notes        td.OptionalString          `json:"notes,omitzero"`
	Channel      *string                    `json:"channel" default:"web"`
	Tags         td.SortedSet[td.DropEmpty] `json:"tags"`
	Lines        []string                   `json:"lines" trim:"omitempty"`
}

func (o *Order) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.CustomerName, td.NotBlank, validation.RuneLength(1, 200)),
		validation.Field(&o.Channel, validation.In("web", "phone")),
	)
}

// ErrorResponse is a standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	doc := openapi.DocBase("Example API", "Demonstrates trimdecode", "0.1.0")
	err := openapi.Add(doc, openapi.Route{
		Method:  http.MethodPost,
		Path:    "/orders",
		ID:      "createOrder",
		Summary: "Create an order",
		Request: Order{},
		Responses: map[int]any{
			http.StatusOK:         Order{},
			http.StatusBadRequest: ErrorResponse{},
		},
	})
	if err != nil {
		logger.Error("failed to build openapi document", "error", err)
		os.Exit(1)
	}

	http.HandleFunc("GET /openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, doc)
	})

	http.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		var order Order
		if err := td.DecodeAndValidateContext(r.Context(), r.Body, &order); err != nil {
			logger.Debug("rejected order", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, order)
	})

	logger.Info("listening", "addr", "http://localhost:8080")
	if err := http.ListenAndServe(":8080", nil); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
