// Package web provides HTTP request and response types for the translation
// API.
package web

import "encoding/json"

// ErrorResponse represents a standardized API error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ParseRequest represents the request body for parsing a workflow document.
type ParseRequest struct {
	// Document is the raw workflow export, passed through verbatim to the
	// parser. Any JSON value is accepted here; non-document shapes fail
	// in the parser, not the binding layer.
	Document json.RawMessage `json:"document" validate:"required"`
}

// TranslateRequest represents the request body for a full translation run.
type TranslateRequest struct {
	Document     json.RawMessage   `json:"document"                validate:"required"`
	MappingTable map[string]string `json:"mapping_table,omitempty"`
	Overrides    map[string]string `json:"overrides,omitempty"`
	BaseURL      string            `json:"base_url,omitempty"      validate:"omitempty,url"`
}
