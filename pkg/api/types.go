package api

import "github.com/wirebyte/tlvkit/pkg/schema"

// APIResponse is the standard response envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DecodedRecord describes one record in a decode response.
type DecodedRecord struct {
	Offset int    `json:"offset"`
	Type   byte   `json:"type"`
	Name   string `json:"name"`
	Length int    `json:"length"`
	Value  string `json:"value_hex"`
}

// DecodeResponse is the result of decoding a buffer.
type DecodeResponse struct {
	Variant string `json:"variant"`
	Count   int    `json:"count"`
	Bytes   int    `json:"bytes"`
	// Truncated reports that the final record's declared size did not
	// line up with the end of the buffer.
	Truncated bool            `json:"truncated"`
	Records   []DecodedRecord `json:"records"`
}

// BuildRequest asks the service to construct a single record. Exactly one
// of the value fields must be set; Width selects the scalar width for
// ValueUint (1, 2 or 4 bytes).
type BuildRequest struct {
	Type        byte    `json:"type"`
	ValueHex    *string `json:"value_hex,omitempty"`
	ValueString *string `json:"value_string,omitempty"`
	ValueUint   *uint64 `json:"value_uint,omitempty"`
	Width       int     `json:"width,omitempty"`
	ValueIPv4   *string `json:"value_ipv4,omitempty"`
}

// BuildResponse carries a built record.
type BuildResponse struct {
	Record string `json:"record_hex"`
	Size   int    `json:"size"`
}

// CaptureResponse identifies a stored capture.
type CaptureResponse struct {
	ID    string `json:"id"`
	Bytes int    `json:"bytes"`
}

// ServerConfig holds configuration for the decode service.
type ServerConfig struct {
	Bind    string
	Port    int
	DataDir string
	// APIKey, when non-empty, is required in the X-API-Key header.
	APIKey string
	// Variant is the default length policy name for requests that do
	// not pick one.
	Variant string
	Schema  *schema.Schema
}
