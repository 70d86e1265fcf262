package api

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"

	"github.com/wirebyte/tlvkit/pkg/schema"
	"github.com/wirebyte/tlvkit/pkg/storage"
	"github.com/wirebyte/tlvkit/pkg/tlv"
)

// maxBodyBytes bounds request bodies; captures larger than this are not a
// decode-service use case.
const maxBodyBytes = 1 << 20

// Server holds the decode service state.
type Server struct {
	captures *storage.CaptureStore
	schema   *schema.Schema
	config   ServerConfig
	metrics  *Metrics
}

// NewServer creates a new decode service.
func NewServer(captures *storage.CaptureStore, config ServerConfig, metrics *Metrics) *Server {
	if config.Schema == nil {
		config.Schema = schema.Builtin()
	}
	if config.Variant == "" {
		config.Variant = "standard"
	}
	return &Server{
		captures: captures,
		schema:   config.Schema,
		config:   config,
		metrics:  metrics,
	}
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleDecode decodes the TLV buffer in the request body. The body is
// raw bytes for Content-Type application/octet-stream and hex text
// otherwise; the variant query parameter overrides the configured default.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	variantName := s.variantName(r)
	variant, err := tlv.ParseVariant(variantName)
	if err != nil {
		s.metrics.RecordDecode(variantName, false, 0)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	buf, err := readBuffer(r)
	if err != nil {
		s.metrics.RecordDecode(variantName, false, 0)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := decodeBuffer(buf, variantName, variant, s.schema)
	s.metrics.RecordDecode(variantName, true, resp.Count)
	sendSuccess(w, resp)
}

// handleBuild constructs a single record from the JSON request body.
func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	var req BuildRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.metrics.RecordBuild(false)
		sendError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	builder, err := builderFromRequest(req)
	if err != nil {
		s.metrics.RecordBuild(false)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	record := builder.Bytes()
	s.metrics.RecordBuild(true)
	sendSuccess(w, BuildResponse{
		Record: hex.EncodeToString(record),
		Size:   len(record),
	})
}

// handleCreateCapture archives the buffer in the request body.
func (s *Server) handleCreateCapture(w http.ResponseWriter, r *http.Request) {
	buf, err := readBuffer(r)
	if err != nil {
		s.metrics.RecordCapture("create", false)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := s.captures.Create(buf)
	if err != nil {
		s.metrics.RecordCapture("create", false)
		sendError(w, "Failed to store capture", http.StatusInternalServerError)
		return
	}

	s.metrics.RecordCapture("create", true)
	sendSuccess(w, CaptureResponse{ID: id.String(), Bytes: len(buf)})
}

// handleGetCapture returns an archived buffer as hex.
func (s *Server) handleGetCapture(w http.ResponseWriter, r *http.Request) {
	buf, ok := s.loadCapture(w, r, "read")
	if !ok {
		return
	}
	s.metrics.RecordCapture("read", true)
	sendSuccess(w, map[string]interface{}{
		"capture_hex": hex.EncodeToString(buf),
		"bytes":       len(buf),
	})
}

// handleDecodeCapture re-decodes an archived buffer.
func (s *Server) handleDecodeCapture(w http.ResponseWriter, r *http.Request) {
	variantName := s.variantName(r)
	variant, err := tlv.ParseVariant(variantName)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	buf, ok := s.loadCapture(w, r, "decode")
	if !ok {
		return
	}

	resp := decodeBuffer(buf, variantName, variant, s.schema)
	s.metrics.RecordDecode(variantName, true, resp.Count)
	sendSuccess(w, resp)
}

// handleDeleteCapture removes an archived buffer.
func (s *Server) handleDeleteCapture(w http.ResponseWriter, r *http.Request) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid capture id", http.StatusBadRequest)
		return
	}
	if err := s.captures.Delete(id); err != nil {
		s.metrics.RecordCapture("delete", false)
		sendError(w, "Failed to delete capture", http.StatusInternalServerError)
		return
	}
	s.metrics.RecordCapture("delete", true)
	sendSuccess(w, map[string]string{"id": id.String()})
}

func (s *Server) loadCapture(w http.ResponseWriter, r *http.Request, operation string) ([]byte, bool) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid capture id", http.StatusBadRequest)
		return nil, false
	}

	buf, err := s.captures.Read(id)
	if err != nil {
		s.metrics.RecordCapture(operation, false)
		if storage.IsNotFound(err) {
			sendError(w, "Capture not found", http.StatusNotFound)
		} else {
			sendError(w, "Failed to read capture", http.StatusInternalServerError)
		}
		return nil, false
	}
	return buf, true
}

func (s *Server) variantName(r *http.Request) string {
	if name := r.URL.Query().Get("variant"); name != "" {
		return name
	}
	if s.config.Variant != "" {
		return s.config.Variant
	}
	return "standard"
}

// readBuffer extracts the TLV buffer from a request body: raw bytes for
// octet-stream, hex text (whitespace ignored) for everything else.
func readBuffer(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body")
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	}

	if strings.Contains(r.Header.Get("Content-Type"), "application/octet-stream") {
		return body, nil
	}

	text := strings.Map(func(c rune) rune {
		switch c {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return c
	}, string(body))
	buf, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("body is not valid hex: %v", err)
	}
	return buf, nil
}

// decodeBuffer walks buf and flattens every record into the response. The
// truncated flag is how the service surfaces what the core's null-view
// contract deliberately does not: a final record whose declared size does
// not line up with the end of the buffer.
func decodeBuffer(buf []byte, variantName string, variant tlv.Variant, sch *schema.Schema) DecodeResponse {
	reader := tlv.NewReader[tlv.Variant](variant)

	resp := DecodeResponse{
		Variant: variantName,
		Bytes:   len(buf),
		Records: []DecodedRecord{},
	}

	end := 0
	for rec := reader.First(buf); !rec.IsNull(); rec = reader.Next(rec, buf) {
		resp.Records = append(resp.Records, DecodedRecord{
			Offset: rec.Offset(),
			Type:   rec.Type(),
			Name:   sch.TagName(rec.Type()),
			Length: len(rec.Value()),
			Value:  hex.EncodeToString(rec.Value()),
		})
		end = rec.Offset() + rec.TotalSize()
	}

	resp.Count = len(resp.Records)
	resp.Truncated = len(buf) > 0 && end != len(buf)
	return resp
}

// builderFromRequest resolves the one value form a BuildRequest carries.
func builderFromRequest(req BuildRequest) (*tlv.Builder, error) {
	forms := 0
	for _, set := range []bool{req.ValueHex != nil, req.ValueString != nil, req.ValueUint != nil, req.ValueIPv4 != nil} {
		if set {
			forms++
		}
	}
	if forms != 1 {
		return nil, errors.New("exactly one of value_hex, value_string, value_uint or value_ipv4 is required")
	}

	switch {
	case req.ValueHex != nil:
		value, err := hex.DecodeString(*req.ValueHex)
		if err != nil {
			return nil, fmt.Errorf("value_hex is not valid hex: %v", err)
		}
		return tlv.NewBuilder(req.Type, value)

	case req.ValueString != nil:
		return tlv.NewStringBuilder(req.Type, *req.ValueString)

	case req.ValueIPv4 != nil:
		addr, err := netip.ParseAddr(*req.ValueIPv4)
		if err != nil {
			return nil, fmt.Errorf("value_ipv4 is not a valid address: %v", err)
		}
		return tlv.NewIPv4Builder(req.Type, addr)

	default:
		switch req.Width {
		case 1:
			if *req.ValueUint > 0xFF {
				return nil, fmt.Errorf("value_uint %d does not fit in 1 byte", *req.ValueUint)
			}
			return tlv.NewUint8Builder(req.Type, uint8(*req.ValueUint)), nil
		case 2:
			if *req.ValueUint > 0xFFFF {
				return nil, fmt.Errorf("value_uint %d does not fit in 2 bytes", *req.ValueUint)
			}
			return tlv.NewUint16Builder(req.Type, uint16(*req.ValueUint)), nil
		case 4:
			if *req.ValueUint > 0xFFFFFFFF {
				return nil, fmt.Errorf("value_uint %d does not fit in 4 bytes", *req.ValueUint)
			}
			return tlv.NewUint32Builder(req.Type, uint32(*req.ValueUint)), nil
		default:
			return nil, fmt.Errorf("width must be 1, 2 or 4 for value_uint, got %d", req.Width)
		}
	}
}
