package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/rhinozelfant/internal/imaging"
)

// Version is reported to clients in the initialize response.
var Version = "0.1.0"

const protocolVersion = "2024-11-05"

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeToolFailed     = -32000
)

// maxRequestSize bounds one request line. Paths are the only sizeable
// arguments, so 1 MiB is generous.
const maxRequestSize = 1024 * 1024

// Server answers MCP tool calls over newline-delimited JSON-RPC.
//
// Decoded images are shared between calls through an imaging.ImageCache, so
// sampling several pixels of one file decodes it once.
type Server struct {
	cache  *imaging.ImageCache
	logger *log.Logger
	debug  bool
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a server that logs through the standard logger with debug
// output off.
func New() *Server {
	return NewWithLogger(log.Default(), false)
}

// NewWithLogger creates a server that writes its log lines to logger. A nil
// logger means log.Default(). With debug set, every tool call is logged with
// its duration.
func NewWithLogger(logger *log.Logger, debug bool) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cache:  imaging.NewImageCache(),
		logger: logger,
		debug:  debug,
	}
}

// Run serves requests from stdin and writes responses to stdout.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads newline-delimited JSON-RPC requests from r and writes one
// response line per request to w. Notifications get no response, and a line
// that is not valid JSON gets a parse error with a null id. It returns when r
// is exhausted.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestSize)
	encoder := json.NewEncoder(w)

	reply := func(resp *MCPResponse) {
		if err := encoder.Encode(resp); err != nil {
			s.logger.Printf("Failed to encode response: %v", err)
		}
	}

	handled := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Printf("Failed to parse request: %v", err)
			reply(s.errorResponse(nil, codeParseError, "Parse error", err.Error()))
			continue
		}

		handled++
		if resp := s.handleRequest(&req); resp != nil {
			reply(resp)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	s.debugf("input closed after %d requests", handled)
	return nil
}

func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return s.resultResponse(req.ID, map[string]interface{}{})
	default:
		return s.errorResponse(req.ID, codeMethodNotFound,
			fmt.Sprintf("Method not found: %s", req.Method), nil)
	}
}

func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	s.debugf("initialize from client, protocol %s", protocolVersion)
	return s.resultResponse(req.ID, map[string]interface{}{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    "rhinozelfant",
			"version": Version,
		},
	})
}

func (s *Server) resultResponse(id interface{}, result interface{}) *MCPResponse {
	return &MCPResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func (s *Server) debugf(format string, args ...interface{}) {
	if s.debug {
		s.logger.Printf("[debug] "+format, args...)
	}
}
