package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/ocr-keywords/internal/keyword"
	"github.com/ironsheep/ocr-keywords/internal/ocr"
	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// ProtocolVersion is reported by initialize.
const ProtocolVersion = "2.0"

// Server exposes a keyword library over line-delimited JSON-RPC.
type Server struct {
	lib   *keyword.Library
	store *vision.Store
	log   logrus.FieldLogger

	// Version is reported in serverInfo.
	Version string

	// output collects the HTML lines reported by the keyword being run.
	output []string
}

// Request represents an incoming JSON-RPC request
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response represents an outgoing JSON-RPC response
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents a JSON-RPC error
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON-RPC error codes used by the server.
const (
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeUnknownKeyword = -32000
)

// New creates a server over a keyword library built from store, engine and
// opts. The library's reporter is replaced so that reported lines end up in
// the run_keyword output.
func New(store *vision.Store, engine ocr.Engine, log logrus.FieldLogger, opts ...keyword.Option) *Server {
	s := &Server{store: store, log: log, Version: "dev"}
	opts = append(opts,
		keyword.WithLogger(log),
		keyword.WithReporter(func(html string) { s.output = append(s.output, html) }),
	)
	s.lib = keyword.New(store, engine, opts...)
	return s
}

// Library returns the keyword library the server dispatches to.
func (s *Server) Library() *keyword.Library {
	return s.lib
}

// Run reads requests from in, one per line, and writes responses to out
// until in is exhausted. Requests are handled one at a time.
func (s *Server) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	// Allow long lines; documentation and argument lists can be large
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.WithError(err).Warn("failed to parse request")
			continue
		}

		resp := s.handleRequest(&req)
		if err := encoder.Encode(resp); err != nil {
			s.log.WithError(err).WithField("method", req.Method).Error("failed to encode response")
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *Request) *Response {
	s.log.WithFields(logrus.Fields{"method": req.Method, "id": req.ID}).Debug("request")

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "ping":
		return s.result(req.ID, map[string]interface{}{})
	case "get_keyword_names":
		return s.result(req.ID, s.lib.KeywordNames())
	case "get_keyword_arguments":
		return s.handleKeywordArguments(req)
	case "get_keyword_documentation":
		return s.handleKeywordDocumentation(req)
	case "run_keyword":
		return s.handleRunKeyword(req)
	case "release_image":
		return s.handleReleaseImage(req)
	default:
		return s.errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), "")
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *Request) *Response {
	return s.result(req.ID, map[string]interface{}{
		"protocolVersion": ProtocolVersion,
		"serverInfo": map[string]interface{}{
			"name":    "ocr-keywords",
			"version": s.Version,
		},
		"keywords": len(s.lib.KeywordNames()),
	})
}

func (s *Server) result(id, v interface{}) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Result: v}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *Response {
	e := &Error{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &Response{JSONRPC: "2.0", ID: id, Error: e}
}
