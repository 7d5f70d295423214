package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/ocr-keywords/internal/keyword"
)

// Keyword run statuses.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// KeywordParams names a keyword for the discovery methods.
type KeywordParams struct {
	Name string `json:"name"`
}

// RunParams represents the parameters for a run_keyword request.
type RunParams struct {
	// Name is the keyword to run, e.g. "Apply Erosion To Image".
	Name string `json:"name"`

	// Args holds positional argument values. Images are passed as handle IDs.
	Args []interface{} `json:"args"`

	// Kwargs holds named argument values.
	Kwargs map[string]interface{} `json:"kwargs"`
}

// RunResult is the result of a run_keyword request.
type RunResult struct {
	Status    string      `json:"status"`
	Return    interface{} `json:"return"`
	Error     string      `json:"error,omitempty"`
	ErrorKind string      `json:"error_kind,omitempty"`
	Output    string      `json:"output,omitempty"`
}

// ReleaseParams names an image handle to evict.
type ReleaseParams struct {
	Handle string `json:"handle"`
}

func (s *Server) keywordParams(req *Request) (*keyword.Keyword, *Response) {
	var params KeywordParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
		return nil, s.errorResponse(req.ID, codeInvalidParams, "Invalid params", paramsError(err, "name"))
	}
	kw, ok := s.lib.Keyword(params.Name)
	if !ok {
		return nil, s.errorResponse(req.ID, codeUnknownKeyword, "Unknown keyword", params.Name)
	}
	return kw, nil
}

func (s *Server) handleKeywordArguments(req *Request) *Response {
	kw, errResp := s.keywordParams(req)
	if errResp != nil {
		return errResp
	}
	return s.result(req.ID, kw.Arguments())
}

func (s *Server) handleKeywordDocumentation(req *Request) *Response {
	kw, errResp := s.keywordParams(req)
	if errResp != nil {
		return errResp
	}
	return s.result(req.ID, kw.Doc)
}

// handleRunKeyword runs a keyword and reports its outcome.
//
// Keyword failures are not JSON-RPC errors: they come back as
//
//	{"status": "FAIL", "error": "...", "error_kind": "InvalidKernelSize"}
//
// Only malformed params and unknown keywords produce error responses.
func (s *Server) handleRunKeyword(req *Request) *Response {
	var params RunParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", paramsError(err, "name"))
	}

	s.output = s.output[:0]
	ret, err := s.lib.Run(params.Name, params.Args, params.Kwargs)
	if errors.Is(err, keyword.ErrUnknownKeyword) {
		return s.errorResponse(req.ID, codeUnknownKeyword, "Unknown keyword", params.Name)
	}

	result := RunResult{Status: StatusPass, Output: strings.Join(s.output, "\n")}
	if err != nil {
		result.Status = StatusFail
		result.Error = err.Error()
		result.ErrorKind = keyword.KindOf(err)
		s.log.WithFields(logrus.Fields{
			"keyword": params.Name,
			"kind":    result.ErrorKind,
		}).Info("keyword failed")
	} else {
		result.Return = s.wireValue(ret)
	}
	return s.result(req.ID, result)
}

func (s *Server) handleReleaseImage(req *Request) *Response {
	var params ReleaseParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.Handle == "" {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", paramsError(err, "handle"))
	}
	return s.result(req.ID, map[string]interface{}{
		"released": s.store.Evict(params.Handle),
	})
}

func paramsError(err error, field string) string {
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("missing %s", field)
}
