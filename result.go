package pushql

import (
	"bytes"
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Result is a generated pushdown together with what produced it.
type Result struct {
	RequestID string
	Dialect   string
	SQL       string
}

// response is the adapter reply document.
type response struct {
	Type         RequestType `json:"type"`
	SQL          string      `json:"sql,omitempty"`
	Dialect      string      `json:"dialect,omitempty"`
	Capabilities []string    `json:"capabilities,omitempty"`
}

// Respond answers an adapter request with its JSON reply. Pushdowns reply
// with the generated SQL and getCapabilities with the capability report of
// the configured dialect. Other request types return ErrUnhandledRequest.
func (s *Service) Respond(ctx context.Context, data []byte) ([]byte, error) {
	req, err := Parse(data)
	if err != nil {
		s.reject(s.log, err)
		return nil, err
	}

	var resp response
	switch req.Type {
	case RequestPushdown:
		res, err := s.pushdown(ctx, req.Pushdown)
		if err != nil {
			return nil, err
		}
		resp = response{Type: req.Type, SQL: res.SQL, Dialect: res.Dialect}
	case RequestGetCapabilities:
		names, err := s.Capabilities(req.Schema)
		if err != nil {
			return nil, err
		}
		resp = response{Type: req.Type, Capabilities: names}
	default:
		return nil, errors.Wrapf(ErrUnhandledRequest, "%s", req.Type)
	}
	return json.Marshal(resp)
}

// splitBatch returns the request documents in data: the elements of a JSON
// array, or data itself.
func splitBatch(data []byte) ([][]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return [][]byte{data}, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, &MalformedRequestError{Reason: "expected an array of requests"}
	}
	if len(raws) == 0 {
		return nil, &MalformedRequestError{Reason: "empty request batch"}
	}
	docs := make([][]byte, len(raws))
	for i, raw := range raws {
		docs[i] = raw
	}
	return docs, nil
}
