package jira

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// ErrorDescriptor is returned in place of a decoded payload when Jira answers
// with an error status, or when a successful response body is not valid JSON.
// Successful mirrors the HTTP status class only.
type ErrorDescriptor struct {
	Successful bool   `json:"successful"`
	StatusCode int    `json:"status_code"`
	Text       string `json:"text"`
	Reason     string `json:"reason"`
}

// Result holds either the decoded JSON payload of a Jira response or an
// ErrorDescriptor. Exactly one of Data and Descriptor is meaningful.
type Result struct {
	Data       any
	Descriptor *ErrorDescriptor
}

// OK reports whether the underlying HTTP exchange succeeded. A decoded payload
// is always OK; a descriptor is OK when its Successful flag is set.
func (r *Result) OK() bool {
	if r == nil {
		return false
	}
	return r.Descriptor == nil || r.Descriptor.Successful
}

// MarshalJSON renders the payload unchanged, or the descriptor when there is no payload.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Descriptor != nil {
		return Marshal(r.Descriptor)
	}
	return Marshal(r.Data)
}

func dataResult(v any) *Result { return &Result{Data: v} }

func descriptorResult(ok bool, status int, text, reason string) *Result {
	return &Result{Descriptor: &ErrorDescriptor{
		Successful: ok,
		StatusCode: status,
		Text:       text,
		Reason:     reason,
	}}
}

// decodeJSON decodes a complete JSON document. Numbers are kept as json.Number so
// payloads re-encode without precision loss. Trailing data is an error.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

// normalize passes v through a JSON round trip so values from different
// sources (tool arguments, decoded responses) compare equal when their JSON does.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return decodeJSON(data)
}

// containsValue reports whether list is a JSON array holding an element equal to want.
func containsValue(list any, want any) (bool, error) {
	items, ok := list.([]any)
	if !ok {
		return false, nil
	}
	target, err := normalize(want)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		candidate, err := normalize(item)
		if err != nil {
			return false, err
		}
		if reflect.DeepEqual(candidate, target) {
			return true, nil
		}
	}
	return false, nil
}
