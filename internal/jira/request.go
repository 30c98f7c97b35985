package jira

import "net/http"

// Method is one of the HTTP verbs the Jira tools use.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

// Valid reports whether m is one of the supported verbs.
func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	}
	return false
}

func (m Method) String() string { return string(m) }

// Request describes a single call to the Jira REST API. Endpoint is resolved
// against the client's base URL. A nil Headers map means the default
// Accept: application/json header is sent; a non-nil map replaces it.
type Request struct {
	Method   Method
	Endpoint string
	Headers  map[string]string
	Params   map[string]string
	Body     any
}

// jsonHeaders are sent by every call site that carries a JSON body.
func jsonHeaders() map[string]string {
	return map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}
}
