package jira

import "errors"

// Sentinel errors for Jira client operations.

// ErrBaseURLMissing indicates the Jira base URL is not configured.
var ErrBaseURLMissing = errors.New("Jira base URL is not configured")

// ErrBaseURLParse indicates the Jira base URL could not be parsed or is not absolute.
var ErrBaseURLParse = errors.New("failed to parse Jira base URL")

// ErrInvalidMethod indicates a request was built with an HTTP method outside the supported set.
var ErrInvalidMethod = errors.New("unsupported HTTP method")

// ErrEndpointParse indicates the endpoint could not be parsed as a relative URL reference.
var ErrEndpointParse = errors.New("failed to parse endpoint")

// ErrRequestMarshal indicates an error occurred while marshaling the request body.
var ErrRequestMarshal = errors.New("failed to marshal request body")

// ErrRequestExecute indicates the HTTP request could not be completed
// (DNS failure, refused connection, timeout, cancelled context).
var ErrRequestExecute = errors.New("failed to execute HTTP request")

// ErrRateLimitWait indicates the context ended while waiting for the outbound rate limiter.
var ErrRateLimitWait = errors.New("gave up waiting for rate limiter")
