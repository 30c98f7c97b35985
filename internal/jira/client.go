package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/karolswdev/jira-mcp/internal/config"
	"github.com/karolswdev/jira-mcp/internal/observability"
)

// Client sends requests to the Jira Cloud REST API and normalizes the
// responses into Results. It is immutable after New and safe for concurrent use.
type Client struct {
	BaseURL *url.URL
	http    *resty.Client
	limiter *rate.Limiter
}

// New creates a Client from the given configuration. The base URL, credentials
// and timeout are read here once; later changes to cfg have no effect.
func New(cfg *config.AppConfig) (*Client, error) {
	if cfg.JiraBaseURL == "" {
		return nil, ErrBaseURLMissing
	}
	baseURL, err := url.Parse(cfg.JiraBaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBaseURLParse, err)
	}
	if !baseURL.IsAbs() {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrBaseURLParse, cfg.JiraBaseURL)
	}

	httpClient := resty.New().
		SetTimeout(cfg.Timeout()).
		SetBasicAuth(cfg.JiraUser, cfg.JiraAPIKey).
		SetLogger(restyLogger{})

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &Client{
		BaseURL: baseURL,
		http:    httpClient,
		limiter: limiter,
	}, nil
}

// ResolveEndpoint joins endpoint onto the base URL using standard reference
// resolution: a leading slash or a scheme replaces the base path, anything
// else is resolved relative to the base's last path segment.
func (c *Client) ResolveEndpoint(endpoint string) (*url.URL, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEndpointParse, err)
	}
	return c.BaseURL.ResolveReference(ref), nil
}

// Execute sends req and maps the response to a Result:
//
//   - status < 400 with a JSON body: the decoded value, unwrapped;
//   - status < 400 with a non-JSON or empty body: a descriptor with Successful set;
//   - status >= 400: a descriptor with Successful unset.
//
// Transport failures (DNS, connection, timeout, cancellation) are returned as
// an error wrapping ErrRequestExecute. Exactly one attempt is made.
func (c *Client) Execute(ctx context.Context, req Request) (*Result, error) {
	if !req.Method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, req.Method)
	}

	requestID := uuid.NewString()
	logger := log.With().Str("request_id", requestID).Logger()
	logger.Info().Msgf("Requesting %s on %s", req.Method, req.Endpoint)

	target, err := c.ResolveEndpoint(req.Endpoint)
	if err != nil {
		return nil, err
	}

	headers := req.Headers
	if len(headers) == 0 {
		headers = map[string]string{"Accept": "application/json"}
	}

	r := c.http.R().
		SetContext(ctx).
		SetHeaders(headers)

	if len(req.Params) > 0 {
		r.SetQueryParams(req.Params)
	}

	if req.Body != nil {
		body, err := Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRequestMarshal, err)
		}
		if !hasHeader(headers, "Content-Type") {
			r.SetHeader("Content-Type", "application/json")
		}
		r.SetBody(body)
		logger.Debug().RawJSON("request_body", body).Str("url", target.String()).Msg("Sending Jira request")
	} else {
		logger.Debug().Str("url", target.String()).Msg("Sending Jira request")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRateLimitWait, err)
		}
	}

	done := observability.TrackJiraRequest(req.Method.String())
	resp, err := r.Execute(req.Method.String(), target.String())
	if err != nil {
		done(0)
		logger.Error().Err(err).Str("url", target.String()).Msg("Request could not be completed")
		return nil, fmt.Errorf("%w: %w", ErrRequestExecute, err)
	}
	done(resp.StatusCode())

	return normalizeResponse(&logger, resp.StatusCode(), resp.Status(), resp.Body()), nil
}

// normalizeResponse applies the success/failure mapping to a received response.
func normalizeResponse(logger *zerolog.Logger, status int, statusLine string, body []byte) *Result {
	text := string(body)
	reason := reasonPhrase(status, statusLine)

	if status >= http.StatusBadRequest {
		logger.Error().Msgf("Request failed with status code %d: %s", status, text)
		return descriptorResult(false, status, text, reason)
	}

	logger.Info().Msgf("Request successful with status code %d", status)
	data, err := decodeJSON(body)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to decode JSON from response")
		return descriptorResult(true, status, text, reason)
	}
	logger.Debug().RawJSON("response_body", body).Msg("Decoded Jira response")
	return dataResult(data)
}

// reasonPhrase extracts the reason from a status line such as "404 Not Found".
func reasonPhrase(status int, statusLine string) string {
	code := strconv.Itoa(status)
	if strings.HasPrefix(statusLine, code) {
		if reason := strings.TrimSpace(strings.TrimPrefix(statusLine, code)); reason != "" {
			return reason
		}
	}
	return http.StatusText(status)
}

// Marshal encodes v as compact JSON without HTML escaping, so text such as
// "<b>" reaches Jira and the MCP client exactly as written.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func hasHeader(headers map[string]string, name string) bool {
	for k := range headers {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

// restyLogger routes resty's own diagnostics through zerolog so nothing is
// written to stdout, which belongs to the MCP transport.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	log.Error().Str("component", "resty").Msgf(format, v...)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	log.Warn().Str("component", "resty").Msgf(format, v...)
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	log.Debug().Str("component", "resty").Msgf(format, v...)
}
