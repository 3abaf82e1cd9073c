package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	OK                    int = 200
	BAD_REQUEST           int = 400
	FORBIDDEN             int = 403
	DATA_NOT_FOUND        int = 404
	RATE_LIMIT_EXCEEDED   int = 429
	INTERNAL_SERVER_ERROR int = 500
	BAD_GATEWAY           int = 502
	SERVICE_UNAVAILABLE   int = 503
	GATEWAY_TIMEOUT       int = 504
)

var messages = map[int]string{
	OK:                    "OK",
	BAD_REQUEST:           "Bad request",
	FORBIDDEN:             "Access denied",
	DATA_NOT_FOUND:        "Data not found",
	RATE_LIMIT_EXCEEDED:   "Request was throttled",
	INTERNAL_SERVER_ERROR: "Unknown error",
	BAD_GATEWAY:           "Bad gateway",
	SERVICE_UNAVAILABLE:   "Service is temporarily unavailable because of maintenance",
	GATEWAY_TIMEOUT:       "Gateway timeout",
}

// StatusError is returned for every response that is not a 200.
type StatusError struct {
	Code    int
	Reason  string // reason field of the error body, if the API sent one
	Message string
}

func (e *StatusError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%d %s (%s)", e.Code, e.Message, e.Reason)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

type Proxy struct {
	header map[string]string
	client *http.Client
}

func NewProxy(header map[string]string, client *http.Client) Proxy {
	if client == nil {
		client = http.DefaultClient
	}
	return Proxy{header, client}
}

// Make a GET request to the provided url with the proxy headers.
// Only a 200 returns the body
func (proxy *Proxy) Request(ctx context.Context, url string) ([]byte, error) {

	// Create the request and add the header
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request for url %s: %w", url, err)
	}
	request.Header.Set("Accept", "application/json")
	for key, value := range proxy.header {
		request.Header.Set(key, value)
	}

	// Perform the request
	res, err := proxy.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("could not perform request: %w", err)
	}
	defer res.Body.Close()

	stream, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read the response for url %s: %w", url, err)
	}

	message, ok := messages[res.StatusCode]
	if !ok {
		message = "Unknown status"
	}
	log.Debug().Msgf("%d %s", res.StatusCode, message)

	if res.StatusCode == OK {
		return stream, nil
	}

	statusError := &StatusError{Code: res.StatusCode, Message: message}
	var body struct {
		Reason string `json:"reason"`
	}
	if json.Unmarshal(stream, &body) == nil {
		statusError.Reason = body.Reason
	}
	if res.StatusCode == RATE_LIMIT_EXCEEDED {
		log.Warn().Msgf("Request to %s was throttled", url)
	}
	return nil, statusError
}
