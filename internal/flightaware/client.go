package flightaware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the FlightXML2 JSON endpoint root.
const DefaultBaseURL = "https://flightxml.flightaware.com/json/FlightXML2/"

const (
	notFoundMarker    = "NO_DATA flight not found"
	notFoundMaxLength = 40
)

// ErrUnexpectedStatus is returned when the provider answers with anything but 200.
var ErrUnexpectedStatus = errors.New("unexpected provider status")

// Client calls the FlightXML2 API with HTTP Basic credentials.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient returns a Client bound to baseURL. A zero timeout leaves requests bounded only by ctx.
func NewClient(baseURL, username, password string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL:    baseURL,
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FlightInfoEx fetches the raw FlightInfoEx body for ident.
func (c *Client) FlightInfoEx(ctx context.Context, ident string) (string, error) {
	endpoint := c.baseURL + "FlightInfoEx?" + url.Values{"ident": {ident}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("flightinfoex request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read flightinfoex body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return string(body), nil
}

// IsNotFound reports whether body is the provider's short "no such flight" reply.
func IsNotFound(body string) bool {
	return len(body) < notFoundMaxLength && strings.Contains(body, notFoundMarker)
}

// ParseFlights decodes the flights of a FlightInfoEx body.
func ParseFlights(body string) ([]Flight, error) {
	var resp FlightInfoExResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("decode flightinfoex: %w", err)
	}
	return resp.FlightInfoExResult.Flights, nil
}
