package dbus

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

type param struct {
	key   string
	value string
}

// buildURL appends the endpoint path and the URL-encoded parameters, in
// insertion order, to the base URL. Endpoints without parameters get no "?".
func (c *Client) buildURL(path string, params []param) string {
	var builder strings.Builder
	builder.WriteString(c.config.BaseURL)
	builder.WriteString(path)

	for i, p := range params {
		if i == 0 {
			builder.WriteString("?")
		} else {
			builder.WriteString("&")
		}
		builder.WriteString(url.QueryEscape(p.key))
		builder.WriteString("=")
		builder.WriteString(url.QueryEscape(p.value))
	}

	return builder.String()
}

// getJSON performs a single GET against the web service and decodes the body
// into T. Non-2xx statuses map to the typed error family, transport failures
// to ConnectionError and undecodable bodies to ParseError.
func getJSON[T any](c *Client, requestURL string) (*T, error) {
	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("url", requestURL).Msg("Requesting dBUS endpoint")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, string(body))
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, &ParseError{Body: string(body)}
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ParseError{Body: string(body), Err: err}
	}

	return &result, nil
}
