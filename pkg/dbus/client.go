// Package dbus is a typed client for the dBUS (Donostia/San Sebastián bus)
// mobile web service. Every endpoint is exposed in a synchronous and an
// asynchronous form; the synchronous form submits the asynchronous one and
// waits for it.
package dbus

import (
	"net"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sourcegraph/conc/pool"
)

const DefaultBaseURL = "http://62.99.53.182/SSIIMovilWSv2/ws/cons/"

const (
	defaultConnectTimeout = 5 * time.Second
	defaultReadTimeout    = 10 * time.Second
	defaultPoolSize       = 10
)

var validLanguages = map[string]bool{
	"es": true,
	"eu": true,
	"en": true,
	"fr": true,
}

// Executor runs the tasks behind the asynchronous endpoint variants.
// *pool.Pool from sourcegraph/conc satisfies it directly.
type Executor interface {
	Go(f func())
}

// Config holds the construction time options for a Client. The zero value is
// usable; every field has a default.
type Config struct {
	// DefaultLanguage is used whenever an endpoint taking a language is
	// called with an empty one. Defaults to "es".
	DefaultLanguage string `validate:"required,oneof=es eu en fr"`

	ConnectTimeout time.Duration `validate:"gte=0"`
	ReadTimeout    time.Duration `validate:"gte=0"`

	// BaseURL of the web service. Only overridden in tests, the production
	// endpoint is fixed.
	BaseURL string `validate:"required,url"`

	// HTTPClient, when set, replaces the transport built from the timeouts.
	HTTPClient *http.Client `validate:"-"`

	// Executor, when set, replaces the worker pool owned by the client.
	Executor Executor `validate:"-"`
}

func (c *Config) applyDefaults() {
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "es"
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = defaultReadTimeout
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
}

// Client is a dBUS API client. It is immutable after construction and safe
// for use from multiple goroutines.
type Client struct {
	config     Config
	httpClient *http.Client
	executor   Executor

	// set when the client owns its worker pool
	ownedPool *pool.Pool
}

// NewClient validates the configuration, fills in defaults and returns a
// ready to use Client.
func NewClient(config Config) (*Client, error) {
	config.applyDefaults()

	if err := validator.New().Struct(config); err != nil {
		if !validLanguages[config.DefaultLanguage] {
			return nil, &InvalidLanguageError{Language: config.DefaultLanguage}
		}

		return nil, err
	}

	client := &Client{
		config:     config,
		httpClient: config.HTTPClient,
		executor:   config.Executor,
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{
			Timeout: config.ReadTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: config.ConnectTimeout}).DialContext,
			},
		}
	}

	if client.executor == nil {
		client.ownedPool = pool.New().WithMaxGoroutines(defaultPoolSize)
		client.executor = client.ownedPool
	}

	return client, nil
}

// DefaultLanguage returns the language used when none is supplied per call.
func (c *Client) DefaultLanguage() string {
	return c.config.DefaultLanguage
}

// Close waits for any in-flight asynchronous calls on the client owned
// worker pool. It is a no-op when an Executor was injected.
func (c *Client) Close() {
	if c.ownedPool != nil {
		c.ownedPool.Wait()
	}
}

// languageOrDefault resolves the per-call language, falling back to the
// configured default for an empty value. Invalid codes fail here, before any
// network call happens.
func (c *Client) languageOrDefault(idioma string) (string, error) {
	if idioma == "" {
		idioma = c.config.DefaultLanguage
	}

	if !validLanguages[idioma] {
		return "", &InvalidLanguageError{Language: idioma}
	}

	return idioma, nil
}
