package dbus

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL + "/"})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client
}

func TestBuildURL(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://example.com/ws/cons/"})
	require.NoError(t, err)
	defer client.Close()

	t.Run("no parameters means no question mark", func(t *testing.T) {
		assert.Equal(t, "http://example.com/ws/cons/listadoLineas", client.buildURL("listadoLineas", nil))
	})

	t.Run("parameters keep insertion order", func(t *testing.T) {
		requestURL := client.buildURL("tiemposParada", []param{
			{"codParada", "200"},
			{"idioma", "en"},
		})

		assert.Equal(t, "http://example.com/ws/cons/tiemposParada?codParada=200&idioma=en", requestURL)
	})

	t.Run("values are url encoded", func(t *testing.T) {
		requestURL := client.buildURL("tiemposParada", []param{
			{"codParada", "a b&c"},
		})

		assert.Equal(t, "http://example.com/ws/cons/tiemposParada?codParada=a+b%26c", requestURL)
	})
}

func TestGetJSONStatusCodeMapping(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "400 bad request",
			statusCode: 400,
			body:       "parameter missing",
			check: func(t *testing.T, err error) {
				var target *BadRequestError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, 400, target.StatusCode)
				assert.Equal(t, "parameter missing", target.Body)
			},
		},
		{
			name:       "401 unauthorized",
			statusCode: 401,
			body:       "denied",
			check: func(t *testing.T, err error) {
				var target *UnauthorizedError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, 401, target.StatusCode)
				assert.Equal(t, "denied", target.Body)
			},
		},
		{
			name:       "404 not found",
			statusCode: 404,
			body:       "no such stop",
			check: func(t *testing.T, err error) {
				var target *NotFoundError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, 404, target.StatusCode)
				assert.Equal(t, "no such stop", target.Body)
			},
		},
		{
			name:       "500 server error",
			statusCode: 500,
			body:       "boom",
			check: func(t *testing.T, err error) {
				var target *ServerError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, 500, target.StatusCode)
				assert.Equal(t, "boom", target.Body)
			},
		},
		{
			name:       "other statuses fall back to APIError",
			statusCode: 503,
			body:       "maintenance",
			check: func(t *testing.T, err error) {
				var target *APIError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, 503, target.StatusCode)
				assert.Equal(t, "maintenance", target.Body)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.statusCode)
				w.Write([]byte(testCase.body))
			}))

			_, err := client.ListadoLineas()
			require.Error(t, err)
			testCase.check(t, err)
		})
	}
}

func TestGetJSONParseErrors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}))

		_, err := client.ListadoLineas()

		var parseError *ParseError
		require.True(t, errors.As(err, &parseError))
		assert.Equal(t, "{not json", parseError.Body)
		assert.Error(t, parseError.Err)
	})

	t.Run("empty body", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		_, err := client.ListadoLineas()

		var parseError *ParseError
		require.True(t, errors.As(err, &parseError))
		assert.Empty(t, parseError.Body)
	})
}

func TestGetJSONConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL + "/"
	server.Close()

	client, err := NewClient(Config{BaseURL: baseURL})
	require.NoError(t, err)
	defer client.Close()

	_, err = client.ListadoLineas()

	var connectionError *ConnectionError
	require.True(t, errors.As(err, &connectionError))
	assert.Error(t, connectionError.Unwrap())
}

func TestGetJSONSendsAcceptHeader(t *testing.T) {
	var accept string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		w.Write([]byte(`{"estado":"OK"}`))
	}))

	_, err := client.ListadoLineas()
	require.NoError(t, err)
	assert.Equal(t, "application/json", accept)
}
