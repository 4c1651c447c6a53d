package dbus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, "es", client.DefaultLanguage())
	assert.Equal(t, DefaultBaseURL, client.config.BaseURL)
	assert.Equal(t, 5*time.Second, client.config.ConnectTimeout)
	assert.Equal(t, 10*time.Second, client.config.ReadTimeout)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.executor)
}

func TestNewClientInvalidDefaultLanguage(t *testing.T) {
	_, err := NewClient(Config{DefaultLanguage: "de"})
	require.Error(t, err)

	var languageError *InvalidLanguageError
	require.True(t, errors.As(err, &languageError))
	assert.Equal(t, "de", languageError.Language)
}

func TestLanguageOrDefault(t *testing.T) {
	client, err := NewClient(Config{DefaultLanguage: "en"})
	require.NoError(t, err)
	defer client.Close()

	testCases := []struct {
		name     string
		idioma   string
		expected string
		invalid  bool
	}{
		{name: "empty uses default", idioma: "", expected: "en"},
		{name: "explicit valid", idioma: "eu", expected: "eu"},
		{name: "explicit default", idioma: "es", expected: "es"},
		{name: "french", idioma: "fr", expected: "fr"},
		{name: "unsupported", idioma: "de", invalid: true},
		{name: "uppercase is not accepted", idioma: "ES", invalid: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resolved, err := client.languageOrDefault(testCase.idioma)

			if testCase.invalid {
				var languageError *InvalidLanguageError
				require.True(t, errors.As(err, &languageError))
				assert.Equal(t, testCase.idioma, languageError.Language)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.expected, resolved)
			}
		})
	}
}

func TestClientUsesInjectedHTTPClientAndExecutor(t *testing.T) {
	executor := &inlineExecutor{}
	client, err := NewClient(Config{
		Executor: executor,
	})
	require.NoError(t, err)

	assert.Nil(t, client.ownedPool)
	assert.Same(t, executor, client.executor.(*inlineExecutor))
}

// inlineExecutor runs tasks on the calling goroutine, recording how many it saw.
type inlineExecutor struct {
	tasks int
}

func (e *inlineExecutor) Go(f func()) {
	e.tasks++
	f()
}
