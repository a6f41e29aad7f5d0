package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRouter_HelloWorld(t *testing.T) {
	router := NewRouter(OAuthCredentials{ClientID: "a", ClientSecret: "b"}, zaptest.NewLogger(t))

	cases := map[string]struct {
		target  string
		headers map[string]string
	}{
		"plain":        {target: "/"},
		"query":        {target: "/?foo=bar&baz"},
		"accept_json":  {target: "/", headers: map[string]string{"Accept": "application/json"}},
		"custom_agent": {target: "/?x=1", headers: map[string]string{"User-Agent": "test", "X-Foo": "bar"}},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, c.target, nil)
			for k, v := range c.headers {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "Hello, world!", rec.Body.String())
			assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
		})
	}
}

func TestRouter_OtherRoutes(t *testing.T) {
	router := NewRouter(OAuthCredentials{}, nil)

	cases := map[string]struct {
		method string
		target string
		code   int
	}{
		"unknown_path": {method: http.MethodGet, target: "/foo", code: http.StatusNotFound},
		"post_root":    {method: http.MethodPost, target: "/", code: http.StatusMethodNotAllowed},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(c.method, c.target, nil))
			assert.Equal(t, c.code, rec.Code)
		})
	}
}

func TestRouter_Server(t *testing.T) {
	srv := httptest.NewServer(NewRouter(OAuthCredentials{}, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, Greeting, string(body))
}
