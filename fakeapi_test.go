package twist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Params url.Values
	Auth   string
}

// fakeAPI records every request and answers with a canned body per path.
type fakeAPI struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]string
}

func newFakeAPI(t *testing.T, opts ...Option) (*fakeAPI, *Client) {
	t.Helper()

	f := &fakeAPI{responses: map[string]string{}}

	server := httptest.NewServer(http.HandlerFunc(f.serveHTTP))
	t.Cleanup(server.Close)

	client := New(server.URL, append([]Option{WithAccessToken("test-token")}, opts...)...)
	require.NoError(t, client.Connect(context.Background()))

	return f, client
}

func (f *fakeAPI) serveHTTP(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	rec := recordedRequest{
		Method: r.Method,
		Path:   strings.TrimPrefix(r.URL.Path, "/"),
		Params: r.URL.Query(),
		Auth:   r.Header.Get("Authorization"),
	}
	if r.Method == http.MethodPost {
		rec.Params = r.PostForm
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	body, ok := f.responses[rec.Path]
	f.mu.Unlock()

	if !ok {
		body = `{"status":"ok"}`
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (f *fakeAPI) respond(path, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.responses[path] = body
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.requests)
}

func (f *fakeAPI) last(t *testing.T) recordedRequest {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.requests, "expected a request to be sent")

	return f.requests[len(f.requests)-1]
}

func ptr[T any](v T) *T {
	return &v
}
