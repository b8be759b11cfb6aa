package httpclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yospace/cmd/api/httpclient"
	"yospace/cmd/api/trace"
)

func TestBaseClient_NewRequest(t *testing.T) {
	c := httpclient.NewBaseClient("https://music.example/base")

	req, err := c.NewRequest(context.Background(), http.MethodGet, "/playlist/track/all", url.Values{"id": {"42"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://music.example/base/playlist/track/all?id=42", req.URL.String())

	_, err = c.NewRequest(context.Background(), http.MethodGet, "/x?id=1", nil, nil)
	assert.Error(t, err)
}

func TestTransport_PropagatesTraceHeaders(t *testing.T) {
	var gotRequestID, gotSpanID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		gotSpanID = r.Header.Get("X-Span-Id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := httpclient.NewBaseClientWithClient(httpclient.New(httpclient.Config{}), srv.URL)
	ctx := trace.WithRequestID(context.Background(), "req-1")

	for _, wantSpan := range []string{"1", "2"} {
		req, err := c.NewRequest(ctx, http.MethodGet, "/ping", nil, nil)
		require.NoError(t, err)
		resp, err := c.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "req-1", gotRequestID)
		assert.Equal(t, wantSpan, gotSpanID)
	}
}
