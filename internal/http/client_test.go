package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "minoise", r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/ok.json":
			w.Write([]byte(`[]`))
		case "/busy.json":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClientWith(srv.Client())

	data, err := client.Get(context.Background(), srv.URL+"/ok.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	tests := []struct {
		path      string
		code      int
		temporary bool
	}{
		{"/missing.json", http.StatusNotFound, false},
		{"/busy.json", http.StatusServiceUnavailable, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := client.Get(context.Background(), srv.URL+tt.path)
			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.code, statusErr.Code)
			assert.Equal(t, tt.temporary, statusErr.Temporary())
		})
	}
}
