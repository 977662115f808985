package sysinfo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPublicIP(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{"json", http.StatusOK, `{"ip":"198.51.100.4"}`, "198.51.100.4", false},
		{"plain text", http.StatusOK, "198.51.100.5\n", "198.51.100.5", false},
		{"ipv6", http.StatusOK, "2001:db8::1", "2001:db8::1", false},
		{"server error", http.StatusBadGateway, `{"ip":"198.51.100.4"}`, "", true},
		{"garbage", http.StatusOK, "<html>hello</html>", "", true},
		{"broken json", http.StatusOK, `{"ip":`, "", true},
		{"empty json", http.StatusOK, `{}`, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			got, err := LookupPublicIP(context.Background(), srv.Client(), srv.URL)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLookupPublicIPHonoursDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := LookupPublicIP(ctx, srv.Client(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestHostSourcePublicIP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept"), "application/json")
		fmt.Fprint(w, `{"ip":"192.0.2.44"}`)
	}))
	defer srv.Close()

	h := NewHostSource(srv.URL)
	got, err := h.PublicIP(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.44", got)
}
