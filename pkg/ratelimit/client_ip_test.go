package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPResolver_ClientIP(t *testing.T) {
	resolver, err := NewIPResolver([]string{"10.0.0.0/8", "127.0.0.1"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		resolver *IPResolver
		remote   string
		xff      string
		realIP   string
		want     string
	}{
		{"direct client", resolver, "198.51.100.4:5555", "", "", "198.51.100.4"},
		{"untrusted peer forwarding header ignored", resolver, "198.51.100.4:5555", "1.2.3.4", "5.6.7.8", "198.51.100.4"},
		{"nil resolver trusts nobody", nil, "10.0.0.1:5555", "1.2.3.4", "", "10.0.0.1"},
		{"trusted proxy", resolver, "10.0.0.1:5555", "203.0.113.7", "", "203.0.113.7"},
		{"spoofed left hop skipped", resolver, "10.0.0.1:5555", "6.6.6.6, 203.0.113.7, 10.0.0.2", "", "203.0.113.7"},
		{"all hops trusted", resolver, "127.0.0.1:5555", "10.0.0.3, 10.0.0.2", "", "10.0.0.3"},
		{"garbage hop", resolver, "10.0.0.1:5555", "not-an-ip", "", "10.0.0.1"},
		{"real ip from trusted proxy", resolver, "127.0.0.1:5555", "", "172.16.0.2", "172.16.0.2"},
		{"remote without port", resolver, "198.51.100.4", "", "", "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			assert.Equal(t, tt.want, tt.resolver.ClientIP(r))
		})
	}
}

func TestNewIPResolver_Invalid(t *testing.T) {
	_, err := NewIPResolver([]string{"10.0.0.0/33"})
	assert.Error(t, err)

	_, err = NewIPResolver([]string{"proxy.local"})
	assert.Error(t, err)

	r, err := NewIPResolver([]string{" ", "::1"})
	require.NoError(t, err)
	assert.True(t, r.isTrusted("::1"))
}
