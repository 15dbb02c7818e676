package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveDocs(cfg DocsConfig, auth gin.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/swagger/*any", DocsGuard(cfg, auth), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDocsGuard(t *testing.T) {
	rejectAll := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	passAll := func(c *gin.Context) { c.Set(JWTUserIDKey, "user-1") }

	tests := []struct {
		name   string
		cfg    DocsConfig
		auth   gin.HandlerFunc
		remote string
		want   int
	}{
		{"disabled", DocsConfig{}, nil, "127.0.0.1:4000", http.StatusNotFound},
		{"open", DocsConfig{Enabled: true}, nil, "192.168.1.5:4000", http.StatusOK},
		{"single ip allowed", DocsConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1"}}, nil, "127.0.0.1:4000", http.StatusOK},
		{"single ip denied", DocsConfig{Enabled: true, AllowedIPs: []string{"10.0.0.1"}}, nil, "192.168.1.1:4000", http.StatusForbidden},
		{"cidr allowed", DocsConfig{Enabled: true, AllowedIPs: []string{"10.0.0.0/8"}}, nil, "10.50.100.200:4000", http.StatusOK},
		{"cidr denied", DocsConfig{Enabled: true, AllowedIPs: []string{"10.0.0.0/8"}}, nil, "172.16.0.1:4000", http.StatusForbidden},
		{"only garbage entries deny", DocsConfig{Enabled: true, AllowedIPs: []string{"not-an-ip"}}, nil, "127.0.0.1:4000", http.StatusForbidden},
		{"auth rejects", DocsConfig{Enabled: true, RequireAuth: true}, rejectAll, "127.0.0.1:4000", http.StatusUnauthorized},
		{"auth passes", DocsConfig{Enabled: true, RequireAuth: true}, passAll, "127.0.0.1:4000", http.StatusOK},
		{"ip checked before auth", DocsConfig{Enabled: true, RequireAuth: true, AllowedIPs: []string{"127.0.0.1"}}, passAll, "192.168.1.1:4000", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveDocs(tt.cfg, tt.auth, tt.remote)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAddrAllowed(t *testing.T) {
	allowed := parsePrefixes([]string{"192.168.1.1", " 10.0.0.0/8 ", "2001:db8::/32", "bogus/99"})
	assert.Len(t, allowed, 3)

	tests := []struct {
		addr string
		want bool
	}{
		{"192.168.1.1", true},
		{"192.168.1.2", false},
		{"10.255.255.255", true},
		{"11.0.0.1", false},
		{"2001:db8::1", true},
		{"2001:db9::1", false},
		{"::ffff:10.1.2.3", true},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, addrAllowed(netip.MustParseAddr(tt.addr).Unmap(), allowed))
		})
	}

	assert.False(t, addrAllowed(netip.Addr{}, allowed))
}
