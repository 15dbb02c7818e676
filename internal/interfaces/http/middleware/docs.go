package middleware

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/owneriq/backend/internal/interfaces/http/dto"
)

// DocsConfig controls who may read the API documentation.
type DocsConfig struct {
	Enabled bool
	// RequireAuth runs the bearer middleware before serving the docs.
	RequireAuth bool
	// AllowedIPs accepts single addresses and CIDR prefixes. Empty admits all.
	AllowedIPs []string
}

// DocsGuard hides the documentation when disabled (404), restricts it to
// the allowed networks (403) and optionally requires authentication.
// Unparseable AllowedIPs entries are ignored.
func DocsGuard(cfg DocsConfig, auth gin.HandlerFunc) gin.HandlerFunc {
	allowed := parsePrefixes(cfg.AllowedIPs)
	restricted := len(cfg.AllowedIPs) > 0

	return func(c *gin.Context) {
		requestID := c.GetString(RequestIDKey)
		if !cfg.Enabled {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeNotFound, "API documentation is not available", requestID))
			return
		}
		if restricted && !addrAllowed(clientAddr(c), allowed) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeForbidden, "Access to API documentation is restricted", requestID))
			return
		}
		if cfg.RequireAuth && auth != nil {
			auth(c)
			if c.IsAborted() {
				return
			}
		}
		c.Next()
	}
}

func parsePrefixes(entries []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			if p, err := netip.ParsePrefix(entry); err == nil {
				prefixes = append(prefixes, p.Masked())
			}
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			addr = addr.Unmap()
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
		}
	}
	return prefixes
}

// clientAddr prefers gin's proxy-aware ClientIP and falls back to the socket
// address.
func clientAddr(c *gin.Context) netip.Addr {
	if addr, err := netip.ParseAddr(c.ClientIP()); err == nil {
		return addr.Unmap()
	}
	if ap, err := netip.ParseAddrPort(c.Request.RemoteAddr); err == nil {
		return ap.Addr().Unmap()
	}
	return netip.Addr{}
}

func addrAllowed(addr netip.Addr, allowed []netip.Prefix) bool {
	if !addr.IsValid() {
		return false
	}
	for _, p := range allowed {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
