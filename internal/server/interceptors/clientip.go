package interceptors

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

// TrustedProxies holds the peers whose x-forwarded-for and x-real-ip metadata is believed.
// A nil *TrustedProxies trusts nobody.
type TrustedProxies struct {
	prefixes []netip.Prefix
}

// NewTrustedProxies parses entries as IPs or CIDRs (e.g. "127.0.0.1", "10.0.0.0/8").
func NewTrustedProxies(entries []string) (*TrustedProxies, error) {
	t := &TrustedProxies{}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if strings.Contains(e, "/") {
			p, err := netip.ParsePrefix(e)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", e, err)
			}
			t.prefixes = append(t.prefixes, p.Masked())
			continue
		}
		a, err := netip.ParseAddr(e)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", e, err)
		}
		a = a.Unmap()
		t.prefixes = append(t.prefixes, netip.PrefixFrom(a, a.BitLen()))
	}
	return t, nil
}

// Trusts reports whether ip (a bare address) belongs to a trusted proxy.
func (t *TrustedProxies) Trusts(ip string) bool {
	if t == nil {
		return false
	}
	a, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	a = a.Unmap()
	for _, p := range t.prefixes {
		if p.Contains(a) {
			return true
		}
	}
	return false
}

// Resolve returns the caller's IP. Forwarding metadata (x-forwarded-for, then x-real-ip)
// is used only when the direct peer is trusted; otherwise the peer address, else "unknown".
func (t *TrustedProxies) Resolve(ctx context.Context) string {
	peerIP := peerHost(ctx)
	if peerIP != "" && t.Trusts(peerIP) {
		if ip := forwardedIP(ctx); ip != "" {
			return ip
		}
	}
	if peerIP == "" {
		return "unknown"
	}
	return peerIP
}

// ClientIPUnary resolves the caller IP once per request and stores it with WithClientIP,
// so logging and audit see the same value.
func ClientIPUnary(trusted *TrustedProxies) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		return handler(WithClientIP(ctx, trusted.Resolve(ctx)), req)
	}
}

// ClientIP returns the client IP for audit and logs: the IP set with WithClientIP
// (by ClientIPUnary or the HTTP gateway), else the peer address, else "unknown".
// Forwarding metadata is never read here.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok && ip != "" {
		return ip
	}
	return (*TrustedProxies)(nil).Resolve(ctx)
}

func forwardedIP(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if vals := md.Get("x-forwarded-for"); len(vals) > 0 {
		if s := strings.TrimSpace(vals[0]); s != "" {
			if i := strings.Index(s, ","); i > 0 {
				s = strings.TrimSpace(s[:i])
			}
			return s
		}
	}
	if vals := md.Get("x-real-ip"); len(vals) > 0 {
		return strings.TrimSpace(vals[0])
	}
	return ""
}

func peerHost(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	if host, _, err := net.SplitHostPort(p.Addr.String()); err == nil {
		return host
	}
	return p.Addr.String()
}
