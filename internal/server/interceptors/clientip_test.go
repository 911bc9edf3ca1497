package interceptors

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

func peerCtx(ip string, pairs ...string) context.Context {
	ctx := peer.NewContext(context.Background(), &peer.Peer{
		Addr: &net.TCPAddr{IP: net.ParseIP(ip), Port: 5555},
	})
	if len(pairs) > 0 {
		ctx = metadata.NewIncomingContext(ctx, metadata.Pairs(pairs...))
	}
	return ctx
}

func mustTrusted(t *testing.T, entries ...string) *TrustedProxies {
	t.Helper()
	tp, err := NewTrustedProxies(entries)
	if err != nil {
		t.Fatalf("NewTrustedProxies(%v): %v", entries, err)
	}
	return tp
}

func TestTrustedProxies_Resolve(t *testing.T) {
	trusted := mustTrusted(t, "127.0.0.1", "10.0.0.0/8")
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"trusted peer x-forwarded-for", peerCtx("127.0.0.1", "x-forwarded-for", "192.168.1.1"), "192.168.1.1"},
		{"trusted peer comma list", peerCtx("10.1.2.3", "x-forwarded-for", "192.168.1.1, 10.0.0.1"), "192.168.1.1"},
		{"trusted peer whitespace", peerCtx("127.0.0.1", "x-forwarded-for", "  192.168.1.1  "), "192.168.1.1"},
		{"trusted peer x-real-ip", peerCtx("127.0.0.1", "x-real-ip", "10.0.0.2"), "10.0.0.2"},
		{"trusted peer precedence", peerCtx("127.0.0.1", "x-forwarded-for", "192.168.1.1", "x-real-ip", "10.0.0.2"), "192.168.1.1"},
		{"trusted peer without metadata", peerCtx("127.0.0.1"), "127.0.0.1"},
		{"untrusted peer x-forwarded-for", peerCtx("172.16.0.5", "x-forwarded-for", "192.168.1.1"), "172.16.0.5"},
		{"untrusted peer x-real-ip", peerCtx("172.16.0.5", "x-real-ip", "10.0.0.2"), "172.16.0.5"},
		{"no peer", metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-forwarded-for", "192.168.1.1")), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trusted.Resolve(tt.ctx); got != tt.want {
				t.Errorf("Resolve = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrustedProxies_NilTrustsNobody(t *testing.T) {
	var tp *TrustedProxies
	if tp.Trusts("127.0.0.1") {
		t.Error("nil TrustedProxies trusts 127.0.0.1")
	}
	ctx := peerCtx("127.0.0.1", "x-forwarded-for", "192.168.1.1")
	if ip := tp.Resolve(ctx); ip != "127.0.0.1" {
		t.Errorf("Resolve = %q, want %q", ip, "127.0.0.1")
	}
}

func TestTrustedProxies_Trusts(t *testing.T) {
	tp := mustTrusted(t, "::1", "192.168.0.0/16", " ")
	tests := []struct {
		ip   string
		want bool
	}{
		{"::1", true},
		{"192.168.44.3", true},
		{"::ffff:192.168.1.1", true},
		{"127.0.0.1", false},
		{"bufconn", false},
	}
	for _, tt := range tests {
		if got := tp.Trusts(tt.ip); got != tt.want {
			t.Errorf("Trusts(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}
}

func TestNewTrustedProxies_Invalid(t *testing.T) {
	for _, e := range []string{"not-an-ip", "10.0.0.0/99"} {
		if _, err := NewTrustedProxies([]string{e}); err == nil {
			t.Errorf("NewTrustedProxies(%q) should fail", e)
		}
	}
}

func TestClientIP_IgnoresForwardingMetadata(t *testing.T) {
	ctx := peerCtx("172.16.0.5", "x-forwarded-for", "192.168.1.1", "x-real-ip", "10.0.0.2")
	if ip := ClientIP(ctx); ip != "172.16.0.5" {
		t.Errorf("ClientIP = %q, want %q", ip, "172.16.0.5")
	}
}

func TestClientIP_WithClientIPWins(t *testing.T) {
	ctx := WithClientIP(peerCtx("172.16.0.5"), "203.0.113.9")
	if ip := ClientIP(ctx); ip != "203.0.113.9" {
		t.Errorf("ClientIP = %q, want %q", ip, "203.0.113.9")
	}
}

func TestClientIP_Unknown(t *testing.T) {
	if ip := ClientIP(context.Background()); ip != "unknown" {
		t.Errorf("ClientIP = %q, want %q", ip, "unknown")
	}
}

func TestClientIPUnary(t *testing.T) {
	tests := []struct {
		name    string
		trusted *TrustedProxies
		want    string
	}{
		{"behind trusted proxy", mustTrusted(t, "127.0.0.1"), "198.51.100.7"},
		{"no trusted proxies", nil, "127.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := peerCtx("127.0.0.1", "x-forwarded-for", "198.51.100.7")
			var got string
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				got = ClientIP(ctx)
				return nil, nil
			}
			info := &grpc.UnaryServerInfo{FullMethod: "/collective.ledger.v1.LedgerService/Vote"}
			if _, err := ClientIPUnary(tt.trusted)(ctx, nil, info, handler); err != nil {
				t.Fatalf("ClientIPUnary: %v", err)
			}
			if got != tt.want {
				t.Errorf("ClientIP in handler = %q, want %q", got, tt.want)
			}
		})
	}
}
