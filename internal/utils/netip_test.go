package utils

import (
	"net/http/httptest"
	"testing"
)

func TestHostNoPort(t *testing.T) {
	tests := map[string]string{
		"10.0.0.1:8080": "10.0.0.1",
		"[::1]:443":     "::1",
		"10.0.0.1":      "10.0.0.1",
		" ::1 ":         "::1",
		"":              "",
	}
	for in, want := range tests {
		if got := HostNoPort(in); got != want {
			t.Errorf("HostNoPort(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "127.0.0.1:5000"
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 127.0.0.1")

	if got := ClientIP(req, false); got != "127.0.0.1" {
		t.Errorf("untrusted ClientIP = %q", got)
	}
	if got := ClientIP(req, true); got != "198.51.100.7" {
		t.Errorf("trusted ClientIP = %q", got)
	}

	req.Header.Set("CF-Connecting-IP", "203.0.113.5")
	if got := ClientIP(req, true); got != "203.0.113.5" {
		t.Errorf("CF-Connecting-IP not preferred, got %q", got)
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 192.168.1.5 ", "not-an-ip", "", "2001:db8::/32"})

	tests := []struct {
		ip   string
		want bool
	}{
		{"10.200.0.1", true},
		{"192.168.1.5", true},
		{"::ffff:192.168.1.5", true},
		{"192.168.1.6", false},
		{"2001:db8::1", true},
		{"garbage", false},
	}
	for _, tt := range tests {
		if got := m.Allow(tt.ip); got != tt.want {
			t.Errorf("Allow(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}
	if NewIPMatcher([]string{"", "nope"}).IsEmpty() != true {
		t.Error("matcher with no valid entries is not empty")
	}
}
