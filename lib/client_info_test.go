package lib

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	t.Run("prefers the first X-Forwarded-For entry", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

		if got := ClientIP(r); got != "203.0.113.7" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("falls back to RemoteAddr host", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "198.51.100.4:52312"

		if got := ClientIP(r); got != "198.51.100.4" {
			t.Errorf("got %q", got)
		}
	})
}

func TestDeviceType(t *testing.T) {
	cases := []struct {
		name string
		ua   string
		want string
	}{
		{"iPad is a tablet", "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)", "tablet"},
		{"iPhone is mobile", "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) Mobile/15E148", "mobile"},
		{"Android phone is mobile", "Mozilla/5.0 (Linux; Android 13; Pixel 7) Mobile Safari/537.36", "mobile"},
		{"desktop browser", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0", "desktop"},
		{"empty UA defaults to desktop", "", "desktop"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeviceType(tc.ua); got != tc.want {
				t.Errorf("DeviceType(%q) = %q, want %q", tc.ua, got, tc.want)
			}
		})
	}
}
