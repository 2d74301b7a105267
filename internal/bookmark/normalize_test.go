package bookmark

import "testing"

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare domain gets https",
			in:   "example.com",
			want: "https://example.com",
		},
		{
			name: "https passes through",
			in:   "https://example.com",
			want: "https://example.com",
		},
		{
			name: "http passes through",
			in:   "http://example.com/path",
			want: "http://example.com/path",
		},
		{
			name: "normalizing twice is a no-op",
			in:   NormalizeURL("example.com"),
			want: "https://example.com",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  example.com  ",
			want: "https://example.com",
		},
		{
			name: "empty stays empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.in); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeriveDomain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain host",
			in:   "https://example.com",
			want: "example.com",
		},
		{
			name: "host with path and port",
			in:   "https://docs.example.com:8443/guide",
			want: "docs.example.com",
		},
		{
			name: "unparseable url yields empty",
			in:   "https://exa mple.com",
			want: "",
		},
		{
			name: "empty input yields empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveDomain(tt.in); got != tt.want {
				t.Errorf("DeriveDomain(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
