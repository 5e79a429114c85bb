package media

import "testing"

func TestNormalizeKinopoiskID(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"kinopoisk12345", "12345", true},
		{"sskinopoisk/678", "678", true},
		{"SSKinopoisk/678", "678", true},
		{"KINOPOISK/42", "42", true},
		{"12345", "12345", true},
		{"  301  ", "301", true},
		{"film-435-extra-99", "435", true},
		{"abc", "abc", true},
		{"kinopoisk/abc", "abc", true},
		{"xkinopoisk99", "99", true},
		{"", "", false},
		{"   ", "   ", true},
		{"kinopoisk", "", false},
		{"sskinopoisk/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeKinopoiskID(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NormalizeKinopoiskID(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeOnlyStripsLeadingPrefix(t *testing.T) {
	got, ok := NormalizeKinopoiskID("abckinopoisk")
	if !ok || got != "abckinopoisk" {
		t.Errorf("got (%q, %v), want (\"abckinopoisk\", true)", got, ok)
	}
}

func TestParseContentKind(t *testing.T) {
	tests := []struct {
		input string
		want  ContentKind
	}{
		{"", Movie},
		{"movie", Movie},
		{"series", Series},
		{"Series", Series},
		{" series ", Series},
		{"tv", Movie},
		{"anime", Movie},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseContentKind(tt.input); got != tt.want {
				t.Errorf("ParseContentKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestContentKindPathSegment(t *testing.T) {
	if got := Movie.PathSegment(); got != "film" {
		t.Errorf("Movie.PathSegment() = %q, want film", got)
	}
	if got := Series.PathSegment(); got != "series" {
		t.Errorf("Series.PathSegment() = %q, want series", got)
	}
	if got := Series.String(); got != "series" {
		t.Errorf("Series.String() = %q, want series", got)
	}
}
