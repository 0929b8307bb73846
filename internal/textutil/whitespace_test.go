package textutil

import "testing"

func TestIsUnicodeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"space", ' ', true},
		{"tab", '\t', true},
		{"newline", '\n', true},
		{"nbsp", ' ', true},
		{"ogham space mark", ' ', true},
		{"ideographic space", '　', true},
		{"letter", 'a', false},
		{"zero width space not in table", '​', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnicodeWhitespace(tt.r); got != tt.want {
				t.Errorf("IsUnicodeWhitespace(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestTrimUnicodeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain spaces", "  hello  ", "hello"},
		{"all whitespace", "   \t\n  ", ""},
		{"empty", "", ""},
		{"nbsp edges", " hello ", "hello"},
		{"no trim needed", "hello", "hello"},
		{"internal whitespace preserved", "  a b  ", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimUnicodeWhitespace(tt.in); got != tt.want {
				t.Errorf("TrimUnicodeWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	cps := Decode("a b")
	if len(cps) != 3 {
		t.Fatalf("Decode() returned %d codepoints, want 3", len(cps))
	}
	if cps[1].Rune != ' ' || cps[1].Len != 2 {
		t.Errorf("Decode()[1] = %+v, want NBSP with length 2", cps[1])
	}
}
