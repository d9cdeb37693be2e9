package pipeline

import "testing"

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "CRLF", input: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "lone CR", input: "a\rb", want: "a\nb"},
		{name: "mixed", input: "a\r\nb\rc\n", want: "a\nb\nc\n"},
		{name: "already LF", input: "a\nb", want: "a\nb"},
		{name: "empty", input: "", want: ""},
		{name: "blank line runs kept", input: "a\r\n\r\n\r\n\r\n\r\nb", want: "a\n\n\n\n\nb"},
		{name: "marks untouched", input: "==x==\r\n", want: "==x==\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeLineEndings(tt.input); got != tt.want {
				t.Errorf("NormalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
