package document

import "testing"

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"plain", "hello", "hello"},
		{"empty", "", ""},
		{"leading tab", "\tx", "        x"},
		{"tab after text", "ab\tc", "ab      c"},
		{"tab at stop", "12345678\tx", "12345678        x"},
		{"tab after wide", "日\tx", "日      x"},
		{"escape", "\x1b[2J", "^[[2J"},
		{"nul", "a\x00", "a^@"},
		{"carriage return", "a\r", "a^M"},
		{"del", "\x7f", "^?"},
		{"c1", "a\u0085b", "a?b"},
		{"invalid utf8", "a\xffb", "a?b"},
		{"combining kept", "é\tx", "é       x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Display(tt.line); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
