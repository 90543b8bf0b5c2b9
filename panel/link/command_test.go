package link

import (
	"errors"
	"testing"
)

func TestEncodeCommand(t *testing.T) {
	for _, a := range Actions {
		got := string(EncodeCommand(a))
		want := `{"action":"` + a + `"}`
		if got != want {
			t.Fatalf("EncodeCommand(%q) = %s, want %s", a, got, want)
		}
	}
}

func TestDecodeCommand(t *testing.T) {
	for _, a := range Actions {
		c, err := DecodeCommand(append(EncodeCommand(a), '\r', '\n'))
		if err != nil || c.Action != a {
			t.Fatalf("DecodeCommand(%q) = %+v, %v", a, c, err)
		}
	}

	tests := []struct {
		line string
		want error
	}{
		{line: "# touch x=1", want: ErrNotObject},
		{line: `{"action":`, want: ErrMalformed},
		{line: `{"action":"rm -rf"}`, want: ErrUnknownAction},
		{line: `{}`, want: ErrUnknownAction},
	}
	for _, tt := range tests {
		if _, err := DecodeCommand([]byte(tt.line)); !errors.Is(err, tt.want) {
			t.Fatalf("DecodeCommand(%q) err = %v, want %v", tt.line, err, tt.want)
		}
	}
}
