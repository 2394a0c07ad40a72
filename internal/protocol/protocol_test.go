package protocol

import (
	"testing"

	"github.com/filiphsps/MiNET-protocol-converter/internal/testutil/testlog"
)

func TestMessageIDComparesByValue(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		a, b string
		want bool
	}{
		{"0x01", "1", true},
		{"0x0a", "10", true},
		{" 0xfe ", "254", true},
		{"0x01", "0x02", false},
		{"abc", "abc", true},
		{"abc", "ABC", false},
		{"#5", "5", false},
		{"$5", "5", false},
	}
	for _, tc := range cases {
		got := ParseMessageID(tc.a).Equal(ParseMessageID(tc.b))
		if got != tc.want {
			t.Fatalf("Equal(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMessageIDKeepsRawText(t *testing.T) {
	testlog.Start(t)
	id := ParseMessageID(" 0x8f ")
	if id.String() != "0x8f" {
		t.Fatalf("unexpected raw: %q", id.String())
	}
	v, ok := id.Value()
	if !ok || v != 0x8f {
		t.Fatalf("unexpected value: %d ok=%v", v, ok)
	}
}

func TestNewMessageIDRendersDecimal(t *testing.T) {
	testlog.Start(t)
	id := NewMessageID(2)
	if id.String() != "2" {
		t.Fatalf("unexpected raw: %q", id.String())
	}
	if !id.Equal(ParseMessageID("0x02")) {
		t.Fatalf("expected 2 == 0x02")
	}
}

func TestEmptyMessageIDHasNoValue(t *testing.T) {
	testlog.Start(t)
	if _, ok := ParseMessageID("").Value(); ok {
		t.Fatalf("expected no value for empty id")
	}
}
