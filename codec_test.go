// Copyright (c) 2026 The bddkit Authors
//
// MIT License

package robdd

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	a := mkTestConjunction(t)
	var buf bytes.Buffer
	if err := a.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !sameShape(a, got) {
		t.Fatalf("Decode(Encode(A)) = %v, want %v", got, a)
	}
}

func TestEncodeDecodeTextRoundTrip(t *testing.T) {
	a := mkSmallTestDiagram(t)
	var buf bytes.Buffer
	if err := a.EncodeText(&buf); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeText(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !sameShape(a, got) {
		t.Fatalf("DecodeText(EncodeText(A)) = %v, want %v", got, a)
	}
}

func TestEncodeDecodeConstants(t *testing.T) {
	for _, d := range []Diagram{MkFalse(3), MkTrue(3)} {
		var buf bytes.Buffer
		if err := d.Encode(&buf); err != nil {
			t.Fatal(err)
		}
		got, err := Decode(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if !sameShape(d, got) {
			t.Fatalf("Decode(Encode(%v)) = %v", d, got)
		}
	}
}

func TestDecodeTruncatedStream(t *testing.T) {
	a := mkTestConjunction(t)
	var buf bytes.Buffer
	if err := a.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	truncated := buf.Bytes()[:buf.Len()-3]
	if _, err := Decode(bytes.NewReader(truncated)); err == nil {
		t.Fatal("expected ErrMalformedInput on truncated stream, got nil")
	}
}

func TestDecodeTextMalformedRecord(t *testing.T) {
	if _, err := DecodeText(bytes.NewReader([]byte("not-a-record\n"))); err == nil {
		t.Fatal("expected ErrMalformedInput, got nil")
	}
}

// DecodeText accepts records separated by any whitespace, not only
// newlines.
func TestDecodeTextWhitespaceSeparated(t *testing.T) {
	got, err := DecodeText(bytes.NewReader([]byte("2|0|0 2|1|1\t0|0|1\n")))
	if err != nil {
		t.Fatal(err)
	}
	want, err := MkVar(2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !sameShape(got, want) {
		t.Fatalf("DecodeText = %v, want %v", got, want)
	}
}

func TestDecodeRejectsIllFormedArrays(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"missing terminal prefix", "0|0|1"},
		{"redundant test", "2|0|0 2|1|1 0|1|1"},
		{"forward pointer", "2|0|0 2|1|1 0|0|3"},
		{"variable out of order", "2|0|0 2|1|1 1|0|1 0|0|2 1|0|2"},
	}
	for _, c := range cases {
		if _, err := DecodeText(bytes.NewReader([]byte(c.text))); err == nil {
			t.Errorf("%s: expected ErrMalformedInput, got nil", c.name)
		}
	}
}
