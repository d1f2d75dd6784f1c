package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\nc\r\n"))
	if !changed {
		t.Fatalf("expected changed=true")
	}
	if string(out) != "a\nb\nc\n" {
		t.Fatalf("got %q", out)
	}

	out, changed = normalizeCRLF([]byte("a\nb\n"))
	if changed {
		t.Fatalf("expected changed=false for already-LF content")
	}
	if string(out) != "a\nb\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x")...)
	out, had := removeBOM(withBOM)
	if !had || string(out) != "x" {
		t.Fatalf("expected BOM stripped, got %q had=%v", out, had)
	}

	out, had = removeBOM([]byte("x"))
	if had || string(out) != "x" {
		t.Fatalf("expected no BOM, got %q had=%v", out, had)
	}
}

func TestBuildLineIndexAndToLineCol(t *testing.T) {
	content := []byte("abc\ndef\nghi")
	idx := buildLineIndex(content)
	if len(idx) != 2 || idx[0] != 3 || idx[1] != 7 {
		t.Fatalf("unexpected line index: %v", idx)
	}

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{3, LineCol{Line: 1, Col: 4}},
		{4, LineCol{Line: 2, Col: 1}},
		{8, LineCol{Line: 3, Col: 1}},
	}
	for _, c := range cases {
		got := toLineCol(idx, c.off)
		if got != c.want {
			t.Fatalf("toLineCol(%d) = %+v, want %+v", c.off, got, c.want)
		}
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath("a/b/../c"); got != "a/c" {
		t.Fatalf("got %q", got)
	}
}
