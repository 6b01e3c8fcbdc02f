package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestTextFormatIsSortedAndFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Out: &buf, App: "dash"})

	l.Debug("hidden", nil)
	l.With(map[string]any{"state": "NY"}).Info("chart", map[string]any{"rows": 3})

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %q", out)
	}
	if !strings.HasPrefix(out, "app=dash level=info msg=chart rows=3 state=NY ts=") {
		t.Fatalf("unexpected text line: %q", out)
	}
}

func TestJSONFormatStringifiesErrors(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Out: &buf})

	l.Error("load failed", map[string]any{"err": errors.New("boom")})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	if entry["err"] != "boom" || entry["level"] != "error" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"": Info, "DEBUG": Debug, "warning": Warn, "error": Error, "nope": Info}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
