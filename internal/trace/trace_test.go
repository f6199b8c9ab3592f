package trace

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrite_DisabledByDefault(t *testing.T) {
	var buf bytes.Buffer
	s := NewText(&buf)
	s.Write(Focus, "focus moved")
	if buf.Len() != 0 {
		t.Errorf("disabled sink wrote output: %q", buf.String())
	}
}

func TestWrite_CategoryToggle(t *testing.T) {
	var buf bytes.Buffer
	s := NewText(&buf)
	s.SetEnabled(true)
	s.Disable(Focus)

	s.Write(Focus, "focus moved")
	if buf.Len() != 0 {
		t.Fatalf("disabled category wrote output: %q", buf.String())
	}

	s.Write(FontScale, "scale changed", "scale", 1.15)
	out := buf.String()
	if !strings.Contains(out, "scale changed") || !strings.Contains(out, "category=fontscale") {
		t.Errorf("missing trace record, got %q", out)
	}
	if !strings.Contains(out, "level=TRACE") {
		t.Errorf("expected TRACE level name, got %q", out)
	}
}

func TestErrorIgnoresCategories(t *testing.T) {
	var buf bytes.Buffer
	s := NewText(&buf)
	s.SetEnabled(true)
	s.Only()
	s.Error(Property, "native call failed")
	if !strings.Contains(buf.String(), "native call failed") {
		t.Errorf("error record missing, got %q", buf.String())
	}
}

func TestErrorSilentWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	s := NewText(&buf)
	s.Only()
	s.Error(A11y, "native call failed")
	if buf.Len() != 0 {
		t.Errorf("disabled sink wrote %q", buf.String())
	}
}

func TestOnly(t *testing.T) {
	s := NewText(&bytes.Buffer{})
	s.SetEnabled(true)
	s.Only(Service)
	if !s.IsEnabled(Service) {
		t.Error("service should be enabled")
	}
	if s.IsEnabled(A11y) {
		t.Error("a11y should be disabled")
	}
}

func TestNilSink(t *testing.T) {
	var s *Sink
	if s.IsEnabled(A11y) {
		t.Error("nil sink reported enabled")
	}
	s.Write(A11y, "ignored")
	s.Error(A11y, "ignored")
}

func TestParseCategories(t *testing.T) {
	cats, err := ParseCategories("focus, FontScale")
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 2 || cats[0] != Focus || cats[1] != FontScale {
		t.Errorf("got %v", cats)
	}

	all, err := ParseCategories("all")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(AllCategories) {
		t.Errorf("all: got %d categories, want %d", len(all), len(AllCategories))
	}

	if _, err := ParseCategories("focus,bogus"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestConfig_NewSink(t *testing.T) {
	cfg, err := ParseConfig([]byte("enabled: true\nformat: json\ncategories: [service]\n"))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	s, err := cfg.NewSink(&buf)
	if err != nil {
		t.Fatal(err)
	}
	s.Write(Focus, "hidden")
	s.Write(Service, "visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("focus category should be off, got %q", out)
	}
	if !strings.Contains(out, `"msg":"visible"`) {
		t.Errorf("expected JSON record, got %q", out)
	}
}

func TestConfig_BadFormat(t *testing.T) {
	cfg := Config{Format: "xml"}
	if _, err := cfg.NewSink(&bytes.Buffer{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
