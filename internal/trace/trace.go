// Package trace is the diagnostic sink shared by every accessibility component.
// Output is opt-in: nothing is written unless the sink is enabled and the
// message's category is switched on. Errors need only the master switch.
package trace

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Category groups trace messages so they can be toggled independently.
type Category string

const (
	A11y      Category = "a11y"
	Property  Category = "property"
	Focus     Category = "focus"
	FontScale Category = "fontscale"
	Service   Category = "service"
	Event     Category = "event"
)

// AllCategories lists every known category in display order.
var AllCategories = []Category{A11y, Property, Focus, FontScale, Service, Event}

// LevelTrace sits below slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 1

// Sink writes categorised diagnostics to a slog.Logger.
type Sink struct {
	mu         sync.RWMutex
	enabled    bool
	categories map[Category]bool
	logger     *slog.Logger
}

// New returns a disabled sink with every category switched on, so a single
// SetEnabled(true) turns on full tracing.
func New(logger *slog.Logger) *Sink {
	cats := make(map[Category]bool, len(AllCategories))
	for _, c := range AllCategories {
		cats[c] = true
	}
	return &Sink{categories: cats, logger: logger}
}

// NewText returns a sink writing slog text records to w.
func NewText(w io.Writer) *Sink {
	return New(slog.New(slog.NewTextHandler(w, handlerOptions())))
}

// Discard returns a sink that drops every record.
func Discard() *Sink {
	return NewText(io.Discard)
}

// NewJSON returns a sink writing slog JSON records to w.
func NewJSON(w io.Writer) *Sink {
	return New(slog.New(slog.NewJSONHandler(w, handlerOptions())))
}

func handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: LevelTrace,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
}

var defaultSink atomic.Pointer[Sink]

func init() {
	defaultSink.Store(NewText(os.Stderr))
}

// Default returns the process-wide sink.
func Default() *Sink {
	return defaultSink.Load()
}

// SetDefault replaces the process-wide sink.
func SetDefault(s *Sink) {
	if s != nil {
		defaultSink.Store(s)
	}
}

// SetEnabled flips the master switch.
func (s *Sink) SetEnabled(on bool) {
	s.mu.Lock()
	s.enabled = on
	s.mu.Unlock()
}

// Enabled reports the master switch.
func (s *Sink) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// Enable switches the given categories on.
func (s *Sink) Enable(cats ...Category) {
	s.mu.Lock()
	for _, c := range cats {
		s.categories[c] = true
	}
	s.mu.Unlock()
}

// Disable switches the given categories off.
func (s *Sink) Disable(cats ...Category) {
	s.mu.Lock()
	for _, c := range cats {
		delete(s.categories, c)
	}
	s.mu.Unlock()
}

// Only switches off every category except the given ones.
func (s *Sink) Only(cats ...Category) {
	s.mu.Lock()
	s.categories = make(map[Category]bool, len(cats))
	for _, c := range cats {
		s.categories[c] = true
	}
	s.mu.Unlock()
}

// IsEnabled reports whether a Write for cat would be emitted.
func (s *Sink) IsEnabled(cat Category) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled && s.categories[cat]
}

// Write emits a trace record when cat is enabled.
func (s *Sink) Write(cat Category, msg string, args ...any) {
	if !s.IsEnabled(cat) {
		return
	}
	s.logger.Log(context.Background(), LevelTrace, msg, append([]any{"category", string(cat)}, args...)...)
}

// Error emits an error record when the sink is enabled, regardless of
// category toggles.
func (s *Sink) Error(cat Category, msg string, args ...any) {
	if s == nil || !s.Enabled() {
		return
	}
	s.logger.Log(context.Background(), slog.LevelError, msg, append([]any{"category", string(cat)}, args...)...)
}

// ParseCategory converts a name to a Category.
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range AllCategories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown trace category: %q", name)
}

// ParseCategories parses a comma-separated category list. "all" selects
// every category.
func ParseCategories(list string) ([]Category, error) {
	var cats []Category
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.EqualFold(part, "all") {
			return append([]Category(nil), AllCategories...), nil
		}
		c, err := ParseCategory(part)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, nil
}
