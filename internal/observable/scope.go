package observable

import (
	"sync"

	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/trace"
)

// Scope owns the process-wide hubs. Each hub is created on first access,
// refreshed on app resume and on the platform's own change notification,
// and torn down when the app exits.
type Scope struct {
	fontSrc FontScaleSource
	svcSrc  ServiceSource
	app     host.App
	sink    *trace.Sink

	fontOnce sync.Once
	font     *Hub[FontScaleState]
	svcOnce  sync.Once
	svc      *Hub[bool]

	stops  []func()
	closed bool
}

// NewScope returns a scope reading from the given platform sources. Either
// source may be nil, in which case its observable keeps its default value.
func NewScope(font FontScaleSource, svc ServiceSource, app host.App, sink *trace.Sink) *Scope {
	s := &Scope{fontSrc: font, svcSrc: svc, app: app, sink: sink}
	if app != nil {
		s.stops = append(s.stops, app.OnApp(host.AppExit, s.Close))
	}
	return s
}

// FontScale returns a new consumer handle on the shared font scale.
func (s *Scope) FontScale() *FontScale {
	s.fontOnce.Do(s.initFontScale)
	return &FontScale{proxy: s.font.NewProxy()}
}

// ServiceEnabled returns a new consumer handle on the shared
// service-enabled flag.
func (s *Scope) ServiceEnabled() *ServiceEnabled {
	s.svcOnce.Do(s.initService)
	return &ServiceEnabled{proxy: s.svc.NewProxy()}
}

func (s *Scope) initFontScale() {
	s.font = NewHub(s.readFontScale(), diffFontScale)
	s.sink.Write(trace.FontScale, "font scale initialised", "scale", s.font.Get().Scale)
	if s.closed {
		return
	}
	if s.app != nil {
		s.stops = append(s.stops, s.app.OnApp(host.AppResume, s.RefreshFontScale))
	}
	if s.fontSrc != nil {
		s.stops = append(s.stops, s.fontSrc.WatchFontScale(s.RefreshFontScale))
	}
}

func (s *Scope) initService() {
	s.svc = NewHub(s.readService(), diffService)
	s.sink.Write(trace.Service, "service state initialised", "enabled", s.svc.Get())
	if s.closed {
		return
	}
	if s.app != nil {
		s.stops = append(s.stops, s.app.OnApp(host.AppResume, s.RefreshService))
	}
	if s.svcSrc != nil {
		s.stops = append(s.stops, s.svcSrc.WatchService(s.RefreshService))
	}
}

func (s *Scope) readFontScale() FontScaleState {
	if s.fontSrc == nil {
		return NewFontScaleState(1)
	}
	raw := s.fontSrc.RawFontScale()
	return NewFontScaleState(ClosestFontScale(raw, s.fontSrc.ValidFontScales()))
}

func (s *Scope) readService() bool {
	if s.svcSrc == nil {
		return false
	}
	return s.svcSrc.ServiceEnabled()
}

// RefreshFontScale re-reads the platform scale. It is a no-op before the
// font-scale hub exists or after Close.
func (s *Scope) RefreshFontScale() {
	if s.font == nil || s.closed {
		return
	}
	next := s.readFontScale()
	if s.font.Set(next) {
		s.sink.Write(trace.FontScale, "font scale changed", "scale", next.Scale,
			"extraSmall", next.ExtraSmall, "extraLarge", next.ExtraLarge)
	}
}

// RefreshService re-reads the platform service state. Unchanged values are
// not re-delivered.
func (s *Scope) RefreshService() {
	if s.svc == nil || s.closed {
		return
	}
	next := s.readService()
	if s.svc.Set(next) {
		s.sink.Write(trace.Service, "service state changed", "enabled", next)
	}
}

// Close unregisters every platform and lifecycle listener and detaches all
// consumers.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	stops := s.stops
	s.stops = nil
	for _, stop := range stops {
		stop()
	}
	if s.font != nil {
		s.font.Clear()
	}
	if s.svc != nil {
		s.svc.Clear()
	}
	s.sink.Write(trace.A11y, "observable scope closed", "listeners", len(stops))
}
