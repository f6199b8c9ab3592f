package ios

import (
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/focus"
	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/observable"
	"github.com/mj1618/a11y-bridge/internal/platform"
)

func init() {
	platform.Register(platform.IOS, NewProvider)
}

// NewProvider wires the iOS bridge, focus tracker and observables.
func NewProvider(env platform.Env) (*platform.Provider, error) {
	sys, ok := env.System.(System)
	if !ok {
		return nil, fmt.Errorf("ios: system handle is %T, not ios.System", env.System)
	}
	tracker := focus.NewTracker(env.Views, env.Sink)
	m := a11y.NewManager(New(sys, env.Views, tracker, env.Sink), env.Sink)
	scope := observable.NewScope(FontScaleSource{Sys: sys}, ServiceSource{Sys: sys}, env.App, env.Sink)
	env.App.OnApp(host.AppExit, m.Close)
	return &platform.Provider{
		Kind:    platform.IOS,
		Manager: m,
		Scope:   scope,
		Focus:   tracker,
	}, nil
}
