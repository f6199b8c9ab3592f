package platform

import (
	"errors"
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/focus"
	"github.com/mj1618/a11y-bridge/internal/observable"
)

// Provider bundles everything one platform contributes.
type Provider struct {
	Kind    Kind
	Manager *a11y.Manager
	Scope   *observable.Scope
	Focus   *focus.Tracker
}

// Close releases the bridge and the observable scope.
func (p *Provider) Close() {
	p.Manager.Close()
	p.Scope.Close()
}

// ErrUnsupported is returned for a platform with no registered bridge.
var ErrUnsupported = errors.New("platform not supported")

// NewProviderFuncs is filled by the platform packages via init().
// See internal/platform/android/init.go and internal/platform/ios/init.go.
var NewProviderFuncs = map[Kind]func(Env) (*Provider, error){}

// Register installs the constructor for a platform.
func Register(k Kind, fn func(Env) (*Provider, error)) {
	NewProviderFuncs[k] = fn
}

// NewProvider builds the Provider for k.
func NewProvider(k Kind, env Env) (*Provider, error) {
	fn, ok := NewProviderFuncs[k]
	if !ok || fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, k)
	}
	return fn(env)
}
