package observable

import (
	"runtime"
	"testing"
)

func newTestHub() *Hub[FontScaleState] {
	return NewHub(NewFontScaleState(1), diffFontScale)
}

func TestHub_DistinctUntilChanged(t *testing.T) {
	h := newTestHub()
	p := h.NewProxy()
	var got []Change
	p.On(func(c Change) { got = append(got, c) })

	if h.Set(NewFontScaleState(1)) {
		t.Error("setting an equal state should report false")
	}
	if !h.Set(NewFontScaleState(2)) {
		t.Error("setting a new state should report true")
	}
	if len(got) != 2 {
		t.Fatalf("expected fontScale and isExtraLarge changes, got %+v", got)
	}
	if got[0].Key != KeyFontScale || got[0].Value != 2.0 || got[0].Old != 1.0 {
		t.Errorf("first change = %+v", got[0])
	}
	if got[1].Key != KeyIsExtraLarge || got[1].Value != true {
		t.Errorf("second change = %+v", got[1])
	}
}

func TestHub_ProxiesShareValue(t *testing.T) {
	h := newTestHub()
	a := h.NewProxy()
	b := h.NewProxy()
	h.Set(NewFontScaleState(1.3))
	if a.Get().Scale != 1.3 || b.Get().Scale != 1.3 {
		t.Errorf("proxies disagree: %v, %v", a.Get(), b.Get())
	}
}

func TestHub_CloseStopsDelivery(t *testing.T) {
	h := newTestHub()
	a := h.NewProxy()
	b := h.NewProxy()
	var aCount, bCount int
	a.On(func(Change) { aCount++ })
	b.On(func(Change) { bCount++ })

	a.Close()
	h.Set(NewFontScaleState(1.15))
	if aCount != 0 {
		t.Errorf("closed proxy received %d changes", aCount)
	}
	if bCount != 1 {
		t.Errorf("open proxy received %d changes, want 1", bCount)
	}
	if h.Len() != 1 {
		t.Errorf("Len = %d, want 1", h.Len())
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	h := newTestHub()
	p := h.NewProxy()
	count := 0
	off := p.On(func(Change) { count++ })
	off()
	h.Set(NewFontScaleState(1.15))
	if count != 0 {
		t.Errorf("unsubscribed listener called %d times", count)
	}
}

func TestHub_CollectedProxyIsPruned(t *testing.T) {
	h := newTestHub()
	keep := h.NewProxy()
	func() {
		_ = h.NewProxy()
	}()
	runtime.GC()
	runtime.GC()

	delivered := 0
	keep.On(func(Change) { delivered++ })
	h.Set(NewFontScaleState(0.85))

	if delivered != 1 {
		t.Errorf("surviving proxy got %d changes, want 1", delivered)
	}
	if n := h.Len(); n != 1 {
		t.Errorf("Len = %d after GC, want 1", n)
	}
	runtime.KeepAlive(keep)
}

func TestHub_ListenerCreatesProxy(t *testing.T) {
	h := newTestHub()
	p := h.NewProxy()
	var late *Proxy[FontScaleState]
	p.On(func(Change) {
		if late == nil {
			late = h.NewProxy()
		}
	})
	h.Set(NewFontScaleState(1.15))
	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2", h.Len())
	}
	runtime.KeepAlive(late)
}

func TestHub_Clear(t *testing.T) {
	h := newTestHub()
	p := h.NewProxy()
	count := 0
	p.On(func(Change) { count++ })
	h.Clear()
	h.Set(NewFontScaleState(1.3))
	if count != 0 {
		t.Errorf("cleared hub delivered %d changes", count)
	}
}
