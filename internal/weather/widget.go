package weather

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/i474232898/weather-widget/internal/common"
)

// DefaultCity is looked up when a widget is first mounted.
const DefaultCity = "London"

// Widget is the lookup controller for one user. It owns a single State and
// is safe for concurrent use; when lookups overlap, only the most recently
// issued one is allowed to commit its result.
type Widget struct {
	provider    Provider
	defaultCity string
	l           *zap.Logger

	mu      sync.Mutex
	state   State
	latest  uint64
	mounted bool
}

// NewWidget creates a Widget in PhaseIdle. An empty defaultCity means DefaultCity.
func NewWidget(provider Provider, defaultCity string, l *zap.Logger) *Widget {
	if strings.TrimSpace(defaultCity) == "" {
		defaultCity = DefaultCity
	}
	if l == nil {
		l = zap.NewNop()
	}
	return &Widget{
		provider:    provider,
		defaultCity: defaultCity,
		l:           l,
	}
}

// State returns a copy of the current state.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Mount performs the initial lookup for the default city. Only the first
// call looks anything up, and none does once a lookup has been issued.
func (w *Widget) Mount(ctx context.Context) State {
	w.mu.Lock()
	if w.mounted {
		s := w.state
		w.mu.Unlock()
		return s
	}
	w.mounted = true
	w.mu.Unlock()

	return w.Lookup(ctx, w.defaultCity)
}

// Lookup fetches current weather for city and returns the resulting state.
// Failures never escape: they become PhaseError with a user-facing message
// and leave the previous snapshot in place.
func (w *Widget) Lookup(ctx context.Context, city string) State {
	city = common.NormalizeCity(city)

	w.mu.Lock()
	w.mounted = true
	if city == "" {
		w.l.Debug("weather lookup rejected", zap.Error(ErrEmptyInput))
		w.state = Reduce(w.state, InputRejected{})
		s := w.state
		w.mu.Unlock()
		return s
	}
	w.latest++
	token := w.latest
	w.state = Reduce(w.state, LookupStarted{City: city})
	w.mu.Unlock()

	snap, err := w.provider.Current(ctx, city)

	w.mu.Lock()
	defer w.mu.Unlock()

	if token != w.latest {
		w.l.Debug("discarding stale lookup result",
			zap.String("city", city),
			zap.Uint64("token", token),
			zap.Uint64("latest", w.latest),
		)
		return w.state
	}

	if err != nil {
		w.l.Warn("weather lookup failed",
			zap.String("provider", w.provider.Name()),
			zap.String("city", city),
			zap.String("kind", string(FailureKindOf(err))),
			zap.Error(err),
		)
		w.state = Reduce(w.state, LookupFailed{Err: err})
		return w.state
	}

	w.l.Info("weather lookup succeeded",
		zap.String("provider", w.provider.Name()),
		zap.String("city", city),
		zap.String("location", snap.Location),
		zap.String("condition", string(snap.Condition)),
	)
	w.state = Reduce(w.state, LookupSucceeded{Snapshot: snap})
	return w.state
}
