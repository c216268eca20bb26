package ratelimit

import (
	"sync"
	"time"
)

const (
	DefaultLimit      = 100
	DefaultWindow     = 60 * time.Second
	DefaultMaxCallers = 10000
)

// Limiter aplica una ventana deslizante de timestamps por caller.
// Cada Allow poda los timestamps fuera de la ventana, compara contra el
// límite y recién entonces registra el request actual.
//
// El estado vive solo en memoria: arranca vacío y no sobrevive reinicios.
// Se construye explícitamente y se inyecta en el router (nada de globals).
type Limiter struct {
	mu         sync.Mutex
	limit      int
	window     time.Duration
	maxCallers int
	callers    map[string][]time.Time
	now        func() time.Time
}

func New(limit int, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		limit:      limit,
		window:     window,
		maxCallers: DefaultMaxCallers,
		callers:    make(map[string][]time.Time),
		now:        time.Now,
	}
}

// Allow decide si el caller puede hacer un request más dentro de la ventana.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := prune(l.callers[key], cutoff)

	if len(recent) >= l.limit {
		l.callers[key] = recent
		return false
	}

	// Caller nuevo con la tabla llena: liberar espacio antes de trackearlo.
	if _, tracked := l.callers[key]; !tracked && len(l.callers) >= l.maxCallers {
		l.evict(cutoff)
	}

	l.callers[key] = append(recent, now)
	return true
}

// Tracked devuelve cuántos callers hay en memoria (para tests/diagnóstico).
func (l *Limiter) Tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.callers)
}

// evict barre callers sin actividad dentro de la ventana.
// Si ninguno venció todavía, saca el más viejo por último request visto,
// así la tabla queda acotada a maxCallers.
func (l *Limiter) evict(cutoff time.Time) {
	var (
		stalest     string
		stalestSeen time.Time
		found       bool
	)

	for k, ts := range l.callers {
		last := ts[len(ts)-1]
		if !last.After(cutoff) {
			delete(l.callers, k)
			continue
		}
		if !found || last.Before(stalestSeen) {
			stalest, stalestSeen, found = k, last, true
		}
	}

	if len(l.callers) >= l.maxCallers && found {
		delete(l.callers, stalest)
	}
}

func prune(ts []time.Time, cutoff time.Time) []time.Time {
	out := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			out = append(out, t)
		}
	}
	return out
}
