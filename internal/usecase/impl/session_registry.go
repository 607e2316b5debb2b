package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"go.uber.org/fx"
)

// session is the in-memory state of one storefront visitor.
// lastAccess is guarded by the registry lock; the fields below mu by mu.
type session struct {
	id         string
	lastAccess time.Time

	mu              sync.Mutex
	state           entity.CartState
	restored        bool
	prompt          bool
	promptDismissed bool
	timer           *time.Timer
}

// SessionRegistry owns one cart store per session and serializes the
// transitions of each session. Sessions are created on first access and
// dropped after staying idle; a dropped session's cart is restored from
// storage when it comes back.
type SessionRegistry struct {
	engine      *cart.Engine
	carts       *cartStore
	promptDelay time.Duration
	logger      *slog.Logger
	now         func() time.Time

	mu        sync.Mutex
	sessions  map[string]*session
	closed    bool
	sweepStop chan struct{}
	sweepDone chan struct{}
}

// SessionRegistryParams defines the dependencies for the registry provider.
type SessionRegistryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Engine *cart.Engine
	Store  repository.KeyValueStore
	Logger *slog.Logger
}

// ProvideSessionRegistry builds the registry, sweeps idle sessions while the
// app runs and stops every prompt timer on shutdown.
func ProvideSessionRegistry(params SessionRegistryParams) *SessionRegistry {
	registry := NewSessionRegistry(
		params.Engine,
		params.Store,
		params.Config.Storage.KeyPrefix,
		params.Config.Marketing.NewsletterDelay,
		params.Logger,
	)

	idleTTL := params.Config.Storage.SessionIdleTTL

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			registry.StartSweeper(idleTTL, sweepInterval(idleTTL))

			return nil
		},
		OnStop: func(_ context.Context) error {
			registry.Shutdown()

			return nil
		},
	})

	return registry
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry(
	engine *cart.Engine,
	store repository.KeyValueStore,
	keyPrefix string,
	promptDelay time.Duration,
	logger *slog.Logger,
) *SessionRegistry {
	return &SessionRegistry{
		engine:      engine,
		carts:       newCartStore(store, keyPrefix, logger),
		promptDelay: promptDelay,
		logger:      logger,
		now:         time.Now,
		sessions:    make(map[string]*session),
	}
}

func sweepInterval(idleTTL time.Duration) time.Duration {
	return max(idleTTL/2, time.Second)
}

func (r *SessionRegistry) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// getOrCreate returns the session for id, scheduling its newsletter prompt when new.
func (r *SessionRegistry) getOrCreate(id string) *session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.lastAccess = r.now()

		return s
	}

	s := &session{id: id, lastAccess: r.now()}
	if !r.closed {
		s.timer = time.AfterFunc(r.promptDelay, s.showPrompt)
	}
	r.sessions[id] = s

	return s
}

func (s *session) showPrompt() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.promptDismissed {
		s.prompt = true
	}
}

// withSession runs fn while holding the session lock. The saved cart is
// restored on the first call for a session.
func (r *SessionRegistry) withSession(ctx context.Context, id string, fn func(s *session) error) error {
	if id == "" {
		return domainerrors.ErrSessionRequired
	}

	s := r.getOrCreate(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.restored {
		s.state = r.engine.Apply(r.engine.Empty(), cart.Load{Lines: r.carts.Load(ctx, id)})
		s.restored = true
	}

	return fn(s)
}

// apply runs one transition on a locked session and persists line changes.
// A failed write keeps the in-memory transition.
func (r *SessionRegistry) apply(ctx context.Context, s *session, op cart.Operation) entity.CartState {
	s.state = r.engine.Apply(s.state, op)

	if op.Persisted() {
		if err := r.carts.Save(ctx, s.id, s.state.Lines); err != nil {
			r.log(ctx).Error("Failed to persist cart",
				slog.String("session_id", s.id),
				slog.Any("error", err),
			)
		}
	}

	return s.state
}

// Apply runs op against the session's cart and returns the new state.
func (r *SessionRegistry) Apply(ctx context.Context, id string, op cart.Operation) (entity.CartState, error) {
	var state entity.CartState
	err := r.withSession(ctx, id, func(s *session) error {
		state = r.apply(ctx, s, op)

		return nil
	})

	return state, err
}

// Update lets decide inspect the current cart and pick the next operation
// without another request interleaving. A nil operation leaves the cart unchanged.
func (r *SessionRegistry) Update(
	ctx context.Context,
	id string,
	decide func(state entity.CartState) (cart.Operation, error),
) (entity.CartState, error) {
	var state entity.CartState
	err := r.withSession(ctx, id, func(s *session) error {
		op, err := decide(s.state)
		if err != nil {
			return err
		}

		if op != nil {
			r.apply(ctx, s, op)
		}
		state = s.state

		return nil
	})

	return state, err
}

// Snapshot returns the session's cart and whether the newsletter prompt is showing.
func (r *SessionRegistry) Snapshot(ctx context.Context, id string) (entity.CartState, bool, error) {
	var (
		state  entity.CartState
		prompt bool
	)
	err := r.withSession(ctx, id, func(s *session) error {
		state, prompt = s.state, s.prompt

		return nil
	})

	return state, prompt, err
}

// DismissPrompt hides the prompt and keeps it from showing later in the session.
func (r *SessionRegistry) DismissPrompt(ctx context.Context, id string) error {
	return r.withSession(ctx, id, func(s *session) error {
		s.prompt = false
		s.promptDismissed = true

		return nil
	})
}

// Close stops the session's prompt timer and drops it from memory.
// Unknown sessions are ignored.
func (r *SessionRegistry) Close(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok && s.timer != nil {
		s.timer.Stop()
	}
}

// EvictIdle drops sessions untouched for longer than ttl and stops their
// prompt timers. Sessions with a request in flight are kept.
func (r *SessionRegistry) EvictIdle(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if s.lastAccess.After(cutoff) || !s.mu.TryLock() {
			continue
		}
		if s.timer != nil {
			s.timer.Stop()
		}
		s.mu.Unlock()

		delete(r.sessions, id)
		evicted++
	}

	return evicted
}

// StartSweeper runs EvictIdle every interval until Shutdown.
func (r *SessionRegistry) StartSweeper(ttl, interval time.Duration) {
	r.mu.Lock()
	if r.closed || r.sweepStop != nil {
		r.mu.Unlock()

		return
	}
	stop, done := make(chan struct{}), make(chan struct{})
	r.sweepStop, r.sweepDone = stop, done
	r.mu.Unlock()

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if evicted := r.EvictIdle(ttl); evicted > 0 {
					r.logger.Debug("Evicted idle sessions",
						slog.Int("evicted", evicted),
						slog.Int("remaining", r.Len()),
					)
				}
			}
		}
	}()
}

// Shutdown stops the sweeper and every pending prompt timer.
// Sessions created afterwards get no timer.
func (r *SessionRegistry) Shutdown() {
	r.mu.Lock()
	r.closed = true
	for _, s := range r.sessions {
		if s.timer != nil {
			s.timer.Stop()
		}
	}
	stop, done := r.sweepStop, r.sweepDone
	r.sweepStop, r.sweepDone = nil, nil
	r.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}

// Len returns the number of sessions held in memory.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
