package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/raymondjoseph02/news-today/internal/infra/metrics"
	"github.com/raymondjoseph02/news-today/internal/uistate"
	"github.com/raymondjoseph02/news-today/pkg/logging"
)

// Snapshot is the state the presentation layer binds to.
type Snapshot struct {
	Data      *domain.NewsResult
	IsLoading bool
	// Err is the user-facing message; empty means no error. The controller
	// is the only place errors become display strings.
	Err string
}

// Controller watches the UI state (active tab, search term), debounces rapid
// edits into one request, and publishes {data, isLoading, error} snapshots.
//
// Bursts of changes within the debounce window coalesce into a single fetch.
// A monotonic sequence number guards against stale responses: a result only
// commits if no newer trigger has started since it was issued.
type Controller struct {
	mu       sync.Mutex
	news     *NewsService
	session  *uistate.Session
	debounce time.Duration
	pageSize int

	timer   *time.Timer
	seq     uint64
	snap    Snapshot
	subs    map[int]func(Snapshot)
	nextSub int
	unsubs  []func()
	sampler *logging.ErrorSampler
}

// NewController builds a controller. initial may carry pre-rendered data;
// when nil the controller starts in the loading state.
func NewController(news *NewsService, session *uistate.Session, debounce time.Duration, pageSize int, initial *domain.NewsResult) *Controller {
	return &Controller{
		news:     news,
		session:  session,
		debounce: debounce,
		pageSize: pageSize,
		snap:     Snapshot{Data: initial, IsLoading: initial == nil},
		subs:     make(map[int]func(Snapshot)),
		sampler:  logging.NewErrorSampler(10),
	}
}

// Start subscribes to the UI state and schedules the first fetch.
func (c *Controller) Start() {
	c.unsubs = append(c.unsubs,
		c.session.ActiveTab.Subscribe(func(string) { c.schedule() }),
		c.session.SearchTerm.Subscribe(func(string) { c.schedule() }),
	)
	c.schedule()
}

// Close stops the pending timer and detaches from the UI state. In-flight
// fetches are not aborted; their results are dropped by the stale guard.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.seq++ // invalidate anything in flight
	unsubs := c.unsubs
	c.unsubs = nil
	c.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
}

// Snapshot returns the current published state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Subscribe registers fn to run on every published snapshot and returns an
// unsubscribe function.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Refetch bypasses the debounce delay and the cache read, forcing a fresh
// upstream call. The result still writes through the cache.
func (c *Controller) Refetch() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	metrics.QueryTriggers.WithLabelValues("refetch").Inc()
	c.launch(c.currentQueryLocked(), true)
	c.mu.Unlock()
}

// schedule arms (or re-arms) the debounce timer. Each call supersedes the
// previous pending trigger.
func (c *Controller) schedule() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.trigger)
}

func (c *Controller) trigger() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timer = nil
	metrics.QueryTriggers.WithLabelValues("debounced").Inc()

	query := c.currentQueryLocked()

	// Cache hits publish directly without entering the loading state.
	if result, ok := c.news.Cached(query); ok {
		c.seq++
		c.snap = Snapshot{Data: result}
		c.publishLocked()
		return
	}

	c.launch(query, false)
}

// launch starts a fetch for query under a fresh sequence number. Callers
// must hold c.mu.
func (c *Controller) launch(query domain.NewsQuery, force bool) {
	c.seq++
	seq := c.seq
	c.snap = Snapshot{Data: c.snap.Data, IsLoading: true}
	c.publishLocked()

	go func() {
		var (
			result *domain.NewsResult
			err    error
		)
		if force {
			result, err = c.news.Refresh(context.Background(), query)
		} else {
			result, err = c.news.Get(context.Background(), query)
		}
		c.commit(seq, query, result, err)
	}()
}

// commit publishes a resolved fetch unless a newer trigger has superseded
// it (last-write-wins).
func (c *Controller) commit(seq uint64, query domain.NewsQuery, result *domain.NewsResult, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		metrics.StaleResponsesDropped.Inc()
		slog.Debug("Dropping stale response", "query", query.Key())
		return
	}

	if err != nil {
		if c.sampler.ShouldLog(errorKey(err)) {
			slog.Error("Fetch failed", "query", query.Key(), "error", err)
		}
		c.snap = Snapshot{Data: c.snap.Data, Err: displayError(err)}
	} else {
		c.snap = Snapshot{Data: result}
	}
	c.publishLocked()
}

func (c *Controller) currentQueryLocked() domain.NewsQuery {
	category := domain.MapTabToCategory(c.session.ActiveTab.Get())
	return domain.Normalize(category, c.session.SearchTerm.Get(), c.pageSize)
}

func (c *Controller) publishLocked() {
	snap := c.snap
	for _, fn := range c.subs {
		go fn(snap)
	}
}

// displayError converts the error taxonomy into the user-facing message.
func displayError(err error) string {
	var (
		configErr   *domain.ConfigError
		authErr     *domain.AuthError
		httpErr     *domain.HTTPError
		providerErr *domain.ProviderError
	)
	switch {
	case errors.As(err, &configErr):
		return "News API key missing. Please add NEWS_API_KEY to your .env file"
	case errors.As(err, &authErr):
		return "The news provider rejected the configured API key"
	case errors.As(err, &httpErr):
		return err.Error()
	case errors.As(err, &providerErr):
		return providerErr.Message
	default:
		return "Failed to fetch news"
	}
}

// errorKey buckets errors for log sampling.
func errorKey(err error) string {
	var (
		configErr   *domain.ConfigError
		authErr     *domain.AuthError
		httpErr     *domain.HTTPError
		providerErr *domain.ProviderError
	)
	switch {
	case errors.As(err, &configErr):
		return "config"
	case errors.As(err, &authErr):
		return "auth"
	case errors.As(err, &httpErr):
		return "http"
	case errors.As(err, &providerErr):
		return "provider"
	default:
		return "network"
	}
}
