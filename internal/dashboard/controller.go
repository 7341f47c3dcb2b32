// Package dashboard holds the client-side view of the traffic data: the full
// record set, the selected range and view, and the values derived from them.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	"github.com/aevon-lab/traffic-dashboard/internal/client"
	"github.com/aevon-lab/traffic-dashboard/internal/core/traffic"
)

// ErrIDRequired is returned by Update and Delete for an empty id.
var ErrIDRequired = errors.New("entry id required")

// API is the subset of the traffic API the controller drives.
type API interface {
	List(ctx context.Context) ([]v1.TrafficRecord, error)
	Create(ctx context.Context, in v1.TrafficInput) (*v1.TrafficRecord, error)
	Update(ctx context.Context, id string, in v1.TrafficInput) (*v1.TrafficRecord, error)
	Delete(ctx context.Context, id string) error
}

var _ API = (*client.Client)(nil)

// Controller owns the record set and serialises mutations against the API.
// All methods are safe for concurrent use.
type Controller struct {
	api    API
	logger *slog.Logger

	// mutate admits one Add/Update/Delete at a time.
	mutate sync.Mutex

	// fetchSeq issues request tokens; applied is the newest token whose
	// response was accepted.
	fetchSeq atomic.Uint64

	mu       sync.RWMutex
	applied  uint64
	inFlight int
	records  []v1.TrafficRecord
	view     traffic.View
	rng      traffic.Range
	state    State
	lastErr  *Failure
	onState  func(State)

	// Derived, recomputed on every change of records, view or range.
	filtered      []v1.TrafficRecord
	stats         v1.TrafficStats
	filteredStats v1.TrafficStats
	series        []v1.AggregatedPoint
}

func NewController(api API, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		api:    api,
		logger: logger,
		view:   traffic.ViewDaily,
	}
	c.recompute()
	return c
}

// Fetch loads the full record set. A response that arrives after a newer
// one has been applied is dropped.
func (c *Controller) Fetch(ctx context.Context) error {
	token := c.fetchSeq.Add(1)

	c.mu.Lock()
	c.inFlight++
	c.mu.Unlock()

	records, err := c.api.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight--

	if token <= c.applied {
		c.logger.Debug("[Dashboard] Discarded stale fetch", "token", token, "applied", c.applied)
		return nil
	}
	if err != nil {
		c.lastErr = classify(err)
		c.logger.Warn("[Dashboard] Fetch failed", "error", err)
		return err
	}

	c.applied = token
	c.records = records
	c.lastErr = nil
	c.recompute()
	return nil
}

// Add validates in locally, creates the record and refetches.
func (c *Controller) Add(ctx context.Context, in v1.TrafficInput) (*v1.TrafficRecord, error) {
	c.mutate.Lock()
	defer c.mutate.Unlock()

	if err := c.validate(in, traffic.ModeCreate); err != nil {
		return nil, err
	}

	c.setState(StateSubmitting)
	rec, err := c.api.Create(ctx, in)
	if err != nil {
		return nil, c.reject(ctx, err)
	}

	return rec, c.refetch(ctx)
}

// Update validates in locally, updates record id and refetches.
func (c *Controller) Update(ctx context.Context, id string, in v1.TrafficInput) (*v1.TrafficRecord, error) {
	c.mutate.Lock()
	defer c.mutate.Unlock()

	if id == "" {
		c.fail(&Failure{Kind: KindValidation, Message: "Entry ID required"})
		return nil, ErrIDRequired
	}
	if err := c.validate(in, traffic.ModeUpdate); err != nil {
		return nil, err
	}

	c.setState(StateSubmitting)
	rec, err := c.api.Update(ctx, id, in)
	if err != nil {
		return nil, c.reject(ctx, err)
	}

	return rec, c.refetch(ctx)
}

// Delete removes record id and refetches.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.mutate.Lock()
	defer c.mutate.Unlock()

	if id == "" {
		c.fail(&Failure{Kind: KindValidation, Message: "Entry ID required"})
		return ErrIDRequired
	}

	c.setState(StateSubmitting)
	if err := c.api.Delete(ctx, id); err != nil {
		return c.reject(ctx, err)
	}

	return c.refetch(ctx)
}

// SetRange changes the date range. Unparsable bounds leave the range unchanged.
func (c *Controller) SetRange(from, to string) error {
	rng := traffic.Range{From: from, To: to}
	if err := rng.Check(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.rng = rng
	c.recompute()
	return nil
}

// SetView changes the series granularity.
func (c *Controller) SetView(view string) error {
	v, err := traffic.ParseView(view)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = v
	c.recompute()
	return nil
}

// OnStateChange registers fn to be called after every mutation state
// transition. fn runs without the controller lock held and replaces any
// previously registered listener. A nil fn removes it.
func (c *Controller) OnStateChange(fn func(State)) {
	c.mu.Lock()
	c.onState = fn
	c.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		Records:       append([]v1.TrafficRecord(nil), c.records...),
		Filtered:      append([]v1.TrafficRecord(nil), c.filtered...),
		Stats:         c.stats,
		FilteredStats: c.filteredStats,
		Series:        append([]v1.AggregatedPoint(nil), c.series...),
		View:          c.view,
		Range:         c.rng,
		State:         c.state,
		Loading:       c.inFlight > 0,
	}
	if c.lastErr != nil {
		f := *c.lastErr
		snap.Err = &f
	}
	return snap
}

func (c *Controller) validate(in v1.TrafficInput, mode traffic.Mode) error {
	c.setState(StateValidating)
	if err := traffic.Validate(in, mode); err != nil {
		c.fail(classify(err))
		return err
	}
	return nil
}

// reject records a server rejection. The record set is left as it was,
// except that a missing record means the local copy is stale.
func (c *Controller) reject(ctx context.Context, err error) error {
	c.fail(classify(err))
	c.logger.Warn("[Dashboard] Mutation rejected", "error", err)

	if errors.Is(err, client.ErrNotFound) {
		if ferr := c.Fetch(ctx); ferr != nil {
			c.logger.Warn("[Dashboard] Refetch after not found failed", "error", ferr)
		}
		// Fetch clears the error on success; the rejection is what the user needs to see.
		c.mu.Lock()
		c.lastErr = classify(err)
		c.mu.Unlock()
	}
	return err
}

func (c *Controller) refetch(ctx context.Context) error {
	c.mu.Lock()
	c.lastErr = nil
	c.mu.Unlock()

	c.setState(StateRefetching)
	defer c.setState(StateIdle)
	return c.Fetch(ctx)
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	fn := c.onState
	c.mu.Unlock()

	if fn != nil {
		fn(s)
	}
}

func (c *Controller) fail(f *Failure) {
	c.mu.Lock()
	c.state = StateIdle
	c.lastErr = f
	fn := c.onState
	c.mu.Unlock()

	if fn != nil {
		fn(StateIdle)
	}
}

// recompute must be called with mu held.
func (c *Controller) recompute() {
	filtered, err := c.rng.Filter(c.records)
	if err != nil {
		// SetRange only stores ranges that passed Check.
		filtered = c.records
	}
	series, err := traffic.AggregateByPeriod(filtered, c.view)
	if err != nil {
		series = nil
	}

	c.filtered = filtered
	c.stats = traffic.ComputeStats(c.records)
	c.filteredStats = traffic.ComputeStats(filtered)
	c.series = series
}
