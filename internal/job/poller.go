package job

import (
	"context"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// State is the observable phase of a poller.
type State string

const (
	StateIdle     State = "idle"
	StateFetching State = "fetching"
)

// Outcome is the result of the most recent completed cycle.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeApplied  Outcome = "applied"
	OutcomeDegraded Outcome = "degraded"
)

// Refresher runs one poll cycle. Implementations publish their own results;
// an error means the cycle degraded (banner shown, previous data kept).
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Poller drives a Refresher on a fixed ticker. At most one cycle runs at a
// time: a tick that lands while a cycle is still in flight is skipped, not
// queued, so a slow upstream can never pile up work. The fixed period doubles
// as the retry schedule; failed cycles simply wait for the next tick.
type Poller struct {
	name      string
	tracer    trace.Tracer
	refresher Refresher
	interval  time.Duration

	mu       sync.Mutex
	state    State
	outcome  Outcome
	inFlight bool
	cycles   uint64
	skipped  uint64
}

func NewPoller(name string, tracer trace.Tracer, refresher Refresher, intervalSecs int) *Poller {
	return &Poller{
		name:      name,
		tracer:    tracer,
		refresher: refresher,
		interval:  time.Duration(intervalSecs) * time.Second,
		state:     StateIdle,
	}
}

// Start launches the poll loop: one immediate cycle, then one per tick.
// Blocks until ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	log.Printf("%s poller starting (every %s)", p.name, p.interval)

	p.RunOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("%s poller stopped", p.name)
			return
		case <-ticker.C:
			p.RunOnce(ctx)
		}
	}
}

// RunOnce runs a single cycle unless one is already in flight, in which case
// it is skipped.
func (p *Poller) RunOnce(ctx context.Context) {
	if !p.begin() {
		log.Printf("%s poller: previous cycle still running, tick skipped", p.name)
		return
	}
	defer p.end()

	ctx, span := p.tracer.Start(ctx, p.name+"-poller.cycle")
	defer span.End()

	if err := p.refresher.Refresh(ctx); err != nil {
		log.Printf("%s poller cycle degraded: %v", p.name, err)
		p.finish(OutcomeDegraded)
		return
	}
	p.finish(OutcomeApplied)
}

// State returns the current phase.
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// LastOutcome returns the result of the most recent completed cycle.
func (p *Poller) LastOutcome() Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outcome
}

// Cycles returns how many cycles completed; Skipped how many ticks were
// dropped by the in-flight guard.
func (p *Poller) Cycles() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cycles
}

func (p *Poller) Skipped() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.skipped
}

func (p *Poller) begin() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inFlight {
		p.skipped++
		return false
	}
	p.inFlight = true
	p.state = StateFetching
	return true
}

func (p *Poller) finish(outcome Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.outcome = outcome
	p.cycles++
}

func (p *Poller) end() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false
	p.state = StateIdle
}
