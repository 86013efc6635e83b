package ui

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yildizm/mahoraga/internal/ai"
	"github.com/yildizm/mahoraga/internal/ai/providers"
	"github.com/yildizm/mahoraga/internal/config"
	"github.com/yildizm/mahoraga/internal/logger"
)

// completion is the outcome of one background analysis
type completion struct {
	generation uint64
	requestID  string
	result     *ai.AnalysisResult
	err        error
	elapsed    time.Duration
}

// Dispatcher runs at most one analysis in the background and hands its
// outcome back through a single-slot channel. Start, Cancel and Poll must be
// called from the UI goroutine; the background task only sees its own
// snapshot and the channel.
type Dispatcher struct {
	factory providers.Factory
	log     *logger.Logger

	results chan completion
	quit    chan struct{}
	wg      sync.WaitGroup

	generation uint64
	cancel     context.CancelFunc
	closeOnce  sync.Once
}

// NewDispatcher creates a dispatcher building analyzers with factory
func NewDispatcher(factory providers.Factory, log *logger.Logger) *Dispatcher {
	if factory == nil {
		factory = providers.New
	}
	if log == nil {
		log = logger.New("dispatcher", nil)
	}
	return &Dispatcher{
		factory: factory,
		log:     log,
		results: make(chan completion, 1),
		quit:    make(chan struct{}),
	}
}

// Start launches an analysis of prompt against cfg. Both are copied, so later
// edits to the live prompt or configuration do not reach the request. Any
// earlier request is cancelled and its outcome will be discarded.
func (d *Dispatcher) Start(cfg config.Config, prompt string) uint64 {
	d.Cancel()

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	gen := d.generation
	requestID := uuid.NewString()
	ctx = ai.WithRequestID(ctx, requestID)

	d.log.DebugWithFields("analysis started", []logger.Field{
		logger.F("request_id", requestID),
		logger.F("provider", string(cfg.Provider.Active)),
		logger.F("prompt_chars", len([]rune(prompt))),
	})

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		started := time.Now()

		c := completion{generation: gen, requestID: requestID}
		analyzer, err := d.factory(&cfg)
		if err != nil {
			c.err = err
		} else {
			c.result, c.err = analyzer.Analyze(ctx, prompt)
			if c.err == nil && c.result == nil {
				c.err = errors.New("analysis returned no result")
			}
		}
		c.elapsed = time.Since(started)

		select {
		case d.results <- c:
		case <-d.quit:
		}
	}()

	return gen
}

// Cancel abandons the in-flight request, if any. Its outcome, should it still
// arrive, is dropped by Poll.
func (d *Dispatcher) Cancel() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.generation++
}

// Poll drains at most one outcome without blocking. Outcomes from cancelled
// or superseded requests are discarded and reported as nothing.
func (d *Dispatcher) Poll() (completion, bool) {
	select {
	case c := <-d.results:
		if c.generation != d.generation {
			d.log.DebugWithFields("discarding stale analysis", []logger.Field{
				logger.F("request_id", c.requestID),
			})
			return completion{}, false
		}
		if d.cancel != nil {
			d.cancel()
			d.cancel = nil
		}
		d.logOutcome(c)
		return c, true
	default:
		return completion{}, false
	}
}

func (d *Dispatcher) logOutcome(c completion) {
	fields := []logger.Field{
		logger.F("request_id", c.requestID),
		logger.Duration(c.elapsed),
	}
	if c.err != nil {
		d.log.WarnWithFields("analysis failed", append(fields, logger.F("kind", errorKind(c.err)), logger.Error(c.err)))
		return
	}
	d.log.InfoWithFields("analysis completed", append(fields, logger.F("score", c.result.Score)))
}

// Close cancels any request and waits for the background task to exit
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.Cancel()
		close(d.quit)
	})
	d.wg.Wait()
}

// errorKind classifies a failure for the log
func errorKind(err error) string {
	switch {
	case ai.IsConfigurationError(err):
		return "configuration"
	case ai.IsAuthenticationError(err):
		return "authentication"
	case ai.IsParseError(err):
		return "parse"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "provider"
	}
}
