// Package dispatch owns the processing orchestration: it routes each
// incoming trade to its type processor, runs the pipeline on a bounded
// worker pool with a per-trade timeout, and normalizes every outcome
// into a ProcessingResult with dispatcher-measured timing.
package dispatch

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"tradeforge/internal/observability"
	"tradeforge/internal/processor"
	"tradeforge/internal/trade"
)

type task struct {
	tr     trade.Trade
	proc   processor.TradeProcessor
	result chan<- trade.ProcessingResult
}

// Dispatcher executes trade pipelines on a fixed pool of workers.
// At most poolSize pipelines run concurrently; the per-trade timeout
// budget covers both queue wait and pipeline execution. The pool is an
// owned resource: started once at startup, drained at shutdown.
type Dispatcher struct {
	registry *processor.Registry
	tasks    chan task
	quit     chan struct{}
	poolSize int
	timeout  time.Duration
	metrics  *observability.Metrics
	log      zerolog.Logger
	wg       sync.WaitGroup
	inflight sync.WaitGroup
}

func NewDispatcher(
	registry *processor.Registry,
	poolSize int,
	timeout time.Duration,
	metrics *observability.Metrics,
	logger zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		tasks:    make(chan task),
		quit:     make(chan struct{}),
		poolSize: poolSize,
		timeout:  timeout,
		metrics:  metrics,
		log:      logger,
	}
}

// Start launches the worker pool.
func (d *Dispatcher) Start() {
	for i := 0; i < d.poolSize; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	d.log.Info().Int("pool_size", d.poolSize).Dur("timeout", d.timeout).Msg("dispatcher started")
}

// Close drains the pool and returns once in-flight pipelines have
// finished. Callers already inside Process complete normally (or are
// rejected with a typed result if still waiting for a worker); the
// task channel is only closed after the last of them has returned.
// No further Process calls may be made after Close.
func (d *Dispatcher) Close() {
	close(d.quit)
	d.inflight.Wait()
	close(d.tasks)
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for t := range d.tasks {
		// The result channel is buffered; a caller that timed out
		// and walked away never blocks the worker.
		t.result <- t.proc.Process(t.tr)
	}
}

// Process runs one trade's pipeline and always returns a result, never
// an error: routing misses, pipeline failures and timeouts all become
// typed results. On timeout the dispatcher stops waiting but sends no
// cancellation to the in-flight pipeline; it may still finish (and
// book) in the background.
func (d *Dispatcher) Process(tr trade.Trade) trade.ProcessingResult {
	start := time.Now()

	d.inflight.Add(1)
	defer d.inflight.Done()

	d.metrics.MessagesConsumed.Inc()
	d.metrics.ActiveProcessing.Inc()
	defer d.metrics.ActiveProcessing.Dec()

	proc, err := d.registry.Lookup(tr.TradeType())
	if err != nil {
		d.log.Error().Str("trade_id", tr.ID()).Str("trade_type", tr.TradeType().String()).
			Err(err).Msg("routing error")
		d.metrics.RecordProcessing(tr.TradeType(), trade.StatusProcessingFailed, time.Since(start))
		return trade.Failure(tr.ID(), trade.StatusProcessingFailed, err.Error())
	}

	resultCh := make(chan trade.ProcessingResult, 1)
	timer := time.NewTimer(d.timeout)
	defer timer.Stop()

	select {
	case d.tasks <- task{tr: tr, proc: proc, result: resultCh}:
	case <-d.quit:
		// Shutdown began while this trade was still waiting for a
		// worker. Reject it instead of racing the channel close.
		d.log.Error().Str("trade_id", tr.ID()).Str("trade_type", tr.TradeType().String()).
			Msg("dispatcher closed before trade reached a worker")
		d.metrics.RecordProcessing(tr.TradeType(), trade.StatusProcessingFailed, time.Since(start))
		return trade.Failure(tr.ID(), trade.StatusProcessingFailed, "dispatcher shutting down")
	case <-timer.C:
		return d.timedOut(tr)
	}

	select {
	case result := <-resultCh:
		result.ProcessingTimeMs = time.Since(start).Milliseconds()
		d.metrics.RecordProcessing(tr.TradeType(), result.Status, time.Since(start))
		if result.Status == trade.StatusValidationFailed {
			d.metrics.RecordValidationFailure(tr.TradeType())
		}
		return result
	case <-timer.C:
		return d.timedOut(tr)
	}
}

func (d *Dispatcher) timedOut(tr trade.Trade) trade.ProcessingResult {
	d.log.Error().Str("trade_id", tr.ID()).Str("trade_type", tr.TradeType().String()).
		Msg("processing timeout for trade")
	d.metrics.RecordTimeout(tr.TradeType())
	return trade.Timeout(tr.ID())
}
