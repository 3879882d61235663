// Package processor contains the per-variant processing pipelines.
// Every pipeline runs the same fixed stage order (validate, enrich,
// compute, book) and converts any stage failure into a typed
// ProcessingResult instead of propagating an error.
package processor

import (
	"fmt"

	"tradeforge/internal/booking"
	"tradeforge/internal/trade"
)

// TradeProcessor runs the full pipeline for one trade variant.
// Process never returns an error: all failure paths become a result.
type TradeProcessor interface {
	// Supports reports whether this processor claims the given type
	Supports(t trade.Type) bool

	// Process runs validate -> enrich -> compute -> book for one trade
	Process(tr trade.Trade) trade.ProcessingResult
}

// Booker books a mapped trade record inside its own transaction scope.
type Booker interface {
	Book(record *booking.TradeRecord) error
}

// Registry routes a trade type to the processor that claims it.
// Routing is total: construction fails unless every trade type is
// claimed by exactly one processor.
type Registry struct {
	byType map[trade.Type]TradeProcessor
}

func NewRegistry(processors ...TradeProcessor) (*Registry, error) {
	byType := make(map[trade.Type]TradeProcessor, len(trade.AllTypes()))

	for _, t := range trade.AllTypes() {
		for _, p := range processors {
			if !p.Supports(t) {
				continue
			}
			if _, dup := byType[t]; dup {
				return nil, fmt.Errorf("trade type %s claimed by more than one processor", t)
			}
			byType[t] = p
		}
		if _, ok := byType[t]; !ok {
			return nil, fmt.Errorf("no processor registered for trade type %s", t)
		}
	}

	return &Registry{byType: byType}, nil
}

// Lookup returns the processor for a trade type. Only an unknown type
// tag can miss; for a registry that constructed successfully every
// concrete type resolves.
func (r *Registry) Lookup(t trade.Type) (TradeProcessor, error) {
	p, ok := r.byType[t]
	if !ok {
		return nil, fmt.Errorf("no processor found for trade type: %s", t)
	}
	return p, nil
}
