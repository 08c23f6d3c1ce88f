package palette

import (
	"context"
	"sync"
	"time"
)

// Extractor picks a small set of perceptually distinct, salient colors out of a
// Source. The salience ranking and the Lab cache are computed once and reused by
// later calls until Reset.
//
// An Extractor is safe for concurrent use; calls are serialized.
type Extractor struct {
	mu     sync.Mutex
	src    Source
	opts   options
	cache  *LabCache
	ranked []Color
}

// NewExtractor returns an Extractor over src.
func NewExtractor(src Source, optFns ...Option) *Extractor {
	o := newOptions(optFns)
	return &Extractor{
		src:   src,
		opts:  o,
		cache: NewLabCache(o.UseCache, o.MaxCacheSize),
	}
}

// Len returns the number of unique colors in the source.
func (e *Extractor) Len() int {
	return e.src.Len()
}

// Extract returns up to n representative colors, most salient first.
func (e *Extractor) Extract(n int) []Color {
	colors, _ := e.ExtractContext(context.Background(), n)
	return colors
}

// ExtractContext is like Extract but stops ranking at the next batch boundary once
// ctx is done. An interrupted ranking is discarded. With batching disabled the
// ranking always runs to completion.
func (e *Extractor) ExtractContext(ctx context.Context, n int) ([]Color, error) {
	if n <= 0 {
		return []Color{}, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ranked == nil {
		start := time.Now()
		ranked, err := Rank(ctx, e.src, e.cache.Get, e.opts.BatchSize)
		if err != nil {
			return nil, err
		}
		e.ranked = ranked
		e.opts.logger.DebugContext(ctx, "ranked colors",
			"unique", len(ranked),
			"batch", e.opts.BatchSize,
			"duration", time.Since(start),
		)
	}

	flushes := e.cache.Flushes()
	colors := Distinguish(e.ranked, n, MaxDelta(n), e.cache.Get)
	e.opts.logger.DebugContext(ctx, "extracted colors",
		"requested", n,
		"extracted", len(colors),
		"cached", e.cache.Len(),
		"flushes", e.cache.Flushes()-flushes,
	)

	return colors, nil
}

// Reset clears the Lab cache and the ranking; the next extraction starts over.
func (e *Extractor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cache.Reset()
	e.ranked = nil
}
