// Package worker provides a worker pool for parsing independent records in
// parallel. Each record is parsed by its own parser instance, so workers
// share no mutable state.
package worker

import (
	"sync"

	"github.com/pmoulton/workbook-parse-go/internal/config"
	"github.com/pmoulton/workbook-parse-go/internal/parser"
	"github.com/pmoulton/workbook-parse-go/internal/tree"
)

// WorkItem is one record to be parsed.
type WorkItem struct {
	Text  string
	Index int // Original index for ordering results
}

// Result is the outcome of parsing one record. A record-level parse error
// is carried here rather than aborting the whole batch.
type Result struct {
	Tree  *tree.Tree
	Index int
	Err   error
}

// Pool manages a set of workers parsing records concurrently.
type Pool struct {
	numWorkers int
	bufferSize int
	cfg        *config.Config
	workChan   chan WorkItem
	resultChan chan Result
	wg         sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. Defaults: 1 worker, buffer size of 10.
// If cfg is nil, a default config is created.
func NewPool(cfg *config.Config, opts ...PoolOption) *Pool {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker parses items until the work channel is closed, building a fresh
// parser per record.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		t, err := parser.NewParser(p.cfg).Parse(item.Text)
		p.resultChan <- Result{Tree: t, Index: item.Index, Err: err}
	}
}

// Submit submits a record for parsing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Close closes the work channel, waits for the workers to finish, and then
// closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading parsed records.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ParseArchive splits archive text into records and parses them in parallel
// with the given number of workers, returning results in record order.
func ParseArchive(text string, cfg *config.Config, workers int) []Result {
	records := parser.SplitRecords(text)
	if len(records) == 0 {
		return nil
	}

	pool := NewPool(cfg, WithWorkers(workers), WithBufferSize(len(records)))
	pool.Start()

	go func() {
		for i, record := range records {
			pool.Submit(WorkItem{Text: record, Index: i})
		}
		pool.Close()
	}()

	results := make([]Result, len(records))
	for res := range pool.Results() {
		results[res.Index] = res
	}
	return results
}
