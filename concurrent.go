package xmlscan

// ScanResult pairs an input's index with the error its scan stopped on, if
// any. A nil Err means the document reached EOF cleanly or was consumed
// only as far as a client-supplied limit allowed.
type ScanResult struct {
	Index int
	Err   error
}

// ScanAll scans many independent documents concurrently, one Scanner and
// one StrBuf per worker goroutine (the engine itself stays single-threaded
// per document; see §5). scanOne is called once per input index and must
// drive its own Scanner/StrBuf pair to completion, the same way a caller
// would drive a single document by hand.
//
// The worker count is sized off logical core count, generalizing the
// teacher's NumServe()-style worker-count helper (cache.go, merge.go) into
// an adaptive default; pass opts to override it.
func ScanAll(n int, scanOne func(index int) error, opts ...ScanAllOption) []ScanResult {
	cfg := scanAllConfig{workers: recommendedWorkerCount(), chanDepth: recommendedChanDepth()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers > n {
		cfg.workers = n
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	indices := make(chan int, cfg.chanDepth)
	results := make([]ScanResult, n)

	done := make(chan struct{}, cfg.workers)
	for w := 0; w < cfg.workers; w++ {
		go func() {
			for i := range indices {
				results[i] = ScanResult{Index: i, Err: scanOne(i)}
			}
			done <- struct{}{}
		}()
	}

	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)

	for w := 0; w < cfg.workers; w++ {
		<-done
	}
	return results
}

type scanAllConfig struct {
	workers   int
	chanDepth int
}

// ScanAllOption configures ScanAll's worker pool.
type ScanAllOption func(*scanAllConfig)

// WithWorkers overrides the worker count ScanAll would otherwise derive from
// cpuid.CPU.LogicalCores.
func WithWorkers(n int) ScanAllOption {
	return func(c *scanAllConfig) { c.workers = n }
}

// WithChanDepth overrides the index channel's buffer depth.
func WithChanDepth(n int) ScanAllOption {
	return func(c *scanAllConfig) { c.chanDepth = n }
}
