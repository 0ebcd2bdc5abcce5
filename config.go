package xmlscan

import (
	cpuid "github.com/klauspost/cpuid/v2"
	"github.com/pbnjay/memory"
)

// DefaultDepthLimit matches what the teacher's worker-pool sizing constants
// are to channel capacity: a fixed, documented default a caller can override,
// not a magic number buried in the engine.
const DefaultDepthLimit = 256

// minCapacity/maxCapacity bound RecommendedCapacity the same way eutils'
// XMLBUFSIZE is a fixed constant, but adapted to actual system memory
// instead of one hand-picked number.
const (
	minCapacity = 4 << 10   // 4 KiB floor
	maxCapacity = 16 << 20  // 16 MiB ceiling
)

// Config configures a Scanner. Use the functional options below; the
// documented defaults are filled in by newConfig, not by the zero Config.
type Config struct {
	depthLimit     int
	capacityHint   int
	transcode      bool
	tracer         Tracer
}

// Option configures a Config, in the functional-options idiom golang-migrate's
// driver constructors use elsewhere in this pack.
type Option func(*Config)

// DepthLimit overrides the maximum call-stack depth (see §4.2). The default,
// DefaultDepthLimit, matches the spec's depth_limit parameter description.
func DepthLimit(n int) Option {
	return func(c *Config) { c.depthLimit = n }
}

// CapacityHint records a suggested initial StrBuf size in bytes on the
// Config; nothing in this package reads it, so it does not change Scanner
// behavior.
func CapacityHint(n int) Option {
	return func(c *Config) { c.capacityHint = n }
}

// WithTranscoding records whether the caller uses the optional transcoding
// adapter (§11, Source in xmlsource.go). The Scanner does not read the flag,
// and Source works the same whether it is set or not.
func WithTranscoding(enabled bool) Option {
	return func(c *Config) { c.transcode = enabled }
}

// WithTracer installs a Tracer for diagnostics (§10.2). The scanner core
// remains silent by default (noopTracer) unless one is supplied.
func WithTracer(t Tracer) Option {
	return func(c *Config) { c.tracer = t }
}

func newConfig(opts ...Option) Config {
	c := Config{
		depthLimit: DefaultDepthLimit,
		tracer:     noopTracer{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.tracer == nil {
		c.tracer = noopTracer{}
	}
	return c
}

// RecommendedCapacity sizes a default StrBuf region as a small fraction of
// system RAM, generalizing eutils/xml.go's hand-picked XMLBUFSIZE constant
// (65536+16384, chosen for pipe-read behavior) into an adaptive default that
// still respects the same floor/ceiling shape.
func RecommendedCapacity() int {
	free := memory.FreeMemory()
	n := int(free / 4096) // ~0.024% of free RAM
	if n < minCapacity {
		n = minCapacity
	}
	if n > maxCapacity {
		n = maxCapacity
	}
	return n
}

// recommendedWorkerCount sizes a worker pool off logical core count, the way
// eutils/cache.go and merge.go size their worker counts off a NumServe()-style
// helper (not present in the retrieved pack slice, so this module supplies
// its own, grounded on the same call-site pattern: make(chan T, ChanDepth());
// for i := 0; i < NumServe(); i++ { go worker() }).
func recommendedWorkerCount() int {
	n := cpuid.CPU.LogicalCores
	if n < 1 {
		n = 1
	}
	return n
}

// recommendedChanDepth mirrors the same pattern's channel buffer sizing.
func recommendedChanDepth() int {
	return recommendedWorkerCount() * 4
}
