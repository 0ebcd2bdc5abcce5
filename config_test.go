package xmlscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	c := newConfig()
	assert.Equal(t, DefaultDepthLimit, c.depthLimit)
	assert.False(t, c.transcode)
	assert.IsType(t, noopTracer{}, c.tracer)
}

func TestNewConfig_Options(t *testing.T) {
	c := newConfig(DepthLimit(10), CapacityHint(4096), WithTranscoding(true), WithTracer(StderrTracer{}))
	assert.Equal(t, 10, c.depthLimit)
	assert.Equal(t, 4096, c.capacityHint)
	assert.True(t, c.transcode)
	assert.IsType(t, StderrTracer{}, c.tracer)
}

func TestRecommendedCapacity_WithinBounds(t *testing.T) {
	n := RecommendedCapacity()
	assert.GreaterOrEqual(t, n, minCapacity)
	assert.LessOrEqual(t, n, maxCapacity)
}
