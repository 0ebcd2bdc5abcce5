package xmlscan

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAll_RunsEveryIndexExactlyOnce(t *testing.T) {
	const n = 50
	var seen [n]int32

	results := ScanAll(n, func(i int) error {
		atomic.AddInt32(&seen[i], 1)
		if i%7 == 0 {
			return fmt.Errorf("synthetic failure at %d", i)
		}
		return nil
	}, WithWorkers(4), WithChanDepth(8))

	require.Len(t, results, n)
	for i := 0; i < n; i++ {
		assert.EqualValues(t, 1, seen[i], "index %d scanned wrong number of times", i)
		if i%7 == 0 {
			assert.Error(t, results[i].Err)
		} else {
			assert.NoError(t, results[i].Err)
		}
		assert.Equal(t, i, results[i].Index)
	}
}

func TestScanAll_WorkerCountClampedToInputSize(t *testing.T) {
	results := ScanAll(2, func(i int) error { return nil }, WithWorkers(64))
	assert.Len(t, results, 2)
}

func TestScanAll_ScansRealDocumentsConcurrently(t *testing.T) {
	docs := []string{
		`<?xml version="1.1"?><a/>`,
		`<?xml version="1.0"?><root></root>`,
		`<?xml version="1.1"?><x><y/></x>`,
	}

	results := ScanAll(len(docs), func(i int) error {
		buf := NewStrBuf(make([]byte, 512))
		fill := buf.RemainingMaybeUninitialized()
		n := copy(fill, docs[i])
		buf.AssumeFilledNRemaining(n)

		sc := NewScanner()
		for {
			_, err := sc.Resume(buf)
			if err == MoreInputRequired || err == ErrDocumentComplete {
				return nil
			}
			if err != nil {
				return err
			}
		}
	})

	for _, r := range results {
		assert.NoError(t, r.Err)
	}
}
