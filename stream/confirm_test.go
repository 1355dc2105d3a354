package stream

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type block struct {
	Hash       string
	ParentHash string
}

func chainFollows(prev, next *block) bool {
	return next.ParentHash == prev.Hash
}

func feed[T any](items ...T) <-chan T {
	in := make(chan T, len(items))
	for _, item := range items {
		in <- item
	}
	close(in)
	return in
}

func collect[T any](t *testing.T, out <-chan T) []T {
	t.Helper()

	var got []T
	timeout := time.After(time.Second * 5)
	for {
		select {
		case item, ok := <-out:
			if !ok {
				return got
			}
			got = append(got, item)
		case <-timeout:
			require.FailNow(t, "timed out waiting for the output channel to close")
		}
	}
}

func hashes(blocks []*block) []string {
	out := make([]string, 0, len(blocks))
	for b := range slices.Values(blocks) {
		out = append(out, b.Hash)
	}
	return out
}

func TestConfirm(t *testing.T) {
	tests := map[string]struct {
		depth           int
		blocks          []*block
		expectedHashes  []string
		expectedDropped float64
	}{
		"linear chain": {
			depth: 2,
			blocks: []*block{
				{Hash: "a"},
				{Hash: "b", ParentHash: "a"},
				{Hash: "c", ParentHash: "b"},
				{Hash: "d", ParentHash: "c"},
			},
			expectedHashes: []string{"a", "b"},
		},
		"shallow reorg": {
			depth: 2,
			blocks: []*block{
				{Hash: "a"},
				{Hash: "b", ParentHash: "a"},
				{Hash: "c", ParentHash: "b"},
				{Hash: "c2", ParentHash: "b"},
				{Hash: "d", ParentHash: "c2"},
				{Hash: "e", ParentHash: "d"},
			},
			expectedHashes:  []string{"a", "b", "c2"},
			expectedDropped: 1,
		},
		"reorg deeper than held items": {
			depth: 3,
			blocks: []*block{
				{Hash: "a"},
				{Hash: "b", ParentHash: "a"},
				{Hash: "x", ParentHash: "unknown"},
				{Hash: "y", ParentHash: "x"},
				{Hash: "z", ParentHash: "y"},
				{Hash: "w", ParentHash: "z"},
			},
			expectedHashes:  []string{"x"},
			expectedDropped: 2,
		},
		"zero depth is treated as one": {
			depth: 0,
			blocks: []*block{
				{Hash: "a"},
				{Hash: "b", ParentHash: "a"},
				{Hash: "c", ParentHash: "b"},
			},
			expectedHashes: []string{"a", "b"},
		},
		"fewer items than depth": {
			depth: 5,
			blocks: []*block{
				{Hash: "a"},
				{Hash: "b", ParentHash: "a"},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			droppedBefore := testutil.ToFloat64(droppedItems)

			out := Confirm(context.Background(), logrus.New(), feed(test.blocks...), test.depth, chainFollows)
			got := collect(t, out)

			if test.expectedHashes == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, test.expectedHashes, hashes(got))
			}
			assert.Equal(t, test.expectedDropped, testutil.ToFloat64(droppedItems)-droppedBefore)
		})
	}
}

func TestConfirmStopsOnContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan *block)

	out := Confirm(ctx, logrus.New(), in, 1, chainFollows)
	in <- &block{Hash: "a"}
	cancel()

	got := collect(t, out)
	assert.Empty(t, got)
}
