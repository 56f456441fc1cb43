package batch

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ResultsInInputOrder(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	results := Run(context.Background(), items, func(_ context.Context, item string) error {
		if item == "b" {
			return fmt.Errorf("failed on %s", item)
		}
		return nil
	})

	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, items[i], r.Item)
	}
	assert.NoError(t, results[0].Err)
	assert.EqualError(t, results[1].Err, "failed on b")
	assert.NoError(t, results[2].Err)
	assert.NoError(t, results[3].Err)
}

func TestRun_FailuresDoNotStopSiblings(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	var mu sync.Mutex
	ran := map[int]bool{}

	results := Run(context.Background(), items, func(_ context.Context, item int) error {
		mu.Lock()
		ran[item] = true
		mu.Unlock()
		if item%2 == 0 {
			return fmt.Errorf("item %d", item)
		}
		return nil
	})

	// Every operation ran to completion regardless of sibling failures.
	assert.Len(t, ran, 5)
	assert.Len(t, Failed(results), 2)
}

func TestRun_FansOutBeforeJoining(t *testing.T) {
	items := []int{1, 2}

	// Each operation blocks until the other has started. If Run awaited
	// operations one at a time this would deadlock.
	var barrier sync.WaitGroup
	barrier.Add(len(items))
	results := Run(context.Background(), items, func(_ context.Context, item int) error {
		barrier.Done()
		barrier.Wait()
		return nil
	})

	assert.Empty(t, Failed(results))
}

func TestRun_EmptyBatch(t *testing.T) {
	results := Run(context.Background(), nil, func(_ context.Context, item int) error {
		t.Fatal("fn must not be called for an empty batch")
		return nil
	})
	assert.Empty(t, results)
	assert.Empty(t, Failed(results))
}
