// Package filtration_test verifies the engine's locking under concurrent readers.
package filtration_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/filtra/filtration"
	"github.com/katalvlaran/filtra/grade"
	"github.com/katalvlaran/filtra/simplicial"
	"github.com/stretchr/testify/require"
)

// TestConcurrentReadersDuringBuild runs ValueOf/Stats readers while a single
// builder inserts a path graph.
func TestConcurrentReadersDuringBuild(t *testing.T) {
	const n = 300
	f := filtration.NewSet[grade.Real](n, 1)
	for i := 0; i < n; i++ {
		mustInsert(t, f, 0, vs(simplicial.Vertex(i)))
	}

	const readers = 20
	var wg sync.WaitGroup
	wg.Add(readers + 1)

	go func() {
		defer wg.Done()
		for i := 0; i+1 < n; i++ {
			_, err := f.Insert(grade.Real(i), vs(simplicial.Vertex(i), simplicial.Vertex(i+1)))
			require.NoError(t, err)
		}
	}()
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				g, err := f.ValueOf(0, i)
				require.NoError(t, err)
				require.Equal(t, grade.Real(0), g)
				_ = f.Stats()
				_ = f.NumCells(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, n-1, f.NumCells(1))
	f.Freeze()
	require.NoError(t, f.Validate())
}

// TestConcurrentDuplicateInserts races many goroutines inserting the same
// simplices; exactly one insertion per simplex must win.
func TestConcurrentDuplicateInserts(t *testing.T) {
	const workers = 16
	f := filtration.NewSet[grade.Natural](8, 0)

	var mu sync.Mutex
	wins := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for v := 0; v < 8; v++ {
				out, err := f.Insert(grade.Natural(w), vs(simplicial.Vertex(v)))
				require.NoError(t, err)
				if out.Inserted {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, 8, wins)
	require.Equal(t, 8, f.NumCells(0))
	require.Equal(t, f.Complex().NumCells(0), f.NumCells(0))
}

// TestObserverCallsSerialized mixes unsorted (rejected before the engine is
// touched) and valid inserts from many goroutines into an unsynchronized
// recorder; every callback must run under the engine lock.
func TestObserverCallsSerialized(t *testing.T) {
	const workers = 8
	const rounds = 50
	rec := &recorder{}
	f := filtration.NewSet[grade.Natural](workers*rounds, 0, filtration.WithObserver(rec))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				_, _ = f.Insert(0, vs(1, 0))
				_, _ = f.Insert(0, vs(simplicial.Vertex(w*rounds+r)))
			}
		}(w)
	}
	wg.Wait()

	require.Len(t, rec.rejected, workers*rounds)
	require.Len(t, rec.errs, workers*rounds)
	require.Len(t, rec.inserted, workers*rounds)
}
