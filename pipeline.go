package lightyear

import "sync"

// parallelRange splits [0, n) into contiguous chunks and runs fn on each
// chunk from its own goroutine, returning once every chunk is done. Chunks
// never overlap, so fn may write to disjoint indices of a shared slice
// without synchronization.
func parallelRange(workersCount, n int, fn func(start, end int)) {
	if workersCount > n {
		workersCount = max(n, 1)
	}
	chunkSize := (n + workersCount - 1) / workersCount

	var wg sync.WaitGroup
	for workerID := 0; workerID < workersCount; workerID++ {
		start := workerID * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
