package pool

import "sync"

// LineBatchPool pools slices of lines handed to stream workers, so steady
// state parallel processing reuses batch storage instead of allocating a
// fresh slice per job.
type LineBatchPool struct {
	pool sync.Pool
}

// NewLineBatchPool creates a new line batch pool with batches of the given
// initial capacity.
func NewLineBatchPool(batchSize int) *LineBatchPool {
	return &LineBatchPool{
		pool: sync.Pool{
			New: func() interface{} {
				batch := make([]string, 0, batchSize)
				return &batch
			},
		},
	}
}

// Get retrieves a line batch from the pool or creates a new one if none are
// available.
func (lp *LineBatchPool) Get() *[]string {
	return lp.pool.Get().(*[]string)
}

// Put returns a line batch to the pool for reuse. Length is reset, capacity
// kept.
func (lp *LineBatchPool) Put(batch *[]string) {
	*batch = (*batch)[:0]
	lp.pool.Put(batch)
}
