// Package batch hashes multiple named inputs concurrently. Each input
// is an independent message with its own chaining state; a failing
// input never disturbs its siblings.
package batch

import (
	"strconv"
	"sync"

	"github.com/orcaman/concurrent-map"
	"github.com/panjf2000/ants"
	"github.com/pkg/errors"

	"github.com/digestkit/sha1sum/digest"
	"github.com/digestkit/sha1sum/hashutil"
)

// DefaultWorkers is the pool size used when the caller does not pick one.
const DefaultWorkers = 4

// Input names one message to hash. When Path is set the file contents
// are the message; otherwise Literal is hashed as-is.
type Input struct {
	Name    string
	Path    string
	Literal []byte
}

// Result carries the digest for one input, or the per-input error.
type Result struct {
	Name   string
	Digest digest.Digest
	Err    error
}

// Hasher runs batches of independent hash jobs on a shared worker pool.
type Hasher struct {
	workerPool *ants.Pool
}

// NewHasher creates a Hasher with the given pool size.
func NewHasher(workers int) (*Hasher, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	workerPool, err := ants.NewPoolPreMalloc(workers)
	if err != nil {
		return nil, err
	}
	return &Hasher{workerPool: workerPool}, nil
}

// Close releases the worker pool.
func (h *Hasher) Close() {
	h.workerPool.Release()
}

// Run hashes every input and returns one result per input, in input
// order. Failures are recorded in the matching Result and do not stop
// the rest of the batch.
func (h *Hasher) Run(inputs []Input) []Result {
	rm := newResultMap()

	var wg sync.WaitGroup
	for i, in := range inputs {
		i0, in0 := i, in
		wg.Add(1)
		if err := h.workerPool.Submit(func() {
			defer wg.Done()
			rm.Set(i0, hashInput(in0))
		}); err != nil {
			rm.Set(i0, Result{Name: in0.Name, Err: errors.Wrap(err, "submit hash job")})
			wg.Done()
		}
	}
	wg.Wait()

	results := make([]Result, len(inputs))
	for i := range inputs {
		r, ok := rm.Get(i)
		if !ok {
			r = Result{Name: inputs[i].Name, Err: errors.New("missing result")}
		}
		results[i] = r
	}
	return results
}

func hashInput(in Input) Result {
	if in.Path == "" {
		return Result{Name: in.Name, Digest: hashutil.Sum(in.Literal)}
	}
	d, err := hashutil.SumFile(in.Path)
	if err != nil {
		return Result{Name: in.Name, Err: err}
	}
	return Result{Name: in.Name, Digest: d}
}

type resultMap struct {
	m cmap.ConcurrentMap
}

func newResultMap() *resultMap {
	return &resultMap{
		m: cmap.New(),
	}
}

func (m *resultMap) Get(i int) (Result, bool) {
	v, ok := m.m.Get(strconv.Itoa(i))
	if !ok {
		return Result{}, false
	}
	return v.(Result), ok
}

func (m *resultMap) Set(i int, r Result) {
	m.m.Set(strconv.Itoa(i), r)
}

func (m *resultMap) Count() int {
	return m.m.Count()
}
