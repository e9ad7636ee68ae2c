package nx

import (
	"github.com/goinggo/workpool"
)

// decodeResult carries one bitmap's decompressed bytes (or error) back to
// DecodeBitmaps, tagged with its position in the input slice so results
// can be placed back in input order even though jobs complete out of
// order.
type decodeResult struct {
	index int
	data  []byte
	err   error
}

// bitmapJob decodes one bitmap into its own buffer and implements
// workpool.PoolWorker. Each job owns its buffer instead of touching shared
// state, so concurrent jobs never race over a single scratch buffer.
type bitmapJob struct {
	bitmap Bitmap
	index  int
	result chan<- decodeResult
}

func (j bitmapJob) DoWork(workRoutine int) {
	out := j.bitmap.NewOutputBuffer()
	data, err := j.bitmap.Data(out)
	j.result <- decodeResult{index: j.index, data: data, err: err}
}

// DecodeBitmaps decompresses every bitmap in bitmaps concurrently across
// workers goroutines, each job allocating its own output buffer. Results
// are returned in the same order as the input slice. The first error
// encountered is returned once every job has finished; other bitmaps still
// decode.
func DecodeBitmaps(bitmaps []Bitmap, workers int) ([][]byte, error) {
	if len(bitmaps) == 0 {
		return nil, nil
	}
	if workers < 1 {
		workers = 1
	}

	pool := workpool.New(workers, int32(len(bitmaps))+1)
	results := make(chan decodeResult, len(bitmaps))

	for i, bmp := range bitmaps {
		job := bitmapJob{bitmap: bmp, index: i, result: results}
		if err := pool.PostWork("nx-decode", job); err != nil {
			results <- decodeResult{index: i, err: err}
		}
	}

	out := make([][]byte, len(bitmaps))
	var firstErr error
	for range bitmaps {
		r := <-results
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
		out[r.index] = r.data
	}
	return out, firstErr
}
