package matrix4

import "testing"

// Record is the outcome of one benchmark run.
type Record struct {
	Name    string
	Group   string
	Library string
	Size    int

	N           int
	NsPerOp     float64
	AllocsPerOp int64
	BytesPerOp  int64

	// ElemsPerOp and ElemsPerSec are zero for unbatched groups.
	ElemsPerOp  float64
	ElemsPerSec float64
}

// RunOne runs bm through testing.Benchmark. The run length follows the
// -test.benchtime flag; call testing.Init first outside of go test.
func RunOne(bm Benchmark) Record {
	res := testing.Benchmark(bm.Fn)

	rec := Record{
		Name:        bm.Name(),
		Group:       bm.Group,
		Library:     bm.Library,
		Size:        bm.Size,
		N:           res.N,
		AllocsPerOp: res.AllocsPerOp(),
		BytesPerOp:  res.AllocedBytesPerOp(),
		ElemsPerOp:  res.Extra["elems/op"],
		ElemsPerSec: res.Extra["elems/s"],
	}
	if res.N > 0 {
		rec.NsPerOp = float64(res.T.Nanoseconds()) / float64(res.N)
	}
	return rec
}

// Run runs each item in order, calling report after each one.
func Run(plan []Benchmark, report func(Record)) []Record {
	records := make([]Record, 0, len(plan))
	for _, bm := range plan {
		rec := RunOne(bm)
		if report != nil {
			report(rec)
		}
		records = append(records, rec)
	}
	return records
}
