package main

import (
	. "fmt"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/dterei/gotsc"
	"github.com/p7r0x7/bitmix/generate"
	"github.com/p7r0x7/bitmix/mixers"
	"golang.org/x/sys/cpu"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var mix, in, out, calltime = (func(in, out []byte))(nil), []byte(nil), []byte(nil), gotsc.TSCOverhead()

func BenchmarkMixer(b *testing.B) {
	b.SetBytes(int64(len(in)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		mix(in, out)
	}
}

// benchAlg measures m's throughput over random input, its cycles per input byte when the TSC is
// usable, and its allocations per call.
func benchAlg(m mixers.Mixer) (throughput, speed, usage float64) {
	mix, in, out = m.Mix, make([]byte, m.InSize), make([]byte, m.OutSize)
	generate.Random(0, in)

	totalHz, polls, mut, stop := uint64(0), uint64(0), &sync.Mutex{}, make(chan struct{})
	if calltime > 0 {
		go func() {
			for {
				select {
				case <-stop:
					return
				default:
				}
				tsc1 := gotsc.BenchStart()
				time.Sleep(time.Millisecond)
				tsc2 := gotsc.BenchEnd()

				mut.Lock()
				totalHz += tsc2 - tsc1 - calltime
				polls++
				mut.Unlock()

				time.Sleep(time.Millisecond * 9)
			}
		}()
	}
	r := testing.Benchmark(BenchmarkMixer)
	close(stop)
	mut.Lock()
	defer mut.Unlock()

	throughput = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
	if polls > 0 {
		speed = float64(totalHz*1000) / float64(polls) / throughput
	}
	return throughput / 1e6 /* MB/s */, speed, float64(r.AllocedBytesPerOp())
}

func fmtFloats(f ...float64) string {
	var str, style string
	for _, v := range f {
		switch whole := float64(int64(v)) == v; {
		case v > 1e8 || (v < 1e-6 && !whole):
			style = "%8.3g"
		case v <= 1e1 && !whole:
			style = "%8.6f"
		case v <= 1e2 && !whole:
			style = "%8.5f"
		case v <= 1e3 && !whole:
			style = "%8.4f"
		case v <= 1e4 && !whole:
			style = "%8.3f"
		case v <= 1e5 && !whole:
			style = "%8.2f"
		case v <= 1e6 && !whole:
			style = "%8.1f"
		default:
			style = "%8.f"
		}
		str += "  " + Sprintf(style, v)
	}
	return str
}

func main() {
	Printf("Running Statz on %d CPUs!\n%s/%s, AES-NI: %t, AVX2: %t\n\n",
		runtime.NumCPU(), runtime.GOOS, runtime.GOARCH, cpu.X86.HasAES, cpu.X86.HasAVX2)
	t := time.Now()

	Printf("%-30s    MB/s       cpb      B/op   counting%%    random%%\n", "")
	for _, m := range mixers.All {
		throughput, speed, usage := benchAlg(m)
		counting, random := monobit(m, generate.Counting), monobit(m, generate.Random)
		if calltime > 0 {
			Printf("%-30.30s%s  %9.3f  %9.3f\n", m.Name, fmtFloats(throughput, speed, usage), counting, random)
		} else {
			Printf("%-30.30s%s       n/a%s  %9.3f  %9.3f\n", m.Name, fmtFloats(throughput), fmtFloats(usage),
				counting, random)
		}
	}

	Println("\nFinished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
