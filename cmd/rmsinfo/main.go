// Command rmsinfo compares the fixed-point mean-square engine against a
// float64 reference across worker-core counts.
//
// Usage:
//
//	rmsinfo [flags]
//
// It generates a deterministic test signal, quantizes it to Q8, runs the
// sequential and parallel reductions for every core count up to -cores, and
// prints the raw and linear results next to the float reference. A final
// Parseval check cross-validates the signal energy through an FFT.
//
// Examples:
//
//	rmsinfo
//	rmsinfo -size 4096 -cores 8
//	rmsinfo -signal noise -fracbits 5
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"text/tabwriter"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fixdsp/dsp/cluster"
	"github.com/cwbudde/algo-fixdsp/dsp/core"
	"github.com/cwbudde/algo-fixdsp/stats/power"
)

func main() {
	size := flag.Int("size", 1024, "number of samples (power of two recommended)")
	cores := flag.Int("cores", 4, "maximum number of worker cores")
	fracBits := flag.Uint("fracbits", 6, "fractional bits of the Q8 samples")
	freq := flag.Float64("freq", 1000, "sine frequency in Hz")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	amp := flag.Float64("amp", 0.9, "signal amplitude, linear full scale")
	signalType := flag.String("signal", "sine", "test signal: sine or noise")
	seed := flag.Int64("seed", 1, "noise generator seed")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rmsinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Compares fixed-point mean-square reductions against a float64 reference.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rmsinfo -size 4096 -cores 8\n")
		fmt.Fprintf(os.Stderr, "  rmsinfo -signal noise -fracbits 5\n")
	}
	flag.Parse()

	if *size < 1 || *cores < 1 {
		fmt.Fprintf(os.Stderr, "error: -size and -cores must be positive\n")
		os.Exit(1)
	}
	if *fracBits > 7 {
		fmt.Fprintf(os.Stderr, "error: -fracbits must be 0..7 for Q8 samples\n")
		os.Exit(1)
	}

	signal, err := generate(*signalType, *size, *freq, *rate, *amp, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	src := make([]int8, len(signal))
	for i, v := range signal {
		src[i] = core.QuantizeQ8(v, *fracBits)
	}

	// Reference mean of squares of the quantized signal, so the comparison
	// isolates reduction error from quantization error.
	dequant := make([]float64, len(src))
	for i, v := range src {
		dequant[i] = core.DequantizeQ8(v, *fracBits)
	}
	refMean := meanSquares(dequant)

	printTable(src, *fracBits, *cores, refMean)

	if err := parsevalCheck(dequant); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func generate(kind string, size int, freq, rate, amp float64, seed int64) ([]float64, error) {
	signal := make([]float64, size)
	switch kind {
	case "sine":
		for i := range signal {
			signal[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/rate)
		}
	case "noise":
		rng := rand.New(rand.NewSource(seed))
		for i := range signal {
			signal[i] = amp * (2*rng.Float64() - 1)
		}
	default:
		return nil, fmt.Errorf("unknown signal type %q (want sine or noise)", kind)
	}
	return signal, nil
}

func printTable(src []int8, fracBits uint, maxCores int, refMean float64) {
	team := cluster.NewTeam(maxCores)
	defer team.Close()

	// Linear value of one raw fixed-point step.
	step := 1.0 / float64(int64(1)<<fracBits)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Cores\tRaw\tLinear\tFloat Ref\tError\n")
	fmt.Fprintf(tw, "-----\t---\t------\t---------\t-----\n")

	for c := 1; c <= maxCores; c++ {
		var res int8
		if err := power.RMSQ8Parallel(team, src, fracBits, c, &res); err != nil {
			fmt.Fprintf(os.Stderr, "error: %d cores: %v\n", c, err)
			os.Exit(1)
		}
		lin := float64(res) * step
		fmt.Fprintf(tw, "%d\t%d\t%.6f\t%.6f\t%+.6f\n", c, res, lin, refMean, lin-refMean)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func meanSquares(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	sq := make([]float64, len(signal))
	vecmath.MulBlock(sq, signal, signal)

	var sum float64
	for _, v := range sq {
		sum += v
	}
	return sum / float64(len(signal))
}

// parsevalCheck compares the time-domain signal energy with the energy of
// its spectrum. The two must agree up to rounding, which validates both the
// generated signal and the float reference path.
func parsevalCheck(signal []float64) error {
	n := nextPowerOf2(len(signal))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("creating FFT plan of size %d: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return fmt.Errorf("forward FFT: %w", err)
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range out {
		re[i] = real(c)
		im[i] = imag(c)
	}
	binPower := make([]float64, n)
	vecmath.Power(binPower, re, im)

	var freqEnergy float64
	for _, p := range binPower {
		freqEnergy += p
	}
	freqEnergy /= float64(n)

	var timeEnergy float64
	for _, v := range signal {
		timeEnergy += v * v
	}

	relErr := 0.0
	if timeEnergy != 0 {
		relErr = math.Abs(freqEnergy-timeEnergy) / timeEnergy
	}

	fmt.Printf("\nParseval check (N=%d): time energy %.6f, spectral energy %.6f, rel. error %.2e\n",
		n, timeEnergy, freqEnergy, relErr)
	return nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
