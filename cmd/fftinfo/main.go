// Command fftinfo plans an N-D transform and prints what the backend made
// of it: native dims, transition, honored placement, buffer sizes and the
// backend's own description. With -run it also executes the plan once on a
// ramp.
//
// Usage:
//
//	fftinfo [flags]
//
// Examples:
//
//	fftinfo -dims 640x480 -type float32
//	fftinfo -backend directed -dims 7x5x3 -type float64 -inplace
//	fftinfo -dims 256 -type complex128 -dir backward -norm none -run
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-ndfft/dsp/fft"
	"github.com/cwbudde/algo-ndfft/dsp/fft/descriptor"
	"github.com/cwbudde/algo-ndfft/dsp/fft/plan"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
	"github.com/cwbudde/algo-ndfft/dsp/spectrum"
)

type options struct {
	backend fft.Backend
	dims    layout.Shape
	kind    scalar.Kind
	dir     plan.Direction
	run     bool
	fftOpts []fft.Option
}

func main() {
	backend := flag.String("backend", "descriptor", "backend: descriptor or directed")
	dims := flag.String("dims", "8x8", "dims in image order, fastest axis first (e.g. 640x480)")
	typ := flag.String("type", "float64", "element type of the spatial side: float32, float64, complex64, complex128")
	dir := flag.String("dir", "forward", "direction: forward or backward")
	inPlace := flag.Bool("inplace", false, "request an in-place transform")
	batch := flag.Int("batch", 1, "number of transforms per call")
	norm := flag.String("norm", "auto", "backward scale: auto (1/N), none, or a factor")
	run := flag.Bool("run", false, "execute the plan once on a ramp")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fftinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Plans an N-D FFT and prints its layout.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fftinfo -dims 640x480 -type float32\n")
		fmt.Fprintf(os.Stderr, "  fftinfo -backend directed -dims 7x5x3 -inplace\n")
		fmt.Fprintf(os.Stderr, "  fftinfo -dims 256 -type complex128 -dir backward -norm none -run\n")
	}
	flag.Parse()

	opts, err := parseOptions(*backend, *dims, *typ, *dir, *norm, *inPlace, *batch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	opts.run = *run

	if err := inspectKind(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseOptions(backend, dims, typ, dir, norm string, inPlace bool, batch int) (options, error) {
	var opts options
	var err error

	if opts.backend, err = fft.ParseBackend(backend); err != nil {
		return opts, err
	}
	if opts.dims, err = layout.ParseShape(dims); err != nil {
		return opts, err
	}
	if opts.kind, err = parseKind(typ); err != nil {
		return opts, err
	}
	switch strings.ToLower(dir) {
	case "forward", "fwd":
		opts.dir = plan.Forward
	case "backward", "bwd", "inverse":
		opts.dir = plan.Backward
	default:
		return opts, fmt.Errorf("unknown direction %q", dir)
	}
	n, err := parseNorm(norm)
	if err != nil {
		return opts, err
	}

	opts.fftOpts = []fft.Option{fft.WithBatch(batch), fft.WithNormalization(n)}
	if inPlace {
		opts.fftOpts = append(opts.fftOpts, fft.WithInPlace())
	}
	if opts.kind.Domain() == scalar.ComplexDomain {
		opts.fftOpts = append(opts.fftOpts, fft.WithDirection(opts.dir))
	}
	return opts, nil
}

func parseKind(s string) (scalar.Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range scalar.Kinds {
		if k.String() == name || k.Suffix() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown type %q", s)
}

func parseNorm(s string) (plan.Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return plan.NormalizeAuto, nil
	case "none":
		return plan.NormalizeNone, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid normalization %q: %w", s, err)
	}
	if f == 0 {
		return 0, errors.New("normalization factor 0 is reserved for auto")
	}
	return plan.Normalization(f), nil
}

// inspectKind maps the spatial type and direction onto a typed transform.
func inspectKind(o options) error {
	forward := o.dir == plan.Forward
	switch o.kind {
	case scalar.RealSingle:
		if forward {
			return inspect[float32, complex64](o)
		}
		return inspect[complex64, float32](o)
	case scalar.RealDouble:
		if forward {
			return inspect[float64, complex128](o)
		}
		return inspect[complex128, float64](o)
	case scalar.ComplexSingle:
		return inspect[complex64, complex64](o)
	case scalar.ComplexDouble:
		return inspect[complex128, complex128](o)
	}
	scalar.Unreachable(o.kind)
	return nil
}

type describer interface {
	Describe() string
}

func inspect[I, O scalar.Scalar](o options) error {
	tr, err := fft.New[I, O](o.backend, o.dims, o.fftOpts...)
	if err != nil {
		return err
	}
	defer tr.Close()

	spec := tr.Spec()
	pitch, rows := tr.Layout()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	rowsOut := [][2]string{
		{"Backend", tr.Backend().String()},
		{"Dims (image)", tr.Dims().String()},
		{"Dims (native)", spec.Dims.String()},
		{"Types", fmt.Sprintf("%s -> %s", spec.InKind(), spec.OutKind())},
		{"Transition", spec.Transition.String()},
		{"Placement", fmt.Sprintf("%s (requested %s)", tr.Placement(), spec.Placement)},
		{"Batch", strconv.Itoa(spec.Batch)},
		{"Scale", strconv.FormatFloat(spec.Scale(), 'g', 6, 64)},
		{"Input elements", strconv.Itoa(tr.InputLen())},
		{"Output elements", strconv.Itoa(tr.OutputLen())},
		{"Row pitch x rows", fmt.Sprintf("%d x %d", pitch, rows)},
	}
	if d := describe(tr.Plan()); d != "" {
		rowsOut = append(rowsOut, [2]string{"Plan", d})
	}
	for _, r := range rowsOut {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1]); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if !o.run {
		return nil
	}
	return execute(tr)
}

func describe(p any) string {
	if d, ok := p.(describer); ok {
		return strings.ReplaceAll(strings.TrimSpace(d.Describe()), "\n", "; ")
	}
	if h, ok := p.(interface{ Descriptor() *descriptor.Descriptor }); ok {
		return describe(h.Descriptor())
	}
	return ""
}

func execute[I, O scalar.Scalar](tr *fft.Transform[I, O]) error {
	ramp := make([]complex128, tr.InputLen())
	for i := range ramp {
		ramp[i] = complex(float64(i%17), 0)
	}
	in := make([]I, len(ramp))
	scalar.Demote(in, ramp)

	var out []O
	if tr.Placement() == plan.OutOfPlace {
		out = make([]O, tr.OutputLen())
	}

	start := time.Now()
	if err := tr.Transform(in, out); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if out == nil {
		out = layout.Reinterpret[I, O](in)
	}
	first := make([]complex128, 1)
	scalar.Promote(first, out[:1])
	fmt.Printf("\nexecuted in %v, first output element %v\n", elapsed, first[0])

	if tr.Spec().Transition.Direction() == plan.Forward {
		return summarize(tr.Spec(), out)
	}
	return nil
}

// summarize prints the peak bin and the Parseval energy of the first
// spectrum in out.
func summarize[O scalar.Scalar](spec plan.Spec, out []O) error {
	dims := spec.Dims.Reverse()
	half := spec.Transition == plan.RealToComplex
	bins := dims
	if half {
		bins = spectrum.HalfDims(dims)
	}
	n := bins.NumElements()

	var energy float64
	power := make([]float64, n)
	var err error
	switch o := any(out).(type) {
	case []complex64:
		spectrum.Power(power, o[:n])
		energy, err = spectrum.Energy(dims, o[:n], half)
	case []complex128:
		spectrum.Power(power, o[:n])
		energy, err = spectrum.Energy(dims, o[:n], half)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	coords, peak, err := spectrum.Peak(bins, power)
	if err != nil {
		return err
	}
	fmt.Printf("peak bin %v, power %.6g, energy %.6g\n", coords, peak, energy)
	return nil
}
