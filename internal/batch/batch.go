package batch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/ironsheep/greenkey/internal/chroma"
	"github.com/ironsheep/greenkey/internal/imaging"
)

// ErrInputNotFound is recorded for pairs whose input file does not exist.
var ErrInputNotFound = errors.New("input not found")

// Status is the outcome of processing one Pair.
type Status int

const (
	StatusSaved Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSaved:
		return "saved"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result describes what happened to one Pair.
type Result struct {
	Pair   Pair
	Status Status

	// Err is nil for StatusSaved. It wraps ErrInputNotFound for
	// StatusSkipped, and imaging.ErrDecode or imaging.ErrEncode for
	// StatusFailed.
	Err error

	// Width and Height of the written image. Zero unless saved.
	Width  int
	Height int

	// Keyed is the number of pixels that were made transparent.
	Keyed int
}

// Summary counts results by status.
type Summary struct {
	Saved   int
	Skipped int
	Failed  int
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusSaved:
			s.Saved++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Processor strips backgrounds from the files of a Config.
type Processor struct {
	out   io.Writer
	debug bool
}

// New returns a Processor that writes progress lines to out. When debug is
// set, image details are also sent to the standard logger.
func New(out io.Writer, debug bool) *Processor {
	if out == nil {
		out = io.Discard
	}
	return &Processor{out: out, debug: debug}
}

// Run processes every pair of cfg in order and returns one Result per pair,
// in the same order.
func (p *Processor) Run(cfg Config) []Result {
	results := make([]Result, 0, len(cfg.Pairs))
	for _, pair := range cfg.Pairs {
		results = append(results, p.Process(pair))
	}
	return results
}

// Process strips the background of a single pair. It never panics on bad
// input and never returns a partially written output.
func (p *Processor) Process(pair Pair) Result {
	if _, err := os.Stat(pair.Input); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(p.out, "File not found: %s\n", pair.Input)
		return Result{
			Pair:   pair,
			Status: StatusSkipped,
			Err:    fmt.Errorf("%w: %s", ErrInputNotFound, pair.Input),
		}
	}

	fmt.Fprintf(p.out, "Processing %s -> %s...\n", pair.Input, pair.Output)

	res, err := p.strip(pair)
	if err != nil {
		fmt.Fprintf(p.out, "  Error processing %s: %v\n", pair.Input, err)
		return Result{Pair: pair, Status: StatusFailed, Err: err}
	}

	fmt.Fprintf(p.out, "  Saved %s\n", pair.Output)
	return res
}

func (p *Processor) strip(pair Pair) (Result, error) {
	src, err := imaging.Open(pair.Input)
	if err != nil {
		return Result{}, err
	}

	if p.debug {
		info := imaging.Info(src)
		log.Printf("Loaded %s: %dx%d, has_alpha=%t", pair.Input, info.Width, info.Height, info.HasAlpha)
	}

	keyed := chroma.CountBackground(src)
	dst := chroma.Strip(src)

	if err := imaging.Save(dst, pair.Output); err != nil {
		return Result{}, err
	}

	if p.debug {
		log.Printf("Keyed %d pixels in %s", keyed, pair.Input)
	}

	bounds := dst.Bounds()
	return Result{
		Pair:   pair,
		Status: StatusSaved,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Keyed:  keyed,
	}, nil
}
