package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nebbyJammin/glyphart/pkg/glyphart"
)

const (
	usageText = "Usage: glyphart [flags] <path to glyphs directory> <path to image> [<resolution>]\n" +
		"The first argument should be a path to a folder containing images of individual characters, of which the name is the character code.\n" +
		"  so for example a picture of an 'a' should be stored as 97.jpg.\n" +
		"The second argument is the image to convert to text art.\n" +
		"The third argument (optional) sets the resolution for the output. A lower number gives a higher resolution. Default is 2.\n" +
		"\n" +
		"Usage example: glyphart ./glyphs ./image.jpg 1\n" +
		"\n" +
		"Flags:\n"

	workersUsage	= "Number of goroutines used to score glyphs and image blocks."
	strictUsage		= "Fail when all glyphs or all image blocks share the same brightness, instead of falling back to absolute brightness."
	blockUsage		= `Explicit block size as "WxH" in pixels. Overrides the resolution argument.`
)

var errUsage = errors.New("usage")

type config struct {
	glyphDir	string
	imagePath	string
	opts		[]glyphart.Option
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		// usage text has already been printed
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "glyphart: %s\n", err)
		}
		return 2
	}

	conv := glyphart.New(cfg.opts...)

	catalog, err := conv.LoadCatalog(cfg.glyphDir)
	if err != nil {
		fmt.Fprintf(stderr, "glyphart: %s\n", err)
		return 1
	}

	if err := conv.RenderFile(stdout, cfg.imagePath, catalog); err != nil {
		fmt.Fprintf(stderr, "glyphart: %s\n", err)
		return 1
	}

	return 0
}

/*
parseArgs interprets the command line. A wrong number of positional arguments, or a resolution that is not an integer >= 1, prints the usage text and returns errUsage.
*/
func parseArgs(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("glyphart", flag.ContinueOnError)
	fs.SetOutput(stderr)

	usage := func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	fs.Usage = usage

	workers := fs.Int("workers", 1, workersUsage)
	strict := fs.Bool("strict", false, strictUsage)
	block := fs.String("block", "", blockUsage)

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	pos := fs.Args()
	if len(pos) < 2 || len(pos) > 3 {
		usage()
		return config{}, errUsage
	}

	factor := glyphart.DefaultResolutionFactor
	if len(pos) == 3 {
		n, err := strconv.Atoi(pos[2])
		if err != nil || n < 1 {
			fmt.Fprintf(stderr, "invalid resolution %q: must be an integer >= 1\n", pos[2])
			usage()
			return config{}, errUsage
		}
		factor = n
	}

	cfg := config{
		glyphDir: pos[0],
		imagePath: pos[1],
		opts: []glyphart.Option{
			glyphart.WithResolutionFactor(factor),
			glyphart.WithStrictNormalization(*strict),
			glyphart.WithWorkers(*workers),
		},
	}

	if *block != "" {
		w, h, err := parseBlockSize(*block)
		if err != nil {
			return config{}, err
		}
		cfg.opts = append(cfg.opts, glyphart.WithBlockSize(w, h))
	}

	return cfg, nil
}

func parseBlockSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid block size %q: want WxH", s)
	}

	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("invalid block size %q: %w", s, glyphart.ErrInvalidBlockSize)
	}

	return w, h, nil
}
