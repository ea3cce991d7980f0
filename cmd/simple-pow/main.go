package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/redpwn/simplepow/internal/config"
	"github.com/redpwn/simplepow/pow"
	"github.com/spf13/pflag"
)

const usage = "usage: simple-pow [-v] [--progress N] [-c PREFIX] INPUT"

var (
	errMissingArgument  = errors.New("required one argument with 64-byte hex-encoded string")
	errTooManyArguments = errors.New("expected exactly one argument")
)

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	flags := pflag.NewFlagSet("simple-pow", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flags.PrintDefaults()
	}
	verbose := flags.BoolP("verbose", "v", cfg.Verbose, "log search progress to stderr")
	progress := flags.String("progress", "", "candidates between progress lines, e.g. 16M (default $POW_PROGRESS)")
	check := flags.StringP("check", "c", "", "verify hex `PREFIX` instead of searching")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if *progress != "" {
		if err := cfg.SetProgress(*progress); err != nil {
			return err
		}
	}

	switch flags.NArg() {
	case 0:
		return errMissingArgument
	case 1:
	default:
		return fmt.Errorf("%w, got %d", errTooManyArguments, flags.NArg())
	}
	in, err := pow.DecodeInput(flags.Arg(0))
	if err != nil {
		return err
	}

	var m *pow.Match
	if *check != "" {
		p, err := pow.ParsePrefix(*check)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
		if m, err = pow.Check(in, p); err != nil {
			return err
		}
	} else {
		s := &pow.Searcher{}
		if *verbose {
			s.Logger = log.New(stderr, "", log.LstdFlags)
			s.ProgressEvery = cfg.ProgressEvery()
			s.Logger.Printf("sha256 acceleration: %s", acceleration())
		}
		if m, err = s.Search(in); err != nil {
			return err
		}
	}
	fmt.Fprintln(stdout, m)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
