// Command id3-dump prints the structure of the ID3v2 tags at the start of
// one or more files.
//
// Usage:
//
//	id3-dump -version [-json]
//	id3-dump [-json] [-config policy.toml] [-depth N] [-strict] [-no-images] [-v] <file>...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/simonhull/id3dissect"
	"github.com/simonhull/id3dissect/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("id3-dump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print the dissection as JSON")
	configPath := fs.String("config", "", "TOML policy file")
	depth := fs.Int("depth", 0, "maximum CHAP/CTOC nesting depth (0 keeps the policy value)")
	strict := fs.Bool("strict", false, "exit non-zero when any warning or error issue is found")
	noImages := fs.Bool("no-images", false, "skip picture MIME sniffing and dimensions")
	verbose := fs.Bool("v", false, "log every frame")
	version := fs.Bool("version", false, "print build information and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: id3-dump [flags] <file>...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *version {
		return printVersion(stdout, stderr, *asJSON)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	log := logging.New(stderr, "id3-dump")
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	opts := []id3dissect.Option{id3dissect.WithLogger(log)}
	if *configPath != "" {
		policy, err := id3dissect.LoadConfig(*configPath)
		if err != nil {
			log.Error().Err(err).Str("config", *configPath).Msg("invalid policy")
			return 2
		}
		opts = append(opts, id3dissect.WithPolicy(policy))
	}
	if *depth > 0 {
		opts = append(opts, id3dissect.WithMaxDepth(*depth))
	}
	if *noImages {
		opts = append(opts, id3dissect.WithoutImageAnalysis())
	}
	if *strict {
		opts = append(opts, id3dissect.WithStrict())
	}

	results, err := id3dissect.DissectAll(context.Background(), fs.Args(), opts...)
	if err != nil {
		log.Error().Err(err).Msg("dissection failed")
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Error().Err(err).Msg("encode report")
			return 1
		}
	} else {
		for _, d := range results {
			printDissection(stdout, d)
		}
	}

	return exitCode(results, *strict)
}

// exitCode is 1 when a tag was rejected, or in strict mode when any tag
// carries a warning or error issue.
func exitCode(results []*id3dissect.Dissection, strict bool) int {
	for _, d := range results {
		if d.Rejected() {
			return 1
		}
		if strict && d.Stats.Errors+d.Stats.Warnings > 0 {
			return 1
		}
	}
	return 0
}

func printVersion(stdout, stderr io.Writer, asJSON bool) int {
	info := id3dissect.GetVersionInfo()
	if !asJSON {
		fmt.Fprintln(stdout, info)
		return 0
	}
	if err := json.NewEncoder(stdout).Encode(info); err != nil {
		fmt.Fprintln(stderr, "encode version:", err)
		return 1
	}
	return 0
}
