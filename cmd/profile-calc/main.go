// profile-calc is a one-shot command line tool: it reads a channel parameter
// file, computes the water-surface profile, and writes the result to stdout
// or a file in the chosen format.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tmcasey/channelflow/pkg/export"
	"github.com/tmcasey/channelflow/pkg/hydraulics"
)

func main() {
	paramsFile := flag.String("params", "", "Path to a JSON channel parameters file (required)")
	format := flag.String("format", "json", "Output format: json, csv, or html")
	output := flag.String("output", "", "Output file (default stdout)")
	flag.Parse()

	if *paramsFile == "" {
		fmt.Fprintln(os.Stderr, "the -params flag is required; run with -h for help")
		os.Exit(1)
	}

	data, err := os.ReadFile(*paramsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading parameters: %v\n", err)
		os.Exit(1)
	}

	var params hydraulics.ChannelParams
	if err := json.Unmarshal(data, &params); err != nil {
		fmt.Fprintf(os.Stderr, "parsing parameters: %v\n", err)
		os.Exit(1)
	}

	profile, err := hydraulics.Compute(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "computing profile: %v\n", err)
		os.Exit(1)
	}
	if !profile.SolverConverged {
		fmt.Fprintln(os.Stderr, "warning: solver hit its iteration cap; results are best-effort estimates")
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "json":
		err = export.WriteJSON(w, profile)
	case "csv":
		err = export.WriteCSV(w, profile)
	case "html":
		err = export.WriteHTML(w, profile)
	default:
		fmt.Fprintf(os.Stderr, "unsupported format %q; use json, csv, or html\n", *format)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "writing output: %v\n", err)
		os.Exit(1)
	}
}
