// digital-eval is a command-line tool for evaluating OCR output against groundtruth.
//
// Candidates (ALTO, PAGE or plain text files) are gathered from a directory tree,
// matched with their groundtruth by file name, scored with the selected metrics and
// aggregated per directory domain. The summary is written as text, JSON, Markdown,
// HTML or PDF.
//
// Usage:
//
//	digital-eval CANDIDATES --reference GROUNDTRUTH [options]
//	digital-eval inspect FILE [--frame POINTS]
//	digital-eval layout FILE --output layout.pdf
//	digital-eval score CANDIDATE REFERENCE
//	digital-eval metrics
//
// Evaluation options:
//
//	-r, --reference string   Groundtruth root directory (required)
//	    --metrics string     Comma separated metric names (default "Cs,Ls")
//	    --utf8 string        Unicode normalization: nfc, nfkc, nfd or nfkd (default "nfc")
//	-l, --language string    Stopword language of the IR metrics (default "deu")
//	-w, --workers int        Concurrent evaluations, 0 picks one from the CPU count (default 1)
//	-s, --sequential         Evaluate one candidate at a time
//	    --continue-on-error  Report failing candidates instead of aborting
//	    --by-type            Also aggregate per groundtruth type
//	    --format string      Report format: text, json, markdown, html or pdf (default "text")
//	    --details            Include per candidate scores in the report
//	-o, --output string      Report file, stdout when empty
//	-c, --config string      YAML or TOML file with defaults for the flags above
//	-v, --verbose            Increase log verbosity (repeatable)
//
// Example:
//
//	digital-eval ./odem -r ./odem-gt --metrics Cs,Ws,FM -w 4 --format markdown -o report.md
package main

import (
	"os"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
