package main

import "time"

// CLI defines the command-line interface.
type CLI struct {
	Output      string        `help:"Output directory for generated files." short:"o" default:"output"`
	Format      []string      `help:"Output format(s): json, jsonl, markdown." short:"f" enum:"json,jsonl,markdown" default:"json,jsonl"`
	RateLimit   time.Duration `help:"Minimum delay between any two requests." default:"1s"`
	Concurrency int           `help:"Maximum simultaneous in-flight fetches." default:"3"`
	Retries     int           `help:"Total fetch attempts per URL." default:"3"`
	Timeout     time.Duration `help:"Per-request timeout, independent of retry backoff." default:"30s"`
	IncludeHTML bool          `help:"Retain raw HTML on each article (increases output size)."`
	DryRun      bool          `help:"Print the planned fetches without making any requests."`
	Verbose     bool          `help:"Enable debug logging." short:"v"`
}
