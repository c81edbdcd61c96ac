package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult represents a parsed BenchmarkSort result.
type BenchmarkResult struct {
	Name        string
	Algorithm   string
	Size        int
	Iterations  int
	NsPerOp     float64
	AccessesOp  float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ComparisonResult compares one strategy against the baseline at one size.
type ComparisonResult struct {
	Algorithm   string
	Size        int
	NsPerOp     float64
	Accesses    float64
	BaselineNs  float64
	BaselineAcc float64
	Speedup     float64 // baseline ns / strategy ns
	AccessRatio float64 // strategy accesses / baseline accesses
	BytesPerOp  int64
	AllocsPerOp int64
	IsBaseline  bool
	NoBaseline  bool
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	baseline   = flag.String("baseline", "merge", "Strategy the others are compared against")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	// Read benchmark output
	var scanner *bufio.Scanner
	var inputF *os.File
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		inputF = f
		scanner = bufio.NewScanner(f)
	} else {
		scanner = bufio.NewScanner(os.Stdin)
	}

	results := parseBenchmarks(scanner)
	if inputF != nil {
		inputF.Close()
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	comparisons := generateComparisons(results, *baseline)
	report := generateMarkdownReport(comparisons, *baseline)

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(report), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
		}
		return
	}
	fmt.Fprint(os.Stdout, report)
}

// BenchmarkSort/quick-merge/n=1000-8   1234   95012 ns/op   18342 accesses/op   16544 B/op   5 allocs/op
var (
	benchmarkRegex = regexp.MustCompile(`^(BenchmarkSort/(\S+)/n=(\d+))(?:-\d+)?\s+(\d+)\s+([\d.]+)\s+ns/op`)
	accessesRegex  = regexp.MustCompile(`([\d.]+)\s+accesses/op`)
	bytesRegex     = regexp.MustCompile(`(\d+)\s+B/op`)
	allocsRegex    = regexp.MustCompile(`(\d+)\s+allocs/op`)
)

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	for scanner.Scan() {
		line := scanner.Text()

		// Unwrap `go test -json` events
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}
		line = strings.TrimSpace(line)

		matches := benchmarkRegex.FindStringSubmatch(line)
		if matches == nil {
			continue
		}

		res := BenchmarkResult{Name: matches[1], Algorithm: matches[2]}
		res.Size, _ = strconv.Atoi(matches[3])
		res.Iterations, _ = strconv.Atoi(matches[4])
		res.NsPerOp, _ = strconv.ParseFloat(matches[5], 64)
		if m := accessesRegex.FindStringSubmatch(line); m != nil {
			res.AccessesOp, _ = strconv.ParseFloat(m[1], 64)
		}
		if m := bytesRegex.FindStringSubmatch(line); m != nil {
			res.BytesPerOp, _ = strconv.ParseInt(m[1], 10, 64)
		}
		if m := allocsRegex.FindStringSubmatch(line); m != nil {
			res.AllocsPerOp, _ = strconv.ParseInt(m[1], 10, 64)
		}
		results = append(results, res)
	}

	return results
}

func generateComparisons(results []BenchmarkResult, base string) []ComparisonResult {
	baselines := make(map[int]BenchmarkResult)
	for _, r := range results {
		if r.Algorithm == base {
			baselines[r.Size] = r
		}
	}

	comparisons := make([]ComparisonResult, 0, len(results))
	for _, r := range results {
		c := ComparisonResult{
			Algorithm:   r.Algorithm,
			Size:        r.Size,
			NsPerOp:     r.NsPerOp,
			Accesses:    r.AccessesOp,
			BytesPerOp:  r.BytesPerOp,
			AllocsPerOp: r.AllocsPerOp,
			IsBaseline:  r.Algorithm == base,
		}
		b, ok := baselines[r.Size]
		if !ok {
			c.NoBaseline = true
		} else {
			c.BaselineNs = b.NsPerOp
			c.BaselineAcc = b.AccessesOp
			if r.NsPerOp > 0 {
				c.Speedup = b.NsPerOp / r.NsPerOp
			}
			if b.AccessesOp > 0 {
				c.AccessRatio = r.AccessesOp / b.AccessesOp
			}
		}
		comparisons = append(comparisons, c)
	}

	// By size, then fewest accesses first
	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].Size != comparisons[j].Size {
			return comparisons[i].Size < comparisons[j].Size
		}
		return comparisons[i].Accesses < comparisons[j].Accesses
	})

	return comparisons
}

func generateMarkdownReport(comparisons []ComparisonResult, base string) string {
	var sb strings.Builder

	sb.WriteString("# Sort Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Baseline: `%s`\n\n", base))

	fewer, more := 0, 0
	for _, c := range comparisons {
		if c.IsBaseline || c.NoBaseline {
			continue
		}
		switch {
		case c.AccessRatio < 1.0:
			fewer++
		case c.AccessRatio > 1.0:
			more++
		}
	}
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total benchmarks**: %d\n", len(comparisons)))
	sb.WriteString(fmt.Sprintf("- Fewer accesses than %s: %d\n", base, fewer))
	sb.WriteString(fmt.Sprintf("- More accesses than %s: %d\n\n", base, more))

	sb.WriteString("## Detailed Results\n\n")
	size := -1
	for _, c := range comparisons {
		if c.Size != size {
			size = c.Size
			sb.WriteString(fmt.Sprintf("\n### n = %d\n\n", size))
			sb.WriteString("| Algorithm | Accesses | vs baseline | ns/op | Speedup | Memory (B/op) | Allocs |\n")
			sb.WriteString("|-----------|----------|-------------|-------|---------|---------------|--------|\n")
		}

		ratio, speedup := "*N/A*", "*N/A*"
		switch {
		case c.IsBaseline:
			ratio, speedup = "*baseline*", "*baseline*"
		case !c.NoBaseline:
			indicator := "✓"
			if c.AccessRatio > 1.0 {
				indicator = "✗"
			}
			ratio = fmt.Sprintf("%.2fx %s", c.AccessRatio, indicator)
			speedup = fmt.Sprintf("%.2fx", c.Speedup)
		}

		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s |\n",
			c.Algorithm,
			formatNumber(c.Accesses),
			ratio,
			formatNumber(c.NsPerOp),
			speedup,
			formatBytes(c.BytesPerOp),
			formatNumber(float64(c.AllocsPerOp)),
		))
	}

	sb.WriteString("\n## Notes\n\n")
	sb.WriteString("- **Accesses**: tracked Get and Set calls per sort, lower is better\n")
	sb.WriteString("- **vs baseline < 1.0**: fewer accesses than the baseline ✓\n")
	sb.WriteString("- **Speedup > 1.0**: faster than the baseline in wall time\n")

	return sb.String()
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}

func formatBytes(b int64) string {
	if b >= 1024*1024 {
		return fmt.Sprintf("%.2fMB", float64(b)/(1024*1024))
	} else if b >= 1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%dB", b)
}
