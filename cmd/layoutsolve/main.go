package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dashua-baba/layoutsolve/pkg/config"
	"github.com/dashua-baba/layoutsolve/pkg/export"
	"github.com/dashua-baba/layoutsolve/pkg/room"
	"github.com/dashua-baba/layoutsolve/pkg/solver"
)

const version = "1.0.0"

// CLI flags
var (
	configPath = flag.String("config", "", "Path to YAML problem file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "json", "Export format: json, svg, or all")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("layoutsolve version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading problem from %s\n", *configPath)
	}

	problem, err := config.LoadProblem(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load problem: %w", err)
	}

	if *verbose {
		fmt.Printf("Boundary: %gx%g\n", problem.Boundary.Width, problem.Boundary.Height)
		fmt.Printf("Rooms: %d\n", len(problem.Requirements))
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Solving layout...")
	}

	solution, stats, err := solver.Solve(problem)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Solved in %v\n", elapsed)
		printStats(solution, stats)
	}

	fingerprint, err := config.Fingerprint(problem)
	baseName := "layout"
	if err == nil {
		baseName = fmt.Sprintf("layout_%x", fingerprint[:4])
	}

	if *format == "json" || *format == "all" {
		if err := exportJSON(solution, baseName); err != nil {
			return err
		}
	}

	if *format == "svg" || *format == "all" {
		if err := exportSVG(solution, problem, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully solved layout (%d rooms, score=%.1f) in %v\n",
		len(solution.Rooms), solution.TotalScore, elapsed)
	return nil
}

func exportJSON(solution *solver.LayoutSolution, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}

	if err := export.SaveJSONToFile(solution, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}

	if *verbose {
		info, _ := os.Stat(filename)
		fmt.Printf("  Wrote %d bytes\n", info.Size())
	}
	return nil
}

func exportSVG(solution *solver.LayoutSolution, problem *room.Problem, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}

	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("Floor plan (%d rooms)", len(problem.Requirements))

	if err := export.SaveSVGToFile(solution, problem, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}

	if *verbose {
		info, _ := os.Stat(filename)
		fmt.Printf("  Wrote %d bytes\n", info.Size())
	}
	return nil
}

func printStats(solution *solver.LayoutSolution, stats solver.Stats) {
	fmt.Println("\nSolve Statistics:")
	fmt.Printf("  Candidates generated: %d\n", stats.CandidatesGenerated)
	fmt.Printf("  Candidates pruned: %d\n", stats.CandidatesPruned)
	fmt.Printf("  Nodes visited: %d\n", stats.NodesVisited)
	fmt.Printf("  Backtracks: %d\n", stats.Backtracks)
	fmt.Printf("  Total score: %.1f\n", solution.TotalScore)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: layoutsolve -config <problem.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'layoutsolve -help' for detailed help")
}

func printHelp() {
	fmt.Printf("layoutsolve version %s\n\n", version)
	fmt.Println("A command-line tool for solving 2D floor-plan layout constraints.")
	fmt.Println("\nUsage:")
	fmt.Println("  layoutsolve -config <problem.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML problem file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, svg, or all (default: json)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Solve a layout with default JSON export")
	fmt.Println("  layoutsolve -config house.yaml")
	fmt.Println("\n  # Solve with both export formats and verbose output")
	fmt.Println("  layoutsolve -config house.yaml -format all -output ./out -verbose")
	fmt.Println("\nProblem File:")
	fmt.Println("  The YAML problem file specifies:")
	fmt.Println("  - boundary (width, height)")
	fmt.Println("  - requirements: a list of rooms, each with id, minArea,")
	fmt.Println("    adjacentTo, notAdjacentTo, and hasExteriorWall")
}
