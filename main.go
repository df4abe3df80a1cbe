package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/SidInNJ/statements2csv/internal/api"
	"github.com/SidInNJ/statements2csv/internal/config"
	"github.com/SidInNJ/statements2csv/internal/extractor"
	"github.com/SidInNJ/statements2csv/internal/parser"
	"github.com/SidInNJ/statements2csv/internal/summary"
	"github.com/SidInNJ/statements2csv/internal/writer"
)

const version = "1.0.0"

func main() {
	outputFlag := flag.String("output", "", "Output CSV file path (defaults to input filename with .csv extension)")
	serveFlag := flag.Bool("serve", false, "Run the HTTP convert API instead of converting files")
	addrFlag := flag.String("addr", "", "Listen address for -serve (overrides STATEMENTS_ADDR)")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `WSFS Statement PDF to CSV Converter

Extracts transactions from WSFS bank statement PDFs and writes them as CSV
together with exact-match and partial-match summary totals.

Usage:
  statements2csv [flags] [statement.pdf ...]

With no arguments, PDF files in the working directory are listed for
interactive selection.

Flags:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("statements2csv v%s\n", version)
		os.Exit(0)
	}

	cfg := config.Load()
	log.SetLevel(cfg.LogLevel)

	if *serveFlag {
		addr := cfg.Addr
		if *addrFlag != "" {
			addr = *addrFlag
		}
		log.Info("starting convert API", "addr", addr)
		if err := api.NewApp().Listen(addr); err != nil {
			fatalf("server error: %v\n", err)
		}
		return
	}

	inputFiles := flag.Args()
	if len(inputFiles) == 0 {
		picked, err := pickPDF()
		if err != nil {
			fatalf("%v\n", err)
		}
		inputFiles = []string{picked}
	}

	for _, inputPath := range inputFiles {
		if err := processFile(inputPath, *outputFlag, cfg.OutputDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

// pickPDF lists the PDF files in the working directory for interactive
// selection, or prompts for a filename when there are none.
func pickPDF() (string, error) {
	matches, _ := filepath.Glob("*.pdf")
	upper, _ := filepath.Glob("*.PDF")
	matches = append(matches, upper...)

	var choice string
	var form *huh.Form
	if len(matches) == 0 {
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Enter the PDF filename").
				Value(&choice),
		))
	} else {
		form = huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a PDF file").
				Options(huh.NewOptions(matches...)...).
				Value(&choice),
		))
	}
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("file selection aborted: %w", err)
	}
	if choice == "" {
		return "", fmt.Errorf("no PDF file selected")
	}
	return choice, nil
}

func processFile(inputPath, outputPath, outputDir string) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	if ext := strings.ToLower(filepath.Ext(inputPath)); ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	pages, err := extractor.ExtractText(inputPath)
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}
	fmt.Printf("  Extracted text from %d page(s)\n", len(pages))

	stmt := parser.New().Parse(pages)
	stmt.SourceFile = inputPath
	fmt.Printf("  Found %d transaction(s)\n", len(stmt.Transactions))
	if stmt.SkippedLines > 0 {
		fmt.Printf("  Skipped %d malformed line(s)\n", stmt.SkippedLines)
	}

	if len(stmt.Transactions) == 0 {
		return fmt.Errorf("no transactions found in statement")
	}

	rep := summary.Build(stmt.Transactions)

	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		dir := outputDir
		if dir == "" {
			dir = filepath.Dir(inputPath)
		}
		outPath = filepath.Join(dir, base+".csv")
	}

	w := &writer.CSVWriter{BOM: true}
	if err := w.WriteToFile(outPath, rep); err != nil {
		return fmt.Errorf("CSV write failed: %w", err)
	}

	printSummary(rep)
	fmt.Printf("Data saved to %s\n", outPath)
	return nil
}

func printSummary(rep *summary.Report) {
	if len(rep.Groups) == 0 {
		fmt.Println("\nNo groups found for summarization.")
		return
	}
	fmt.Println("\nSummary Totals:")
	for _, g := range rep.Groups {
		fmt.Printf("\n%s\n", writer.GroupLabel(g))
		if g.Withdrawals.IsPositive() {
			fmt.Printf("  Total Withdrawals: $%s\n", g.Withdrawals.StringFixed(2))
		}
		if g.Deposits.IsPositive() {
			fmt.Printf("  Total Deposits: $%s\n", g.Deposits.StringFixed(2))
		}
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
