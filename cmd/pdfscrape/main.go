// Command pdfscrape extracts targeted text data from PDF files.
//
// With no patterns it dumps reconstructed page text; with -pattern or
// -patterns-file it evaluates keyword-relative extraction rules
// against every page. Results are written as TSV, either to a single
// file or split per input PDF.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	scraper "github.com/RedBearAK/Simple-PDF-Scraper"
	"github.com/RedBearAK/Simple-PDF-Scraper/pkg/extractors"
	"github.com/RedBearAK/Simple-PDF-Scraper/pkg/output"
)

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

var log = logrus.New()

func main() {
	os.Exit(run())
}

func run() int {
	var patternFlags stringList
	flag.Var(&patternFlags, "pattern", "pattern 'keyword:direction:distance:extract_type' (repeatable)")
	patternsFile := flag.String("patterns-file", "", "file containing patterns, one per line")
	dumpText := flag.Bool("dump-text", false, "extract and output all text content (default if no patterns given)")
	outputPath := flag.String("output", "extracted_data.tsv", "output file name (ignored with -split-output)")
	splitOutput := flag.Bool("split-output", false, "create a separate TSV file per PDF (invoice.pdf -> invoice.tsv)")
	headerList := flag.String("headers", "", "comma-separated column headers (default: pattern keywords)")
	verbose := flag.Bool("verbose", false, "show detailed processing information")
	flag.Usage = usage
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() == 0 {
		usage()
		return 1
	}

	dumpMode := *dumpText || (len(patternFlags) == 0 && *patternsFile == "")

	var patterns []extractors.Pattern
	if !dumpMode {
		var err error
		patterns, err = loadPatterns(patternFlags, *patternsFile)
		if err != nil {
			log.Errorf("parsing patterns: %v", err)
			return 1
		}
		if len(patterns) == 0 {
			log.Error("no valid patterns specified")
			return 1
		}
	}

	pdfFiles := expandFilePaths(flag.Args())
	if len(pdfFiles) == 0 {
		log.Error("no PDF files found")
		return 1
	}

	log.Debugf("found %d PDF files to process", len(pdfFiles))
	if dumpMode {
		log.Debug("mode: text dump")
	} else {
		log.Debugf("mode: pattern extraction with %d patterns", len(patterns))
	}

	headers, err := buildHeaders(dumpMode, *headerList, patterns)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	rowsByFile := collectRows(pdfFiles, dumpMode, patterns)

	writer := output.NewTSVWriter()
	if *splitOutput {
		return writeSplit(writer, headers, pdfFiles, rowsByFile, dumpMode)
	}
	return writeSingle(writer, *outputPath, headers, pdfFiles, rowsByFile, dumpMode)
}

// loadPatterns parses inline -pattern flags or a patterns file; the
// two sources are mutually exclusive, inline flags win.
func loadPatterns(inline stringList, file string) ([]extractors.Pattern, error) {
	if len(inline) > 0 {
		patterns := make([]extractors.Pattern, 0, len(inline))
		for _, s := range inline {
			p, err := extractors.ParsePattern(s)
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, p)
		}
		return patterns, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("opening patterns file: %w", err)
	}
	defer f.Close()
	return extractors.ParsePatterns(f)
}

// expandFilePaths expands glob patterns, keeps only PDF paths, and
// returns them deduplicated and sorted.
func expandFilePaths(args []string) []string {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		if strings.ContainsAny(arg, "*?[") {
			matches, err := filepath.Glob(arg)
			if err != nil {
				log.Warnf("skipping bad glob pattern %q: %v", arg, err)
				continue
			}
			for _, m := range matches {
				if isPDF(m) {
					add(m)
				}
			}
			continue
		}

		if isPDF(arg) {
			if _, err := os.Stat(arg); err == nil {
				add(arg)
				continue
			}
		}
		log.Warnf("skipping non-PDF or non-existent file: %s", arg)
	}

	sort.Strings(files)
	return files
}

func isPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

func buildHeaders(dumpMode bool, headerList string, patterns []extractors.Pattern) ([]string, error) {
	if dumpMode {
		return []string{"filename", "page", "text_content"}, nil
	}

	headers := []string{"filename", "page"}
	if headerList != "" {
		custom := strings.Split(headerList, ",")
		if len(custom) != len(patterns) {
			return nil, fmt.Errorf("number of headers (%d) must match number of patterns (%d)", len(custom), len(patterns))
		}
		return append(headers, custom...), nil
	}
	for _, p := range patterns {
		headers = append(headers, p.Keyword)
	}
	return headers, nil
}

// collectRows extracts one row set per input file. Dump mode yields a
// row per page; pattern mode yields a row per page that matched at
// least one pattern, with absent values as empty cells.
func collectRows(pdfFiles []string, dumpMode bool, patterns []extractors.Pattern) map[string][][]string {
	extractor := extractors.NewPatternExtractor()
	rowsByFile := make(map[string][][]string)

	for _, pdfFile := range pdfFiles {
		log.Debugf("processing: %s", pdfFile)

		pages, err := scraper.ExtractPages(pdfFile)
		if err != nil {
			log.Errorf("error processing %s: %v", pdfFile, err)
			continue
		}

		var rows [][]string
		for pageNum, pageText := range pages {
			row := []string{pdfFile, strconv.Itoa(pageNum + 1)}

			if dumpMode {
				rows = append(rows, append(row, pageText))
				continue
			}

			matched := false
			for _, result := range extractor.ExtractAll(pageText, patterns) {
				row = append(row, result.Value)
				if result.Found {
					matched = true
				}
			}
			if matched {
				rows = append(rows, row)
			}
		}
		rowsByFile[pdfFile] = rows
	}

	return rowsByFile
}

func writeSplit(writer *output.TSVWriter, headers []string, pdfFiles []string, rowsByFile map[string][][]string, dumpMode bool) int {
	processed := 0
	for _, pdfFile := range pdfFiles {
		rows := rowsByFile[pdfFile]
		if len(rows) == 0 {
			continue
		}

		base := filepath.Base(pdfFile)
		outFile := strings.TrimSuffix(base, filepath.Ext(base)) + ".tsv"
		if err := writer.WriteResults(outFile, headers, rows); err != nil {
			log.Errorf("error writing %s: %v", outFile, err)
			continue
		}

		log.Debugf("  wrote %d rows to %s", len(rows), outFile)
		processed++
	}

	if processed == 0 {
		if dumpMode {
			log.Error("no text could be extracted from any files")
		} else {
			log.Error("no matching patterns found in any files")
		}
		return 1
	}
	log.Debugf("successfully processed %d/%d files", processed, len(pdfFiles))
	return 0
}

func writeSingle(writer *output.TSVWriter, outputPath string, headers []string, pdfFiles []string, rowsByFile map[string][][]string, dumpMode bool) int {
	var allRows [][]string
	for _, pdfFile := range pdfFiles {
		allRows = append(allRows, rowsByFile[pdfFile]...)
	}

	if len(allRows) == 0 {
		if dumpMode {
			log.Error("no text could be extracted from any files")
		} else {
			log.Error("no data extracted from any files")
		}
		return 1
	}

	if err := writer.WriteResults(outputPath, headers, allRows); err != nil {
		log.Errorf("error writing results: %v", err)
		return 1
	}

	log.Debugf("wrote %d rows to %s", len(allRows), outputPath)
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: pdfscrape [options] file.pdf [more.pdf | *.pdf ...]

Extract targeted text data from PDF files.

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Pattern format: keyword:direction:distance:extract_type
  keyword:       text to search for
  direction:     left, right, above, below
  distance:      number of words/lines to move
  extract_type:  word, number, line, text

Examples:
  pdfscrape invoice.pdf
  pdfscrape -dump-text -output all_content.tsv *.pdf
  pdfscrape -pattern "Invoice Number:right:2:number" -headers Invoice invoice.pdf
  pdfscrape -patterns-file patterns.txt -split-output *.pdf
`)
}
