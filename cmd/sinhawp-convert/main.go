// sinhawp-convert reads Singlish text from stdin and writes the Sinhala
// transliteration to stdout, one line at a time. Tokens without a dataset
// match pass through unchanged.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"sinhawp/internal/spell"
	"sinhawp/internal/translit"
	"sinhawp/internal/wordmap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sinhawp-convert: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	wordMapPath := flag.String("wordmap", "sinhalawordmap.json", "path to the Singlish word map JSON")
	userDictPath := flag.String("userdict", "", "optional user dictionary JSON merged over the word map")
	check := flag.Bool("check", false, "report Sinhala words missing from the word map on stderr")
	flag.Parse()

	words, err := wordmap.Load(*wordMapPath)
	if err != nil {
		return err
	}
	if *userDictPath != "" {
		dict, err := wordmap.LoadUserDict(*userDictPath)
		if err != nil {
			return err
		}
		dict.MergeInto(words)
	}
	engine := translit.New(words)
	var checker *spell.Checker
	if *check {
		checker = spell.New(words)
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		converted := convertLine(engine, scanner.Text())
		if _, err := fmt.Fprintln(writer, converted); err != nil {
			return err
		}
		if checker != nil {
			reportUnknown(os.Stderr, checker, lineNo, converted)
		}
	}
	return scanner.Err()
}

// reportUnknown writes one line per Sinhala word the word map does not
// know, so -check output can be grepped by line number.
func reportUnknown(w io.Writer, checker *spell.Checker, lineNo int, text string) {
	for _, span := range checker.CheckText(text) {
		fmt.Fprintf(w, "line %d: unknown word: %s\n", lineNo, span.Word)
	}
}

// convertLine transliterates each alphanumeric token and keeps every
// delimiter byte where it was.
func convertLine(engine *translit.Engine, line string) string {
	var out strings.Builder
	var token strings.Builder
	flush := func() {
		if token.Len() > 0 {
			out.WriteString(engine.Transliterate(token.String()))
			token.Reset()
		}
	}
	for _, r := range line {
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			token.WriteRune(r)
			continue
		}
		flush()
		out.WriteRune(r)
	}
	flush()
	return out.String()
}
