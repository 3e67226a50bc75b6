// Command qtextcheck is a small end-to-end exercise of the qtext library: it
// reads lines of UTF-8 text from stdin, normalizes each, searches it, and
// reports the result, parsing its options with the standard flag package and
// exiting with os.Exit on error, the plain style the teacher's own
// tools/build.go uses for its command-line surface.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"j5.nz/qtext/compare"
	"j5.nz/qtext/convert"
	"j5.nz/qtext/matcher"
	"j5.nz/qtext/normalize"
	"j5.nz/qtext/uview"
)

func main() {
	find := flag.String("find", "", "substring to search for")
	ci := flag.Bool("i", false, "case-insensitive search")
	form := flag.String("normalize", "nfc", "normalization form: nfd, nfc, nfkd, nfkc")
	flag.Parse()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := processLine(scanner.Text(), *find, *ci, *form); err != nil {
			fmt.Fprintln(os.Stderr, "qtextcheck:", err)
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "qtextcheck:", err)
		os.Exit(1)
	}
}

func processLine(line, find string, ci bool, formName string) error {
	view := uview.StringView{Data: convert.UTF8ToUTF16([]byte(line))}

	f, err := parseForm(formName)
	if err != nil {
		return err
	}
	normalized := normalize.Normalize(view, f, "")
	fmt.Printf("normalized: %q\n", normalized.View().Data)

	if find == "" {
		return nil
	}
	cs := uview.CaseSensitive
	cmpCS := compare.CaseSensitive
	if ci {
		cs = uview.CaseInsensitive
		cmpCS = compare.CaseInsensitive
	}
	needle := uview.StringView{Data: convert.UTF8ToUTF16([]byte(find))}
	m := matcher.New(needle, cs)
	pos := m.IndexIn(normalized.View(), 0)
	fmt.Printf("index: %d\n", pos)

	if pos >= 0 {
		eq := compare.Equal(needle, normalized.View(), cmpCS)
		fmt.Printf("whole-line match: %v\n", eq)
	}
	return nil
}

func parseForm(name string) (normalize.Form, error) {
	switch name {
	case "nfd":
		return normalize.NFD, nil
	case "nfc":
		return normalize.NFC, nil
	case "nfkd":
		return normalize.NFKD, nil
	case "nfkc":
		return normalize.NFKC, nil
	default:
		return 0, fmt.Errorf("unknown normalization form %q", name)
	}
}
