// mksample writes a company-name fixture table for the cleaner.
// The built-in sample names come first, then gofakeit companies decorated with
// random legal-entity suffixes and stray whitespace.
// Usage: go run ./cmd/mksample --out testdata/companies.parquet --rows 500 --seed 7
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/gyeh/namecleaner/internal/model"
	"github.com/gyeh/namecleaner/internal/normalize"
	"github.com/gyeh/namecleaner/internal/tabular"
)

var decorations = []string{
	"", "", "",
	" Inc.", ", Inc.", " Inc", " Incorporated",
	" Corp.", " Corporation", " Co.", " Company",
	" LLC", " L.L.C.", ", Ltd.", " Limited", " PLC",
	" L.P.", " P.C.", " Co., Ltd.",
}

func main() {
	in := flag.String("in", "", "existing table to inspect with --check")
	out := flag.String("out", "testdata/companies.csv", "output table (.csv, .parquet or .xlsx)")
	rows := flag.Int("rows", 200, "rows to write")
	seed := flag.Int64("seed", 42, "gofakeit seed")
	column := flag.String("column", model.DefaultColumn, "company name column")
	checkOnly := flag.Bool("check", false, "only print suffix stats of --in, don't write")
	flag.Parse()

	if *checkOnly {
		if *in == "" {
			fmt.Fprintln(os.Stderr, "--check requires --in")
			os.Exit(1)
		}
		tbl, _, err := tabular.Read(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input: %v\n", err)
			os.Exit(1)
		}
		if err := tabular.ValidateColumn(tbl, *column); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		names, _ := tbl.Column(*column)
		printStats(names)
		return
	}

	tbl := generate(*rows, *seed, *column)
	if err := tabular.Write(*out, tabular.DetectFormat(*out), tbl); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s\n", tbl.Len(), *out)
	names, _ := tbl.Column(*column)
	printStats(names)
}

// generate builds an id/name/city table: the sample companies first, then
// seeded fake companies with random suffix decoration.
func generate(rows int, seed int64, column string) *model.Table {
	faker := gofakeit.New(seed)
	tbl := &model.Table{Columns: []string{"company_id", column, "city"}}

	for i := 0; i < rows; i++ {
		var name string
		if i < len(model.SampleCompanies) {
			name = model.SampleCompanies[i]
		} else {
			name = faker.Company() + decorations[faker.Number(0, len(decorations)-1)]
			if faker.Number(0, 9) == 0 {
				name = "  " + name + " "
			}
		}
		tbl.Rows = append(tbl.Rows, []string{strconv.Itoa(i + 1), name, faker.City()})
	}
	return tbl
}

// suffixStats counts trailing suffixes by rule name ("" for none) and the
// rows whose cleaned value differs from the trimmed raw value.
func suffixStats(names []string) (map[string]int, int) {
	counts := make(map[string]int)
	changed := 0
	for _, raw := range names {
		if s, ok := normalize.TrailingSuffix(raw); ok {
			counts[s]++
		} else {
			counts[""]++
		}
		if normalize.CompanyName(raw) != strings.TrimSpace(raw) {
			changed++
		}
	}
	return counts, changed
}

func printStats(names []string) {
	shown := 0
	for i, raw := range names {
		cleaned := normalize.CompanyName(raw)
		if cleaned != strings.TrimSpace(raw) && shown < 3 {
			shown++
			fmt.Printf("Row %d: %q → %q\n", i+1, raw, cleaned)
		}
	}

	counts, changed := suffixStats(names)
	fmt.Printf("\nTotal: %d, Changed: %d\n", len(names), changed)
	fmt.Println("Suffix distribution:")
	for _, name := range normalize.SuffixRules() {
		if c := counts[name]; c > 0 {
			fmt.Printf("  %-14s %d\n", name, c)
		}
	}
	fmt.Printf("  %-14s %d\n", "(none)", counts[""])
}
