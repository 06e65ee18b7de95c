package model

// SampleCompanies is the built-in demo data set.
var SampleCompanies = []string{
	"Apple Inc.",
	"Microsoft Corporation",
	"Amazon.com, Inc.",
	"Tesla, Inc.",
	"Walmart Inc.",
	"Netflix, Co.",
	"Meta Platforms, Inc.",
	"Alphabet Inc.",
	"Toyota Motor Corporation",
	"Samsung Electronics Co., Ltd.",
}

// SampleTable returns the demo names as a one-column table.
func SampleTable(column string) *Table {
	rows := make([][]string, len(SampleCompanies))
	for i, name := range SampleCompanies {
		rows[i] = []string{name}
	}
	return &Table{Columns: []string{column}, Rows: rows}
}
