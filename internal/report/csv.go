package report

import (
	"fmt"
	"io"
	"strings"
)

// CSVHeader is the export header row.
var CSVHeader = []string{"Project", "User", "Date", "Hours", "Description"}

// CSVRows shapes entries for export: display-formatted date, hours as
// "X.XXh", header row first.
func CSVRows(entries []Entry) [][]string {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, CSVHeader)
	for _, e := range entries {
		rows = append(rows, []string{
			e.ProjectName,
			e.UserName,
			DisplayDate(e.Date),
			fmt.Sprintf("%.2fh", e.Hours),
			e.Description,
		})
	}
	return rows
}

// WriteCSV writes entries as comma-separated rows with a header. Fields are
// written unquoted, so a description containing a comma shifts the columns
// of its row; consumers depend on the fixed five-column layout and quoting
// would change the contract for every well-formed row.
func WriteCSV(w io.Writer, entries []Entry) error {
	for _, row := range CSVRows(entries) {
		if _, err := io.WriteString(w, strings.Join(row, ",")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Page is one page of a filtered report plus its filtered-set summary.
type Page struct {
	Entries      []Entry `json:"entries"`
	TotalEntries int     `json:"total_entries"`
	TotalHours   float64 `json:"total_hours"`
	Page         int     `json:"page"`
	PageSize     int     `json:"page_size"`
}
