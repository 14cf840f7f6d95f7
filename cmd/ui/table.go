package ui

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// CommitRow is one line of a commit table.
type CommitRow struct {
	ID      string
	Date    string
	Message string
}

const (
	shortIDLength    = 8
	maxMessageLength = 50
)

// CommitTable renders rows as a compact table under a title banner.
func CommitTable(w io.Writer, title string, rows []CommitRow) error {
	if _, err := fmt.Fprintln(w, Header(" "+title+" ")); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Commit", "Date", "Message")

	for _, row := range rows {
		id := row.ID
		if len(id) > shortIDLength {
			id = id[:shortIDLength]
		}
		if err := table.Append(Yellow(id), Magenta(row.Date), truncate(row.Message, maxMessageLength)); err != nil {
			return err
		}
	}
	return table.Render()
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
