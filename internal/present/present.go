// Package present renders query result rows for the CLI: a tabular,
// human-friendly form on a terminal, and a plain comma-joined form when
// the output is piped. Spec.md §1 names "output pretty-printing" as an
// out-of-core external collaborator; this is that collaborator.
package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// Printer writes formatted result rows to an output stream.
type Printer struct {
	out   io.Writer
	plain bool
}

// NewPrinter builds a Printer that auto-detects whether out is a
// terminal; when it isn't (a pipe, a file), rows are rendered in a plain,
// script-friendly form instead of a padded table.
func NewPrinter(out io.Writer, fd uintptr) *Printer {
	return &Printer{out: out, plain: !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)}
}

// Rows prints the column headers, every row, and a row-count summary.
func (p *Printer) Rows(columns []string, rows [][]string, elapsed string) {
	if p.plain {
		p.plainRows(columns, rows)
	} else {
		p.tableRows(columns, rows)
	}
	fmt.Fprintf(p.out, "(%s row%s in %s)\n", humanize.Comma(int64(len(rows))), plural(len(rows)), elapsed)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func (p *Printer) plainRows(columns []string, rows [][]string) {
	fmt.Fprintln(p.out, strings.Join(columns, ","))
	for _, row := range rows {
		fmt.Fprintln(p.out, strings.Join(row, ","))
	}
}

func (p *Printer) tableRows(columns []string, rows [][]string) {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, v := range row {
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = padRight(c, widths[i])
		}
		fmt.Fprintln(p.out, strings.Join(parts, " | "))
	}

	printRow(columns)
	sep := make([]string, len(columns))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	fmt.Fprintln(p.out, strings.Join(sep, "-+-"))
	for _, row := range rows {
		printRow(row)
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
