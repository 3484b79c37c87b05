package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jrsteele09/go-budget-client/budget"
	"github.com/jrsteele09/go-budget-client/errorfmt"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/urfave/cli/v3"
)

// RenderError prints err as "<title>: <description>". Errors that carry no
// response body add their own text below, since the generic description
// alone says nothing about what went wrong locally.
func RenderError(w io.Writer, err error) {
	if err == nil {
		return
	}
	normalized := errorfmt.Format(err)
	_, _ = fmt.Fprintln(w, normalized.String())
	if normalized.Description == errorfmt.MessageUnexpected {
		_, _ = fmt.Fprintf(w, "  %v\n", err)
	}
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "Nothing found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Options(
		tablewriter.WithHeader(headers),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(len(headers), tw.AlignLeft)),
	)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func renderPageFooter[T any](w io.Writer, page *budget.Page[T]) {
	if page.Count > len(page.Results) {
		_, _ = fmt.Fprintf(w, "Showing %d of %d (page size %d)\n", len(page.Results), page.Count, page.PageSize)
	}
}

func idArg(c *cli.Command, what string) (int64, error) {
	if c.Args().Len() == 0 {
		return 0, fmt.Errorf("%s id required\n\nUsage: %s", what, c.UsageText)
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, c.Args().First())
	}
	return id, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatOptionalID(id *int64) string {
	if id == nil {
		return "-"
	}
	return formatID(*id)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func listOptions(c *cli.Command) budget.ListOptions {
	return budget.ListOptions{
		Page:     int(c.Int("page")),
		PageSize: int(c.Int("page-size")),
		Search:   c.String("search"),
	}
}

func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page", Usage: "page number"},
		&cli.IntFlag{Name: "page-size", Usage: "results per page"},
		&cli.StringFlag{Name: "search", Usage: "search term"},
	}
}
