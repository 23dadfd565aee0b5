package cmdutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/barun-bash/uic/internal/cli"
	"github.com/barun-bash/uic/internal/syntax"
)

const maxSearchResults = 15

// RunSyntax prints the language reference: every section, one section,
// or the patterns matching search.
func RunSyntax(out io.Writer, section, search string) error {
	switch {
	case search != "":
		printSearch(out, search)
	case section != "":
		cat, ok := syntax.Lookup(section)
		if !ok {
			names := make([]string, 0, len(syntax.AllCategories()))
			for _, c := range syntax.AllCategories() {
				names = append(names, string(c))
			}
			return fmt.Errorf("unknown section %q (available: %s)", section, strings.Join(names, ", "))
		}
		printSection(out, cat, true)
	default:
		fmt.Fprintf(out, "%s\n\n", cli.Heading("uic syntax reference"))
		for _, cat := range syntax.AllCategories() {
			printSection(out, cat, false)
		}
	}
	return nil
}

func printSection(out io.Writer, cat syntax.Category, examples bool) {
	header := fmt.Sprintf("── %s ", syntax.CategoryLabel(cat))
	pad := max(0, 50-len([]rune(header)))
	fmt.Fprintf(out, "%s\n\n", cli.Heading(header+strings.Repeat("─", pad)))

	for _, p := range syntax.ByCategory(cat) {
		fmt.Fprintf(out, "  %-44s %s\n", p.Template, cli.Muted(p.Description))
		if examples && p.Example != "" {
			for _, line := range strings.Split(p.Example, "\n") {
				fmt.Fprintf(out, "      %s\n", cli.Info(strings.ReplaceAll(line, "\t", "    ")))
			}
		}
	}
	fmt.Fprintln(out)
}

func printSearch(out io.Writer, query string) {
	results := syntax.Search(query)
	if len(results) == 0 {
		fmt.Fprintf(out, "No patterns matching %q found.\n", query)
		return
	}

	fmt.Fprintf(out, "%s\n\n", cli.Heading(fmt.Sprintf("Found %d pattern%s matching %q:", len(results), Plural(len(results)), query)))
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	for _, p := range results {
		fmt.Fprintf(out, "  %-44s %s\n", p.Template, cli.Muted(fmt.Sprintf("(%s)", p.Category)))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.Muted(fmt.Sprintf("Tip: run 'uic syntax %s' for the full section.", results[0].Category)))
}
