// Package report renders harness results as a markdown table and as HTML.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"

	"github.com/tedmax100/sharedcounter/harness"
)

const title = "# Shared counter runs"

// Status 描述一次 run 的結果
func Status(r harness.Result) string {
	switch {
	case r.Consistent():
		return "ok"
	case r.Policy.Guaranteed():
		return "VIOLATION"
	default:
		return "lost updates"
	}
}

func Markdown(results []harness.Result) string {
	var b strings.Builder
	b.WriteString(title + "\n\n")
	if len(results) == 0 {
		b.WriteString("No runs recorded.\n")
		return b.String()
	}
	b.WriteString("| Policy | Workers | Iterations | Observed | Expected | Lost | Status |\n")
	b.WriteString("|---|---:|---:|---:|---:|---:|---|\n")
	for _, r := range results {
		fmt.Fprintf(&b, "| %v | %d | %d | %d | %d | %d | %s |\n",
			r.Policy, r.Workers, r.Iterations, r.Observed, r.Expected, r.Lost(), Status(r))
	}
	return b.String()
}

// HTML renders Markdown(results) with the default gomarkdown extensions, tables included.
func HTML(results []harness.Result) []byte {
	return markdown.ToHTML([]byte(Markdown(results)), nil, nil)
}
