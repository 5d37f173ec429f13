// Package report renders human-readable summaries of scoring runs.
package report

import (
	"fmt"
	"strings"

	"govmaf/internal/analysis"
	"govmaf/models"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Markdown builds a markdown report for a completed run.
func Markdown(run *models.Run, summaries []*analysis.RunSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Scoring run %s\n\n", run.ID)
	fmt.Fprintf(&b, "- Model: `%s`\n", run.ModelRef)
	fmt.Fprintf(&b, "- Frames: %d\n", run.NumFrames)
	fmt.Fprintf(&b, "- Aggregation: %s\n", run.AggregateMethod)
	fmt.Fprintf(&b, "- Aggregate score: %.4f\n", run.AggregateScore)
	if run.CILow != nil && run.CIHigh != nil {
		fmt.Fprintf(&b, "- Confidence interval: [%.4f, %.4f]\n", *run.CILow, *run.CIHigh)
	}
	b.WriteString("\n## Score streams\n\n")
	b.WriteString("| key | frames | mean | std | min | median | max |\n")
	b.WriteString("|-----|--------|------|-----|-----|--------|-----|\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "| %s | %d | %.4f | %.4f | %.4f | %.4f | %.4f |\n",
			s.Key, s.NumFrames, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
	}

	return b.String()
}

// HTML renders the markdown report to HTML for the report endpoint.
func HTML(run *models.Run, summaries []*analysis.RunSummary) []byte {
	md := []byte(Markdown(run, summaries))
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML(md, p, renderer)
}
