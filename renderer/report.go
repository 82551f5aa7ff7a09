package renderer

import (
	"github.com/msallak/tharwa"
)

// ReportMarkdown renders the portfolio summary report to markdown.
func ReportMarkdown(r *tharwa.Report) string {
	return renderTemplate("report.md", r)
}

// ZakatMarkdown renders a zakat calculation result to markdown.
func ZakatMarkdown(z *tharwa.ZakatReport) string {
	return renderTemplate("zakat.md", z)
}
