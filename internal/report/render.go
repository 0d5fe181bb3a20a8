package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/iamfit/internal/recommend"
)

// Format is an export format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatMarkdown, FormatHTML}

// ParseFormat resolves a format name. Common aliases are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	default:
		return ".json"
	}
}

// Filename returns the default export file name for f.
func (f Format) Filename() string {
	if f == FormatJSON {
		return DefaultFilename
	}
	return strings.TrimSuffix(DefaultFilename, ".json") + f.Ext()
}

// Render encodes r in format f.
func Render(r Report, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(r, "", "  ")
	case FormatYAML:
		return yaml.Marshal(r)
	case FormatMarkdown:
		return []byte(Markdown(r)), nil
	case FormatHTML:
		return HTML(r)
	default:
		return nil, fmt.Errorf("unknown report format %q", f)
	}
}

// Markdown renders r as a Markdown document.
func Markdown(r Report) string {
	var b strings.Builder
	rec := r.Recommendation

	b.WriteString("# Your IAM Assessment Results\n\n")
	b.WriteString("Discover your readiness for Identity & Access Management careers.\n\n")
	fmt.Fprintf(&b, "**Overall score:** %d/100 (%s)\n\n", r.Scores.Overall, rec.Headline)
	fmt.Fprintf(&b, "%s\n\n", rec.Message)

	b.WriteString("## WISCAR Analysis\n\n")
	b.WriteString("| Dimension | Score | Description |\n|---|---:|---|\n")
	for _, d := range recommend.Dimensions() {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", d.Label, r.Scores.Get(d.Dimension), d.Description)
	}

	b.WriteString("\n## Career Path Matches\n\n")
	for _, m := range recommend.CareerMatches(r.Scores) {
		fmt.Fprintf(&b, "- **%s** (%d%%): %s\n", m.Title, m.Score, m.Description)
	}

	b.WriteString("\n## Next Steps\n\n")
	for i, s := range rec.NextSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}

	b.WriteString("\n## Learning Resources\n\n")
	for _, res := range recommend.Resources() {
		fmt.Fprintf(&b, "- **%s**: %s\n", res.Title, res.Description)
	}

	fmt.Fprintf(&b, "\n_Generated %s, rubric %s._\n", r.Timestamp.Format("2006-01-02 15:04 MST"), r.RubricVersion)
	return b.String()
}

// HTML renders r as a standalone HTML page.
func HTML(r Report) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.New(goldmark.WithExtensions(extension.GFM)).Convert([]byte(Markdown(r)), &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	out.WriteString("<title>IAM Assessment Results</title>\n</head>\n<body>\n")
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")
	return out.Bytes(), nil
}
