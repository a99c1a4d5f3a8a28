package render

import (
	"html/template"
	"io"
	"time"

	"github.com/heliodyne/sdo-timeline/internal/domain"
)

var pageTemplate = template.Must(template.New("timeline").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
th { background: #f0f0f0; }
tr:nth-child(even) { background: #fafafa; }
.meta { color: #666; font-size: 0.9rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">{{.Count}} periods. Generated {{.GeneratedAt}} UTC.
Download: <a href="timeline.csv">CSV</a> | <a href="timeline.txt">TSV</a>.</p>
<p class="meta">Aggregated automatically from public LMSAL/JSOC operational
pages. The upstream sources disclaim accuracy and so does this table.</p>
<table>
<tr><th>Start</th><th>End</th><th>Source</th><th>Instrument</th><th>Comment</th></tr>
{{range .Entries -}}
<tr><td>{{.StartLabel}}</td><td>{{.EndLabel}}</td><td>{{.Source}}</td><td>{{.Instrument}}</td><td>{{.Comment}}</td></tr>
{{end -}}
</table>
</body>
</html>
`))

type pageData struct {
	Title       string
	GeneratedAt string
	Count       int
	Entries     []domain.Entry
}

// WriteHTML renders the browsable timeline page. Output is a pure function of
// the arguments; callers supply the generated-at stamp so identical input
// yields identical bytes.
func WriteHTML(w io.Writer, title string, generatedAt time.Time, entries []domain.Entry) error {
	data := pageData{
		Title:       title,
		GeneratedAt: generatedAt.UTC().Format(domain.TimestampFormat),
		Count:       len(entries),
		Entries:     entries,
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return &RenderError{Artifact: "index.html", Err: err}
	}
	return nil
}
