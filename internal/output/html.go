package output

import (
	"fmt"
	"html/template"
	"io"

	"github.com/dotcommander/bluescout/internal/scoring"
	"github.com/dotcommander/bluescout/internal/types"
)

// HTMLFormatter renders a standalone report page.
type HTMLFormatter struct {
	out io.Writer
}

// NewHTMLFormatter creates a new HTMLFormatter writing to out.
func NewHTMLFormatter(out io.Writer) *HTMLFormatter {
	return &HTMLFormatter{out: out}
}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"badgeClass":    badgeClass,
	"decisionLabel": decisionLabel,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Blue Ocean Keyword Report</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: 'Segoe UI', sans-serif;
    background: linear-gradient(135deg, #0c0c1e 0%, #1a1a3e 50%, #0f3460 100%);
    color: #fff;
    min-height: 100vh;
    padding: 20px;
  }
  .container { max-width: 1200px; margin: 0 auto; }
  .header {
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    border-radius: 16px;
    padding: 30px;
    margin-bottom: 24px;
    text-align: center;
  }
  .cards { display: flex; gap: 16px; flex-wrap: wrap; margin-bottom: 24px; }
  .card {
    flex: 1; min-width: 140px;
    background: rgba(255,255,255,0.08);
    border-radius: 12px;
    padding: 20px;
    text-align: center;
  }
  .card .value { font-size: 2em; font-weight: bold; }
  table { width: 100%; border-collapse: collapse; background: rgba(255,255,255,0.05); border-radius: 12px; overflow: hidden; }
  th, td { padding: 10px 14px; text-align: left; border-bottom: 1px solid rgba(255,255,255,0.1); }
  th { background: rgba(255,255,255,0.1); }
  .badge { padding: 3px 10px; border-radius: 10px; font-size: 0.85em; font-weight: bold; }
  .badge-build { background: #1b7f3a; }
  .badge-watch { background: #9a7b0a; }
  .badge-drop { background: #555; }
  .badge-error { background: #8b1a1a; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>Blue Ocean Keyword Report</h1>
    <p>profile: {{.Profile}} &middot; generated {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>
  </div>
  <div class="cards">
    <div class="card"><div class="value">{{.Summary.Total}}</div><div>scored</div></div>
    <div class="card"><div class="value">{{.Summary.BuildNow}}</div><div>BUILD_NOW</div></div>
    <div class="card"><div class="value">{{.Summary.Watch}}</div><div>WATCH</div></div>
    <div class="card"><div class="value">{{.Summary.Drop}}</div><div>DROP</div></div>
    <div class="card"><div class="value">{{.Summary.Opportunities}}</div><div>weak competition</div></div>
  </div>
  <table>
    <tr>
      <th>Keyword</th><th>Score</th><th>Decision</th><th>Intent</th>
      <th>Pain</th><th>Competition</th><th>pSEO</th><th>Advice</th>
    </tr>
    {{range .Results}}
    <tr>
      <td>{{.Keyword}}</td>
      <td>{{printf "%.1f" .FinalScore}}</td>
      <td><span class="badge {{badgeClass .}}">{{decisionLabel .}}</span></td>
      <td>{{.Intent.Type}}</td>
      <td>{{.Pain.Level}}</td>
      <td>{{.Competition.Level}}</td>
      <td>{{.PSEO.Potential}}</td>
      <td>{{.MonetizationAdvice}}</td>
    </tr>
    {{end}}
  </table>
</div>
</body>
</html>
`))

// htmlView is the template's data shape.
type htmlView struct {
	*Report
	Summary Summary
}

// badgeClass picks the CSS class for a result's decision badge.
func badgeClass(r scoring.ScoredResult) string {
	switch {
	case r.Status == types.StatusError:
		return "badge-error"
	case r.Decision == types.DecisionBuildNow:
		return "badge-build"
	case r.Decision == types.DecisionWatch:
		return "badge-watch"
	default:
		return "badge-drop"
	}
}

// decisionLabel is the badge text.
func decisionLabel(r scoring.ScoredResult) string {
	if r.Status == types.StatusError {
		return "ERROR"
	}
	return string(r.Decision)
}

// Format renders the page.
func (f *HTMLFormatter) Format(report *Report) error {
	view := htmlView{Report: report, Summary: report.Summarize()}
	if err := htmlTemplate.Execute(f.out, view); err != nil {
		return fmt.Errorf("error rendering HTML report: %w", err)
	}
	return nil
}
