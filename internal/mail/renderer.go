// Package mail renders the daily report as HTML and delivers it over SMTP.
package mail

import (
	"bytes"
	"crmdigest/internal/models"
	"crmdigest/internal/structures"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode/utf8"
)

//go:embed templates/report.html
var templates embed.FS

const (
	SubjectPrefix   = "Daily Analytics Report - "
	generatedLayout = "2006-01-02 15:04:05 MST"
	excerptRunes    = 280
)

type RendererInterface interface {
	Render(report *models.Report) (string, error)
	Subject(report *models.Report) string
}

type Renderer struct {
	tmpl *template.Template
	loc  *time.Location
	now  func() time.Time
}

type view struct {
	Report      *models.Report
	GeneratedAt string
}

// NewRenderer parses the embedded template. Generation times are shown in loc.
func NewRenderer(loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.Local
	}
	tmpl, err := template.New("report.html").Funcs(template.FuncMap{
		"stamp":   func(ts models.Timestamp) string { return stamp(ts, loc) },
		"excerpt": excerpt,
		"money":   money,
	}).ParseFS(templates, "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &Renderer{tmpl: tmpl, loc: loc, now: time.Now}, nil
}

func (r *Renderer) Render(report *models.Report) (string, error) {
	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, view{
		Report:      report,
		GeneratedAt: r.now().In(r.loc).Format(generatedLayout),
	})
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) Subject(report *models.Report) string {
	return SubjectPrefix + report.DateLabel
}

func stamp(ts models.Timestamp, loc *time.Location) string {
	return ts.Label(loc)
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= excerptRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:excerptRunes]) + "…"
}

func money(value float64, currency string) string {
	return strings.TrimSpace(fmt.Sprintf("%.2f %s", value, currency))
}

// ProvideRenderer builds the renderer for the configured report timezone.
func ProvideRenderer(conf *structures.Config) (RendererInterface, error) {
	loc, err := time.LoadLocation(conf.Schedule.Timezone)
	if err != nil {
		loc = time.Local
	}
	return NewRenderer(loc)
}
