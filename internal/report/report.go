// Package report renders composed results into email-ready HTML and plain
// text. Output is handed to delivery collaborators (mail, download); it only
// needs to stay human-readable, nothing parses it.
package report

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/tbakker/roofscope/internal/location"
	"github.com/tbakker/roofscope/internal/present"
)

// Input carries everything a report needs. Sections come from the composer;
// the rest is display metadata.
type Input struct {
	ProjectName string
	RoofType    string
	AreaM2      float64
	Location    *location.Location
	Sections    []present.Section
	GeneratedAt time.Time
}

// data is the template payload derived from Input.
type data struct {
	ProjectName string
	RoofType    string
	Area        string
	Address     string
	Country     string
	Sections    []present.Section
	Generated   string
}

func buildData(in Input) data {
	d := data{
		ProjectName: in.ProjectName,
		RoofType:    in.RoofType,
		Area:        present.FormatFloat(in.AreaM2, 0) + " m²",
		Sections:    in.Sections,
		Generated:   in.GeneratedAt.Format("2 January 2006"),
	}
	if in.Location != nil {
		d.Address = in.Location.Address
		d.Country = in.Location.Country
	}
	if d.ProjectName == "" {
		d.ProjectName = "Roof impact estimate"
	}
	return d
}

var htmlTmpl = htmltemplate.Must(htmltemplate.New("report").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.ProjectName}}</title></head>
<body style="font-family: sans-serif; color: #222; max-width: 640px;">
  <h1 style="color: #1a7f4b;">{{.ProjectName}}</h1>
  <p>Roof type: <strong>{{.RoofType}}</strong> · Area: <strong>{{.Area}}</strong>{{if .Country}} · {{.Country}}{{end}}</p>
  {{if .Address}}<p>{{.Address}}</p>{{end}}
  {{range .Sections}}
  <h2 style="border-bottom: 1px solid #ddd;">{{.Label}}</h2>
  <p style="color: #666;">{{.Description}}</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    {{range .Items}}<tr>
      <td style="border-bottom: 1px solid #eee;">{{.Label}}</td>
      <td style="border-bottom: 1px solid #eee; text-align: right;"><strong>{{.Formatted}}</strong></td>
    </tr>{{end}}
  </table>
  {{end}}
  <p style="color: #999; font-size: 12px;">Generated {{.Generated}} by roofscope.</p>
</body>
</html>
`))

var textTmpl = texttemplate.Must(texttemplate.New("report").Parse(`{{.ProjectName}}
{{.RoofType}} · {{.Area}}{{if .Country}} · {{.Country}}{{end}}
{{if .Address}}{{.Address}}
{{end}}
{{- range .Sections}}
{{.Label}}
{{- range .Items}}
  {{.Label}}: {{.Formatted}}
{{- end}}
{{end}}
Generated {{.Generated}} by roofscope.
`))

// HTML renders the HTML report body.
func HTML(in Input) (string, error) {
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, buildData(in)); err != nil {
		return "", fmt.Errorf("rendering HTML report: %w", err)
	}
	return buf.String(), nil
}

// Text renders the plain-text report body.
func Text(in Input) (string, error) {
	var buf bytes.Buffer
	if err := textTmpl.Execute(&buf, buildData(in)); err != nil {
		return "", fmt.Errorf("rendering text report: %w", err)
	}
	return buf.String(), nil
}
