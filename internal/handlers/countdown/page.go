package countdown

import (
	"countdown/internal/domains/countdown/model/dto"
	_ "embed"
	"html/template"
)

//go:embed page.html
var pageSource string

var pageTemplate = template.Must(template.New("countdown").Parse(pageSource))

var unitLabels = [4]struct{ class, label string }{
	{"days", "Días"},
	{"hours", "Horas"},
	{"minutes", "Minutos"},
	{"seconds", "Segundos"},
}

type pageUnit struct {
	Class string
	Label string
	Value string
}

type pageData struct {
	Title      string
	Units      [4]pageUnit
	Target     string
	Now        string
	Completed  bool
	StreamPath string
}

func newPageData(res dto.CountdownResponse) pageData {
	data := pageData{
		Title:      res.Title,
		Target:     res.Target,
		Now:        res.Now,
		Completed:  res.Completed,
		StreamPath: streamPath,
	}

	for i, value := range res.Units() {
		data.Units[i] = pageUnit{
			Class: unitLabels[i].class,
			Label: unitLabels[i].label,
			Value: value,
		}
	}

	return data
}
