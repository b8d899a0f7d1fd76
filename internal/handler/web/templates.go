package web

import (
	"embed"
	"html/template"
	"strconv"

	"github.com/shenikar/incident_console/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

type selectView struct {
	Name     string
	Label    string
	Options  []models.Choice
	Value    string
	Required bool
	Missing  bool
}

var funcs = template.FuncMap{
	"dash": dash,
	"files": func(n int) string {
		if n == 1 {
			return "1 file"
		}
		return strconv.Itoa(n) + " files"
	},
	"selectField": func(name, label string, options []models.Choice, value string, required bool, missing map[string]bool) selectView {
		return selectView{
			Name:     name,
			Label:    label,
			Options:  options,
			Value:    value,
			Required: required,
			Missing:  missing[name],
		}
	},
}

// Templates разбирает встроенные шаблоны
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
