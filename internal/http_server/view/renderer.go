// Package view
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"formatTime": func(t interface{ Format(string) string }) string {
		return t.Format("2006-01-02 15:04")
	},
}

// Renderer echo模板渲染器, 模板在编译期嵌入二进制
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error occurred while parsing templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

func (renderer *Renderer) Render(writer io.Writer, name string, data interface{}, _ echo.Context) error {
	return renderer.templates.ExecuteTemplate(writer, name, data)
}
