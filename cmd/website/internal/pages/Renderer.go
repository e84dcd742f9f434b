package pages

import (
	"net/http"

	"github.com/adampresley/adamgokit/rendering"
)

/*
Renderer writes a named page template to the response. Controllers take
this instead of the template renderer so handlers can be exercised
without the embedded templates.
*/
type Renderer interface {
	Render(name string, data any, w http.ResponseWriter)
}

type templatePages struct {
	renderer rendering.TemplateRenderer
}

func FromTemplates(renderer rendering.TemplateRenderer) Renderer {
	return templatePages{renderer: renderer}
}

func (p templatePages) Render(name string, data any, w http.ResponseWriter) {
	p.renderer.Render(name, data, w)
}
