package features

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/jakoblorz/flutterforge/internal/models"
)

// templateData is what every Dart file template is rendered against
type templateData struct {
	// Project is the app name (snake_case, used in package: imports)
	Project string

	// Config is the install-time configuration mapping
	Config models.Config
}

// render parses and executes a single Dart file template with the
// sprig function map available.
func render(name, text string, data templateData) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// renderAll renders a path -> template mapping into a path -> content
// mapping, using the path as the template name for error messages.
func renderAll(templates map[string]string, data templateData) (map[string]string, error) {
	files := make(map[string]string, len(templates))
	for path, text := range templates {
		content, err := render(path, text, data)
		if err != nil {
			return nil, err
		}
		files[path] = content
	}
	return files, nil
}
