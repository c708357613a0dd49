package catalog

import (
	"embed"
	"fmt"
	"path"
	"text/template"
)

//go:embed sql
var sqlFiles embed.FS

func templatePath(d Dialect, name string) string {
	return path.Join("sql", string(d), name+".sql")
}

// loadTemplate reads and parses the template for statement name in dialect d.
// Templates fail on missing keys so an absent parameter can never render as "<no value>".
func loadTemplate(d Dialect, name string) (string, *template.Template, error) {
	b, err := sqlFiles.ReadFile(templatePath(d, name))
	if err != nil {
		return "", nil, fmt.Errorf("no %v template for statement %q: %w", d, name, err)
	}
	t, err := template.New(name).Option("missingkey=error").Parse(string(b))
	if err != nil {
		return "", nil, fmt.Errorf("error parsing %v template for statement %q: %w", d, name, err)
	}
	return string(b), t, nil
}
