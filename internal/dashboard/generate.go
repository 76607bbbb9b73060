package dashboard

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"text/template"
)

//go:embed templates/impact-dashboard.json.tmpl
var templates embed.FS

const (
	templateName = "impact-dashboard.json.tmpl"
	// FileName is the name Render uses inside the output directory.
	FileName = "impact-dashboard.json"
	// DatasourceEnv names the variable holding the Grafana datasource UID.
	DatasourceEnv = "GREPTIMEDB_DATASOURCE_UID"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type data struct {
	Table string
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"env": func(key string) (string, error) {
			v := os.Getenv(key)
			if v == "" {
				return "", fmt.Errorf("environment variable %s not set", key)
			}
			return v, nil
		},
	}
}

// Write renders the Grafana dashboard for the given Greptime result table.
func Write(w io.Writer, table string) error {
	if !identRe.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	t, err := template.New(templateName).Funcs(funcMap()).ParseFS(templates, "templates/"+templateName)
	if err != nil {
		return err
	}
	return t.Execute(w, data{Table: table})
}

// Render writes the dashboard to outDir/FileName and returns the path.
func Render(outDir, table string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	outPath := filepath.Join(outDir, FileName)
	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	if err := Write(f, table); err != nil {
		f.Close()
		os.Remove(outPath)
		return "", err
	}
	return outPath, f.Close()
}
