// Package engine renders Go templates against a resolved palette document.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/colorkit"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("colorkit.engine")

// Engine loads and executes Go templates against a resolved Document.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Apps         []string // if non-empty, only render these template basenames
	IncludeAlpha bool     // hex keeps alpha digits for translucent colors
}

// Run loads all .tmpl files from the templates directory, executes them
// with the given document, and writes output files. It returns the paths
// written.
func (e *Engine) Run(doc *colorkit.Document) ([]string, error) {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	data := buildTemplateData(doc, e.IncludeAlpha)

	var written []string
	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			log.Debugf("skipping %s", tmplPath)
			continue
		}

		outPath, err := e.renderTemplate(tmplPath, baseName, data)
		if err != nil {
			return written, err
		}
		log.Infof("rendered %s", outPath)
		written = append(written, outPath)
	}

	return written, nil
}

func (e *Engine) shouldRender(name string) bool {
	// If no apps are specified, render all.
	if len(e.Apps) == 0 {
		return true
	}

	// "css.css" matches app "css".
	app, _, _ := strings.Cut(name, ".")
	return slices.Contains(e.Apps, name) || slices.Contains(e.Apps, app)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data templateData) (string, error) {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	return outPath, nil
}
