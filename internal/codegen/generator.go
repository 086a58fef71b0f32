// Package codegen writes the scancode table as constant files for clients
// written in other languages.
package codegen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/Alia5/webkeys/internal/table"
)

// Generator renders the key table into per-language constant files under
// outputDir/<language>.
type Generator struct {
	outputDir string
	logger    *slog.Logger
}

type language struct {
	file     string
	template string
}

var languages = map[string]language{
	"typescript": {file: "Scancodes.ts", template: typescriptTemplate},
	"csharp":     {file: "Scancodes.cs", template: csharpTemplate},
	"c":          {file: "webkeys_scancodes.h", template: cTemplate},
}

// Languages returns the supported target languages, sorted.
func Languages() []string {
	var out []string
	for k := range languages {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// New returns a Generator writing below outputDir.
func New(outputDir string, logger *slog.Logger) *Generator {
	return &Generator{
		outputDir: outputDir,
		logger:    logger,
	}
}

// GenAll generates constants for every supported language.
func (g *Generator) GenAll() error {
	for _, lang := range Languages() {
		if err := g.GenerateLang(lang); err != nil {
			return fmt.Errorf("generate %s constants: %w", lang, err)
		}
	}
	return nil
}

// GenerateLang writes the constant file for a single language. A file that
// fails to render is removed.
func (g *Generator) GenerateLang(lang string) (err error) {
	l, ok := languages[lang]
	if !ok {
		return fmt.Errorf("unsupported language '%s' (supported: %v)", lang, Languages())
	}

	outputPath := filepath.Join(g.outputDir, lang)
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("failed to create %s output directory: %w", lang, err)
	}

	tmpl, err := template.New(lang).Funcs(template.FuncMap{
		"header": fileHeader,
		"upper":  strings.ToUpper,
	}).Parse(l.template)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	file := filepath.Join(outputPath, l.file)
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", file, cerr)
		}
		if err != nil {
			_ = os.Remove(file)
		}
	}()

	data := struct {
		Keys        []table.Record
		Fingerprint string
	}{Keys: table.Build().Keys, Fingerprint: table.Fingerprint()}
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	g.logger.Info("Generated scancode constants", "language", lang, "path", file)
	return nil
}

func fileHeader() string {
	return "// Code generated by webkeys codegen. DO NOT EDIT.\n" +
		"// Scancode table fingerprint: " + table.Fingerprint()
}
