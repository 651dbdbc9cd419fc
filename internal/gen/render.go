// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package gen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/hashicorp/errwrap"
	"github.com/samber/lo"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// outputs maps each generated file to the template producing it.
var outputs = map[string]string{
	"andthen_gen.go": "andthen.go.tmpl",
	"kinds_gen.go":   "kinds.go.tmpl",
}

type templateData struct {
	Header  string
	Package string
	Kinds   []*Kind
	Units   []*Unit
}

// Render executes every template against m and returns the gofmt'd sources
// keyed by file name.
func Render(m *Matrix, opt ...Option) (map[string][]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("nil matrix")
	}
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, err
	}
	data := templateData{
		Header:  opts.withHeader,
		Package: opts.withPackage,
		Kinds:   m.Kinds,
		Units:   m.Units,
	}

	files := make(map[string][]byte, len(outputs))
	for _, name := range FileNames() {
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, outputs[name], data); err != nil {
			return nil, errwrap.Wrapf(fmt.Sprintf("error rendering %q: {{err}}", name), err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, errwrap.Wrapf(fmt.Sprintf("error formatting %q: {{err}}", name), err)
		}
		opts.withLogger.Debug("rendered file", "name", name, "bytes", len(src))
		files[name] = src
	}
	return files, nil
}

// FileNames returns the names of the generated files in sorted order.
func FileNames() []string {
	names := lo.Keys(outputs)
	sort.Strings(names)
	return names
}

// Write stores files in dir.
func Write(files map[string][]byte, dir string, opt ...Option) error {
	opts, err := getOpts(opt...)
	if err != nil {
		return err
	}
	names := lo.Keys(files)
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return err
		}
		opts.withLogger.Info("wrote file", "path", path)
	}
	return nil
}
