// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
)

// DriftError reports a generated file whose contents on disk differ from
// what the matrix renders to.
type DriftError struct {
	Path string
	// Diff is a line diff, "-" for the file on disk and "+" for the
	// rendered source.
	Diff string
}

func (e *DriftError) Error() string {
	if e.Diff == "" {
		return fmt.Sprintf("%s is missing", e.Path)
	}
	return fmt.Sprintf("%s is out of date (-disk +rendered):\n%s", e.Path, e.Diff)
}

// Check renders m and compares the result against the files in dir. Every
// stale or missing file is reported as a *DriftError.
func Check(m *Matrix, dir string, opt ...Option) error {
	files, err := Render(m, opt...)
	if err != nil {
		return err
	}
	opts, err := getOpts(opt...)
	if err != nil {
		return err
	}

	var result error
	for _, name := range FileNames() {
		path := filepath.Join(dir, name)
		disk, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			result = multierror.Append(result, &DriftError{Path: path})
			continue
		case err != nil:
			return err
		}
		if diff := cmp.Diff(lines(disk), lines(files[name])); diff != "" {
			opts.withLogger.Debug("generated file drifted", "path", path)
			result = multierror.Append(result, &DriftError{Path: path, Diff: diff})
		}
	}
	return result
}

func lines(b []byte) []string {
	return strings.Split(string(b), "\n")
}
