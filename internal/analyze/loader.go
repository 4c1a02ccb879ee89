package analyze

import (
	"fmt"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"tuplegen/internal/diagnostic"
)

// LoadMode specifies what information to load from packages.
// Extraction is purely syntactic, so type checking is not requested.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// Loader loads Go packages and extracts annotated struct models.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load loads the specified package patterns and extracts a StructModel
// for every declaration carrying a tuplegen directive. Rejected
// declarations are reported through the returned diagnostics; the
// error covers load failures only.
func (l *Loader) Load(patterns ...string) ([]*StructModel, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, diags, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, diags, fmt.Errorf("package errors: %v", errs)
	}

	var models []*StructModel

	for _, pkg := range pkgs {
		ref := PackageRef{
			Name: pkg.Name,
			Path: pkg.PkgPath,
		}

		if len(pkg.GoFiles) > 0 {
			ref.Dir = filepath.Dir(pkg.GoFiles[0])
		}

		for _, file := range pkg.Syntax {
			fileModels, fileDiags := ExtractFile(pkg.Fset, file, ref)
			models = append(models, fileModels...)
			diags.Merge(fileDiags)
		}
	}

	return models, diags, nil
}
