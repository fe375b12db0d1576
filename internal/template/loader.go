package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/raiden/internal/domain"
)

// LoadDir reads additional template definitions from dir. A missing
// directory yields no definitions.
func LoadDir(dir string) ([]domain.TemplateDefinition, error) {
	if dir == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading template dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template dir %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS walks fsys and parses every YAML or JSON template file in lexical
// path order. Problems in individual files are joined into one error; keys
// must be unique across files.
func LoadFS(fsys fs.FS) ([]domain.TemplateDefinition, error) {
	var (
		defs []domain.TemplateDefinition
		errs []error
		seen = map[string]string{}
	)

	walkErr := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !isTemplateFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			return nil
		}
		tf, err := ParseTemplateFile(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			return nil
		}
		if verrs := ValidateTemplateFile(tf); len(verrs) > 0 {
			errs = append(errs, fmt.Errorf("%s: %w", path, errors.Join(verrs...)))
			return nil
		}
		def, err := tf.Definition()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			return nil
		}
		if prev, dup := seen[def.Key]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate template key %q (first defined in %s)", path, def.Key, prev))
			return nil
		}
		seen[def.Key] = path
		defs = append(defs, def)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking templates: %w", walkErr)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return defs, nil
}

// LoadCatalog returns the built-in catalog extended with the templates
// found in dir.
func LoadCatalog(dir string) (*Catalog, error) {
	extra, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return Builtin().Extend(extra...)
}

func isTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
