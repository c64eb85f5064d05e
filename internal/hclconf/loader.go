package hclconf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/synroute/internal/config"
	"github.com/vk/synroute/internal/ctxlog"
	"github.com/vk/synroute/internal/fsutil"
	"github.com/vk/synroute/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL rule-library loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL library loading process. Files are
// processed in sorted path order and blocks in file order, so the resulting
// model's registration order is deterministic.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{}

	files, err := l.findLibraryFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered library files.", "count", len(files))

	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse library file %s: %w", file, diags)
		}

		var root schema.LibraryFile
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode library file %s: %w", file, diags)
		}

		fileModel, err := l.translateFile(ctx, &root)
		if err != nil {
			return nil, fmt.Errorf("in library file %s: %w", file, err)
		}
		model.Merge(fileModel)
	}

	logger.Debug("HCL loading complete.",
		"compounds", len(model.Compounds),
		"rules", len(model.Rules),
		"starting_materials", len(model.StartingMaterials),
	)
	return model, nil
}

// findLibraryFiles walks all given paths and returns a sorted, deduplicated
// list of .hcl files. Paths that do not exist are skipped.
func (l *Loader) findLibraryFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
		} else if filepath.Ext(path) == ".hcl" {
			found = []string{path}
		}

		for _, f := range found {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
