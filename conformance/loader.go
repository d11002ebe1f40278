package conformance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadedSuite pairs a parsed suite with its source file path.
type LoadedSuite struct {
	File  string
	Suite Suite
}

// LoadFile parses one YAML suite file.
func LoadFile(path string) (LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadedSuite{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return LoadedSuite{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return LoadedSuite{File: path, Suite: suite}, nil
}

// Load loads suites from each path: files load directly, directories are
// walked for .yaml/.yml files.
func Load(paths ...string) ([]LoadedSuite, error) {
	var suites []LoadedSuite
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", path, err)
		}
		if !info.IsDir() {
			s, err := LoadFile(path)
			if err != nil {
				return nil, err
			}
			suites = append(suites, s)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ext := filepath.Ext(p)
			if ext != ".yaml" && ext != ".yml" {
				return nil
			}
			s, err := LoadFile(p)
			if err != nil {
				return err
			}
			suites = append(suites, s)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	if len(suites) == 0 {
		return nil, fmt.Errorf("no suite files found in %v", paths)
	}
	return suites, nil
}
