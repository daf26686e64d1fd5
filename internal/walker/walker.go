package walker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// RecommendationsFileName is the file name holding a resource type's recommendations.
const RecommendationsFileName = "recommendations.yaml"

// ResourceFile describes one recommendations.yaml found below a root.
type ResourceFile struct {
	// RelPath is relative to the root, using forward slashes
	RelPath string
	// AbsPath is the absolute, cleaned path on disk
	AbsPath string
	// Namespace is the resource provider directory, e.g. "compute"
	Namespace string
	// ResourceType is the directory holding the file, e.g. "virtualMachines"
	ResourceType string
}

// Summary lists the distinct namespaces and namespace/type pairs that carry recommendations.
type Summary struct {
	Files              int
	Namespaces         []string
	NamespacesAndTypes []string
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &RootNotFoundError{Root: root, Cause: err}
		}
		return &WalkError{Message: "failed to stat root " + root, Cause: err}
	}
	if !info.IsDir() {
		return &RootNotFoundError{Root: root}
	}
	return nil
}

// FindRecommendationFiles returns every recommendations.yaml below root in lexical order.
// Entries below root that cannot be read are logged and skipped; only an
// unreadable root fails the walk.
func FindRecommendationFiles(root string, logger *zap.Logger) ([]ResourceFile, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, &WalkError{Message: "failed to resolve root path", Cause: err}
	}

	var files []ResourceFile
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == absRoot {
				return walkErr
			}
			logger.Warn("skipping unreadable path", zap.String("path", path), zap.Error(walkErr))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || d.Name() != RecommendationsFileName {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		files = append(files, NewResourceFile(filepath.ToSlash(rel), path))
		return nil
	})
	if err != nil {
		return nil, &WalkError{Message: "failed to walk " + root, Cause: err}
	}

	return files, nil
}

// NewResourceFile derives namespace and resource type from the file's own path.
func NewResourceFile(relPath, absPath string) ResourceFile {
	parts := strings.Split(filepath.ToSlash(filepath.Clean(absPath)), "/")
	rf := ResourceFile{RelPath: relPath, AbsPath: absPath}
	if n := len(parts); n >= 3 {
		rf.Namespace = parts[n-3]
		rf.ResourceType = parts[n-2]
	}
	return rf
}

// CountResourceDirs counts the top-level directories under root and the directories one level below them.
// A namespace directory that cannot be listed is logged and contributes no resource directories.
func CountResourceDirs(root string, logger *zap.Logger) (namespaces, resourceDirs int, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := checkRoot(root); err != nil {
		return 0, 0, err
	}

	top, err := os.ReadDir(root)
	if err != nil {
		return 0, 0, &WalkError{Message: "failed to read " + root, Cause: err}
	}

	for _, entry := range top {
		if !entry.IsDir() {
			continue
		}
		namespaces++

		dir := filepath.Join(root, entry.Name())
		children, err := os.ReadDir(dir)
		if err != nil {
			logger.Warn("skipping unreadable namespace directory", zap.String("path", dir), zap.Error(err))
			continue
		}
		for _, child := range children {
			if child.IsDir() {
				resourceDirs++
			}
		}
	}

	return namespaces, resourceDirs, nil
}

// Summarize returns sorted, case-insensitively deduplicated namespaces and namespace/type pairs.
func Summarize(files []ResourceFile) Summary {
	namespaces := map[string]string{}
	pairs := map[string]string{}
	for _, f := range files {
		if f.Namespace == "" {
			continue
		}
		pair := f.Namespace + "/" + f.ResourceType
		if _, ok := namespaces[strings.ToLower(f.Namespace)]; !ok {
			namespaces[strings.ToLower(f.Namespace)] = f.Namespace
		}
		if _, ok := pairs[strings.ToLower(pair)]; !ok {
			pairs[strings.ToLower(pair)] = pair
		}
	}

	return Summary{
		Files:              len(files),
		Namespaces:         sortedValues(namespaces),
		NamespacesAndTypes: sortedValues(pairs),
	}
}

func sortedValues(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
