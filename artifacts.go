package smartgrid

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	artifactBase    = "smart-grid"
	customStampForm = "20060102150405"
)

// ArtifactNames returns the stylesheet and minified file names. Custom builds
// are stamped with the build time so they never overwrite the stock files.
func ArtifactNames(custom bool, now time.Time) (css, minified string) {
	base := artifactBase
	if custom {
		base += "-custom-" + now.Format(customStampForm)
	}
	return base + ".css", base + ".min.css"
}

// WriteArtifacts creates dir if needed and writes both files, returning their paths.
func WriteArtifacts(dir string, result *Result, now time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	cssName, minName := ArtifactNames(result.Custom, now)
	files := []struct {
		name    string
		content string
	}{
		{cssName, result.CSS},
		{minName, result.Minified},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
