package release

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yacobolo/smartgrid/internal/grid"
)

// BumpMinor is the version request meaning "latest tag plus one".
const BumpMinor = "+1"

// DateLayout is the format accepted for date overrides
const DateLayout = "2006-01-02"

// Resolve decides the version and date for a build.
//
//   - requested "" uses the latest tag and its commit date
//   - requested "+1" increments the last component of the latest tag, dated now
//   - any other value is used as-is, dated now
//
// A non-empty date (YYYY-MM-DD) overrides the date in every case. The source
// is only consulted when the version or date actually depends on it.
func Resolve(ctx context.Context, src TagSource, requested, date string, now time.Time) (grid.BuildInfo, error) {
	info := grid.BuildInfo{Version: requested, Date: now}

	if requested == "" || requested == BumpMinor {
		tag, err := src.LatestTag(ctx)
		if err != nil {
			return grid.BuildInfo{}, fmt.Errorf("look up latest version: %w", err)
		}
		info.Version = tag.Name
		if requested == "" {
			info.Date = tag.Date
		} else {
			bumped, err := Bump(tag.Name)
			if err != nil {
				return grid.BuildInfo{}, err
			}
			info.Version = bumped
		}
	}

	if date != "" {
		parsed, err := time.Parse(DateLayout, date)
		if err != nil {
			return grid.BuildInfo{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
		}
		info.Date = parsed
	}

	return info, nil
}

// Bump increments the last dot-separated component of version.
func Bump(version string) (string, error) {
	parts := strings.Split(version, ".")
	last, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", fmt.Errorf("cannot increment version %q: %w", version, err)
	}
	parts[len(parts)-1] = strconv.Itoa(last + 1)
	return strings.Join(parts, "."), nil
}
