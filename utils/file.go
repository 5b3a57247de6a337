package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// TimestampedFileName builds "name_<unix><ext>" with unsafe characters
// replaced, so two uploads of the same file never collide on disk.
func TimestampedFileName(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	name := fmt.Sprintf("%s_%d%s", base, time.Now().UnixNano(), ext)

	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}

// FileNameWithoutExt extracts the base filename without its extension.
func FileNameWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
