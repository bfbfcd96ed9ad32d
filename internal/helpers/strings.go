package helpers

import (
	"fmt"
	"strings"
)

// QuotedFileList renders paths as a quoted, comma-separated list for the
// "N finding(s) across ..." summary cmd/oxcgo's lint command reports when a
// run produces any findings.
func QuotedFileList(paths []string) string {
	sb := strings.Builder{}
	for i, path := range paths {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%q", path))
	}
	return sb.String()
}
