// Package provider implements the report fetch capability. The only
// transport shipped here is a local drop directory of CSV files; anything
// that can produce those files (a portal downloader, an SFTP sync) plugs in
// without touching the importers.
package provider

import (
	"errors"
	"fmt"

	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

// ErrReportUnavailable marks a refresh that failed because the source had
// nothing to offer. Sibling refreshes proceed; the importer then transforms
// whatever staging already holds.
var ErrReportUnavailable = errors.New("report unavailable")

// unavailable wraps ErrReportUnavailable with the report kind.
func unavailable(kind report.Kind, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrReportUnavailable, kind, cause)
}
