package driven

import "github.com/cosmolabs/cosmo-cli/internal/core/domain"

// Reporter is the external error-reporting sink. Services hand every
// failure here as a structured record; presentation is entirely the
// sink's concern and never happens inside core.
type Reporter interface {
	// Report delivers one failure record. Implementations must not
	// return control flow to the caller via panics or errors; a sink
	// that cannot display simply drops.
	Report(report domain.Report)
}
