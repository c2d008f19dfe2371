package maintenance

import "errors"

var ErrSummaryUnavailable = errors.New("maintenance summary unavailable")
