package querygo

import "errors"

var (
	// ErrNoResult is returned by aggregates (Avg, Min, Max and friends) when
	// the post-filter input is empty. Aggregates never conflate "no input"
	// with a legitimate zero or NaN result.
	ErrNoResult = errors.New("no result: empty input after filtering")
)
