package seasonstats

import "errors"

var (
	ErrUnknownStat      = errors.New("unknown stat")
	ErrStoreUnavailable = errors.New("statistics store unavailable")
)
