package vision

import "errors"

// ErrSegmenterUnavailable возвращается сборкой без тега gocv.
var ErrSegmenterUnavailable = errors.New("gocv build tag is not enabled")
