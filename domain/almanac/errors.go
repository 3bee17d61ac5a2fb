package almanac

import "errors"

// ErrInvalidRule indicates a mapping rule with a zero length or a domain or
// destination that overflows uint64.
var ErrInvalidRule = errors.New("invalid mapping rule")

// ErrInvalidInterval indicates an interval with a zero length or an end that
// overflows uint64.
var ErrInvalidInterval = errors.New("invalid interval")

// ErrEmptyInput indicates a query over zero intervals.
var ErrEmptyInput = errors.New("empty input")
