package writenow

import "errors"

var errZeroSpan = errors.New("cell spans zero grid lines in a non-degenerate direction")
