package converter

import "errors"

// ErrParse is returned when the input HTML could not be parsed into a
// document tree at all. It never fires for malformed-but-parseable
// markup - the underlying parser degrades instead of failing, and the
// converter degrades with it.
var ErrParse = errors.New("htmd: failed to parse HTML input")
