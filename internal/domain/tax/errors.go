package tax

import "errors"

var (
	ErrNoTaxBrackets      = errors.New("no tax brackets configured for fiscal year")
	ErrBracketNotFound    = errors.New("tax bracket not found")
	ErrOverlappingBracket = errors.New("tax bracket overlaps an existing bracket")
)
