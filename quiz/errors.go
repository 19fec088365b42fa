package quiz

import "fmt"

var (
	ErrArgumentOutOfRange = fmt.Errorf("argument out of range")
	ErrArgumentNil        = fmt.Errorf("argument is nil")
	ErrArithmeticOverflow = fmt.Errorf("arithmetic overflow")
)
