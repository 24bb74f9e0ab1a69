package errors

import (
	"fmt"
)

var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
