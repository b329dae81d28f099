package Trees

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is matched by every InvalidKeyError.
var ErrInvalidKey = errors.New("invalid key")

// InvalidKeyError is returned for a key that has no place in the total order,
// which for the ordered types means a key that isn't equal to itself (NaN).
type InvalidKeyError struct {
	Key any
	Op  string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("%s: key %v is not totally ordered", e.Op, e.Key)
}

func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}
