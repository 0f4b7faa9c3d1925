package tensor

import (
	"fmt"
	"sync/atomic"
)

var nameCounter atomic.Uint64

// uniqueName returns a fresh generated tensor name with the given prefix.
func uniqueName(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, nameCounter.Add(1))
}
