package unibinary

import (
	"fmt"
)

var version = 0x010200

// Version returns the version of the unibinary codec.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", version>>16&0xff, version>>8&0xff, version&0xff)
}
