package propmapper

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/manfredwippel/PropMapper/internal/introspect"
)

// ErrNilSource is returned by create-new-instance operations when the source
// argument is nil. In-place copy operations report a nil argument through
// their boolean result instead.
var ErrNilSource = errors.New("propmapper: source is nil")

// ConfigurationError reports a façade call for a type pair with no
// registered plan under the manual-registration strategy. The automatic
// strategy never produces it, since missing pairs are built on demand.
type ConfigurationError struct {
	Src, Dst reflect.Type
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("propmapper: no mapping registered for pair %s -> %s",
		introspect.TypeName(e.Src), introspect.TypeName(e.Dst))
}
