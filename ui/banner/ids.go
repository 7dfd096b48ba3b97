package banner

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDFunc produces title identifiers. It is called once per mount.
type IDFunc func() string

func newTitleID() string {
	return "banner-title-" + uuid.NewString()
}

// Option configures a mount.
type Option func(*mountConfig)

type mountConfig struct {
	newID IDFunc
}

// WithIDFunc replaces the identifier generator.
func WithIDFunc(fn IDFunc) Option {
	return func(c *mountConfig) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// Sequence returns an IDFunc yielding prefix-1, prefix-2, ...
func Sequence(prefix string) IDFunc {
	var n atomic.Int64
	return func() string {
		return prefix + "-" + strconv.FormatInt(n.Add(1), 10)
	}
}
