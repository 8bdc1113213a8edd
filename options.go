package deepzoom

import "github.com/gogpu/deepzoom/fixed"

// Defaults used when a request or option leaves a value unset.
const (
	// DefaultIntegerBits is the integer width of formats built by
	// DefaultFormat. It leaves room for thresholds up to 9.
	DefaultIntegerBits = 8

	// DefaultThreshold is the escape radius squared.
	DefaultThreshold = 4

	// DefaultSecondaryThreshold is the radius squared of the escape
	// velocity pass.
	DefaultSecondaryThreshold = 8
)

// DefaultFormat returns the format with the given limb count and
// DefaultIntegerBits.
func DefaultFormat(limbs int) (fixed.Format, error) {
	return fixed.NewFormat(limbs, DefaultIntegerBits)
}

// Option configures a Generator or RenderSection.
//
// Example:
//
//	g := deepzoom.NewGenerator(deepzoom.WithEscapeVelocity(false))
type Option func(*options)

// options holds optional configuration.
type options struct {
	workers            int
	escapeVelocity     bool
	secondaryThreshold uint32
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		workers:            0, // GOMAXPROCS
		escapeVelocity:     true,
		secondaryThreshold: DefaultSecondaryThreshold,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers sets the number of goroutines RenderSection uses.
// Zero or negative means GOMAXPROCS. Generators ignore it.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithEscapeVelocity enables or disables the escape velocity pass.
// It is enabled by default; disabling it saves the extra steps escaped
// lanes take to reach the secondary threshold, and every velocity is 0.
func WithEscapeVelocity(enabled bool) Option {
	return func(o *options) {
		o.escapeVelocity = enabled
	}
}

// WithSecondaryThreshold sets the radius squared of the escape velocity
// pass. It must exceed the request threshold and fit the request format.
func WithSecondaryThreshold(t uint32) Option {
	return func(o *options) {
		o.secondaryThreshold = t
	}
}
