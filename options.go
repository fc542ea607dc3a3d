package arena

// ReserveFunc obtains the backing storage for one block. It must return
// a buffer of at least n bytes that the arena will exclusively own, or
// not return at all: reservation failure is fatal by contract, so a
// ReserveFunc signals it by panicking, never by returning a short or
// nil buffer.
type ReserveFunc func(n int) []byte

// Option configures an Arena at construction time.
type Option func(*options)

type options struct {
	align   int
	reserve ReserveFunc
}

func defaultOptions() options {
	return options{
		align:   DefaultAlignment,
		reserve: func(n int) []byte { return make([]byte, n) },
	}
}

// WithAlignment sets the byte boundary every returned region starts on.
// align must be a power of two; New panics otherwise.
func WithAlignment(align int) Option {
	return func(o *options) {
		o.align = align
	}
}

// WithReserveFunc replaces the backing-storage source for the arena's
// blocks. The default reserves zeroed buffers with make.
func WithReserveFunc(reserve ReserveFunc) Option {
	return func(o *options) {
		o.reserve = reserve
	}
}
