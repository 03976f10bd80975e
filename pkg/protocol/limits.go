package protocol

const (
	// DefaultMaxAllocation bounds a single string (4MB).
	DefaultMaxAllocation = 4 * 1024 * 1024

	// DefaultMaxCollection bounds patches per batch, attributes, events
	// and children per node.
	DefaultMaxCollection = 100_000

	// DefaultMaxDepth bounds NodeWire nesting.
	DefaultMaxDepth = 256
)

// Limits bounds what a Decoder accepts.
type Limits struct {
	MaxAllocation int
	MaxCollection int
	MaxDepth      int
}

// DefaultLimits returns the default decoding limits.
func DefaultLimits() Limits {
	return Limits{
		MaxAllocation: DefaultMaxAllocation,
		MaxCollection: DefaultMaxCollection,
		MaxDepth:      DefaultMaxDepth,
	}
}

func (l Limits) normalize() Limits {
	def := DefaultLimits()
	if l.MaxAllocation <= 0 {
		l.MaxAllocation = def.MaxAllocation
	}
	if l.MaxCollection <= 0 {
		l.MaxCollection = def.MaxCollection
	}
	if l.MaxDepth <= 0 {
		l.MaxDepth = def.MaxDepth
	}
	return l
}

// depthContext tracks recursion while decoding snapshots.
type depthContext struct {
	current int
	max     int
}

func (dc *depthContext) enter() error {
	if dc.current >= dc.max {
		return ErrMaxDepthExceeded
	}
	dc.current++
	return nil
}

func (dc *depthContext) leave() {
	dc.current--
}
