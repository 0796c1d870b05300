package polyclip

import "strconv"

// ClipType selects the boolean operation. Values match the engine's wire
// encoding.
type ClipType uint8

// Clip types.
const (
	ClipNone ClipType = iota
	ClipIntersection
	ClipUnion
	ClipDifference
	ClipXor
)

// String returns the operation name.
func (c ClipType) String() string {
	switch c {
	case ClipNone:
		return "none"
	case ClipIntersection:
		return "intersection"
	case ClipUnion:
		return "union"
	case ClipDifference:
		return "difference"
	case ClipXor:
		return "xor"
	default:
		return "ClipType(" + strconv.Itoa(int(c)) + ")"
	}
}

// FillRule decides which regions of self-overlapping polygons are inside.
type FillRule uint8

// Fill rules.
const (
	EvenOdd FillRule = iota
	NonZero
	Positive
	Negative
)

// String returns the fill rule name.
func (f FillRule) String() string {
	switch f {
	case EvenOdd:
		return "even-odd"
	case NonZero:
		return "non-zero"
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "FillRule(" + strconv.Itoa(int(f)) + ")"
	}
}

// JoinType is the corner style used when offsetting.
type JoinType uint8

// Join types.
const (
	JoinSquare JoinType = iota
	JoinBevel
	JoinRound
	JoinMiter
)

// EndType is how path ends are treated when offsetting. EndPolygon treats
// paths as closed polygons; the others offset open paths.
type EndType uint8

// End types.
const (
	EndPolygon EndType = iota
	EndJoined
	EndButt
	EndSquare
	EndRound
)

// Engine precision limits, in decimal places.
const (
	MinPrecision = -8
	MaxPrecision = 8
)

// Options holds every parameter an engine operation recognizes.
// Each operation reads only the fields it needs.
type Options struct {
	// FillRule for boolean operations. Default EvenOdd.
	FillRule FillRule

	// Precision is the number of decimal places the engine preserves.
	// Default 2.
	Precision int

	// PreserveCollinear keeps collinear vertices in boolean results.
	// Default true.
	PreserveCollinear bool

	// ReverseSolution reverses the orientation of result paths.
	// Default false.
	ReverseSolution bool

	// OpenSubjects are open paths clipped by boolean operations. Default nil.
	OpenSubjects *Paths

	// Clips are the clip paths of boolean operations. Default nil.
	Clips *Paths

	// JoinType for offsetting. Default JoinMiter.
	JoinType JoinType

	// EndType for offsetting. Default EndPolygon.
	EndType EndType

	// MiterLimit bounds miter joins, in multiples of delta. Default 2.0.
	MiterLimit float64

	// ArcTolerance is the maximum deviation of round joins. Zero lets the
	// engine choose. Default 0.
	ArcTolerance float64
}

// DefaultOptions returns the defaults applied by every engine operation.
func DefaultOptions() Options {
	return Options{
		FillRule:          EvenOdd,
		Precision:         2,
		PreserveCollinear: true,
		ReverseSolution:   false,
		JoinType:          JoinMiter,
		EndType:           EndPolygon,
		MiterLimit:        2.0,
		ArcTolerance:      0.0,
	}
}

// validate checks the options against engine limits.
func (o *Options) validate() error {
	if o.Precision < MinPrecision || o.Precision > MaxPrecision {
		return &ConfigError{Field: "Precision", Reason: "must be in [-8, 8], got " + strconv.Itoa(o.Precision)}
	}
	return nil
}

// Option configures an engine operation.
//
// Example:
//
//	closed, _, err := eng.Intersect(subjects, clips,
//	    polyclip.WithFillRule(polyclip.NonZero),
//	    polyclip.WithPrecision(4))
type Option func(*Options)

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithOptions replaces all options at once.
func WithOptions(v Options) Option {
	return func(o *Options) {
		*o = v
	}
}

// WithFillRule sets the fill rule of boolean operations.
func WithFillRule(f FillRule) Option {
	return func(o *Options) {
		o.FillRule = f
	}
}

// WithPrecision sets the number of decimal places the engine preserves.
func WithPrecision(p int) Option {
	return func(o *Options) {
		o.Precision = p
	}
}

// WithPreserveCollinear controls whether collinear vertices are kept.
func WithPreserveCollinear(v bool) Option {
	return func(o *Options) {
		o.PreserveCollinear = v
	}
}

// WithReverseSolution controls result orientation.
func WithReverseSolution(v bool) Option {
	return func(o *Options) {
		o.ReverseSolution = v
	}
}

// WithOpenSubjects adds open subject paths to a boolean operation.
func WithOpenSubjects(ps *Paths) Option {
	return func(o *Options) {
		o.OpenSubjects = ps
	}
}

// WithClips sets the clip paths of a boolean operation.
func WithClips(ps *Paths) Option {
	return func(o *Options) {
		o.Clips = ps
	}
}

// WithJoinType sets the corner style for offsetting.
func WithJoinType(j JoinType) Option {
	return func(o *Options) {
		o.JoinType = j
	}
}

// WithEndType sets the end treatment for offsetting.
func WithEndType(e EndType) Option {
	return func(o *Options) {
		o.EndType = e
	}
}

// WithMiterLimit sets the miter limit for offsetting.
func WithMiterLimit(v float64) Option {
	return func(o *Options) {
		o.MiterLimit = v
	}
}

// WithArcTolerance sets the arc tolerance for round joins.
func WithArcTolerance(v float64) Option {
	return func(o *Options) {
		o.ArcTolerance = v
	}
}
