package polyclip

import (
	"errors"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	if o.FillRule != EvenOdd {
		t.Errorf("FillRule = %v, want EvenOdd", o.FillRule)
	}
	if o.Precision != 2 {
		t.Errorf("Precision = %d, want 2", o.Precision)
	}
	if !o.PreserveCollinear || o.ReverseSolution {
		t.Errorf("PreserveCollinear = %v, ReverseSolution = %v, want true, false",
			o.PreserveCollinear, o.ReverseSolution)
	}
	if o.JoinType != JoinMiter || o.EndType != EndPolygon {
		t.Errorf("JoinType = %d, EndType = %d, want miter, polygon", o.JoinType, o.EndType)
	}
	if o.MiterLimit != 2.0 || o.ArcTolerance != 0 {
		t.Errorf("MiterLimit = %v, ArcTolerance = %v, want 2, 0", o.MiterLimit, o.ArcTolerance)
	}
	if o.Clips != nil || o.OpenSubjects != nil {
		t.Error("geometry options should default to nil")
	}
}

func TestOptionSetters(t *testing.T) {
	clips := PathsOf(MustPath(0, 0))
	open := PathsOf(MustPath(1, 1))

	o := buildOptions([]Option{
		WithFillRule(Negative),
		WithPrecision(-3),
		WithPreserveCollinear(false),
		WithReverseSolution(true),
		WithClips(clips),
		WithOpenSubjects(open),
		WithJoinType(JoinBevel),
		WithEndType(EndSquare),
		WithMiterLimit(5),
		WithArcTolerance(0.1),
		nil,
	})

	want := Options{
		FillRule:          Negative,
		Precision:         -3,
		PreserveCollinear: false,
		ReverseSolution:   true,
		OpenSubjects:      open,
		Clips:             clips,
		JoinType:          JoinBevel,
		EndType:           EndSquare,
		MiterLimit:        5,
		ArcTolerance:      0.1,
	}
	if o != want {
		t.Errorf("buildOptions() = %+v, want %+v", o, want)
	}
}

func TestWithOptionsReplacesAll(t *testing.T) {
	v := Options{Precision: 7}
	o := buildOptions([]Option{WithFillRule(NonZero), WithOptions(v)})
	if o != v {
		t.Errorf("buildOptions() = %+v, want %+v", o, v)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		precision int
		ok        bool
	}{
		{MinPrecision, true},
		{0, true},
		{MaxPrecision, true},
		{MinPrecision - 1, false},
		{MaxPrecision + 1, false},
	}

	for _, tt := range tests {
		o := DefaultOptions()
		o.Precision = tt.precision
		err := o.validate()
		if tt.ok {
			if err != nil {
				t.Errorf("precision %d: validate() = %v", tt.precision, err)
			}
			continue
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Field != "Precision" {
			t.Errorf("precision %d: validate() = %v, want *ConfigError", tt.precision, err)
		}
	}
}

func TestClipTypeString(t *testing.T) {
	tests := []struct {
		c    ClipType
		want string
	}{
		{ClipNone, "none"},
		{ClipIntersection, "intersection"},
		{ClipUnion, "union"},
		{ClipDifference, "difference"},
		{ClipXor, "xor"},
		{ClipType(9), "ClipType(9)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("ClipType(%d).String() = %q, want %q", uint8(tt.c), got, tt.want)
		}
	}
}

func TestFillRuleString(t *testing.T) {
	tests := []struct {
		f    FillRule
		want string
	}{
		{EvenOdd, "even-odd"},
		{NonZero, "non-zero"},
		{Positive, "positive"},
		{Negative, "negative"},
		{FillRule(42), "FillRule(42)"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("FillRule(%d).String() = %q, want %q", uint8(tt.f), got, tt.want)
		}
	}
}

func TestWireValues(t *testing.T) {
	// The engine reads these as raw bytes.
	if ClipIntersection != 1 || ClipXor != 4 {
		t.Error("ClipType values changed")
	}
	if EvenOdd != 0 || Negative != 3 {
		t.Error("FillRule values changed")
	}
	if JoinSquare != 0 || JoinMiter != 3 {
		t.Error("JoinType values changed")
	}
	if EndPolygon != 0 || EndRound != 4 {
		t.Error("EndType values changed")
	}
}
