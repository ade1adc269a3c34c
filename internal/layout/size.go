package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SizeKind identifies how a SizeSpec claims space along an axis.
type SizeKind int

const (
	SizeFixed        SizeKind = iota // exact pixel count
	SizePercent                      // share of the available dimension
	SizeProportional                 // weighted share of what is left over
)

// String returns the short name of the kind.
func (k SizeKind) String() string {
	switch k {
	case SizeFixed:
		return "fixed"
	case SizePercent:
		return "percent"
	case SizeProportional:
		return "proportional"
	default:
		return "unknown"
	}
}

// SizeSpec is a column-width or row-height specifier. The zero value is
// Fixed(0).
type SizeSpec struct {
	Kind SizeKind
	// Pixels is set for SizeFixed.
	Pixels int
	// Value is the percentage (0–100) for SizePercent or the weight for
	// SizeProportional.
	Value float64
}

// Fixed returns a spec claiming exactly px pixels.
func Fixed(px int) SizeSpec {
	return SizeSpec{Kind: SizeFixed, Pixels: px}
}

// Percent returns a spec claiming pct percent of the available dimension.
func Percent(pct float64) SizeSpec {
	return SizeSpec{Kind: SizePercent, Value: pct}
}

// Proportional returns a spec sharing leftover space by weight.
func Proportional(weight float64) SizeSpec {
	return SizeSpec{Kind: SizeProportional, Value: weight}
}

// Fill is Proportional(1), the "*" spec.
func Fill() SizeSpec {
	return Proportional(1)
}

// Validate reports ErrInvalidSize for negative pixels, percentages outside
// 0–100 and negative or non-finite weights.
func (s SizeSpec) Validate() error {
	switch s.Kind {
	case SizeFixed:
		if s.Pixels < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidSize, s.Pixels)
		}
	case SizePercent:
		if math.IsNaN(s.Value) || s.Value < 0 || s.Value > 100 {
			return fmt.Errorf("%w: %v%%", ErrInvalidSize, s.Value)
		}
	case SizeProportional:
		if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) || s.Value < 0 {
			return fmt.Errorf("%w: %v*", ErrInvalidSize, s.Value)
		}
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidSize, s.Kind)
	}
	return nil
}

// SizeFromNumber treats a raw number as fixed pixels.
func SizeFromNumber(n float64) (SizeSpec, error) {
	if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return SizeSpec{}, fmt.Errorf("%w: %v", ErrInvalidSize, n)
	}
	return Fixed(int(math.Floor(n + 0.5))), nil
}

// ParseSizeSpec parses the string encoding: "30%" is a percentage, "2*" a
// proportional weight ("*" alone means weight 1), and "40" or "40px" fixed
// pixels.
func ParseSizeSpec(s string) (SizeSpec, error) {
	raw := strings.TrimSpace(s)
	switch {
	case raw == "":
		return SizeSpec{}, fmt.Errorf("%w: empty", ErrInvalidSize)

	case strings.HasSuffix(raw, "%"):
		pct, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(raw, "%")), 64)
		if err != nil || pct < 0 || pct > 100 {
			return SizeSpec{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
		}
		return Percent(pct), nil

	case strings.HasSuffix(raw, "*"):
		w := strings.TrimSpace(strings.TrimSuffix(raw, "*"))
		if w == "" {
			return Fill(), nil
		}
		weight, err := strconv.ParseFloat(w, 64)
		if err != nil || weight < 0 || math.IsInf(weight, 0) {
			return SizeSpec{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
		}
		return Proportional(weight), nil

	default:
		px, err := strconv.Atoi(strings.TrimSuffix(raw, "px"))
		if err != nil || px < 0 {
			return SizeSpec{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
		}
		return Fixed(px), nil
	}
}

// MustParseSizeSpecs parses each string and panics on the first failure.
// Intended for literals in code and tests.
func MustParseSizeSpecs(specs ...string) []SizeSpec {
	out := make([]SizeSpec, len(specs))
	for i, s := range specs {
		spec, err := ParseSizeSpec(s)
		if err != nil {
			panic(err)
		}
		out[i] = spec
	}
	return out
}

// Uniform repeats spec n times.
func Uniform(spec SizeSpec, n int) []SizeSpec {
	out := make([]SizeSpec, n)
	for i := range out {
		out[i] = spec
	}
	return out
}

// String returns the string encoding accepted by ParseSizeSpec.
func (s SizeSpec) String() string {
	switch s.Kind {
	case SizePercent:
		return strconv.FormatFloat(s.Value, 'f', -1, 64) + "%"
	case SizeProportional:
		if s.Value == 1 {
			return "*"
		}
		return strconv.FormatFloat(s.Value, 'f', -1, 64) + "*"
	default:
		return strconv.Itoa(s.Pixels)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SizeSpec) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SizeSpec) UnmarshalText(text []byte) error {
	parsed, err := ParseSizeSpec(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalTOML accepts either a string encoding or a bare number.
func (s *SizeSpec) UnmarshalTOML(v any) error {
	parsed, err := sizeFromAny(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SizeSpecs is a list of specs. In TOML it may be written as a single value,
// which is kept as a one-element list and expanded by Expand.
type SizeSpecs []SizeSpec

// UnmarshalTOML accepts a scalar or an array of scalars.
func (l *SizeSpecs) UnmarshalTOML(v any) error {
	items, ok := v.([]any)
	if !ok {
		spec, err := sizeFromAny(v)
		if err != nil {
			return err
		}
		*l = SizeSpecs{spec}
		return nil
	}
	out := make(SizeSpecs, len(items))
	for i, item := range items {
		spec, err := sizeFromAny(item)
		if err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = spec
	}
	*l = out
	return nil
}

// Expand returns the list as n specs: a single spec is repeated, any other
// length is returned unchanged so the grid constructor can reject it.
func (l SizeSpecs) Expand(n int) []SizeSpec {
	if len(l) == 1 && n > 1 {
		return Uniform(l[0], n)
	}
	return []SizeSpec(l)
}

func sizeFromAny(v any) (SizeSpec, error) {
	switch t := v.(type) {
	case string:
		return ParseSizeSpec(t)
	case int64:
		return SizeFromNumber(float64(t))
	case int:
		return SizeFromNumber(float64(t))
	case float64:
		return SizeFromNumber(t)
	default:
		return SizeSpec{}, fmt.Errorf("%w: unsupported value %v (%T)", ErrInvalidSize, v, v)
	}
}
