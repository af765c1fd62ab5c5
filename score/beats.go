package score

import "fmt"

// Beats is an exact duration in quarter-note units. Exact arithmetic matters
// because tuplet denominators (6, 12, 5, 7, ...) do not reduce to any common
// binary unit.
type Beats struct {
	num int
	den int
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// BeatsOf builds a normalized num/den quarter-note duration.
func BeatsOf(num, den int) Beats {
	if den == 0 {
		panic("beats with zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	if g == 0 {
		return Beats{0, 1}
	}
	return Beats{num / g, den / g}
}

// DurationBeats converts a duration denominator (1=whole, 4=quarter,
// 6=quarter triplet, ...) to quarter-note beats: 4/d.
func DurationBeats(dur int) Beats {
	if dur <= 0 {
		return BeatsOf(1, 1)
	}
	return BeatsOf(4, dur)
}

func (b Beats) Add(o Beats) Beats {
	return BeatsOf(b.num*o.den+o.num*b.den, b.den*o.den)
}

func (b Beats) Sub(o Beats) Beats {
	return BeatsOf(b.num*o.den-o.num*b.den, b.den*o.den)
}

// Cmp returns -1, 0 or 1 as b is less than, equal to, or greater than o.
func (b Beats) Cmp(o Beats) int {
	l := b.num * o.den
	r := o.num * b.den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func (b Beats) IsZero() bool {
	return b.num == 0
}

func (b Beats) String() string {
	if b.den == 1 {
		return fmt.Sprintf("%d", b.num)
	}
	return fmt.Sprintf("%d/%d", b.num, b.den)
}
