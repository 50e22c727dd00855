package rounding

import (
	"github.com/calebcase/dtoa/digits"
)

// Mode is the tie-break discipline applied when digits are dropped.
type Mode int

const (
	Down Mode = iota
	Up
	Ceiling
	Floor
	HalfUp
	HalfDown
	HalfEven
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Down:
		return "down"
	case Up:
		return "up"
	case Ceiling:
		return "ceiling"
	case Floor:
		return "floor"
	case HalfUp:
		return "half up"
	case HalfDown:
		return "half down"
	case HalfEven:
		return "half even"
	}

	return "unknown"
}

// Kind is how the requested precision is counted.
type Kind int

const (
	// None leaves the shortest-form sequence unchanged.
	None Kind = iota

	// Places counts fractional decimal places.
	Places

	// Significant counts significant digits from the most
	// significant digit.
	Significant
)

// Request asks for a sequence quantized to N digits under a Mode.
type Request struct {
	Kind Kind
	N    int
	Mode Mode
}

// Validate rejects nonsensical requests before they reach Round.
func (r Request) Validate() (err error) {
	defer Error.WrapP(&err)

	if r.Mode < Down || r.Mode > HalfEven {
		return Invalid.New("mode: %d", int(r.Mode))
	}

	switch r.Kind {
	case None, Significant:
		return nil
	case Places:
		if r.N < 0 {
			return Invalid.New("fractional places: %d", r.N)
		}
		return nil
	}

	return Invalid.New("kind: %d", int(r.Kind))
}

// Round re-quantizes seq to the precision in req. neg is the sign of
// the original value; Ceiling and Floor round toward it or away from
// it accordingly. Rounding an already short enough sequence is a
// no-op.
func Round(seq digits.Sequence, neg bool, req Request) (out digits.Sequence, err error) {
	defer Error.WrapP(&err)

	err = req.Validate()
	if err != nil {
		return digits.Sequence{}, err
	}

	if req.Kind == None {
		return seq, nil
	}
	if req.Kind == Significant && req.N <= 0 {
		// Too small to hold any digit of the value.
		return digits.Zero(), nil
	}

	cut := req.N
	if req.Kind == Places {
		cut = seq.Place + req.N
	}
	if cut >= len(seq.Digits) {
		return seq, nil
	}

	kept, lsd, tie, rest := split(seq.Digits, cut)

	if !increment(neg, lsd, tie, rest, req.Mode) {
		return trim(kept, seq.Place), nil
	}

	return carry(kept, seq.Place, cut), nil
}

// split divides ds at the cut position into the kept prefix, the
// least significant kept digit, the first dropped (tie) digit, and
// whether any later dropped digit is nonzero. A cut at or before the
// first digit keeps nothing; dropped positions ahead of the first
// digit read as zero.
func split(ds []byte, cut int) (kept []byte, lsd, tie byte, rest bool) {
	if cut > 0 {
		kept = append([]byte(nil), ds[:cut]...)
		lsd = kept[len(kept)-1]
	}

	if cut < 0 {
		rest = true
		return kept, lsd, tie, rest
	}

	tie = ds[cut]
	for _, d := range ds[cut+1:] {
		if d != 0 {
			rest = true
			break
		}
	}

	return kept, lsd, tie, rest
}

// increment reports whether the least significant kept digit must be
// bumped. exact means every dropped digit is zero, so the kept prefix
// already equals the value.
func increment(neg bool, lsd, tie byte, rest bool, mode Mode) bool {
	exact := tie == 0 && !rest

	switch mode {
	case Down:
		return false
	case Up:
		return !exact
	case Ceiling:
		return !exact && !neg
	case Floor:
		return !exact && neg
	case HalfUp:
		return tie >= 5
	case HalfDown:
		return tie > 5 || (tie == 5 && rest)
	case HalfEven:
		if tie == 5 && !rest {
			return lsd%2 == 1
		}
		return tie >= 5
	}

	return false
}

// carry applies the increment, propagating backward through the kept
// digits. A carry past the most significant digit grows the sequence
// by one place; an empty prefix collapses to a single carried 1 at
// the cut position.
func carry(kept []byte, place, cut int) digits.Sequence {
	if len(kept) == 0 {
		return digits.Sequence{
			Place:  place - cut + 1,
			Digits: []byte{1},
		}
	}

	i := len(kept) - 1
	kept[i]++
	for ; i > 0; i-- {
		if kept[i] <= 9 {
			break
		}
		kept[i] -= 10
		kept[i-1]++
	}

	if kept[0] > 9 {
		kept[0] -= 10
		kept = append([]byte{1}, kept...)
		place++
	}

	return trim(kept, place)
}

// trim strips trailing zeros, collapsing an all-zero result to the
// canonical zero sequence.
func trim(ds []byte, place int) digits.Sequence {
	for len(ds) > 1 && ds[len(ds)-1] == 0 {
		ds = ds[:len(ds)-1]
	}

	if len(ds) == 0 || (len(ds) == 1 && ds[0] == 0) {
		return digits.Zero()
	}

	return digits.Sequence{
		Place:  place,
		Digits: ds,
	}
}
