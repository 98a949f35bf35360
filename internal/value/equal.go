package value

// Equal compares two Numbers structurally after rational normalization.
// Exact and inexact forms never compare equal, even when numerically so.
func Equal(a, b Number) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.Type() {
	case TypeInteger:
		return a.(Integer).Int().Cmp(b.(Integer).Int()) == 0
	case TypeRational:
		return a.(Rational).Rat().Cmp(b.(Rational).Rat()) == 0
	case TypeDouble:
		return a.(Double) == b.(Double)
	case TypeInvalid:
		return false
	}
	return false
}
