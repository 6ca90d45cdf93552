package validation

// bundleState tracks where we are in the field list of a fulltext index.
type bundleState int

const (
	// No field read yet.
	bundleInit bundleState = iota
	// Only sorted fields so far.
	bundleSortHead
	// The one run of unsorted text fields.
	bundleText
	// Sorted fields after the text run.
	bundleSortTail
)

func (s bundleState) String() string {
	switch s {
	case bundleInit:
		return "init"
	case bundleSortHead:
		return "sort-head"
	case bundleText:
		return "text"
	case bundleSortTail:
		return "sort-tail"
	default:
		return "unknown"
	}
}

// next returns the state after reading a field. ok is false when an unsorted
// field follows the sort tail, which would start a second text run.
func (s bundleState) next(sorted bool) (bundleState, bool) {
	switch s {
	case bundleInit, bundleSortHead:
		if sorted {
			return bundleSortHead, true
		}
		return bundleText, true
	case bundleText:
		if sorted {
			return bundleSortTail, true
		}
		return bundleText, true
	case bundleSortTail:
		if sorted {
			return bundleSortTail, true
		}
		return bundleSortTail, false
	default:
		panic("validation: unknown bundle state " + s.String())
	}
}

// textFieldsBundled reports whether the unsorted fields form at most one
// contiguous run. It stops at the first violation.
func textFieldsBundled(sorted []bool) bool {
	state := bundleInit
	for _, s := range sorted {
		var ok bool
		if state, ok = state.next(s); !ok {
			return false
		}
	}
	return true
}
