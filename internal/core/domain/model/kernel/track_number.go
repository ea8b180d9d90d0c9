package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"servicetrack/internal/pkg/errs"
)

// TrackNumberPrefix is the fixed prefix of every issued track number.
const TrackNumberPrefix = "TNS-"

// trackNumberDigits is the zero-padded width of the numeric part.
const trackNumberDigits = 5

// ErrTrackNumberIsNotConstructed indicates that a TrackNumber was not created
// through NewTrackNumber or TrackNumberFromString.
var ErrTrackNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackNumber must be created via NewTrackNumber or TrackNumberFromString",
)

// TrackNumber is a value object that represents the human-readable, sequentially
// issued identifier of an order, formatted as "TNS-NNNNN" with the numeric part
// zero-padded to five digits.
//
// Track numbers are issued by the sequence allocator exactly once per order and
// are immutable afterwards. The zero value is invalid and must be constructed
// through one of the factory functions.
//
// Example usage:
//
//	tn, err := kernel.NewTrackNumber(34)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(tn.String()) // "TNS-00034"
type TrackNumber struct {
	value int64
}

// NewTrackNumber creates a TrackNumber from the raw counter value returned by
// the sequence allocator. The value must be positive; zero is reserved for the
// pristine counter and never appears on an order.
func NewTrackNumber(value int64) (TrackNumber, error) {
	if value <= 0 {
		return TrackNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"track number",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return TrackNumber{value: value}, nil
}

// TrackNumberFromString parses the canonical "TNS-NNNNN" representation.
// It is used when reconstructing orders from persistence or when resolving
// a track number supplied by a caller.
func TrackNumberFromString(s string) (TrackNumber, error) {
	raw, ok := strings.CutPrefix(s, TrackNumberPrefix)
	if !ok {
		return TrackNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"track number",
			fmt.Errorf("%q does not start with %q", s, TrackNumberPrefix),
		)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return TrackNumber{}, errs.NewValueIsInvalidErrorWithCause("track number", err)
	}

	return NewTrackNumber(value)
}

// String returns the canonical representation, e.g. "TNS-00034".
// Values above 99999 widen naturally instead of wrapping.
func (t TrackNumber) String() string {
	return fmt.Sprintf("%s%0*d", TrackNumberPrefix, trackNumberDigits, t.value)
}

// Value returns the raw sequence value the track number was issued from.
func (t TrackNumber) Value() int64 {
	return t.value
}

// IsEqual compares two track numbers by their sequence value.
func (t TrackNumber) IsEqual(other TrackNumber) bool {
	return t.value == other.value
}

// Validate checks that the TrackNumber was properly constructed.
// Returns ErrTrackNumberIsNotConstructed for the zero value.
func (t TrackNumber) Validate() error {
	if t.value <= 0 {
		return ErrTrackNumberIsNotConstructed
	}
	return nil
}
