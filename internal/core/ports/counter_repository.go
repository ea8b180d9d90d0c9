package ports

import (
	"context"

	"servicetrack/internal/core/domain/model/kernel"
)

// CounterRepository is the sequence allocator: it issues strictly increasing
// track numbers from the singleton counter document.
//
// NextTrackNumber performs one atomic read-modify-write against the counter
// inside the enclosing unit-of-work transaction, so two concurrent calls never
// observe or return the same number. The allocator performs no manual retry
// loop; transactional conflicts are the store's concern.
//
// If the counter document does not exist the operation fails with a
// *errs.ConfigurationError: a missing counter indicates broken provisioning,
// not a legitimate first-use case.
//
// Uniqueness and strict monotonicity are guaranteed; gap-freedom is not. A
// transaction that increments the counter but fails before the caller
// persists the resulting order leaves a permanent gap, which is acceptable.
type CounterRepository interface {
	NextTrackNumber(ctx context.Context) (kernel.TrackNumber, error)
}
