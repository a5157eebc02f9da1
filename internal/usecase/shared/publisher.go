package shared

import (
	"context"

	"signage-sync/internal/domain/change"
)

//go:generate mockgen -source=publisher.go -destination=../../../tests/mock/shared/publisher_mock.go -package=sharedmock

// ChangePublisher fans an invalidation signal out to every display watching
// the signal's store. Delivery is best-effort and Publish never blocks.
type ChangePublisher interface {
	Publish(ctx context.Context, sig change.Signal)
}
