package commands

import (
	"signage-sync/internal/infra"
	"signage-sync/internal/pkg/errs"
)

var (
	ErrMenuItemNotFound  = errs.ErrMenuItemNotFound
	ErrPromotionNotFound = errs.ErrPromotionNotFound
	ErrStoreNotFound     = errs.ErrStoreNotFound
	ErrPlaylistNotFound  = errs.ErrPlaylistNotFound
	ErrUnknownReference  = errs.New("referenced record does not exist")
)

// translate maps repository kinds onto this package's sentinels.
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrUnknownReference)
	case infra.IsKind(err, infra.KindCheckViolated):
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return err
	}
}
