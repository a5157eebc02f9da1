package errs

// Lookup failures. Handlers turn these into 404.
var (
	ErrStoreNotFound     = New("store not found")
	ErrPlaylistNotFound  = New("playlist not found")
	ErrMenuItemNotFound  = New("menu item not found")
	ErrPromotionNotFound = New("promotion not found")
)

var (
	ErrDomainValidation        = New("domain validation error")
	ErrDatabaseOperationFailed = New("database operation failed")
)
