package paginator

const (
	// DefaultPage is the page index used when the caller sets none.
	DefaultPage = 1
	// DefaultLimit is the page size used when the caller sets none.
	DefaultLimit = 10
)
