package constants

const (
	MAX_PAGE_SIZE               = 100
	MAX_SOURCES_PER_REQUEST     = 7
	DEFAULT_OFFSET              = uint64(0)
	DEFAULT_DISTRIBUTIONS_LIMIT = 20
)
