package repository

// SearchDocumentsOptions holds the parameters of a knowledge search.
type SearchDocumentsOptions struct {
	Query string // User text, used as-is
	Limit int    // Top-K documents
}
