package vertexsearch

// Config configures the Discovery Engine search client.
type Config struct {
	ProjectID       string
	Location        string
	EngineID        string
	CredentialsPath string
	// Endpoint overrides the API endpoint, for tests.
	Endpoint string
}

// Document is one search hit, flattened from structData and derivedStructData.
type Document struct {
	ID      string
	Title   string
	Content string
	Snippet string
	Link    string
}
