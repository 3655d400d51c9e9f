package domain

// Record is one entry of a fetched remote collection. URL is carried
// as-is for display; only Name participates in aggregation.
type Record struct {
	Name string
	URL  string
}

// Collection is the parsed result of one remote retrieval.
type Collection struct {
	SourceURL string
	Records   []Record
}
