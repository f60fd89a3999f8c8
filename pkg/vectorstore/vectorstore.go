// Package vectorstore abstracts the pre-populated guideline search index.
package vectorstore

import "context"

// Filter narrows a similarity search. Jurisdiction, when set, is a strict
// keyword match; there is no partial or fuzzy jurisdiction matching.
type Filter struct {
	Jurisdiction string
}

// Hit is one ranked result from the index, with the lineage metadata the
// ingestion pipeline attached to each chunk.
type Hit struct {
	Text         string
	Score        float32
	Jurisdiction string
	Source       string
	ChunkIndex   int
	Line         string
	Coverages    []string
	Section      string
}

// VectorStore is a similarity-search backend over guideline chunks.
type VectorStore interface {
	Search(ctx context.Context, vector []float32, filter Filter, limit int) ([]Hit, error)
	Close() error
}
