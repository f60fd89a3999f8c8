// Package pgstore implements vectorstore.VectorStore over a Postgres
// guideline_embeddings table with a pgvector column. Used when the deployment
// keeps guidelines next to the relational data instead of in Qdrant.
package pgstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"coverquote-be/pkg/vectorstore"
)

// GuidelineEmbedding mirrors the ingestion pipeline's table layout.
type GuidelineEmbedding struct {
	ID         int64           `gorm:"primaryKey"`
	Text       string          `gorm:"type:text"`
	Embedding  pgvector.Vector `gorm:"type:vector(3072)"`
	State      string          `gorm:"index"`
	Source     string
	ChunkIndex int
	Line       string
	Coverages  string // comma-separated tags
	Section    string
}

func (GuidelineEmbedding) TableName() string {
	return "guideline_embeddings"
}

// Store implements vectorstore.VectorStore using pgvector cosine distance.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Search implements vectorstore.VectorStore.
func (s *Store) Search(ctx context.Context, vector []float32, filter vectorstore.Filter, limit int) ([]vectorstore.Hit, error) {
	if limit <= 0 {
		limit = 5
	}

	type row struct {
		GuidelineEmbedding
		Similarity float64
	}
	var rows []row

	queryVector := pgvector.NewVector(vector)
	q := s.db.WithContext(ctx).
		Table("guideline_embeddings").
		Select("guideline_embeddings.*, 1 - (embedding <=> ?) as similarity", queryVector)
	if filter.Jurisdiction != "" {
		q = q.Where("state = ?", filter.Jurisdiction)
	}
	err := q.Order("similarity DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("pgvector search failed: %w", err)
	}

	hits := make([]vectorstore.Hit, 0, len(rows))
	for _, r := range rows {
		var coverages []string
		for _, c := range strings.Split(r.Coverages, ",") {
			if c = strings.TrimSpace(c); c != "" {
				coverages = append(coverages, c)
			}
		}
		hits = append(hits, vectorstore.Hit{
			Text:         r.Text,
			Score:        float32(r.Similarity),
			Jurisdiction: r.State,
			Source:       r.Source,
			ChunkIndex:   r.ChunkIndex,
			Line:         r.Line,
			Coverages:    coverages,
			Section:      r.Section,
		})
	}
	return hits, nil
}

// Close implements vectorstore.VectorStore. The gorm handle is shared and
// owned by the caller.
func (s *Store) Close() error {
	return nil
}

var _ vectorstore.VectorStore = (*Store)(nil)
