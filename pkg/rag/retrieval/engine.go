// Package retrieval is the guideline retrieval engine: it turns a topic and
// jurisdiction into a vector search over the guideline index and formats the
// hits into tagged text chunks, with a short-TTL cache in front.
package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"coverquote-be/internal/pkg/logger"
	"coverquote-be/pkg/embedding"
	"coverquote-be/pkg/kvcache"
	"coverquote-be/pkg/vectorstore"
)

// CacheTTL bounds staleness of cached chunk lists.
const CacheTTL = 3 * time.Minute

// Topic seed queries used when the caller supplies no query text.
const (
	TopicUmbrella   = "umbrella"
	TopicAutoAdjust = "auto_adjust"
	TopicGeneral    = "general"
)

var seedQueries = map[string]string{
	TopicUmbrella:   "umbrella eligibility and underlying auto/home liability limits",
	TopicAutoAdjust: "auto liability property damage comp collision UM UIM PIP rules",
	TopicGeneral:    "state insurance guidelines for auto and home",
}

// Query describes one retrieval call.
type Query struct {
	Jurisdiction string
	Topic        string
	K            int
	Line         string
	Coverage     string
	CoveragesAny []string
	Section      string
	UserQuery    string
}

// Engine performs cached guideline retrieval.
type Engine struct {
	embedder embedding.EmbeddingProvider
	index    vectorstore.VectorStore
	cache    kvcache.Cache
	log      logger.ILogger
}

func NewEngine(embedder embedding.EmbeddingProvider, index vectorstore.VectorStore, cache kvcache.Cache, log logger.ILogger) *Engine {
	return &Engine{
		embedder: embedder,
		index:    index,
		cache:    cache,
		log:      log,
	}
}

// Retrieve returns formatted guideline chunks for the query. Cache failures
// are downgraded to misses; embedding and search failures propagate.
func (e *Engine) Retrieve(ctx context.Context, q Query) ([]string, error) {
	if q.K <= 0 {
		q.K = 5
	}

	queryText := e.queryText(q)
	key := fingerprint(q, queryText)

	if cached, found, err := e.cache.Get(ctx, key); err != nil {
		e.log.Warn("retrieval", "cache read failed, treating as miss", map[string]interface{}{"error": err.Error()})
	} else if found {
		var chunks []string
		if err := json.Unmarshal(cached, &chunks); err == nil {
			return chunks, nil
		}
	}

	vector, err := e.embedder.Generate(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := e.index.Search(ctx, vector, vectorstore.Filter{Jurisdiction: q.Jurisdiction}, q.K)
	if err != nil {
		return nil, fmt.Errorf("guideline search: %w", err)
	}

	chunks := formatChunks(hits)

	if len(chunks) > 0 {
		payload, err := json.Marshal(chunks)
		if err == nil {
			if err := e.cache.SetTTL(ctx, key, payload, CacheTTL); err != nil {
				e.log.Warn("retrieval", "cache write failed, skipping", map[string]interface{}{"error": err.Error()})
			}
		}
	}
	return chunks, nil
}

// queryText picks the seed text for the topic unless the user supplied a
// query, and prefixes the jurisdiction code to bias relevance.
func (e *Engine) queryText(q Query) string {
	seed, ok := seedQueries[q.Topic]
	if !ok {
		seed = "state insurance guidelines"
	}
	text := q.UserQuery
	if text == "" {
		text = seed
	}
	if q.Jurisdiction != "" {
		text = q.Jurisdiction + " " + text
	}
	return strings.TrimSpace(text)
}

// fingerprint builds the deterministic cache key for a query.
func fingerprint(q Query, queryText string) string {
	jur := q.Jurisdiction
	if jur == "" {
		jur = "UNK"
	}
	covSet := append([]string(nil), q.CoveragesAny...)
	sort.Strings(covSet)

	h := fnv.New64a()
	h.Write([]byte(queryText))

	return fmt.Sprintf("rag:%s:%s:%s:%s:%s:%d:%d",
		jur, q.Topic, q.Line, q.Coverage, strings.Join(covSet, ","), h.Sum64(), q.K)
}

// formatChunks renders hits as "[JUR:source#idx (tags...)]\ntext", skipping
// entries with empty text. Tags are line, coverages, then section.
func formatChunks(hits []vectorstore.Hit) []string {
	chunks := make([]string, 0, len(hits))
	for _, h := range hits {
		text := strings.TrimSpace(h.Text)
		if text == "" {
			continue
		}

		var tags []string
		if h.Line != "" {
			tags = append(tags, h.Line)
		}
		tags = append(tags, h.Coverages...)
		if h.Section != "" {
			tags = append(tags, h.Section)
		}

		tagStr := ""
		if len(tags) > 0 {
			tagStr = " (" + strings.Join(tags, ", ") + ")"
		}

		src := fmt.Sprintf("%s:%s#%d", h.Jurisdiction, h.Source, h.ChunkIndex)
		chunks = append(chunks, fmt.Sprintf("[%s%s]\n%s", src, tagStr, text))
	}
	return chunks
}
