// Package qdrant implements vectorstore.VectorStore against a Qdrant
// collection whose payload carries text, state, source, chunk_index, line,
// coverages and section fields.
package qdrant

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/qdrant/go-client/qdrant"

	"coverquote-be/pkg/vectorstore"
)

// Config holds Qdrant connection settings.
type Config struct {
	URL            string
	CollectionName string
	APIKey         string
}

// Client implements vectorstore.VectorStore for Qdrant.
type Client struct {
	client     *qdrant.Client
	collection string
}

// New connects to a Qdrant server. The URL may omit the scheme; https is
// assumed.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("qdrant url is required")
	}

	raw := cfg.URL
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse qdrant url: %w", err)
	}

	port := 6334
	if u.Port() != "" {
		p, err := strconv.Atoi(u.Port())
		if err != nil {
			return nil, fmt.Errorf("invalid qdrant port: %w", err)
		}
		port = p
	}

	qc, err := qdrant.NewClient(&qdrant.Config{
		Host:   u.Hostname(),
		Port:   port,
		APIKey: cfg.APIKey,
		UseTLS: u.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("create qdrant client: %w", err)
	}

	return &Client{client: qc, collection: cfg.CollectionName}, nil
}

// Search implements vectorstore.VectorStore.
func (c *Client) Search(ctx context.Context, vector []float32, filter vectorstore.Filter, limit int) ([]vectorstore.Hit, error) {
	limitU := uint64(limit)
	points, err := c.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: c.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limitU,
		Filter:         buildFilter(filter),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant search failed: %w", err)
	}

	hits := make([]vectorstore.Hit, 0, len(points))
	for _, p := range points {
		hit := vectorstore.Hit{Score: p.Score}
		for k, v := range p.Payload {
			switch k {
			case "text":
				hit.Text = v.GetStringValue()
			case "state":
				hit.Jurisdiction = v.GetStringValue()
			case "source":
				hit.Source = v.GetStringValue()
			case "chunk_index":
				hit.ChunkIndex = int(v.GetIntegerValue())
			case "line":
				hit.Line = v.GetStringValue()
			case "section":
				hit.Section = v.GetStringValue()
			case "coverages":
				if lv := v.GetListValue(); lv != nil {
					for _, item := range lv.Values {
						if s := item.GetStringValue(); s != "" {
							hit.Coverages = append(hit.Coverages, s)
						}
					}
				}
			}
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// Close implements vectorstore.VectorStore.
func (c *Client) Close() error {
	return c.client.Close()
}

func buildFilter(filter vectorstore.Filter) *qdrant.Filter {
	if filter.Jurisdiction == "" {
		return nil
	}
	return &qdrant.Filter{
		Must: []*qdrant.Condition{
			{
				ConditionOneOf: &qdrant.Condition_Field{
					Field: &qdrant.FieldCondition{
						Key:   "state",
						Match: &qdrant.Match{MatchValue: &qdrant.Match_Keyword{Keyword: filter.Jurisdiction}},
					},
				},
			},
		},
	}
}

var _ vectorstore.VectorStore = (*Client)(nil)
