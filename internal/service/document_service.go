package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"coverquote-be/internal/dto"
	"coverquote-be/internal/pkg/logger"
	"coverquote-be/internal/pkg/serverutils"
	"coverquote-be/internal/repository/contract"
	"coverquote-be/pkg/decpage"
	"coverquote-be/pkg/extraction"
	"coverquote-be/pkg/jurisdiction"
	"coverquote-be/pkg/llm"
	"coverquote-be/pkg/rag/prompt"
	"coverquote-be/pkg/store"
)

const summarySystem = "You are a licensed personal lines insurance advisor. " +
	"Review the extracted declarations page data and produce a short coverage analysis: " +
	"call out the liability limits, any coverage that looks thin, and one or two upgrade " +
	"suggestions. Respond in clean HTML only (<p>, <ul>, <li>, <strong>), no markdown."

type IDocumentService interface {
	Upload(ctx context.Context, sessionID, filename string, data []byte) (*dto.UploadResponse, error)
}

// documentService handles declarations page uploads: extract text, scrape
// structured fields, generate comparison rates and an advisor summary.
type documentService struct {
	sessionRepo contract.SessionRepository
	extractor   *extraction.SmartExtractor
	llmProvider llm.LLMProvider
	publisher   IPublisherService
	log         logger.ILogger
}

func NewDocumentService(
	sessionRepo contract.SessionRepository,
	extractor *extraction.SmartExtractor,
	llmProvider llm.LLMProvider,
	publisher IPublisherService,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		sessionRepo: sessionRepo,
		extractor:   extractor,
		llmProvider: llmProvider,
		publisher:   publisher,
		log:         log,
	}
}

func (ds *documentService) Upload(ctx context.Context, sessionID, filename string, data []byte) (*dto.UploadResponse, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", serverutils.ErrBadRequest)
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return nil, fmt.Errorf("%w: only PDF files are supported", serverutils.ErrBadRequest)
	}

	text, err := ds.extractor.Extract(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}
	text = extraction.Normalize(text)

	sess := ds.loadOrCreate(ctx, sessionID)
	sess.ExtractedText = text
	sess.Extraction = decpage.Parse(text)
	sess.FakeQuotes = decpage.GenerateFakeRates(sess.Extraction.PolicyInfo.FullTermPremium)

	summary := ds.summarize(ctx, sess.Extraction, sess.FakeQuotes)
	sess.DecSummary = summary
	sess.Append("assistant", summary)
	sess.Summarize("[uploaded declarations page: "+filename+"]", summary)

	if err := ds.sessionRepo.Save(ctx, sess); err != nil {
		ds.log.Error("document", "session save failed", map[string]interface{}{
			"session": sess.ID, "error": err.Error(),
		})
	}

	ds.publishExtracted(sess)

	return &dto.UploadResponse{
		SessionID:  sess.ID,
		Extraction: sess.Extraction,
		FakeQuotes: sess.FakeQuotes,
		Summary:    summary,
	}, nil
}

// summarize asks the model for a coverage analysis. Failures produce a
// visible placeholder instead of failing the upload.
func (ds *documentService) summarize(ctx context.Context, extracted *store.Extraction, quotes map[string]float64) string {
	extractedJSON, _ := json.Marshal(extracted)
	quotesJSON, _ := json.Marshal(quotes)

	reply, err := ds.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: summarySystem},
		{Role: "user", Content: "EXTRACTED POLICY DATA:\n" + string(extractedJSON) +
			"\n\nCOMPARISON QUOTES:\n" + string(quotesJSON)},
	}, llm.WithTemperature(0.6), llm.WithMaxTokens(1200))
	if err != nil || strings.TrimSpace(reply) == "" {
		detail := "no response"
		if err != nil {
			detail = err.Error()
		}
		ds.log.Error("document", "coverage summary failed", map[string]interface{}{
			"error": detail,
		})
		return "<p><em>Summary unavailable:</em> " + detail + "</p>"
	}
	return prompt.ConvertMarkdownToHTML(strings.TrimSpace(reply))
}

func (ds *documentService) publishExtracted(sess *store.Session) {
	event := dto.DocumentExtractedEvent{
		SessionID:    sess.ID,
		Jurisdiction: jurisdiction.Infer(sess.Profile, sess),
	}
	if err := ds.publisher.PublishDocumentExtracted(event); err != nil {
		ds.log.Warn("document", "failed to publish extracted event", map[string]interface{}{
			"session": sess.ID, "error": err.Error(),
		})
	}
}

func (ds *documentService) loadOrCreate(ctx context.Context, sessionID string) *store.Session {
	sess, found, err := ds.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		ds.log.Warn("document", "session load failed, starting fresh", map[string]interface{}{
			"session": sessionID, "error": err.Error(),
		})
	}
	if !found || sess == nil {
		return store.NewSession(sessionID)
	}
	return sess
}
