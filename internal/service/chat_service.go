package service

import (
	"context"
	"fmt"

	"coverquote-be/internal/dto"
	"coverquote-be/internal/pkg/logger"
	"coverquote-be/internal/pkg/serverutils"
	"coverquote-be/internal/repository/contract"
	"coverquote-be/pkg/decpage"
	"coverquote-be/pkg/flow/umbrella"
	"coverquote-be/pkg/jurisdiction"
	"coverquote-be/pkg/llm"
	"coverquote-be/pkg/rag/grounding"
	"coverquote-be/pkg/rag/prompt"
	"coverquote-be/pkg/rag/retrieval"
	"coverquote-be/pkg/store"
)

// IChatService defines the conversation orchestrator interface
type IChatService interface {
	SendChat(ctx context.Context, sessionID string, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, sessionID string) (*dto.ChatHistoryResponse, error)
	ClearSession(ctx context.Context, sessionID string) error
	Retrieve(ctx context.Context, sessionID string, request *dto.RetrieveRequest) (*dto.RetrieveResponse, error)
	JurisdictionDebug(ctx context.Context, sessionID string) (*dto.JurisdictionDebugResponse, error)
}

// chatService composes jurisdiction inference, retrieval, grounding policy
// and the umbrella dialogue into one turn handler.
type chatService struct {
	sessionRepo contract.SessionRepository
	engine      *retrieval.Engine
	machine     *umbrella.Machine
	llmProvider llm.LLMProvider
	topK        int
	log         logger.ILogger
}

func NewChatService(
	sessionRepo contract.SessionRepository,
	engine *retrieval.Engine,
	machine *umbrella.Machine,
	llmProvider llm.LLMProvider,
	topK int,
	log logger.ILogger,
) IChatService {
	if topK <= 0 {
		topK = 5
	}
	return &chatService{
		sessionRepo: sessionRepo,
		engine:      engine,
		machine:     machine,
		llmProvider: llmProvider,
		topK:        topK,
		log:         log,
	}
}

// SendChat handles one user turn. Collaborator failures downgrade to an
// assistant-visible error message; only input validation returns an error.
func (cs *chatService) SendChat(ctx context.Context, sessionID string, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	if request == nil || request.Message == "" {
		return nil, fmt.Errorf("%w: no message provided", serverutils.ErrBadRequest)
	}

	sess := cs.loadOrCreate(ctx, sessionID)
	if request.Profile != nil {
		sess.Profile = *request.Profile
	}

	sess.Append("user", request.Message)

	// Enter the umbrella flow if asked
	if sess.ActiveFlow == store.FlowNone && umbrella.ShouldEnter(request.Message) {
		sess.ActiveFlow = store.FlowUmbrella
	}

	var reply string
	if sess.ActiveFlow == store.FlowUmbrella {
		result := cs.machine.Step(ctx, sess, request.Message)
		reply = result.Response
		if result.Done {
			sess.Summarize(request.Message, "[umbrella table]")
		} else {
			sess.Summarize(request.Message, reply)
		}
	} else {
		reply = cs.generalTurn(ctx, sess, request.Message)
		sess.Summarize(request.Message, reply)
	}

	sess.Append("assistant", reply)
	cs.save(ctx, sess)

	return &dto.SendChatResponse{SessionID: sess.ID, Response: reply}, nil
}

// generalTurn runs the retrieval-grounded path: infer jurisdiction, retrieve
// guidelines, decide grounding, ask the model.
func (cs *chatService) generalTurn(ctx context.Context, sess *store.Session, message string) string {
	jur := jurisdiction.Infer(sess.Profile, sess)
	targetCov := grounding.DetectTargetCoverage(message)

	topic := sess.ActiveFlow
	if topic == "" {
		topic = retrieval.TopicGeneral
	}
	line := ""
	if topic == retrieval.TopicAutoAdjust {
		line = "auto"
	}

	retrieved, err := cs.engine.Retrieve(ctx, retrieval.Query{
		Jurisdiction: jur,
		Topic:        topic,
		K:            cs.topK,
		Line:         line,
		UserQuery:    message,
	})
	if err != nil {
		cs.log.Error("chat", "guideline retrieval failed", map[string]interface{}{
			"session": sess.ID, "error": err.Error(),
		})
		return "Error processing chat: " + err.Error()
	}

	allowFallback := grounding.AllowFallback(targetCov, jur, retrieved)

	messages := prompt.NewBuilder(sess, message, retrieved, allowFallback, jur).Build()
	reply, err := cs.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(0.4), llm.WithMaxTokens(1000))
	if err != nil {
		cs.log.Error("chat", "completion failed", map[string]interface{}{
			"session": sess.ID, "error": err.Error(),
		})
		return "Error processing chat: " + err.Error()
	}

	return prompt.ConvertMarkdownToHTML(reply)
}

func (cs *chatService) GetHistory(ctx context.Context, sessionID string) (*dto.ChatHistoryResponse, error) {
	sess := cs.loadOrCreate(ctx, sessionID)
	return &dto.ChatHistoryResponse{
		SessionID:  sess.ID,
		History:    sess.History,
		Extraction: sess.Extraction,
		FakeQuotes: sess.FakeQuotes,
	}, nil
}

func (cs *chatService) ClearSession(ctx context.Context, sessionID string) error {
	return cs.sessionRepo.Delete(ctx, sessionID)
}

// Retrieve is the raw diagnostic retrieval surface.
func (cs *chatService) Retrieve(ctx context.Context, sessionID string, request *dto.RetrieveRequest) (*dto.RetrieveResponse, error) {
	sess := cs.loadOrCreate(ctx, sessionID)

	jur := request.Jurisdiction
	if jur == "" {
		jur = jurisdiction.Infer(sess.Profile, sess)
	}
	topic := request.Topic
	if topic == "" {
		topic = retrieval.TopicGeneral
	}
	k := request.K
	if k <= 0 {
		k = cs.topK
	}

	chunks, err := cs.engine.Retrieve(ctx, retrieval.Query{
		Jurisdiction: jur,
		Topic:        topic,
		K:            k,
		Line:         request.Line,
		Coverage:     request.Coverage,
		CoveragesAny: request.CoveragesAny,
		Section:      request.Section,
		UserQuery:    request.Query,
	})
	if err != nil {
		return nil, err
	}

	return &dto.RetrieveResponse{
		Jurisdiction: jur,
		Topic:        topic,
		K:            k,
		Chunks:       chunks,
		Minimums:     decpage.ParseMinimums(chunks),
	}, nil
}

func (cs *chatService) JurisdictionDebug(ctx context.Context, sessionID string) (*dto.JurisdictionDebugResponse, error) {
	sess := cs.loadOrCreate(ctx, sessionID)
	jur, trace := jurisdiction.InferDebug(sess.Profile, sess)
	return &dto.JurisdictionDebugResponse{Jurisdiction: jur, Trace: trace}, nil
}

func (cs *chatService) loadOrCreate(ctx context.Context, sessionID string) *store.Session {
	sess, found, err := cs.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		cs.log.Warn("chat", "session load failed, starting fresh", map[string]interface{}{
			"session": sessionID, "error": err.Error(),
		})
	}
	if !found || sess == nil {
		return store.NewSession(sessionID)
	}
	if sess.UmbrellaSlots == nil {
		sess.UmbrellaSlots = map[string]string{}
	}
	return sess
}

func (cs *chatService) save(ctx context.Context, sess *store.Session) {
	if err := cs.sessionRepo.Save(ctx, sess); err != nil {
		cs.log.Error("chat", "session save failed", map[string]interface{}{
			"session": sess.ID, "error": err.Error(),
		})
	}
}
