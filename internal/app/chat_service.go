package app

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-chat/internal/model"
	"portfolio-chat/internal/rag"
	"portfolio-chat/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMessageEmpty    = errors.New("message content is empty")
	ErrMessageEnqueue  = errors.New("message enqueue failed")
)

const welcomeMessage = "Hi! I'm here to help you learn about my design work and experience. You can ask me about my projects, skills, design process, or anything else you'd like to know!"

const processingErrorMessage = "I'm sorry, I encountered an error while processing your message. Please try again."

type AsyncMessagePublisher interface {
	Publish(ctx context.Context, msg model.ChatMessage) error
}

type TranscriptCache interface {
	GetTranscript(ctx context.Context, sessionID string) ([]model.ChatMessage, bool, error)
	SetTranscript(ctx context.Context, sessionID string, messages []model.ChatMessage) error
	DeleteTranscript(ctx context.Context, sessionID string) error
	MarkDirty(ctx context.Context, sessionID string) error
	IsDirty(ctx context.Context, sessionID string) (bool, error)
}

type ChatService struct {
	sessionRepo *repository.ChatSessionRepository
	messageRepo *repository.ChatMessageRepository
	publisher   AsyncMessagePublisher
	transcripts TranscriptCache
	engine      *rag.Engine
}

type CreateSessionInput struct {
	UserIP    string
	UserAgent string
}

type CreateSessionResult struct {
	Session *model.ChatSession `json:"session"`
	Welcome *model.ChatMessage `json:"welcome_message"`
}

type SendMessageInput struct {
	SessionID string
	Content   string
}

type SendMessageResult struct {
	UserMessage      model.ChatMessage  `json:"user_message"`
	AssistantMessage model.ChatMessage  `json:"assistant_message"`
	SessionUpdated   *model.ChatSession `json:"session_updated"`
}

func NewChatService(
	sessionRepo *repository.ChatSessionRepository,
	messageRepo *repository.ChatMessageRepository,
	publisher AsyncMessagePublisher,
	transcripts TranscriptCache,
	engine *rag.Engine,
) *ChatService {
	return &ChatService{
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		publisher:   publisher,
		transcripts: transcripts,
		engine:      engine,
	}
}

// CreateSession opens a new session and seeds it with the assistant's
// welcome message.
func (s *ChatService) CreateSession(input CreateSessionInput) (*CreateSessionResult, error) {
	session := &model.ChatSession{
		UserIP:        input.UserIP,
		UserAgent:     input.UserAgent,
		TotalMessages: 1,
		IsActive:      true,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	welcome := &model.ChatMessage{
		ID:           uuid.NewString(),
		SessionID:    session.ID,
		MessageType:  model.MessageTypeAssistant,
		Content:      welcomeMessage,
		ResponseType: model.ResponseTypeText,
		CreatedAt:    time.Now(),
	}
	if err := s.messageRepo.Create(welcome); err != nil {
		return nil, err
	}

	return &CreateSessionResult{Session: session, Welcome: welcome}, nil
}

// SendMessage stores the user's message, runs the answer pipeline, and
// stores the assistant's reply. A pipeline failure still yields a stored
// error-typed message so the conversation keeps its alternating shape.
func (s *ChatService) SendMessage(ctx context.Context, input SendMessageInput) (*SendMessageResult, error) {
	if input.SessionID == "" {
		return nil, ErrInvalidInput
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrMessageEmpty
	}

	session, err := s.sessionRepo.GetByID(input.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if s.publisher == nil {
		return nil, ErrMessageEnqueue
	}
	if s.transcripts != nil {
		_ = s.transcripts.MarkDirty(ctx, session.ID)
		_ = s.transcripts.DeleteTranscript(ctx, session.ID)
	}

	userMessage := model.ChatMessage{
		ID:          uuid.NewString(),
		SessionID:   session.ID,
		MessageType: model.MessageTypeUser,
		Content:     content,
		CreatedAt:   time.Now(),
	}
	if err := s.publisher.Publish(ctx, userMessage); err != nil {
		return nil, ErrMessageEnqueue
	}

	started := time.Now()
	answer, answerErr := s.engine.Answer(ctx, content)
	elapsed := int(time.Since(started).Milliseconds())

	var assistantMessage model.ChatMessage
	if answerErr != nil {
		log.Printf("answer pipeline failed for session %s: %v", session.ID, answerErr)
		assistantMessage = model.ChatMessage{
			ID:           uuid.NewString(),
			SessionID:    session.ID,
			MessageType:  model.MessageTypeAssistant,
			Content:      processingErrorMessage,
			ResponseType: model.ResponseTypeError,
			CreatedAt:    time.Now(),
		}
	} else {
		assistantMessage = s.buildAssistantMessage(session.ID, answer, elapsed)
	}

	if err := s.publisher.Publish(ctx, assistantMessage); err != nil {
		return nil, ErrMessageEnqueue
	}

	session.TotalMessages += 2
	session.UpdatedAt = time.Now()
	if err := s.sessionRepo.Update(session); err != nil {
		return nil, err
	}

	return &SendMessageResult{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
		SessionUpdated:   session,
	}, nil
}

// GetTranscript returns a session's messages oldest first, consulting the
// cache unless a recent write marked it dirty.
func (s *ChatService) GetTranscript(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if s.transcripts != nil {
		dirty, err := s.transcripts.IsDirty(ctx, sessionID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.transcripts.GetTranscript(ctx, sessionID); cacheErr == nil && hit {
				return trimMessages(cached, limit), nil
			}
		}
	}

	messages, err := s.messageRepo.ListBySessionID(sessionID, limit)
	if err != nil {
		return nil, err
	}
	if s.transcripts != nil {
		if dirty, dirtyErr := s.transcripts.IsDirty(ctx, sessionID); dirtyErr == nil && !dirty {
			_ = s.transcripts.SetTranscript(ctx, sessionID, messages)
		}
	}
	return messages, nil
}

// ListActiveSessions returns recently active sessions for the admin view.
func (s *ChatService) ListActiveSessions(limit int) ([]model.ChatSession, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.sessionRepo.ListActive(limit)
}

// SuggestedQuestions returns the fixed example prompts for the chat UI.
func (s *ChatService) SuggestedQuestions() []string {
	return rag.SuggestedQuestions()
}

func (s *ChatService) buildAssistantMessage(sessionID string, answer *rag.Answer, elapsedMs int) model.ChatMessage {
	retrievalContext := ""
	if raw, err := json.Marshal(answer.RetrievalContext); err == nil {
		retrievalContext = string(raw)
	}

	return model.ChatMessage{
		ID:                    uuid.NewString(),
		SessionID:             sessionID,
		MessageType:           model.MessageTypeAssistant,
		Content:               answer.Content,
		ResponseType:          answer.ResponseType,
		ReferencedProjects:    answer.ReferencedProjects,
		ReferencedSkills:      answer.ReferencedSkills,
		ReferencedExperiences: answer.ReferencedExperiences,
		MediaURLs:             answer.MediaURLs,
		RetrievalContext:      retrievalContext,
		ConfidenceScore:       answer.ConfidenceScore,
		ResponseTimeMs:        elapsedMs,
		CreatedAt:             time.Now(),
	}
}

func trimMessages(messages []model.ChatMessage, limit int) []model.ChatMessage {
	if limit <= 0 || limit >= len(messages) {
		return messages
	}
	return messages[len(messages)-limit:]
}
