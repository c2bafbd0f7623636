package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"portfolio-chat/internal/model"
)

type ChatSessionRepository struct {
	db *gorm.DB
}

func NewChatSessionRepository(db *gorm.DB) *ChatSessionRepository {
	return &ChatSessionRepository{db: db}
}

func (r *ChatSessionRepository) Create(session *model.ChatSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("create chat session failed: %w", err)
	}
	return nil
}

func (r *ChatSessionRepository) GetByID(id string) (*model.ChatSession, error) {
	var session model.ChatSession
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chat session failed: %w", err)
	}
	return &session, nil
}

func (r *ChatSessionRepository) Update(session *model.ChatSession) error {
	if err := r.db.Save(session).Error; err != nil {
		return fmt.Errorf("update chat session failed: %w", err)
	}
	return nil
}

func (r *ChatSessionRepository) ListActive(limit int) ([]model.ChatSession, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var sessions []model.ChatSession
	if err := r.db.Where("is_active = ?", true).Order("created_at DESC").Limit(limit).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list active chat sessions failed: %w", err)
	}
	return sessions, nil
}
