package repository

import (
	"github.com/reshetovitsme/news-workflow-bot/internal/modules/message/domain"
)

// Repository defines the interface for delivery receipt persistence
type Repository interface {
	SaveMessage(message *domain.Message) error
	GetMessage(channelID, timestamp string) (*domain.Message, error)
	GetMessages(channelID string, limit int) ([]*domain.Message, error)
}
