package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/reshetovitsme/news-workflow-bot/internal/modules/message/domain"
	"github.com/reshetovitsme/news-workflow-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements message.Repository using file system
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based message repository
func NewFileStorage(basePath string) (Repository, error) {
	messagePath := filepath.Join(basePath, "messages")
	if err := os.MkdirAll(messagePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create messages directory").Wrap(err)
	}

	return &FileStorage{basePath: messagePath}, nil
}

func (s *FileStorage) SaveMessage(message *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Store messages in channel-specific directories
	msgDir := filepath.Join(s.basePath, safeName(message.ChannelID))
	if err := os.MkdirAll(msgDir, 0755); err != nil {
		return oops.With("message_dir", msgDir, "context", "failed to create message directory").Wrap(err)
	}

	path := filepath.Join(msgDir, safeName(message.Timestamp)+".json")
	data, err := json.MarshalIndent(message, "", "  ")
	if err != nil {
		return oops.With("channel_id", message.ChannelID, "ts", message.Timestamp, "context", "failed to marshal message").Wrap(err)
	}

	return os.WriteFile(path, data, 0644)
}

func (s *FileStorage) GetMessage(channelID, timestamp string) (*domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(s.basePath, safeName(channelID), safeName(timestamp)+".json")
	message, err := readMessage(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrMessageNotFound
		}
		return nil, oops.With("channel_id", channelID, "ts", timestamp, "context", "failed to read message").Wrap(err)
	}
	return message, nil
}

// GetMessages returns up to limit receipts of a channel, most recent first
func (s *FileStorage) GetMessages(channelID string, limit int) ([]*domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgDir := filepath.Join(s.basePath, safeName(channelID))
	entries, err := os.ReadDir(msgDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Message{}, nil
		}
		return nil, oops.With("channel_id", channelID, "message_dir", msgDir, "context", "failed to read messages directory").Wrap(err)
	}

	messages := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (*domain.Message, bool) {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			return nil, false
		}
		message, err := readMessage(filepath.Join(msgDir, entry.Name()))
		if err != nil {
			return nil, false
		}
		return message, true
	})

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].PostedAt.After(messages[j].PostedAt)
	})

	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}

func readMessage(path string) (*domain.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var message domain.Message
	if err := json.Unmarshal(data, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// safeName keeps channel ids and timestamps usable as single path elements
func safeName(s string) string {
	return strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(s)
}
