package inbox

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(ctx context.Context, m *Message) error
	GetByID(ctx context.Context, id string) (*Message, error)
	Update(ctx context.Context, m *Message) error
	ListByParticipant(ctx context.Context, userID string) ([]*Message, error)
}
