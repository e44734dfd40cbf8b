package inbox

import (
	"context"
	"sort"
	"time"

	"github.com/neudebri/hms/internal/domain/identity"
	"github.com/neudebri/hms/internal/platform/dates"
)

type UserDirectory interface {
	GetUser(ctx context.Context, id string) (*identity.User, error)
}

type Service struct {
	messages MessageRepository
	users    UserDirectory
	now      func() time.Time
}

func NewService(messages MessageRepository, users UserDirectory) *Service {
	return &Service{messages: messages, users: users, now: time.Now}
}

// Messages returns everything the user sent or received, newest first,
// with sender and receiver joined in.
func (s *Service) Messages(ctx context.Context, userID string) ([]*MessageWithUsers, error) {
	msgs, err := s.messages.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(msgs, func(i, j int) bool { return dates.After(msgs[i].SentAt, msgs[j].SentAt) })
	out := make([]*MessageWithUsers, 0, len(msgs))
	for _, m := range msgs {
		d := &MessageWithUsers{Message: *m}
		if u, err := s.users.GetUser(ctx, m.SenderID); err == nil {
			d.Sender = u
		}
		if u, err := s.users.GetUser(ctx, m.ReceiverID); err == nil {
			d.Receiver = u
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *Service) SendMessage(ctx context.Context, m *Message) (*Message, error) {
	if m.SentAt == "" {
		m.SentAt = s.now().Format(time.RFC3339)
	}
	if m.Priority == "" {
		m.Priority = "normal"
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// MarkRead flips a message to read. The first call stamps readAt; marking
// an already-read message again leaves the original timestamp alone.
func (s *Service) MarkRead(ctx context.Context, id string) (*Message, error) {
	m, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.IsRead {
		m.IsRead = true
		readAt := s.now().Format(time.RFC3339)
		m.ReadAt = &readAt
		if err := s.messages.Update(ctx, m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// UnreadCount counts messages addressed to the user that are still unread.
// Messages the user sent never count, read or not.
func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	msgs, err := s.messages.ListByParticipant(ctx, userID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range msgs {
		if m.ReceiverID == userID && !m.IsRead {
			n++
		}
	}
	return n, nil
}
