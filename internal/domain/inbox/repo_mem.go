package inbox

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MessageRepoMem keeps messages in a mutex-guarded map. Records are copied
// on the way in and out, so callers never hold memory the store also
// writes; mutations only land through Update.
type MessageRepoMem struct {
	mu       sync.RWMutex
	messages map[string]*Message
}

func NewMessageRepoMem() *MessageRepoMem {
	return &MessageRepoMem{messages: make(map[string]*Message)}
}

func (r *MessageRepoMem) Create(_ context.Context, m *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	c := *m
	r.messages[m.ID] = &c
	return nil
}

func (r *MessageRepoMem) GetByID(_ context.Context, id string) (*Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *m
	return &c, nil
}

func (r *MessageRepoMem) Update(_ context.Context, m *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.messages[m.ID]; !ok {
		return ErrNotFound
	}
	c := *m
	r.messages[m.ID] = &c
	return nil
}

func (r *MessageRepoMem) ListByParticipant(_ context.Context, userID string) ([]*Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Message, 0)
	for _, m := range r.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}
