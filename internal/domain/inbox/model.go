package inbox

import "github.com/neudebri/hms/internal/domain/identity"

type Message struct {
	ID          string   `json:"id"`
	SenderID    string   `json:"senderId"`
	ReceiverID  string   `json:"receiverId"`
	Subject     *string  `json:"subject"`
	Content     string   `json:"content"`
	SentAt      string   `json:"sentAt"`
	ReadAt      *string  `json:"readAt"`
	IsRead      bool     `json:"isRead"`
	IsArchived  bool     `json:"isArchived"`
	Priority    string   `json:"priority"`
	Attachments []string `json:"attachments"`
}

// MessageWithUsers attaches sender and receiver at read time.
type MessageWithUsers struct {
	Message
	Sender   *identity.User `json:"sender,omitempty"`
	Receiver *identity.User `json:"receiver,omitempty"`
}
