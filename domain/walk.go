package domain

import (
	"time"

	"github.com/google/uuid"
)

// Walk statuses. A walk starts scheduled and ends in one of the two terminal
// states. The in_progress state only exists while a live walk is being driven
// and is never persisted.
const (
	WalkScheduled  = "scheduled"
	WalkInProgress = "in_progress"
	WalkCompleted  = "completed"
	WalkCancelled  = "cancelled"
)

// Chat message senders.
const (
	SenderOwner  = "owner"
	SenderWalker = "walker"
	SenderSystem = "system"
)

// Chat message types.
const (
	MessageText     = "text"
	MessagePhoto    = "photo"
	MessageLocation = "location"
)

// ChatMessage is a single entry in a walk's chat history. Messages are
// immutable once created and are only ever appended, never edited or removed.
type ChatMessage struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"` // One of SenderOwner, SenderWalker, SenderSystem
	SenderName string `json:"senderName"`
	Message    string `json:"message"`
	Timestamp  int64  `json:"timestamp"` // Unix milliseconds
	Type       string `json:"type"`      // One of MessageText, MessagePhoto, MessageLocation
}

// NewChatMessage builds a text chat message with a generated id and the
// current time.
func NewChatMessage(senderID, senderName, message string) ChatMessage {
	return ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		SenderName: senderName,
		Message:    message,
		Timestamp:  time.Now().UnixMilli(),
		Type:       MessageText,
	}
}

// Walk represents a booked walk. The pet name and photo are denormalized at
// booking time so history rows survive pet deletion. Rating and TipAmount are
// meaningful only once the walk is completed.
type Walk struct {
	ID            string  `json:"id"`
	OwnerID       string  `json:"ownerId"`
	WalkerID      string  `json:"walkerId"`
	PetID         string  `json:"petId"`
	PetName       string  `json:"petName"`
	PetPhoto      string  `json:"petPhoto"`
	RouteID       string  `json:"routeId"`
	Status        string  `json:"status"`
	ScheduledDate string  `json:"scheduledDate"`
	Duration      int     `json:"duration"` // Minutes
	TotalPrice    float64 `json:"totalPrice"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`

	// ChatHistory is append-only and keeps its insertion order.
	ChatHistory []ChatMessage `json:"chatHistory"`

	// Photo evidence captured during the walk, empty when not provided.
	StartPhoto string `json:"startPhoto,omitempty"`
	EndPhoto   string `json:"endPhoto,omitempty"`

	Rating    float64 `json:"rating"` // 0.0 until rated
	Review    string  `json:"review,omitempty"`
	TipAmount float64 `json:"tipAmount"`
}

// WalkRepository is the interface that holds the walk related repository methods.
//
// Status transitions are not guarded: CancelWalk and CompleteWalk overwrite
// the status of whatever walk matches, and callers are expected not to touch
// walks already in a terminal state.
type WalkRepository interface {
	// AddWalk appends the walk to the collection and persists it.
	AddWalk(walk Walk) error

	// GetWalk returns the first walk with the given id.
	GetWalk(id string) (Walk, bool)

	// CancelWalk sets the status of the matching walk to WalkCancelled,
	// preserving every other field. It reports whether a walk was found.
	CancelWalk(id string) (bool, error)

	// CompleteWalk sets the status of the matching walk to WalkCompleted,
	// preserving every other field. It reports whether a walk was found.
	CompleteWalk(id string) (bool, error)

	// AddMessageToWalk appends the message to the chat history of the matching
	// walk, keeping prior order. It reports whether a walk was found.
	AddMessageToWalk(walkID string, msg ChatMessage) (bool, error)

	// UpdateWalk replaces the walk with a matching id, mirroring UpdatePet.
	UpdateWalk(walk Walk) (bool, error)

	// Walks returns a snapshot of the walk collection in insertion order.
	Walks() []Walk
}
