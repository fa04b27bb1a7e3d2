// Package chat manages the conversational transcript between the reader
// and the remote answer service.
package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sender tags who produced a message.
type Sender string

const (
	// SenderUser marks messages typed by the reader.
	SenderUser Sender = "user"
	// SenderBot marks messages from the answer service.
	SenderBot Sender = "bot"
)

const (
	welcomeText = "Hello! How can I help you with the book?"
	// errorText is the fixed fallback bubble; raw error detail never
	// reaches the reader.
	errorText = "Sorry, I encountered an error. Please try again."
)

// Message is one entry in the transcript.
type Message struct {
	// ID is unique within the transcript and increases with time.
	ID int64
	// Text is the message body.
	Text string
	// Sender is who produced the message.
	Sender Sender
}

// AnswerClient is the remote question-answering collaborator.
type AnswerClient interface {
	Answer(ctx context.Context, query string) (string, error)
}

// Transcript is an append-only conversation. At most one request is in
// flight at a time; a send while busy is a no-op.
type Transcript struct {
	mu     sync.Mutex
	msgs   []Message
	busy   bool
	lastID int64

	client AnswerClient
	log    *zap.Logger
}

// NewTranscript returns a transcript seeded with the welcome message.
func NewTranscript(client AnswerClient, log *zap.Logger) *Transcript {
	t := &Transcript{client: client, log: log}
	t.append(welcomeText, SenderBot)
	return t
}

// append adds a message under the lock, assigning a monotonic
// time-derived id.
func (t *Transcript) append(text string, sender Sender) Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	m := Message{ID: id, Text: text, Sender: sender}
	t.msgs = append(t.msgs, m)
	return m
}

// Messages returns a snapshot of the transcript in order.
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}

// Busy reports whether a request is in flight.
func (t *Transcript) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.busy
}

// Send appends the reader's message and asks the answer service for a
// reply, appending either the answer or the fixed error bubble. It is a
// no-op when text trims to empty or another request is in flight. It
// blocks until the exchange finishes; run it from a goroutine when the
// caller must stay responsive.
func (t *Transcript) Send(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	t.mu.Lock()
	if t.busy {
		t.mu.Unlock()
		return
	}
	t.busy = true
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		t.busy = false
		t.mu.Unlock()
	}()

	// Optimistic append: the user message lands before the request goes
	// out, so it always immediately precedes its reply or error bubble.
	t.append(text, SenderUser)

	answer, err := t.client.Answer(ctx, text)
	if err != nil {
		t.log.Warn("answer request failed", zap.Error(err))
		t.append(errorText, SenderBot)
		return
	}
	t.append(answer, SenderBot)
}
