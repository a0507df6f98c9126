package ports

import "time"

// Exchange is one user/bot turn within a conversation session.
type Exchange struct {
	User        string    `json:"user"`
	Language    string    `json:"language"`
	Intent      string    `json:"intent"`
	Timestamp   time.Time `json:"timestamp"`
	Bot         string    `json:"bot"`
	BotLanguage string    `json:"bot_language"`
}

// Session is a conversation session. Sessions are append-or-update keyed
// by SessionID: flushing the same session twice replaces its exchange
// list rather than duplicating the session.
type Session struct {
	SessionID string     `json:"session_id"`
	StartTime time.Time  `json:"start_time"`
	Exchanges []Exchange `json:"exchanges"`
}

// TrainingEntry is one mutating training operation, appended to the
// session log as it happens.
type TrainingEntry struct {
	Type      string    `json:"type"` // "word", "phrase", "idiom", "example", "grammar"
	Category  string    `json:"category,omitempty"`
	Hinglish  string    `json:"hinglish,omitempty"`
	Kumaoni   string    `json:"kumaoni,omitempty"`
	Meaning   string    `json:"meaning,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TrainingSession is the append-only log of one training run.
type TrainingSession struct {
	SessionID string          `json:"session_id"`
	Timestamp time.Time       `json:"timestamp"`
	Entries   []TrainingEntry `json:"entries"`
}

// SessionSink receives conversation session flushes.
type SessionSink interface {
	// UpsertSession stores the session, replacing any prior session with
	// the same SessionID.
	UpsertSession(*Session) error
}

// TrainingSink receives completed training session logs.
type TrainingSink interface {
	// AppendTraining appends a training session to the log.
	AppendTraining(*TrainingSession) error
}

// History is the conversation-history and training-log store.
// Writes must be transactional: a crash mid-write must not corrupt
// previously committed sessions.
type History interface {
	SessionSink
	TrainingSink

	// Sessions returns all conversation sessions ordered by SessionID.
	Sessions() ([]Session, error)

	// SessionCount returns the number of stored conversation sessions.
	SessionCount() (int, error)

	// TrainingSessions returns all training sessions ordered by SessionID.
	TrainingSessions() ([]TrainingSession, error)

	Close() error
}
