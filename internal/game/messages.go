package game

// DefaultMessageLimit is how many messages a log keeps by default.
const DefaultMessageLimit = 50

// MessageLog keeps the most recent game messages, oldest first.
type MessageLog struct {
	limit    int
	messages []string
}

// NewMessageLog creates a log holding at most limit messages.
func NewMessageLog(limit int) *MessageLog {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	return &MessageLog{limit: limit}
}

// Add appends a message, dropping the oldest once full. Empty text is ignored.
func (l *MessageLog) Add(text string) {
	if text == "" {
		return
	}
	l.messages = append(l.messages, text)
	if over := len(l.messages) - l.limit; over > 0 {
		l.messages = append(l.messages[:0], l.messages[over:]...)
	}
}

// Recent returns up to n of the newest messages, oldest first.
func (l *MessageLog) Recent(n int) []string {
	if n <= 0 {
		return nil
	}
	start := max(0, len(l.messages)-n)
	return append([]string(nil), l.messages[start:]...)
}

// Len returns the number of stored messages.
func (l *MessageLog) Len() int {
	return len(l.messages)
}
