package game

// Memento is an immutable snapshot of a game position in the six-field
// position text. It shares nothing with the board it was taken from.
type Memento struct {
	state string
}

// NewMemento wraps position text, e.g. read from a user or a file.
// The text is only validated when the memento is restored.
func NewMemento(text string) Memento {
	return Memento{state: text}
}

// String returns the position text.
func (m Memento) String() string {
	return m.state
}

// IsZero reports whether m holds no position.
func (m Memento) IsZero() bool {
	return m.state == ""
}
