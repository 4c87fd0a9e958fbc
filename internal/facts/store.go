// Package facts holds the answers a user has given during one session.
package facts

// Store maps question ids to answer values. It holds at most one value per
// question and is owned by a single session, so it is not safe for
// concurrent use.
type Store struct {
	values map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{values: map[string]string{}}
}

// Assert records value for questionID, replacing any previous answer.
func (s *Store) Assert(questionID, value string) {
	s.values[questionID] = value
}

// Has reports whether questionID has an answer.
func (s *Store) Has(questionID string) bool {
	_, ok := s.values[questionID]
	return ok
}

// Get returns the answer for questionID.
func (s *Store) Get(questionID string) (string, bool) {
	value, ok := s.values[questionID]
	return value, ok
}

// Retract removes the answer for questionID. Missing answers are ignored.
func (s *Store) Retract(questionID string) {
	delete(s.values, questionID)
}

// RetractAll removes every answer.
func (s *Store) RetractAll() {
	clear(s.values)
}

// Len returns the number of answers.
func (s *Store) Len() int {
	return len(s.values)
}

// Snapshot returns a copy of every answer.
func (s *Store) Snapshot() map[string]string {
	out := make(map[string]string, len(s.values))
	for id, value := range s.values {
		out[id] = value
	}
	return out
}
