package domain

import "fmt"

// Question represents the single question carried by an outgoing query.
type Question struct {
	ID    uint16
	Name  string
	Type  RRType
	Class RRClass
}

// NewQuestion constructs a Question and validates its fields.
func NewQuestion(id uint16, name string, rrtype RRType) (Question, error) {
	q := Question{
		ID:    id,
		Name:  name,
		Type:  rrtype,
		Class: RRClassIN,
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks whether the Question fields are structurally and semantically valid.
func (q Question) Validate() error {
	if q.Name == "" {
		return fmt.Errorf("question name must not be empty")
	}
	if !q.Type.IsQueryable() {
		return fmt.Errorf("unsupported query type: %d", q.Type)
	}
	if q.Class != RRClassIN {
		return fmt.Errorf("unsupported query class: %d", q.Class)
	}
	return nil
}
