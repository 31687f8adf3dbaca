package question

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultCatalogue []byte

type QuestionRepository interface {
	List(ctx context.Context) ([]string, error)
}

type catalogue struct {
	Questions []string `yaml:"questions"`
}

type static struct {
	questions []string
}

// NewQuestionRepository returns the built-in question catalogue.
func NewQuestionRepository() (QuestionRepository, error) {
	return NewQuestionRepositoryFromYAML(defaultCatalogue)
}

// NewQuestionRepositoryFromYAML parses a catalogue document with a top-level
// "questions" sequence.
func NewQuestionRepositoryFromYAML(doc []byte) (QuestionRepository, error) {
	var c catalogue
	if err := yaml.Unmarshal(doc, &c); err != nil {
		return nil, fmt.Errorf("parse question catalogue: %w", err)
	}
	if len(c.Questions) == 0 {
		return nil, fmt.Errorf("question catalogue is empty")
	}
	return &static{questions: c.Questions}, nil
}

// List returns a fresh copy so callers can never mutate the catalogue.
func (s *static) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(s.questions))
	copy(out, s.questions)
	return out, nil
}
