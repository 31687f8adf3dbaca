package question_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	questionrepo "github.com/muhammadheryan/femnest/repository/question"
)

var wantQuestions = []string{
	"What's your ideal wake-up time and bedtime routine?",
	"How do you prefer to handle shared household chores?",
	"What's your approach to having guests over?",
	"Are you more of an introvert or extrovert when it comes to socializing at home?",
	"How important is a quiet environment for work/study?",
	"What are your cooking and kitchen sharing preferences?",
	"How do you like to spend your weekends at home?",
}

func TestQuestionRepository_List(t *testing.T) {
	repo, err := questionrepo.NewQuestionRepository()
	if err != nil {
		t.Fatalf("NewQuestionRepository() error = %v", err)
	}

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if diff := cmp.Diff(wantQuestions, got); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}

	// mutating the result must not leak into the next call
	got[0] = "changed"
	again, _ := repo.List(context.Background())
	if again[0] != wantQuestions[0] {
		t.Fatalf("List() returned shared slice, got %q", again[0])
	}
}

func TestNewQuestionRepositoryFromYAML(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    []string
		wantErr bool
	}{
		{
			name: "success: custom catalogue",
			doc:  "questions:\n  - one\n  - two\n",
			want: []string{"one", "two"},
		},
		{
			name:    "error: empty catalogue",
			doc:     "questions: []\n",
			wantErr: true,
		},
		{
			name:    "error: malformed yaml",
			doc:     "questions: [unterminated\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, err := questionrepo.NewQuestionRepositoryFromYAML([]byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewQuestionRepositoryFromYAML() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			got, err := repo.List(context.Background())
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("List() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuestionRepository_ListCanceled(t *testing.T) {
	repo, err := questionrepo.NewQuestionRepository()
	if err != nil {
		t.Fatalf("NewQuestionRepository() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := repo.List(ctx); err == nil {
		t.Fatal("List() with canceled context should fail")
	}
}
