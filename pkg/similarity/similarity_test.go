package similarity_test

import (
	"testing"

	"conversational-task-manager/pkg/similarity"
)

func TestContainmentScore(t *testing.T) {
	s := similarity.NewContainment()

	t.Run("Exact Match", func(t *testing.T) {
		if got := s.Score("buy milk", "Buy milk"); got != 1.0 {
			t.Errorf("expected 1.0 for exact match, got %f", got)
		}
	})

	t.Run("Query Contained In Candidate", func(t *testing.T) {
		got := s.Score("buy milk", "Buy milk 2")
		want := 8.0 / 10.0
		if got != want {
			t.Errorf("expected %f, got %f", want, got)
		}
	})

	t.Run("Candidate Contained In Query", func(t *testing.T) {
		got := s.Score("please buy milk", "buy milk")
		want := 8.0 / 15.0
		if got != want {
			t.Errorf("expected %f, got %f", want, got)
		}
	})

	t.Run("Character Overlap Fallback", func(t *testing.T) {
		got := s.Score("groceries", "call dentist")
		if got <= 0 || got >= 0.7 {
			t.Errorf("expected weak overlap score below threshold, got %f", got)
		}
	})

	t.Run("Empty Inputs", func(t *testing.T) {
		if got := s.Score("", "buy milk"); got != 0 {
			t.Errorf("expected 0 for empty query, got %f", got)
		}
		if got := s.Score("buy milk", "  "); got != 0 {
			t.Errorf("expected 0 for blank candidate, got %f", got)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := s.Score("finish report", "Finish the quarterly report")
		for i := 0; i < 10; i++ {
			if b := s.Score("finish report", "Finish the quarterly report"); b != a {
				t.Fatalf("score changed between calls: %f vs %f", a, b)
			}
		}
	})
}
