package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/afzaalahmad/bookpal/internal/book"
)

const (
	emptyQueryAnswer = "I'm sorry, I didn't understand your request. Could you please rephrase it?"
	noMatchAnswer    = "I couldn't find anything in the book about that. Try asking about a specific chapter topic."
)

// RagService answers reader questions from the book's own text. It is
// a retrieval-only stand-in for the hosted answer service: it scores
// paragraphs by query-term overlap and returns the best one verbatim.
type RagService struct {
	library *book.Library
}

// NewRagService constructs a RagService over the given library.
func NewRagService(library *book.Library) *RagService {
	return &RagService{library: library}
}

// Answer returns an answer for the query. It never fails: empty
// queries and misses both produce fixed fallback text, matching the
// answer-service contract of always returning a well-formed answer.
func (s *RagService) Answer(ctx context.Context, query string) (string, error) {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return emptyQueryAnswer, nil
	}

	bestScore := 0
	var bestChapter book.Chapter
	var bestParagraph string
	for _, ch := range s.library.Chapters() {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		content, err := s.library.Content(ch)
		if err != nil {
			continue
		}
		for _, para := range strings.Split(content, "\n\n") {
			para = strings.TrimSpace(para)
			if para == "" || strings.HasPrefix(para, "#") {
				continue
			}
			score := 0
			lower := strings.ToLower(para)
			for _, term := range terms {
				if strings.Contains(lower, term) {
					score++
				}
			}
			if score > bestScore {
				bestScore = score
				bestChapter = ch
				bestParagraph = para
			}
		}
	}

	if bestScore == 0 {
		return noMatchAnswer, nil
	}
	return fmt.Sprintf("From %q:\n\n%s", bestChapter.Title, bestParagraph), nil
}

// queryTerms lowercases and splits the query, dropping words too short
// to be selective.
func queryTerms(query string) []string {
	var terms []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		w = strings.Trim(w, ".,!?;:\"'()")
		if len(w) >= 3 {
			terms = append(terms, w)
		}
	}
	return terms
}
