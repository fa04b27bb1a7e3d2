package service

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyContent is returned when there is nothing to translate.
var ErrEmptyContent = errors.New("content to translate cannot be empty")

// UrduService is the development stand-in for the hosted translation
// service. It does not translate; it returns the content under a
// deterministic Urdu banner so the client's swap/revert paths can be
// exercised end to end without the real collaborator.
type UrduService struct{}

// NewUrduService constructs an UrduService.
func NewUrduService() *UrduService {
	return &UrduService{}
}

const urduBanner = "## اردو ترجمہ\n\n"

// TranslateToUrdu returns the banner-prefixed content. Deterministic:
// equal input yields equal output.
func (s *UrduService) TranslateToUrdu(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}
	return urduBanner + content, nil
}
