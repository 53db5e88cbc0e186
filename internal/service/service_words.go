package service

import (
	"context"

	"github.com/avolkov/reverso/internal/logger"
	"github.com/avolkov/reverso/internal/validators"
	"github.com/avolkov/reverso/models"
)

// wordsService is the concrete implementation of WordsService.
type wordsService struct {
	validator validators.Validator
	logger    *logger.Logger
}

// NewWordsService constructs a WordsService.
func NewWordsService(logger *logger.Logger) WordsService {
	return &wordsService{
		validator: validators.NewAccountValidator(),
		logger:    logger,
	}
}

// Reverse returns word with its Unicode code points in reverse order.
// Reversal granularity is the code point; combining sequences and other
// multi-rune grapheme clusters are not kept together.
//
// Returns ErrValidationNoWord if word is empty. The operation is pure:
// reversing the result yields the original word.
func (s *wordsService) Reverse(ctx context.Context, word string) (models.ReversedWord, error) {
	if err := s.validator.Validate(ctx, models.PalindromeRequest{Word: word}); err != nil {
		logger.FromContext(ctx).Error().Msg("reverse called without a word")
		return models.ReversedWord{}, mapValidationError(err)
	}

	runes := []rune(word)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return models.ReversedWord{
		Original:   word,
		Palindrome: string(runes),
	}, nil
}
