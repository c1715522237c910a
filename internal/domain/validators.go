package domain

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Single-field validators for dialogue input. Each is a pure function that
// returns the normalized value or a sentinel error from errors.go; they
// never panic and have no side effects.

// ValidateRating parses a 1-5 star rating from raw text input
func ValidateRating(input string) (int, error) {
	rating, err := strconv.Atoi(input)
	if err != nil {
		return 0, ErrRatingNotANumber
	}
	if rating < 1 || rating > 5 {
		return 0, ErrRatingOutOfRange
	}
	return rating, nil
}

// ValidatePlaceName trims and bounds-checks a place name (2-100 characters)
func ValidatePlaceName(input string) (string, error) {
	cleaned := strings.TrimSpace(input)
	if cleaned == "" {
		return "", ErrPlaceNameEmpty
	}
	length := utf8.RuneCountInString(cleaned)
	if length < 2 {
		return "", ErrPlaceNameTooShort
	}
	if length > 100 {
		return "", ErrPlaceNameTooLong
	}
	return cleaned, nil
}

// ValidateReviewText trims and bounds-checks review text (10-1000 characters)
func ValidateReviewText(input string) (string, error) {
	cleaned := strings.TrimSpace(input)
	if cleaned == "" {
		return "", ErrReviewTextEmpty
	}
	length := utf8.RuneCountInString(cleaned)
	if length < 10 {
		return "", ErrReviewTextTooShort
	}
	if length > 1000 {
		return "", ErrReviewTextTooLong
	}
	return cleaned, nil
}

// ValidatePhoneNumber strips formatting characters and normalizes the number
// to a leading-plus form. Normalization is idempotent: validating an already
// normalized number returns it unchanged.
func ValidatePhoneNumber(input string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, input)

	digits := cleaned
	if strings.HasPrefix(cleaned, "+") {
		digits = cleaned[1:]
	}
	if digits == "" {
		return "", ErrPhoneInvalidCharacters
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", ErrPhoneInvalidCharacters
		}
	}
	if len(digits) < 10 {
		return "", ErrPhoneTooShort
	}
	return "+" + digits, nil
}
