package domain

import "errors"

// Validation error types

var (
	// ErrRatingNotANumber indicates the rating input could not be parsed as an integer
	ErrRatingNotANumber = errors.New("rating must be a number from 1 to 5")

	// ErrRatingOutOfRange indicates the rating is outside the 1-5 range
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

	// ErrPlaceNameEmpty indicates the place name is empty after trimming
	ErrPlaceNameEmpty = errors.New("place name cannot be empty")

	// ErrPlaceNameTooShort indicates the place name has fewer than 2 characters
	ErrPlaceNameTooShort = errors.New("place name is too short")

	// ErrPlaceNameTooLong indicates the place name exceeds 100 characters
	ErrPlaceNameTooLong = errors.New("place name is too long")

	// ErrReviewTextEmpty indicates the review text is empty after trimming
	ErrReviewTextEmpty = errors.New("review text cannot be empty")

	// ErrReviewTextTooShort indicates the review text has fewer than 10 characters
	ErrReviewTextTooShort = errors.New("review text must have at least 10 characters")

	// ErrReviewTextTooLong indicates the review text exceeds 1000 characters
	ErrReviewTextTooLong = errors.New("review text is too long (1000 characters max)")

	// ErrPhoneInvalidCharacters indicates the phone number contains characters
	// other than an optional leading + and digits
	ErrPhoneInvalidCharacters = errors.New("phone number contains invalid characters")

	// ErrPhoneTooShort indicates fewer than 10 digits remain after cleanup
	ErrPhoneTooShort = errors.New("phone number is too short")
)
