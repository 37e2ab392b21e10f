package validation

import (
	"regexp"
	"unicode/utf8"

	"blogapi/domain"
)

var usernameRe = regexp.MustCompile(`^[\p{L}\p{N}@._+-]+$`)

func ValidateUsername(username string) bool {
	return usernameRe.MatchString(username) && utf8.RuneCountInString(username) <= 150
}

func ValidatePassword(password string) bool {
	length := utf8.RuneCountInString(password)
	return length >= 1 && length <= 128
}

// Field limits count characters, not bytes, matching the varchar columns.
func ValidatePostTitle(title string) bool {
	length := utf8.RuneCountInString(title)
	return length >= 1 && length <= domain.MaxPostTitleLen
}

func ValidatePostText(text string) bool {
	length := utf8.RuneCountInString(text)
	return length >= 1 && length <= domain.MaxPostTextLen
}
