// Package contact validates contact form submissions before they are
// appended to the submission log.
package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	maxNameLen    = 100
	maxMessageLen = 2000
)

var ErrInvalidSubmission = errors.New("invalid submission")

// Loose on purpose: the mail server is the real validator, this only catches
// obviously broken input before it hits the log.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Submission is one contact form entry as the user sent it.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate reports the first problem found with a submission, or nil.
func Validate(s Submission) error {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSubmission)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidSubmission, maxNameLen)
	}
	if !emailRe.MatchString(strings.TrimSpace(s.Email)) {
		return fmt.Errorf("%w: email address does not look valid", ErrInvalidSubmission)
	}
	msg := strings.TrimSpace(s.Message)
	if msg == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidSubmission)
	}
	if len(msg) > maxMessageLen {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidSubmission, maxMessageLen)
	}
	return nil
}
