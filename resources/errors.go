package resources

import (
	"errors"
	"fmt"
)

var (
	ErrPillarNotFound     = errors.New("resources: pillar not found")
	ErrSubtopicNotFound   = errors.New("resources: subtopic not found")
	ErrArticleNotFound    = errors.New("resources: article not found")
	ErrContentMalformed   = errors.New("resources: content metadata malformed")
	ErrContentRootMissing = errors.New("resources: content root does not exist")
	ErrStoreRequired      = errors.New("resources: content store is required")
)

// NotFoundError reports a missing pillar, subtopic, or article lookup.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	switch e.Resource {
	case "subtopic":
		return ErrSubtopicNotFound
	case "article":
		return ErrArticleNotFound
	default:
		return ErrPillarNotFound
	}
}

// MalformedError reports a content file whose frontmatter failed to parse.
// Aggregate listings skip these entries; direct fetches surface the error.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrContentMalformed.Error(), e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return ErrContentMalformed
}

// IsNotFound reports whether err represents a missing content lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPillarNotFound) ||
		errors.Is(err, ErrSubtopicNotFound) ||
		errors.Is(err, ErrArticleNotFound)
}
