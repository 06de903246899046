package review

import "strings"

const (
	MaxCommentLength = 1000
	MaxTitleLength   = 200
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

// Title is optional; an empty title is valid.
type Title struct {
	text string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{text: t}, nil
}

func (t Title) String() string { return t.text }
func (t Title) IsEmpty() bool  { return t.text == "" }
