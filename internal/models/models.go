package models

import (
	"time"
)

type Student struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	FirstName    string `json:"first_name" db:"first_name"`
	LastName     string `json:"last_name" db:"last_name"`
	PasswordHash string `json:"password_hash" db:"password_hash"`
	IsAdmin      bool   `json:"is_admin" db:"is_admin"`
}

type RegisterStudent struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Password  string `json:"password" validate:"required,min=6"`
	Admin     *bool  `json:"admin,omitempty"`
}

type LoginStudent struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Teacher struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Prefix string `json:"prefix" db:"prefix"`
}

type NewTeacher struct {
	Name   string `json:"name" validate:"required,max=100"`
	Prefix string `json:"prefix" validate:"max=20"`
}

// CommentKind selects which receiver table a comment (and its votes) lives in.
type CommentKind string

const (
	StudentComment CommentKind = "student"
	TeacherComment CommentKind = "teacher"
)

var CommentKinds = []CommentKind{StudentComment, TeacherComment}

func (k CommentKind) Valid() bool {
	return k == StudentComment || k == TeacherComment
}

type Comment struct {
	ID          int64     `json:"id" db:"id"`
	AuthorID    int64     `json:"author_id" db:"author_id"`
	ReceiverID  int64     `json:"receiver_id" db:"receiver_id"`
	Body        string    `json:"body" db:"body"`
	PublishedAt time.Time `json:"published_at" db:"published_at"`
}

type NewComment struct {
	ReceiverID int64  `json:"receiver_id" validate:"required,gt=0"`
	Body       string `json:"body" validate:"required,max=2000"`
}

type Vote struct {
	ID        int64 `json:"id" db:"id"`
	CommentID int64 `json:"comment_id" db:"comment_id"`
	VoterID   int64 `json:"voter_id" db:"voter_id"`
	IsUpvote  bool  `json:"is_upvote" db:"is_upvote"`
}

type ResetEmail struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPassword struct {
	Password string `json:"password" validate:"required,min=6"`
}

type ResetName struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

type ValidateToken struct {
	Token string `json:"token" validate:"required"`
}
