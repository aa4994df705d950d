// Package view projects stored entities into the Full or Limited shape a
// caller is allowed to see.
package view

import (
	"encoding/json"
	"errors"
	"time"

	"schoolfeedback/internal/auth"
	"schoolfeedback/internal/models"
)

// View holds exactly one of Full or Limited. On the wire it is
// {"Full": {...}} or {"Limited": {...}}.
type View[F, L any] struct {
	Full    *F
	Limited *L
}

func (v View[F, L]) IsFull() bool {
	return v.Full != nil
}

func (v View[F, L]) MarshalJSON() ([]byte, error) {
	if v.Full != nil {
		return json.Marshal(struct {
			Full *F `json:"Full"`
		}{v.Full})
	}
	if v.Limited != nil {
		return json.Marshal(struct {
			Limited *L `json:"Limited"`
		}{v.Limited})
	}
	return nil, errors.New("view: empty view")
}

func (v *View[F, L]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Full    *F `json:"Full"`
		Limited *L `json:"Limited"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if (raw.Full == nil) == (raw.Limited == nil) {
		return errors.New("view: expected exactly one of Full or Limited")
	}
	v.Full, v.Limited = raw.Full, raw.Limited
	return nil
}

type LimitedStudent struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LimitedComment struct {
	ID          int64     `json:"id"`
	ReceiverID  int64     `json:"receiver_id"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"published_at"`
}

type (
	StudentView = View[models.Student, LimitedStudent]
	CommentView = View[models.Comment, LimitedComment]
)

func fullAccess(id auth.Identity, ownerID int64) bool {
	return auth.IsSelfOrAdmin(id, ownerID)
}

// Student is Full for the student themself and for admins.
func Student(id auth.Identity, s models.Student) StudentView {
	if fullAccess(id, s.ID) {
		return StudentView{Full: &s}
	}
	return StudentView{Limited: &LimitedStudent{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
	}}
}

func Students(id auth.Identity, students []models.Student) []StudentView {
	views := make([]StudentView, 0, len(students))
	for _, s := range students {
		views = append(views, Student(id, s))
	}
	return views
}

// Comment is Full for its author and for admins; the Limited shape hides the
// author.
func Comment(id auth.Identity, c models.Comment) CommentView {
	if fullAccess(id, c.AuthorID) {
		return CommentView{Full: &c}
	}
	return CommentView{Limited: &LimitedComment{
		ID:          c.ID,
		ReceiverID:  c.ReceiverID,
		Body:        c.Body,
		PublishedAt: c.PublishedAt,
	}}
}

func Comments(id auth.Identity, comments []models.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, Comment(id, c))
	}
	return views
}
