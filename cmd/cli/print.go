package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"schoolfeedback/internal/models"
	"schoolfeedback/internal/view"
)

func printStudent(w io.Writer, s *models.Student) {
	role := ""
	if s.IsAdmin {
		role = " [admin]"
	}
	fmt.Fprintf(w, "#%d %s %s <%s>%s\n", s.ID, s.FirstName, s.LastName, s.Email, role)
}

func printStudentView(w io.Writer, v view.StudentView) {
	if v.IsFull() {
		printStudent(w, v.Full)
		return
	}
	fmt.Fprintf(w, "#%d %s %s\n", v.Limited.ID, v.Limited.FirstName, v.Limited.LastName)
}

func printTeacher(w io.Writer, t *models.Teacher) {
	if t.Prefix == "" {
		fmt.Fprintf(w, "#%d %s\n", t.ID, t.Name)
		return
	}
	fmt.Fprintf(w, "#%d %s %s\n", t.ID, t.Prefix, t.Name)
}

func printComment(w io.Writer, c *models.Comment) {
	fmt.Fprintf(w, "#%d by #%d to #%d, %s: %s\n", c.ID, c.AuthorID, c.ReceiverID, when(c.PublishedAt), c.Body)
}

func printCommentView(w io.Writer, v view.CommentView) {
	if v.IsFull() {
		printComment(w, v.Full)
		return
	}
	c := v.Limited
	fmt.Fprintf(w, "#%d to #%d, %s: %s\n", c.ID, c.ReceiverID, when(c.PublishedAt), c.Body)
}

func printVote(w io.Writer, v *models.Vote) {
	direction := "down"
	if v.IsUpvote {
		direction = "up"
	}
	fmt.Fprintf(w, "vote #%d: %s on comment #%d by #%d\n", v.ID, direction, v.CommentID, v.VoterID)
}

func when(t time.Time) string {
	return humanize.Time(t)
}
