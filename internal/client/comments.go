package client

import (
	"context"
	"fmt"
	"net/http"

	"schoolfeedback/internal/models"
	"schoolfeedback/internal/view"
)

// Comments addresses the comment endpoints of one kind.
type Comments struct {
	c    *Client
	kind models.CommentKind
}

func (c *Client) Comments(kind models.CommentKind) *Comments {
	return &Comments{c: c, kind: kind}
}

func (cc *Comments) path(action string) string {
	return fmt.Sprintf("/comment/%s/%s", cc.kind, action)
}

func (cc *Comments) idPath(action string, id int64) string {
	return fmt.Sprintf("/comment/%s/%s/%d", cc.kind, action, id)
}

func (cc *Comments) Get(ctx context.Context, id int64) (view.CommentView, error) {
	var comment view.CommentView
	err := cc.c.do(ctx, http.MethodGet, cc.idPath("get", id), nil, &comment)
	return comment, err
}

func (cc *Comments) List(ctx context.Context) ([]view.CommentView, error) {
	var comments []view.CommentView
	err := cc.c.do(ctx, http.MethodGet, cc.path("get_all"), nil, &comments)
	return comments, err
}

func (cc *Comments) Create(ctx context.Context, receiverID int64, body string) (*models.Comment, error) {
	var comment models.Comment
	req := models.NewComment{ReceiverID: receiverID, Body: body}
	if err := cc.c.do(ctx, http.MethodPost, cc.path("create"), req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (cc *Comments) Delete(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	if err := cc.c.do(ctx, http.MethodDelete, cc.idPath("delete", id), nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (cc *Comments) Upvote(ctx context.Context, id int64) (*models.Vote, error) {
	return cc.vote(ctx, "upvote", id)
}

func (cc *Comments) Downvote(ctx context.Context, id int64) (*models.Vote, error) {
	return cc.vote(ctx, "downvote", id)
}

func (cc *Comments) vote(ctx context.Context, action string, id int64) (*models.Vote, error) {
	var vote models.Vote
	if err := cc.c.do(ctx, http.MethodPost, cc.idPath(action, id), nil, &vote); err != nil {
		return nil, err
	}
	return &vote, nil
}

// Unvote reports deleted=false when the caller had no vote on the comment.
func (cc *Comments) Unvote(ctx context.Context, id int64) (*models.Vote, bool, error) {
	var resp struct {
		models.Vote
		Message string `json:"message"`
	}
	if err := cc.c.do(ctx, http.MethodDelete, cc.idPath("unvote", id), nil, &resp); err != nil {
		return nil, false, err
	}
	if resp.Message != "" {
		return nil, false, nil
	}
	return &resp.Vote, true, nil
}

func (cc *Comments) Score(ctx context.Context, id int64) (int64, error) {
	var score int64
	err := cc.c.do(ctx, http.MethodGet, cc.idPath("get_vote", id), nil, &score)
	return score, err
}
