package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"schoolfeedback/internal/models"
	"schoolfeedback/internal/service"
)

// MsgNoVote is returned by unvote when the caller had not voted.
const MsgNoVote = "no vote to delete"

func (h *Handlers) commentService(w http.ResponseWriter, r *http.Request) (service.CommentService, bool) {
	svc, ok := h.CommentServices[models.CommentKind(mux.Vars(r)["kind"])]
	if !ok {
		WriteError(w, "unknown comment kind", http.StatusNotFound)
	}
	return svc, ok
}

func (h *Handlers) voteService(w http.ResponseWriter, r *http.Request) (service.VoteService, bool) {
	svc, ok := h.VoteServices[models.CommentKind(mux.Vars(r)["kind"])]
	if !ok {
		WriteError(w, "unknown comment kind", http.StatusNotFound)
	}
	return svc, ok
}

func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	comments, ok := h.commentService(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	comment, err := comments.Get(r.Context(), caller, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) GetAllComments(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	comments, ok := h.commentService(w, r)
	if !ok {
		return
	}

	list, err := comments.List(r.Context(), caller)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, list, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	comments, ok := h.commentService(w, r)
	if !ok {
		return
	}

	var req models.NewComment
	if !h.decode(w, r, &req) {
		return
	}

	comment, err := comments.Create(r.Context(), caller, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	comments, ok := h.commentService(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	comment, err := comments.Delete(r.Context(), caller, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) GetCommentScore(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	votes, ok := h.voteService(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	score, err := votes.Score(r.Context(), caller, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, score, http.StatusOK)
}

func (h *Handlers) UpvoteComment(w http.ResponseWriter, r *http.Request) {
	h.castVote(w, r, true)
}

func (h *Handlers) DownvoteComment(w http.ResponseWriter, r *http.Request) {
	h.castVote(w, r, false)
}

func (h *Handlers) castVote(w http.ResponseWriter, r *http.Request, up bool) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	votes, ok := h.voteService(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	cast := votes.Downvote
	if up {
		cast = votes.Upvote
	}

	vote, err := cast(r.Context(), caller, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, vote, http.StatusOK)
}

func (h *Handlers) UnvoteComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	votes, ok := h.voteService(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	vote, deleted, err := votes.Unvote(r.Context(), caller, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if !deleted {
		writeSuccess(w, MessageResponse{Message: MsgNoVote}, http.StatusOK)
		return
	}

	writeSuccess(w, vote, http.StatusOK)
}
