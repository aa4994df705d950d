package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PublicPaths are served without a token.
var PublicPaths = []string{
	"/token/generate",
	"/token/validate",
	"/health",
	"/metrics",
}

// Register adds every route to router with its full path so a known path
// with the wrong method answers 405.
func (h *Handlers) Register(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	router.HandleFunc("/token/generate", h.GenerateToken).Methods(http.MethodPost)
	router.HandleFunc("/token/validate", h.ValidateToken).Methods(http.MethodPost)

	router.HandleFunc("/student/get_self", h.GetSelf).Methods(http.MethodGet)
	router.HandleFunc("/student/get/{id:[0-9]+}", h.GetStudent).Methods(http.MethodGet)
	router.HandleFunc("/student/get_all", h.GetAllStudents).Methods(http.MethodGet)
	router.HandleFunc("/student/register", h.RegisterStudent).Methods(http.MethodPost)
	router.HandleFunc("/student/reset_email/{id:[0-9]+}", h.ResetStudentEmail).Methods(http.MethodPut)
	router.HandleFunc("/student/reset_password/{id:[0-9]+}", h.ResetStudentPassword).Methods(http.MethodPut)
	router.HandleFunc("/student/reset_name/{id:[0-9]+}", h.ResetStudentName).Methods(http.MethodPut)
	router.HandleFunc("/student/make_admin/{id:[0-9]+}", h.MakeStudentAdmin).Methods(http.MethodPut)
	router.HandleFunc("/student/reset_full/{id:[0-9]+}", h.ResetStudentFull).Methods(http.MethodPut)
	router.HandleFunc("/student/delete/{id:[0-9]+}", h.DeleteStudent).Methods(http.MethodDelete)

	router.HandleFunc("/teacher/get/{id:[0-9]+}", h.GetTeacher).Methods(http.MethodGet)
	router.HandleFunc("/teacher/get_all", h.GetAllTeachers).Methods(http.MethodGet)
	router.HandleFunc("/teacher/add", h.AddTeacher).Methods(http.MethodPost)
	router.HandleFunc("/teacher/reset/{id:[0-9]+}", h.ResetTeacher).Methods(http.MethodPut)
	router.HandleFunc("/teacher/delete/{id:[0-9]+}", h.DeleteTeacher).Methods(http.MethodDelete)

	const comment = "/comment/{kind:student|teacher}"
	router.HandleFunc(comment+"/get/{id:[0-9]+}", h.GetComment).Methods(http.MethodGet)
	router.HandleFunc(comment+"/get_all", h.GetAllComments).Methods(http.MethodGet)
	router.HandleFunc(comment+"/get_vote/{id:[0-9]+}", h.GetCommentScore).Methods(http.MethodGet)
	router.HandleFunc(comment+"/create", h.CreateComment).Methods(http.MethodPost)
	router.HandleFunc(comment+"/upvote/{id:[0-9]+}", h.UpvoteComment).Methods(http.MethodPost)
	router.HandleFunc(comment+"/downvote/{id:[0-9]+}", h.DownvoteComment).Methods(http.MethodPost)
	router.HandleFunc(comment+"/unvote/{id:[0-9]+}", h.UnvoteComment).Methods(http.MethodDelete)
	router.HandleFunc(comment+"/delete/{id:[0-9]+}", h.DeleteComment).Methods(http.MethodDelete)
}
