package handlers

import (
	"net/http"

	"schoolfeedback/internal/models"
)

func (h *Handlers) GetSelf(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	student, err := h.StudentService.GetSelf(r.Context(), caller)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, student, http.StatusOK)
}

func (h *Handlers) GetStudent(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	student, err := h.StudentService.Get(r.Context(), caller, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, student, http.StatusOK)
}

func (h *Handlers) GetAllStudents(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	students, err := h.StudentService.List(r.Context(), caller)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, students, http.StatusOK)
}

func (h *Handlers) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req models.RegisterStudent
	if !h.decode(w, r, &req) {
		return
	}

	student, err := h.StudentService.Register(r.Context(), caller, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, student, http.StatusCreated)
}

func (h *Handlers) ResetStudentEmail(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.ResetEmail
	if !h.decode(w, r, &req) {
		return
	}

	student, err := h.StudentService.ResetEmail(r.Context(), caller, id, req.Email)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, student, http.StatusOK)
}

func (h *Handlers) ResetStudentPassword(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.ResetPassword
	if !h.decode(w, r, &req) {
		return
	}

	student, err := h.StudentService.ResetPassword(r.Context(), caller, id, req.Password)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, student, http.StatusOK)
}

func (h *Handlers) ResetStudentName(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.ResetName
	if !h.decode(w, r, &req) {
		return
	}

	student, err := h.StudentService.ResetName(r.Context(), caller, id, req.FirstName, req.LastName)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, student, http.StatusOK)
}

func (h *Handlers) MakeStudentAdmin(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	student, err := h.StudentService.MakeAdmin(r.Context(), caller, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, student, http.StatusOK)
}

func (h *Handlers) ResetStudentFull(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.RegisterStudent
	if !h.decode(w, r, &req) {
		return
	}

	student, err := h.StudentService.ResetFull(r.Context(), caller, id, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, student, http.StatusOK)
}

func (h *Handlers) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	student, err := h.StudentService.Delete(r.Context(), caller, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, student, http.StatusOK)
}
