package handlers

import (
	"net/http"

	"schoolfeedback/internal/models"
)

func (h *Handlers) GetTeacher(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	teacher, err := h.TeacherService.Get(r.Context(), caller, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, teacher, http.StatusOK)
}

func (h *Handlers) GetAllTeachers(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	teachers, err := h.TeacherService.List(r.Context(), caller)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, teachers, http.StatusOK)
}

func (h *Handlers) AddTeacher(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req models.NewTeacher
	if !h.decode(w, r, &req) {
		return
	}

	teacher, err := h.TeacherService.Add(r.Context(), caller, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, teacher, http.StatusCreated)
}

func (h *Handlers) ResetTeacher(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.NewTeacher
	if !h.decode(w, r, &req) {
		return
	}

	teacher, err := h.TeacherService.Reset(r.Context(), caller, id, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, teacher, http.StatusOK)
}

func (h *Handlers) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	teacher, err := h.TeacherService.Delete(r.Context(), caller, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, teacher, http.StatusOK)
}
