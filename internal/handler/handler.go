package handlers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"schoolfeedback/internal/config"
	"schoolfeedback/internal/models"
	"schoolfeedback/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	StudentService  service.StudentService
	TeacherService  service.TeacherService
	CommentServices map[models.CommentKind]service.CommentService
	VoteServices    map[models.CommentKind]service.VoteService
	HealthService   service.HealthService
	Cfg             *config.Config
	Validate        *validator.Validate
	Logger          *slog.Logger
}

func NewHandlers(service *service.Service, config *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		AuthService:     service.Auth,
		StudentService:  service.Student,
		TeacherService:  service.Teacher,
		CommentServices: service.Comments,
		VoteServices:    service.Votes,
		HealthService:   service.Health,
		Cfg:             config,
		Validate:        validator.New(),
		Logger:          logger,
	}
}
