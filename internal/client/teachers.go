package client

import (
	"context"
	"fmt"
	"net/http"

	"schoolfeedback/internal/models"
)

func (c *Client) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	return c.teacher(ctx, http.MethodGet, fmt.Sprintf("/teacher/get/%d", id), nil)
}

func (c *Client) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	err := c.do(ctx, http.MethodGet, "/teacher/get_all", nil, &teachers)
	return teachers, err
}

func (c *Client) AddTeacher(ctx context.Context, req models.NewTeacher) (*models.Teacher, error) {
	return c.teacher(ctx, http.MethodPost, "/teacher/add", req)
}

func (c *Client) ResetTeacher(ctx context.Context, id int64, req models.NewTeacher) (*models.Teacher, error) {
	return c.teacher(ctx, http.MethodPut, fmt.Sprintf("/teacher/reset/%d", id), req)
}

func (c *Client) DeleteTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	return c.teacher(ctx, http.MethodDelete, fmt.Sprintf("/teacher/delete/%d", id), nil)
}

func (c *Client) teacher(ctx context.Context, method, path string, body interface{}) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := c.do(ctx, method, path, body, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}
