package client

import (
	"context"
	"fmt"
	"net/http"

	"schoolfeedback/internal/models"
	"schoolfeedback/internal/view"
)

func (c *Client) GetSelf(ctx context.Context) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodGet, "/student/get_self", nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (c *Client) GetStudent(ctx context.Context, id int64) (view.StudentView, error) {
	var student view.StudentView
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/student/get/%d", id), nil, &student)
	return student, err
}

func (c *Client) ListStudents(ctx context.Context) ([]view.StudentView, error) {
	var students []view.StudentView
	err := c.do(ctx, http.MethodGet, "/student/get_all", nil, &students)
	return students, err
}

func (c *Client) RegisterStudent(ctx context.Context, req models.RegisterStudent) (*models.Student, error) {
	return c.student(ctx, http.MethodPost, "/student/register", req)
}

func (c *Client) ResetStudentEmail(ctx context.Context, id int64, email string) (*models.Student, error) {
	return c.student(ctx, http.MethodPut, fmt.Sprintf("/student/reset_email/%d", id), models.ResetEmail{Email: email})
}

func (c *Client) ResetStudentPassword(ctx context.Context, id int64, password string) (*models.Student, error) {
	return c.student(ctx, http.MethodPut, fmt.Sprintf("/student/reset_password/%d", id), models.ResetPassword{Password: password})
}

func (c *Client) ResetStudentName(ctx context.Context, id int64, firstName, lastName string) (*models.Student, error) {
	return c.student(ctx, http.MethodPut, fmt.Sprintf("/student/reset_name/%d", id),
		models.ResetName{FirstName: firstName, LastName: lastName})
}

func (c *Client) MakeStudentAdmin(ctx context.Context, id int64) (*models.Student, error) {
	return c.student(ctx, http.MethodPut, fmt.Sprintf("/student/make_admin/%d", id), nil)
}

func (c *Client) ResetStudentFull(ctx context.Context, id int64, req models.RegisterStudent) (*models.Student, error) {
	return c.student(ctx, http.MethodPut, fmt.Sprintf("/student/reset_full/%d", id), req)
}

func (c *Client) DeleteStudent(ctx context.Context, id int64) (*models.Student, error) {
	return c.student(ctx, http.MethodDelete, fmt.Sprintf("/student/delete/%d", id), nil)
}

func (c *Client) student(ctx context.Context, method, path string, body interface{}) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, method, path, body, &student); err != nil {
		return nil, err
	}
	return &student, nil
}
