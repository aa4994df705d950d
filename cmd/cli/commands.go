package main

import (
	"context"
	"fmt"
	"strings"

	"schoolfeedback/internal/models"
)

func (r *repl) studentCommands() map[string]command {
	return map[string]command{
		"validate_token": {"", func(ctx context.Context, args []string) error {
			if err := r.client.ValidateToken(ctx, r.client.Token()); err != nil {
				return err
			}
			fmt.Fprintln(r.out, "Valid token")
			return nil
		}},
		"show_self": {"", func(ctx context.Context, args []string) error {
			student, err := r.client.GetSelf(ctx)
			if err != nil {
				return err
			}
			printStudent(r.out, student)
			return nil
		}},
		"show_student": {"<id>", func(ctx context.Context, args []string) error {
			id, err := onlyID(args)
			if err != nil {
				return err
			}
			student, err := r.client.GetStudent(ctx, id)
			if err != nil {
				return err
			}
			printStudentView(r.out, student)
			return nil
		}},
		"show_all_students": {"", func(ctx context.Context, args []string) error {
			students, err := r.client.ListStudents(ctx)
			if err != nil {
				return err
			}
			for _, s := range students {
				printStudentView(r.out, s)
			}
			return nil
		}},
		"register_student": {"<email> <first_name> <last_name> [admin]", func(ctx context.Context, args []string) error {
			req, err := r.registration(args)
			if err != nil {
				return err
			}
			student, err := r.client.RegisterStudent(ctx, req)
			if err != nil {
				return err
			}
			printStudent(r.out, student)
			return nil
		}},
		"reset_student": {"<id> email <email> | password | name <first_name> <last_name> | full <email> <first_name> <last_name> [admin]", r.resetStudent},
		"make_student_admin": {"<id>", func(ctx context.Context, args []string) error {
			id, err := onlyID(args)
			if err != nil {
				return err
			}
			student, err := r.client.MakeStudentAdmin(ctx, id)
			if err != nil {
				return err
			}
			printStudent(r.out, student)
			return nil
		}},
		"delete_student": {"<id>", func(ctx context.Context, args []string) error {
			id, err := onlyID(args)
			if err != nil {
				return err
			}
			student, err := r.client.DeleteStudent(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(r.out, "deleted ")
			printStudent(r.out, student)
			return nil
		}},
	}
}

// registration builds a register payload from args and prompts for the
// password.
func (r *repl) registration(args []string) (models.RegisterStudent, error) {
	if len(args) != 3 && !(len(args) == 4 && args[3] == "admin") {
		return models.RegisterStudent{}, errUsage
	}
	password, err := r.password("password: ")
	if err != nil {
		return models.RegisterStudent{}, err
	}

	admin := len(args) == 4
	return models.RegisterStudent{
		Email:     args[0],
		FirstName: args[1],
		LastName:  args[2],
		Password:  password,
		Admin:     &admin,
	}, nil
}

func (r *repl) resetStudent(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	id, err := argID(args, 0)
	if err != nil {
		return err
	}

	var student *models.Student
	field, rest := args[1], args[2:]
	switch {
	case field == "email" && len(rest) == 1:
		student, err = r.client.ResetStudentEmail(ctx, id, rest[0])
	case field == "password" && len(rest) == 0:
		var password string
		if password, err = r.password("new password: "); err != nil {
			return err
		}
		student, err = r.client.ResetStudentPassword(ctx, id, password)
	case field == "name" && len(rest) == 2:
		student, err = r.client.ResetStudentName(ctx, id, rest[0], rest[1])
	case field == "full":
		var req models.RegisterStudent
		if req, err = r.registration(rest); err != nil {
			return err
		}
		student, err = r.client.ResetStudentFull(ctx, id, req)
	default:
		return errUsage
	}
	if err != nil {
		return err
	}

	printStudent(r.out, student)
	return nil
}

func (r *repl) teacherCommands() map[string]command {
	return map[string]command{
		"show_teacher": {"<id>", func(ctx context.Context, args []string) error {
			id, err := onlyID(args)
			if err != nil {
				return err
			}
			teacher, err := r.client.GetTeacher(ctx, id)
			if err != nil {
				return err
			}
			printTeacher(r.out, teacher)
			return nil
		}},
		"show_all_teachers": {"", func(ctx context.Context, args []string) error {
			teachers, err := r.client.ListTeachers(ctx)
			if err != nil {
				return err
			}
			for i := range teachers {
				printTeacher(r.out, &teachers[i])
			}
			return nil
		}},
		"add_teacher": {"<prefix|-> <name...>", func(ctx context.Context, args []string) error {
			req, err := teacherPayload(args)
			if err != nil {
				return err
			}
			teacher, err := r.client.AddTeacher(ctx, req)
			if err != nil {
				return err
			}
			printTeacher(r.out, teacher)
			return nil
		}},
		"reset_teacher": {"<id> <prefix|-> <name...>", func(ctx context.Context, args []string) error {
			id, err := argID(args, 0)
			if err != nil {
				return err
			}
			req, err := teacherPayload(args[1:])
			if err != nil {
				return err
			}
			teacher, err := r.client.ResetTeacher(ctx, id, req)
			if err != nil {
				return err
			}
			printTeacher(r.out, teacher)
			return nil
		}},
		"delete_teacher": {"<id>", func(ctx context.Context, args []string) error {
			id, err := onlyID(args)
			if err != nil {
				return err
			}
			teacher, err := r.client.DeleteTeacher(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(r.out, "deleted ")
			printTeacher(r.out, teacher)
			return nil
		}},
	}
}

// teacherPayload reads "<prefix> <name...>"; a prefix of "-" means none.
func teacherPayload(args []string) (models.NewTeacher, error) {
	if len(args) < 2 {
		return models.NewTeacher{}, errUsage
	}
	prefix := args[0]
	if prefix == "-" {
		prefix = ""
	}
	return models.NewTeacher{Name: strings.Join(args[1:], " "), Prefix: prefix}, nil
}

func (r *repl) commentCommands(kind models.CommentKind) map[string]command {
	comments := r.client.Comments(kind)
	name := func(verb string) string { return fmt.Sprintf("%s_%s_comment", verb, kind) }

	vote := func(cast func(context.Context, int64) (*models.Vote, error)) command {
		return command{"<id>", func(ctx context.Context, args []string) error {
			id, err := onlyID(args)
			if err != nil {
				return err
			}
			v, err := cast(ctx, id)
			if err != nil {
				return err
			}
			printVote(r.out, v)
			return nil
		}}
	}

	return map[string]command{
		name("show"): {"<id>", func(ctx context.Context, args []string) error {
			id, err := onlyID(args)
			if err != nil {
				return err
			}
			comment, err := comments.Get(ctx, id)
			if err != nil {
				return err
			}
			printCommentView(r.out, comment)
			return nil
		}},
		fmt.Sprintf("show_all_%s_comments", kind): {"", func(ctx context.Context, args []string) error {
			list, err := comments.List(ctx)
			if err != nil {
				return err
			}
			for _, c := range list {
				printCommentView(r.out, c)
			}
			return nil
		}},
		name("create"): {"<receiver_id> <body...>", func(ctx context.Context, args []string) error {
			if len(args) < 2 {
				return errUsage
			}
			receiverID, err := argID(args, 0)
			if err != nil {
				return err
			}
			comment, err := comments.Create(ctx, receiverID, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			printComment(r.out, comment)
			return nil
		}},
		name("upvote"):   vote(comments.Upvote),
		name("downvote"): vote(comments.Downvote),
		name("unvote"): {"<id>", func(ctx context.Context, args []string) error {
			id, err := onlyID(args)
			if err != nil {
				return err
			}
			v, deleted, err := comments.Unvote(ctx, id)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintln(r.out, "no vote to delete")
				return nil
			}
			fmt.Fprint(r.out, "deleted ")
			printVote(r.out, v)
			return nil
		}},
		name("delete"): {"<id>", func(ctx context.Context, args []string) error {
			id, err := onlyID(args)
			if err != nil {
				return err
			}
			comment, err := comments.Delete(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(r.out, "deleted ")
			printComment(r.out, comment)
			return nil
		}},
		name("score"): {"<id>", func(ctx context.Context, args []string) error {
			id, err := onlyID(args)
			if err != nil {
				return err
			}
			score, err := comments.Score(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "comment #%d score %+d\n", id, score)
			return nil
		}},
	}
}
