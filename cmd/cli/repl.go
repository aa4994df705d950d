package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"schoolfeedback/internal/client"
	"schoolfeedback/internal/models"
)

var errUsage = errors.New("usage")

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type repl struct {
	client   *client.Client
	session  client.Session
	in       *bufio.Scanner
	out      io.Writer
	password func(prompt string) (string, error)
	commands map[string]command
}

func newREPL(c *client.Client, session client.Session, in *bufio.Scanner, out io.Writer) *repl {
	r := &repl{
		client:  c,
		session: session,
		in:      in,
		out:     out,
	}
	r.password = r.readLine
	r.commands = r.studentCommands()
	for name, cmd := range r.teacherCommands() {
		r.commands[name] = cmd
	}
	for _, kind := range models.CommentKinds {
		for name, cmd := range r.commentCommands(kind) {
			r.commands[name] = cmd
		}
	}
	return r
}

func (r *repl) run(ctx context.Context) error {
	who := fmt.Sprintf("student #%d", r.session.SelfID)
	if r.session.SelfID == 0 {
		who = "root"
	}
	fmt.Fprintf(r.out, "logged in as %s, type help for commands\n", who)

	for ctx.Err() == nil {
		fmt.Fprint(r.out, "> ")
		if !r.in.Scan() {
			return r.in.Err()
		}
		if r.exec(ctx, r.in.Text()) {
			return nil
		}
	}
	return nil
}

// exec runs one input line and reports whether the session should end.
func (r *repl) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	name, args := fields[0], fields[1:]
	switch name {
	case "exit", "quit":
		return true
	case "help":
		r.help()
		return false
	}

	cmd, ok := r.commands[name]
	if !ok {
		fmt.Fprintf(r.out, "unknown command %q, type help for commands\n", name)
		return false
	}

	err := cmd.run(ctx, args)
	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintf(r.out, "usage: %s %s\n", name, cmd.usage)
	case err != nil:
		fmt.Fprintln(r.out, "error:", err)
	}
	return false
}

func (r *repl) help() {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(r.out, "  %s %s\n", name, r.commands[name].usage)
	}
	fmt.Fprintln(r.out, "  help")
	fmt.Fprintln(r.out, "  exit | quit")
}

func (r *repl) readLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		return "", errors.New("input closed")
	}
	return strings.TrimSpace(r.in.Text()), nil
}

func argID(args []string, i int) (int64, error) {
	if len(args) <= i {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[i])
	}
	return id, nil
}

func onlyID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	return argID(args, 0)
}
