package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/term"

	"schoolfeedback/internal/client"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	email := flag.String("email", "", "login email (prompted when empty)")
	noToken := flag.Bool("no-token", false, "ignore the cached token and log in again")
	flag.Parse()

	ctx := context.Background()

	in := bufio.NewScanner(os.Stdin)
	c := client.New(*baseURL)

	cache, err := defaultTokenCache()
	if err != nil {
		fmt.Fprintln(os.Stderr, "token cache unavailable:", err)
	}

	session, err := login(ctx, c, cache, in, *email, *noToken)
	if err != nil {
		fmt.Fprintln(os.Stderr, "login failed:", err)
		os.Exit(1)
	}

	r := newREPL(c, session, in, os.Stdout)
	r.password = func(prompt string) (string, error) { return readPassword(in, prompt) }
	if err := r.run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// login reuses the cached token while the server still accepts it.
func login(ctx context.Context, c *client.Client, cache *tokenCache, in *bufio.Scanner, email string, fresh bool) (client.Session, error) {
	if cache != nil && !fresh {
		if token, err := cache.Load(); err == nil && token != "" {
			if c.ValidateToken(ctx, token) == nil {
				c.SetToken(token)
				return resumeSession(ctx, c, token)
			}
		}
	}

	if email == "" {
		fmt.Print("email: ")
		if !in.Scan() {
			return client.Session{}, fmt.Errorf("no email given")
		}
		email = strings.TrimSpace(in.Text())
	}
	password, err := readPassword(in, "password: ")
	if err != nil {
		return client.Session{}, err
	}

	session, err := c.Login(ctx, email, password)
	if err != nil {
		return client.Session{}, err
	}
	if cache != nil {
		if err := cache.Save(session.Token); err != nil {
			fmt.Fprintln(os.Stderr, "could not cache token:", err)
		}
	}
	return session, nil
}

func resumeSession(ctx context.Context, c *client.Client, token string) (client.Session, error) {
	self, err := c.GetSelf(ctx)
	if client.IsStatus(err, http.StatusNotFound) {
		return client.Session{Token: token}, nil
	}
	if err != nil {
		return client.Session{}, err
	}
	return client.Session{Token: token, SelfID: self.ID}, nil
}

// readPassword turns off echo on a terminal and falls back to the line
// scanner when stdin is piped.
func readPassword(in *bufio.Scanner, prompt string) (string, error) {
	fmt.Print(prompt)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		if !in.Scan() {
			return "", fmt.Errorf("no password given")
		}
		return strings.TrimSpace(in.Text()), nil
	}
	defer fmt.Println()
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}
