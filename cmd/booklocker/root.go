package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/heartmarshall/booklocker-backend/pkg/client"
)

// cli is shared by every command. The session is loaded before each
// command runs and saved only by commands that change it.
type cli struct {
	api         *client.Client
	session     *client.Session
	sessionPath string
	in          *bufio.Reader
	stdin       io.Reader
	out         io.Writer
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	c := &cli{stdin: stdin, in: bufio.NewReader(stdin), out: stdout}
	var baseURL string

	root := &cobra.Command{
		Use:           "booklocker",
		Short:         "Reserve and pick up books from campus vending machines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			api, err := client.New(baseURL)
			if err != nil {
				return err
			}
			c.api = api

			if c.sessionPath == "" {
				c.sessionPath = defaultSessionPath()
			}
			c.session, err = client.LoadSession(c.sessionPath)
			return err
		},
	}

	root.PersistentFlags().StringVar(&baseURL, "api", envOr("BOOKLOCKER_API", "http://localhost:3000"), "API base URL")
	root.PersistentFlags().StringVar(&c.sessionPath, "session", os.Getenv("BOOKLOCKER_SESSION"), "session file path")

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.profileCmd(),
		c.booksCmd(),
		c.machinesCmd(),
		c.reserveCmd(),
		c.reservationsCmd(),
		c.cancelCmd(),
		c.pickupCmd(),
		c.historyCmd(),
		c.favoritesCmd(),
	)
	return root
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".booklocker-session.json"
	}
	return filepath.Join(dir, "booklocker", "session.json")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *cli) saveSession() error {
	return c.session.Save(c.sessionPath)
}

func (c *cli) user() (*client.User, error) {
	u, err := c.session.RequireUser()
	if errors.Is(err, client.ErrNotLoggedIn) {
		return nil, errors.New("faça login primeiro: booklocker login")
	}
	return u, err
}

// prompt reads one trimmed line after printing label.
func (c *cli) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSpace(label), err)
	}
	return strings.TrimSpace(line), nil
}

// password reads a masked password from a terminal, or a plain line when
// stdin is piped.
func (c *cli) password(label string) (string, error) {
	f, ok := c.stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.prompt(label)
	}

	fmt.Fprint(c.out, label)
	raw, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(c.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s inválido: %q", what, arg)
	}
	return id, nil
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
