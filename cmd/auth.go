// ABOUTME: Session commands for balungpisah-admin CLI
// ABOUTME: login stores a token, logout forgets it, whoami shows the identity

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/session"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

// loginQuiet silences the session hint for login, where a 401 means bad
// credentials rather than an expired session.
var loginQuiet = client.WithNavigator(session.Discard)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store a session token",
	Long: `Sign in to the Balungpisah backend. Missing credentials are prompted for
interactively; pass --email and --password for scripted use.`,
	Run: func(cmd *cobra.Command, args []string) {
		email, password := loginEmail, loginPassword
		if email == "" || password == "" {
			if err := promptCredentials(&email, &password); err != nil {
				fmt.Fprintf(os.Stdout, "Error: %v\n", err)
				os.Exit(exitError)
			}
		}
		clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
			return runLogin(ctx, c, w, email, password)
		}, loginQuiet)(cmd, args)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runLogout(c, w)
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account and its roles",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runWhoami(ctx, c, w)
	}),
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}

func promptCredentials(email, password *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(email).
				Validate(requireText("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(requireText("password")),
		),
	)
	return form.Run()
}

func requireText(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// runLogin signs in and returns exit code
func runLogin(ctx context.Context, c *client.Client, w io.Writer, email, password string) int {
	env, err := c.Login(ctx, email, password)
	if errors.Is(err, client.ErrUnauthorized) {
		fmt.Fprintln(w, "Error: invalid email or password")
		return exitFailure
	}
	if _, code := resolve(w, env, err); code != exitOK {
		return code
	}
	if !c.LoggedIn() {
		fmt.Fprintln(w, "Error: backend did not return an access token")
		return exitFailure
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(map[string]any{"logged_in": true, "backend": c.BaseURL()}))
	} else {
		fmt.Fprintf(w, "Logged in to %s\n", c.BaseURL())
	}
	return exitOK
}

// runLogout clears the session and returns exit code
func runLogout(c *client.Client, w io.Writer) int {
	if err := c.Logout(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(map[string]any{"logged_in": false}))
	} else {
		fmt.Fprintln(w, "Logged out")
	}
	return exitOK
}

// runWhoami shows the current identity and returns exit code
func runWhoami(ctx context.Context, c *client.Client, w io.Writer) int {
	if !c.LoggedIn() {
		fmt.Fprintln(w, "Not logged in. Run \"balungpisah-admin login\" first.")
		return exitError
	}
	env, err := c.Me(ctx)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(r.Value))
		return exitOK
	}
	fmt.Fprintln(w, formatWhoamiHuman(c.BaseURL(), r.Value))
	return exitOK
}

func formatWhoamiHuman(backend string, u client.User) string {
	roles := "-"
	if len(u.Roles) > 0 {
		roles = strings.Join(u.Roles, ", ")
	}
	return fmt.Sprintf(`Backend:  %s
Account:  %s
Subject:  %s
Roles:    %s`, backend, u.AccountID, u.Sub, roles)
}
