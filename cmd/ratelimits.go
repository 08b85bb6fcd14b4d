// ABOUTME: Rate-limit settings commands for balungpisah-admin CLI
// ABOUTME: Lists settings and updates a single value, reloading the full list after

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/spf13/cobra"
)

var rateLimitsCmd = &cobra.Command{
	Use:     "rate-limits",
	Aliases: []string{"settings"},
	Short:   "Show and adjust rate-limit settings",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runRateLimits(ctx, c, w)
	}),
}

var rateLimitShowCmd = &cobra.Command{
	Use:   "show KEY",
	Short: "Show a single rate-limit setting",
	Args:  cobra.ExactArgs(1),
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runRateLimitShow(ctx, c, w, args[0])
	}),
}

var rateLimitSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a rate-limit setting",
	Args:  cobra.ExactArgs(2),
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runRateLimitSet(ctx, c, w, args[0], args[1])
	}),
}

func init() {
	rootCmd.AddCommand(rateLimitsCmd)
	rateLimitsCmd.AddCommand(rateLimitShowCmd, rateLimitSetCmd)
}

func runRateLimits(ctx context.Context, c *client.Client, w io.Writer) int {
	env, err := c.RateLimits(ctx)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(orEmpty(r.Value)))
		return exitOK
	}
	if len(r.Value) == 0 {
		fmt.Fprintln(w, "No rate-limit settings found")
		return exitOK
	}
	rows := make([][]string, 0, len(r.Value))
	for _, rl := range r.Value {
		rows = append(rows, []string{
			rl.Key,
			format.Number(rl.Value),
			format.OrPlaceholder(rl.Description),
			format.Relative(rl.UpdatedAt),
		})
	}
	fmt.Fprintln(w, renderTable([]string{"Key", "Value", "Description", "Updated"}, rows))
	return exitOK
}

func runRateLimitShow(ctx context.Context, c *client.Client, w io.Writer, key string) int {
	env, err := c.RateLimit(ctx, key)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(r.Value))
		return exitOK
	}
	printFields(w, [][2]string{
		{"Key", r.Value.Key},
		{"Value", strconv.Itoa(r.Value.Value)},
		{"Description", format.OrPlaceholder(r.Value.Description)},
		{"Updated", format.DateTime(r.Value.UpdatedAt)},
	})
	return exitOK
}

// runRateLimitSet validates text locally, skips the write when the value is
// unchanged, and reloads the whole list after a successful update.
func runRateLimitSet(ctx context.Context, c *client.Client, w io.Writer, key, text string) int {
	value, err := client.ParseRateLimitValue(text)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	env, err := c.RateLimit(ctx, key)
	current, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if current.HasValue && current.Value.Value == value {
		fmt.Fprintf(w, "%s is already %d\n", key, value)
		return exitOK
	}

	updated, err := c.UpdateRateLimit(ctx, key, value)
	if _, code := resolve(w, updated, err); code != exitOK {
		return code
	}
	if !IsJSONOutput() {
		fmt.Fprintf(w, "Updated %s to %d\n\n", key, value)
	}
	return runRateLimits(ctx, c, w)
}
