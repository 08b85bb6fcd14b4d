// ABOUTME: Prompt template commands for balungpisah-admin CLI
// ABOUTME: List, inspect, create, edit, delete and restore LLM prompts

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/balungpisah/balungpisah-admin/internal/listing"
	"github.com/spf13/cobra"
)

var (
	promptFilter   client.PromptFilter
	promptActive   bool
	promptForm     promptFields
	promptTemplate string
)

// promptFields holds the free-text form values of create and update
type promptFields struct {
	Key             string
	Name            string
	Description     string
	TemplateContent string
	Variables       string
}

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Manage LLM prompt templates",
}

var promptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompt templates",
	Run: func(cmd *cobra.Command, args []string) {
		f := promptFilter
		// is_active is always sent; --active=false lists deleted prompts
		f.IsActive = client.Bool(promptActive)
		clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
			return runPrompts(ctx, c, w, f)
		})(cmd, args)
	},
}

var promptsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the prompt keys the backend recognises",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runPromptKeys(ctx, c, w)
	}),
}

var promptsShowCmd = &cobra.Command{
	Use:   "show PROMPT_ID",
	Short: "Show a prompt template",
	Args:  cobra.ExactArgs(1),
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runPromptShow(ctx, c, w, args[0])
	}),
}

var promptsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a prompt template",
	Run: func(cmd *cobra.Command, args []string) {
		fields, err := promptFormWithTemplateFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitError)
		}
		clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
			return runPromptCreate(ctx, c, w, fields)
		})(cmd, args)
	},
}

var promptsUpdateCmd = &cobra.Command{
	Use:   "update PROMPT_ID",
	Short: "Edit a prompt template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fields, err := promptFormWithTemplateFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitError)
		}
		clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
			return runPromptUpdate(ctx, c, w, args[0], fields)
		})(cmd, args)
	},
}

var promptsDeleteCmd = &cobra.Command{
	Use:   "delete PROMPT_ID",
	Short: "Soft-delete a prompt template",
	Args:  cobra.ExactArgs(1),
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runPromptDelete(ctx, c, w, args[0])
	}),
}

var promptsRestoreCmd = &cobra.Command{
	Use:   "restore PROMPT_ID",
	Short: "Restore a deleted prompt template",
	Args:  cobra.ExactArgs(1),
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runPromptRestore(ctx, c, w, args[0])
	}),
}

func init() {
	rootCmd.AddCommand(promptsCmd)
	promptsCmd.AddCommand(promptsListCmd, promptsKeysCmd, promptsShowCmd,
		promptsCreateCmd, promptsUpdateCmd, promptsDeleteCmd, promptsRestoreCmd)

	lf := promptsListCmd.Flags()
	lf.IntVar(&promptFilter.Page, "page", 1, "Page number")
	lf.IntVar(&promptFilter.PageSize, "page-size", 20, "Prompts per page")
	lf.StringVar(&promptFilter.Search, "search", "", "Search key or name")
	lf.BoolVar(&promptActive, "active", true, "List active (or, =false, deleted) prompts")

	for _, c := range []*cobra.Command{promptsCreateCmd, promptsUpdateCmd} {
		f := c.Flags()
		f.StringVar(&promptForm.Name, "name", "", "Display name")
		f.StringVar(&promptForm.Description, "description", "", "Description")
		f.StringVar(&promptForm.TemplateContent, "template", "", "Template content")
		f.StringVar(&promptTemplate, "template-file", "", "Read template content from a file")
		f.StringVar(&promptForm.Variables, "variables", "", "Variables as a JSON object")
	}
	promptsCreateCmd.Flags().StringVar(&promptForm.Key, "key", "", "Prompt key (see \"prompts keys\")")
}

// promptFormWithTemplateFile applies --template-file over --template
func promptFormWithTemplateFile() (promptFields, error) {
	fields := promptForm
	if promptTemplate == "" {
		return fields, nil
	}
	data, err := os.ReadFile(promptTemplate)
	if err != nil {
		return fields, fmt.Errorf("reading template file: %w", err)
	}
	fields.TemplateContent = string(data)
	return fields, nil
}

func runPrompts(ctx context.Context, c *client.Client, w io.Writer, f client.PromptFilter) int {
	l := listing.New[client.PromptFilter, client.Prompt](f.PageSize, f)
	l.SetPage(f.Page)

	v, code, ok := loadPage(ctx, w, l, func(ctx context.Context, req listing.Request[client.PromptFilter]) (*client.Envelope[[]client.Prompt], error) {
		q := req.Filter
		q.Page, q.PageSize = req.Page, req.PageSize
		return c.Prompts(ctx, q)
	})
	if !ok {
		return code
	}

	printPage(w, v, "No prompts found",
		[]string{"ID", "Key", "Name", "Version", "Active", "Updated"},
		func(p client.Prompt) []string {
			return []string{
				p.ID,
				p.Key,
				p.Name,
				strconv.Itoa(p.Version),
				strconv.FormatBool(p.IsActive),
				format.Relative(p.UpdatedAt),
			}
		})
	return exitOK
}

func runPromptKeys(ctx context.Context, c *client.Client, w io.Writer) int {
	env, err := c.PromptKeys(ctx)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(orEmpty(r.Value)))
		return exitOK
	}
	if len(r.Value) == 0 {
		fmt.Fprintln(w, "No prompt keys defined")
		return exitOK
	}
	rows := make([][]string, 0, len(r.Value))
	for _, k := range r.Value {
		rows = append(rows, []string{k.Key, k.Description})
	}
	fmt.Fprintln(w, renderTable([]string{"Key", "Description"}, rows))
	return exitOK
}

func runPromptShow(ctx context.Context, c *client.Client, w io.Writer, id string) int {
	env, err := c.Prompt(ctx, id)
	return printPromptResult(w, env, err)
}

// runPromptCreate validates variables before anything is sent
func runPromptCreate(ctx context.Context, c *client.Client, w io.Writer, fields promptFields) int {
	vars, err := client.ParseVariables(fields.Variables)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	env, err := c.CreatePrompt(ctx, client.CreatePromptInput{
		Key:             fields.Key,
		Name:            fields.Name,
		Description:     fields.Description,
		TemplateContent: fields.TemplateContent,
		Variables:       vars,
	})
	return printPromptResult(w, env, err)
}

func runPromptUpdate(ctx context.Context, c *client.Client, w io.Writer, id string, fields promptFields) int {
	vars, err := client.ParseVariables(fields.Variables)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	env, err := c.UpdatePrompt(ctx, id, client.UpdatePromptInput{
		Name:            fields.Name,
		Description:     fields.Description,
		TemplateContent: fields.TemplateContent,
		Variables:       vars,
	})
	return printPromptResult(w, env, err)
}

func runPromptDelete(ctx context.Context, c *client.Client, w io.Writer, id string) int {
	env, err := c.DeletePrompt(ctx, id)
	if _, code := resolve(w, env, err); code != exitOK {
		return code
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(map[string]string{"deleted": id}))
		return exitOK
	}
	fmt.Fprintf(w, "Deleted prompt %s\n", id)
	return exitOK
}

func runPromptRestore(ctx context.Context, c *client.Client, w io.Writer, id string) int {
	env, err := c.RestorePrompt(ctx, id)
	return printPromptResult(w, env, err)
}

func printPromptResult(w io.Writer, env *client.Envelope[client.Prompt], err error) int {
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if !r.HasValue {
		fmt.Fprintln(w, "Prompt not found")
		return exitFailure
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(r.Value))
		return exitOK
	}
	fmt.Fprint(w, formatPromptHuman(r.Value))
	return exitOK
}

func formatPromptHuman(p client.Prompt) string {
	var b strings.Builder
	printFields(&b, [][2]string{
		{"ID", p.ID},
		{"Key", p.Key},
		{"Name", p.Name},
		{"Description", format.OrPlaceholder(p.Description)},
		{"Version", strconv.Itoa(p.Version)},
		{"Active", strconv.FormatBool(p.IsActive)},
		{"Updated", format.DateTime(p.UpdatedAt)},
	})
	fmt.Fprintf(&b, "\nTemplate:\n%s\n", p.TemplateContent)
	if vars := client.FormatVariables(p.Variables); vars != "" {
		fmt.Fprintf(&b, "\nVariables:\n%s\n", vars)
	}
	return b.String()
}
