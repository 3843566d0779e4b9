package task

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
	"github.com/thenoetrevino/internlog/internal/cli/styles"
	"github.com/thenoetrevino/internlog/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent tasks",
		Long:  "List tasks newest date first. --limit defaults to tasks.limit from the config.",
		RunE:  runList,
	}

	cmd.Flags().String("date", "", "Only the task for this date (YYYY-MM-DD)")
	cmd.Flags().Int("limit", 0, "Maximum number of tasks (default from config)")
	cli.AddSessionFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	filterDate, _ := cmd.Flags().GetString("date")
	limit, _ := cmd.Flags().GetInt("limit")

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	if _, err := cliInstance.Session(cmd); err != nil {
		return formatter.Fail(err)
	}

	if limit <= 0 {
		limit = cliInstance.Config.Tasks.Limit
	}

	tasks, err := cliInstance.App.TaskService.RecentTasks(ctx, filterDate, limit)
	if err != nil {
		return formatter.Fail(err)
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}

	if formatter.Quiet {
		ids := make([]int, len(tasks))
		for i, t := range tasks {
			ids[i] = t.ID
		}
		return formatter.IDs(ids)
	}

	if formatter.JSON {
		return formatter.Success(tasks)
	}

	w := formatter.Writer()
	if len(tasks) == 0 {
		_, err = fmt.Fprintln(w, "No tasks found")
		return err
	}

	fmt.Fprintf(w, "Found %d tasks:\n\n", len(tasks))
	for _, t := range tasks {
		if _, err := lipgloss.Fprintln(w, "  "+styles.RenderTaskRow(t)); err != nil {
			return err
		}
	}
	return nil
}
