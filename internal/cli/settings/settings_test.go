package settings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/internlog/internal/cli"
	"github.com/thenoetrevino/internlog/internal/services/task"
	clitest "github.com/thenoetrevino/internlog/internal/testutil/cli"
)

func TestStartDate_Get(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, StartDateCmd(), clitest.AsViewer("--json"))
	require.NoError(t, err)

	data := clitest.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, "2024-01-01", data["startDate"])
	assert.Equal(t, "Monday, January 1, 2024", data["formattedDate"])
}

func TestStartDate_Set(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	taskID := clitest.CreateTestTask(t, db, "2024-01-10", "Wrote the export", 10)

	output, err := clitest.ExecuteCLICommand(t, app, StartDateCmd(), clitest.AsAdmin("2024-01-08"))
	require.NoError(t, err)
	assert.Contains(t, output, "Start date set to Monday, January 8, 2024")

	output, err = clitest.ExecuteCLICommand(t, app, StartDateCmd(), clitest.AsViewer("--quiet"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-08", strings.TrimSpace(output))

	// Reports follow the new start date even though the cached day is stale
	tasks, err := app.TaskService.Report(t.Context(), task.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, taskID, tasks[0].ID)
	assert.Equal(t, 3, tasks[0].DayNumber)
}

func TestStartDate_SetRejected(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		wantCode string
		wantExit int
	}{
		{"viewer", clitest.AsViewer("2024-02-01", "--json"), "READ_ONLY", cli.ExitAuth},
		{"bad date", clitest.AsAdmin("2024-02-31", "--json"), "INVALID_DATE", cli.ExitValidation},
		{"no credentials", []string{"2024-02-01", "--json"}, "MISSING_CREDENTIALS", cli.ExitAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := clitest.ExecuteCLICommand(t, app, StartDateCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, cli.ExitCodeOf(err))
			assert.Equal(t, tt.wantCode, clitest.ErrorCode(t, output))
		})
	}

	output, err := clitest.ExecuteCLICommand(t, app, StartDateCmd(), clitest.AsViewer("--quiet"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", strings.TrimSpace(output))
}

func TestList(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), clitest.AsViewer("--quiet"))
	require.NoError(t, err)
	assert.Equal(t, "startDate=2024-01-01", strings.TrimSpace(output))

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), clitest.AsViewer("--json"))
	require.NoError(t, err)
	data := clitest.ParseJSON(t, output)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "startDate", data[0].(map[string]interface{})["key"])

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), clitest.AsViewer())
	require.NoError(t, err)
	assert.Contains(t, output, "startDate:")
	assert.Contains(t, output, "2024-01-01")
}
