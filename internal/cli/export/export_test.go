package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/internlog/internal/cli"
	clitest "github.com/thenoetrevino/internlog/internal/testutil/cli"
)

func TestExportCommand(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	clitest.CreateTestTask(t, db, "2024-01-02", `He said "done"`, 2)
	clitest.CreateTestTask(t, db, "2024-01-01", "Setup env", 1)

	t.Run("CSV to a named file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "report.csv")

		output, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), clitest.AsViewer(
			"--format", "csv", "--output", path, "--json",
		))
		require.NoError(t, err)

		data := clitest.ParseJSON(t, output)["data"].(map[string]interface{})
		assert.Equal(t, "csv", data["format"])
		assert.Equal(t, float64(2), data["count"])

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Day Number", "Date", "Task"},
			{"1", "Monday, January 1, 2024", "Setup env"},
			{"2", "Tuesday, January 2, 2024", `He said "done"`},
		}, records)
	})

	t.Run("JSON to the default file name", func(t *testing.T) {
		t.Chdir(t.TempDir())

		output, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), clitest.AsViewer("--format", "json", "--quiet"))
		require.NoError(t, err)
		assert.Equal(t, "internship_report_2024-01-10.json", strings.TrimSpace(output))

		raw, err := os.ReadFile("internship_report_2024-01-10.json")
		require.NoError(t, err)

		var doc struct {
			ExportDate string `json:"exportDate"`
			TotalTasks int    `json:"totalTasks"`
			Tasks      []struct {
				DayNumber int    `json:"dayNumber"`
				Task      string `json:"task"`
			} `json:"tasks"`
		}
		require.NoError(t, json.Unmarshal(raw, &doc))
		assert.Equal(t, "2024-01-10T10:30:00.000Z", doc.ExportDate)
		assert.Equal(t, 2, doc.TotalTasks)
		require.Len(t, doc.Tasks, 2)
		assert.Equal(t, 1, doc.Tasks[0].DayNumber)
	})

	t.Run("Stdout", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), clitest.AsViewer("--output", "-"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(output, "Day Number,Date,Task\n"))
	})

	t.Run("Unknown format", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), clitest.AsViewer("--format", "xml", "--json"))
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeOf(err))
		assert.Equal(t, "INVALID_FORMAT", clitest.ErrorCode(t, output))
	})
}

func TestExportCommand_NothingToExport(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), clitest.AsViewer("--output", "-", "--json"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeOf(err))
	assert.Equal(t, "NOTHING_TO_EXPORT", clitest.ErrorCode(t, output))
}
