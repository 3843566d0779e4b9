package cli

import (
	"testing"

	"github.com/thenoetrevino/internlog/internal/testutil"
)

// Seeded credentials
const (
	AdminUser      = "admin"
	AdminPassword  = "admin@asmath"
	ViewerUser     = "admin2"
	ViewerPassword = "admin@AHBETA"
)

// AsAdmin appends the admin credentials to args
func AsAdmin(args ...string) []string {
	return append(args, "--user", AdminUser, "--password", AdminPassword)
}

// AsViewer appends the read-only credentials to args
func AsViewer(args ...string) []string {
	return append(args, "--user", ViewerUser, "--password", ViewerPassword)
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	return testutil.ParseJSON(t, output)
}

// ErrorCode returns error.code from a failed JSON response
func ErrorCode(t *testing.T, output string) string {
	t.Helper()
	result := ParseJSON(t, output)
	if success, _ := result["success"].(bool); success {
		t.Fatalf("Expected a failed response, got: %s", output)
	}
	errData, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected an error object, got: %s", output)
	}
	code, _ := errData["code"].(string)
	return code
}
