package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vaultpull/pkg/types"
)

func newResult() *types.Result {
	res := &types.Result{Started: time.Now(), Finished: time.Now()}
	res.Add(types.Record{
		Entry: types.Entry{
			Source: "/vault/Bases/tasks.base",
			Dest:   "/project/templates/bases/tasks.base",
			Origin: types.OriginDiscovered,
		},
		Outcome: types.OutcomePulled,
	})
	res.Add(types.Record{
		Entry: types.Entry{
			Source: "/vault/Dashboard.md",
			Dest:   "/project/templates/Dashboard.md",
			Origin: types.OriginExplicit,
		},
		Outcome: types.OutcomeSkipped,
		Message: "destination is newer",
	})
	res.Add(types.Record{
		Entry: types.Entry{
			Source: "/vault/.obsidian/plugins/bases/data.json",
			Dest:   "/project/templates/plugins/bases.json",
			Origin: types.OriginExplicit,
		},
		Outcome: types.OutcomeMissing,
	})
	return res
}

func TestNewReport(t *testing.T) {
	report := NewReport("pull", newResult(), "/vault", "/project", "collector")

	assert.Equal(t, "pull", report.Command)
	assert.True(t, report.NeedsRestart)
	assert.False(t, report.DryRun)

	require.Len(t, report.Rows, 3)
	assert.Equal(t, "Bases/tasks.base", report.Rows[0].Source)
	assert.Equal(t, "templates/bases/tasks.base", report.Rows[0].Dest)
	assert.Equal(t, "discovered", report.Rows[0].Origin)
	assert.Equal(t, "pulled", report.Rows[0].Outcome)

	assert.Equal(t, uint(1), report.Summary.Pulled)
	assert.Equal(t, uint(1), report.Summary.Skipped)
	assert.Equal(t, uint(1), report.Summary.Missing)
	assert.Equal(t, uint(0), report.Summary.Errors)
	assert.Equal(t, uint(3), report.Summary.Total)
}

func TestSummaryLine(t *testing.T) {
	report := NewReport("pull", newResult(), "/vault", "/project", "collector")
	assert.Equal(t, "pulled 1, skipped 1, missing 1, errors 0", report.SummaryLine())

	report.DryRun = true
	assert.Contains(t, report.SummaryLine(), "(dry run)")
}

func TestRestartHint(t *testing.T) {
	t.Run("set_when_files_pulled", func(t *testing.T) {
		report := NewReport("pull", newResult(), "/vault", "/project", "collector")
		hint := report.RestartHint()
		assert.Contains(t, hint, "restart collector")
	})

	t.Run("empty_without_pulls", func(t *testing.T) {
		res := &types.Result{}
		res.Add(types.Record{
			Entry:   types.Entry{Source: "/vault/a", Dest: "/project/a"},
			Outcome: types.OutcomeSkipped,
		})
		report := NewReport("pull", res, "/vault", "/project", "collector")
		assert.Empty(t, report.RestartHint())
	})

	t.Run("suppressed_on_dry_run", func(t *testing.T) {
		res := newResult()
		res.DryRun = true
		report := NewReport("pull", res, "/vault", "/project", "collector")
		assert.Empty(t, report.RestartHint())
	})

	t.Run("generic_without_service_name", func(t *testing.T) {
		report := NewReport("pull", newResult(), "/vault", "/project", "")
		assert.Contains(t, report.RestartHint(), "the consuming service")
	})
}

func TestRelTo(t *testing.T) {
	tests := []struct {
		name string
		path string
		root string
		want string
	}{
		{"under_root", "/vault/Bases/tasks.base", "/vault", "Bases/tasks.base"},
		{"root_with_trailing_slash", "/vault/Dashboard.md", "/vault/", "Dashboard.md"},
		{"outside_root", "/elsewhere/file.md", "/vault", "/elsewhere/file.md"},
		{"equal_to_root", "/vault", "/vault", "/vault"},
		{"empty_root", "/vault/file.md", "", "/vault/file.md"},
		{"sibling_prefix_not_stripped", "/vault-backup/file.md", "/vault", "/vault-backup/file.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelTo(tt.path, tt.root))
		})
	}
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "short", TruncateLeft("short", 10))
	assert.Equal(t, "...s/tasks.base", TruncateLeft("templates/bases/tasks.base", 15))
	assert.Equal(t, "...", TruncateLeft("anything", 3))
}

func TestTildePath(t *testing.T) {
	assert.Equal(t, "~/vault/notes", TildePath("/home/user/vault/notes", "/home/user"))
	assert.Equal(t, "/mnt/vault", TildePath("/mnt/vault", "/home/user"))
	assert.Equal(t, "/mnt/vault", TildePath("/mnt/vault", ""))
}
