package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/internal/storage/sqlite"
)

const roster = `
persons: [Alice, Bob, Carol]
groups:
  - name: Family
    members: [Alice, Bob, Carol]
occasions:
  - name: Christmas
    description: Yearly exchange
`

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decode(t *testing.T, out string) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "output: %s", out)
	return resp
}

// setupEdition seeds the roster into a fresh database and creates one edition.
func setupEdition(t *testing.T) (dbPath, editionID string) {
	t.Helper()
	dir := t.TempDir()
	dbPath = filepath.Join(dir, "gifts.db")
	rosterPath := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(rosterPath, []byte(roster), 0o644))

	_, err := execute(t, "seed", rosterPath, "--store", "sqlite", "--db", dbPath)
	require.NoError(t, err)

	store, err := sqlite.New(dbPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	groups, err := store.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	occasions, err := store.ListOccasions(ctx)
	require.NoError(t, err)
	require.Len(t, occasions, 1)

	ed := &models.Edition{GroupID: groups[0].ID, OccasionID: occasions[0].ID}
	require.NoError(t, store.CreateEdition(ctx, ed))
	return dbPath, ed.ID
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "giftshuffler", cmd.Use)
	for _, name := range []string{"verbose", "format", "store", "db"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, "text", cmd.PersistentFlags().Lookup("format").DefValue)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"serve", "seed", "editions", "shuffle"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	serve, _, _ := cmd.Find([]string{"serve"})
	assert.NotNil(t, serve.Flags().Lookup("addr"))
	editions, _, _ := cmd.Find([]string{"editions"})
	assert.NotNil(t, editions.Flags().Lookup("group"))
	assert.NotNil(t, editions.Flags().Lookup("occasion"))
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "editions", "--format", "xml", "--store", "memory")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestInvalidStore(t *testing.T) {
	_, err := execute(t, "editions", "--store", "postgres")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSeed(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "gifts.db")
	rosterPath := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(rosterPath, []byte(roster), 0o644))

	out, err := execute(t, "seed", rosterPath, "--db", dbPath, "--store", "sqlite", "--format", "json")
	require.NoError(t, err)
	resp := decode(t, out)
	assert.Equal(t, "ok", resp["status"])
	data := resp["data"].(map[string]any)
	assert.EqualValues(t, 3, data["persons_created"])
	assert.EqualValues(t, 1, data["groups_created"])
	assert.EqualValues(t, 1, data["occasions_created"])

	// Second import reuses everything.
	out, err = execute(t, "seed", rosterPath, "--db", dbPath, "--store", "sqlite")
	require.NoError(t, err)
	assert.Contains(t, out, "0 created, 3 reused")
}

func TestSeedInvalidRoster(t *testing.T) {
	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(rosterPath, []byte("groups:\n  - name: Family\n    members: [Nobody]\n"), 0o644))

	out, err := execute(t, "seed", rosterPath, "--store", "memory", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	resp := decode(t, out)
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, ErrCodeRoster, resp["error"].(map[string]any)["code"])
}

func TestEditions(t *testing.T) {
	dbPath, editionID := setupEdition(t)

	out, err := execute(t, "editions", "--db", dbPath, "--store", "sqlite", "--format", "json")
	require.NoError(t, err)
	data := decode(t, out)["data"].([]any)
	require.Len(t, data, 1)
	ed := data[0].(map[string]any)
	assert.Equal(t, editionID, ed["id"])
	assert.Equal(t, "Family – Christmas – Edition 1", ed["name"])
	assert.Equal(t, false, ed["is_shuffled"])

	out, err = execute(t, "editions", "--db", dbPath, "--store", "sqlite", "--group", "unknown")
	require.NoError(t, err)
	assert.Contains(t, out, "No editions")
}

func TestShuffle(t *testing.T) {
	dbPath, editionID := setupEdition(t)

	out, err := execute(t, "shuffle", editionID, "--db", dbPath, "--store", "sqlite", "--format", "json")
	require.NoError(t, err)
	data := decode(t, out)["data"].(map[string]any)
	assert.Equal(t, editionID, data["edition_id"])

	assignments := data["assignments"].([]any)
	require.Len(t, assignments, 3)
	givers := map[string]bool{}
	recipients := map[string]bool{}
	for _, raw := range assignments {
		a := raw.(map[string]any)
		assert.NotEqual(t, a["giver_id"], a["recipient_id"])
		givers[a["giver"].(string)] = true
		recipients[a["recipient"].(string)] = true
	}
	assert.Len(t, givers, 3)
	assert.Len(t, recipients, 3)

	out, err = execute(t, "shuffle", editionID, "--db", dbPath, "--store", "sqlite", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "ALREADY_SHUFFLED", decode(t, out)["error"].(map[string]any)["code"])
}

func TestShuffleNotFound(t *testing.T) {
	out, err := execute(t, "shuffle", "missing", "--store", "memory")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [NOT_FOUND]")
}

func TestExecuteExitCodes(t *testing.T) {
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	cmd.SetArgs([]string{"shuffle", "missing", "--store", "memory"})
	assert.Equal(t, ExitCommandError, Execute(cmd))
	assert.NotContains(t, errOut.String(), "Error:", "reported errors are not printed twice")

	cmd = NewRootCommand()
	errOut.Reset()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"shuffle"})
	assert.Equal(t, ExitCommandError, Execute(cmd))
	assert.Contains(t, errOut.String(), "Error:")
}
