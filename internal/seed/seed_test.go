package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/internal/storage/memory"
)

const roster = `
persons: [Alice, " Bob ", Carol]
groups:
  - name: Family
    members: [Alice, Bob, Carol]
occasions:
  - name: Christmas
    description: Yearly gift exchange
`

func TestLoad(t *testing.T) {
	r, err := Load(strings.NewReader(roster))
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, r.Persons)
	require.Len(t, r.Groups, 1)
	assert.Equal(t, "Family", r.Groups[0].Name)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, r.Groups[0].Members)
	require.Len(t, r.Occasions, 1)
	assert.Equal(t, "Yearly gift exchange", r.Occasions[0].Description)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{name: "unknown key", doc: "people: [Alice]", wantErr: "field people not found"},
		{name: "empty person", doc: `persons: ["  "]`, wantErr: "persons[0]: name is required"},
		{name: "unnamed group", doc: "groups:\n  - members: [Alice]", wantErr: "groups[0]: name is required"},
		{name: "duplicate member", doc: "groups:\n  - name: G\n    members: [A, A]", wantErr: `duplicate member "A"`},
		{name: "unnamed occasion", doc: "occasions:\n  - description: x", wantErr: "occasions[0]: name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_EmptyDocument(t *testing.T) {
	r, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, r.Persons)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(roster), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, r.Persons, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	r, err := Load(strings.NewReader(roster))
	require.NoError(t, err)

	sum, err := Apply(ctx, store, r)
	require.NoError(t, err)
	assert.Equal(t, Summary{PersonsCreated: 3, GroupsCreated: 1, MembersAdded: 3, OccasionsCreated: 1}, sum)

	groups, err := store.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Members, 3)

	t.Run("second import reuses everything", func(t *testing.T) {
		sum, err := Apply(ctx, store, r)
		require.NoError(t, err)
		assert.Equal(t, Summary{PersonsReused: 3, GroupsReused: 1, OccasionsReused: 1}, sum)

		persons, err := store.ListPersons(ctx)
		require.NoError(t, err)
		assert.Len(t, persons, 3)
	})

	t.Run("extends an existing group", func(t *testing.T) {
		more, err := Load(strings.NewReader("persons: [Dave]\ngroups:\n  - name: Family\n    members: [Alice, Dave]"))
		require.NoError(t, err)

		sum, err := Apply(ctx, store, more)
		require.NoError(t, err)
		assert.Equal(t, 1, sum.PersonsCreated)
		assert.Equal(t, 1, sum.MembersAdded)

		g, err := store.GetGroup(ctx, groups[0].ID)
		require.NoError(t, err)
		assert.Len(t, g.Members, 4)
	})
}

func TestApply_UnknownMember(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.CreatePerson(ctx, &models.Person{Name: "Alice"}))

	r, err := Load(strings.NewReader("persons: [Bob]\ngroups:\n  - name: Pair\n    members: [Alice, Bob, Zed]"))
	require.NoError(t, err)

	_, err = Apply(ctx, store, r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown member "Zed"`)

	persons, err := store.ListPersons(ctx)
	require.NoError(t, err)
	assert.Len(t, persons, 1, "nothing should be written")
}
