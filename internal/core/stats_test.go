package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vukan322/statcards/internal/core"
)

func TestLanguageBytes_AddAccumulates(t *testing.T) {
	t.Parallel()

	var langs core.LanguageBytes
	langs.Add("Go", 100)
	langs.Add("Shell", 20)
	langs.Add("Go", 50)

	assert.Equal(t, 2, langs.Len())
	assert.Equal(t, int64(150), langs.Bytes("Go"))
	assert.Equal(t, int64(20), langs.Bytes("Shell"))
	assert.Equal(t, int64(170), langs.Total())
}

func TestLanguageBytes_EntriesKeepFirstSeenOrder(t *testing.T) {
	t.Parallel()

	var langs core.LanguageBytes
	langs.Add("B", 1)
	langs.Add("A", 1)
	langs.Add("C", 1)
	langs.Add("A", 5)

	assert.Equal(t, []core.LanguageUsage{
		{Name: "B", Bytes: 1},
		{Name: "A", Bytes: 6},
		{Name: "C", Bytes: 1},
	}, langs.Entries())
}

func TestLanguageBytes_EntriesIsACopy(t *testing.T) {
	t.Parallel()

	var langs core.LanguageBytes
	langs.Add("Go", 10)

	entries := langs.Entries()
	entries[0].Bytes = 999

	assert.Equal(t, int64(10), langs.Bytes("Go"))
}

func TestLanguageBytes_NegativeSizeClampedToZero(t *testing.T) {
	t.Parallel()

	var langs core.LanguageBytes
	langs.Add("Go", 10)
	langs.Add("Go", -5)
	langs.Add("Rust", -1)

	assert.Equal(t, int64(10), langs.Bytes("Go"))
	assert.Equal(t, []core.LanguageUsage{
		{Name: "Go", Bytes: 10},
		{Name: "Rust", Bytes: 0},
	}, langs.Entries())
}

func TestLanguageBytes_ZeroValue(t *testing.T) {
	t.Parallel()

	var langs core.LanguageBytes

	assert.Equal(t, 0, langs.Len())
	assert.Equal(t, int64(0), langs.Total())
	assert.Zero(t, langs.Bytes("Go"))
	assert.Empty(t, langs.Entries())
}

func TestRepositoryFilter_Includes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filter   core.RepositoryFilter
		archived bool
		fork     bool
		want     bool
	}{
		{"default keeps plain repo", core.RepositoryFilter{}, false, false, true},
		{"default drops archived", core.RepositoryFilter{}, true, false, false},
		{"default drops fork", core.RepositoryFilter{}, false, true, false},
		{"include archived", core.RepositoryFilter{IncludeArchived: true}, true, false, true},
		{"include archived still drops fork", core.RepositoryFilter{IncludeArchived: true}, true, true, false},
		{"include all", core.RepositoryFilter{IncludeArchived: true, IncludeForks: true}, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.filter.Includes(tt.archived, tt.fork))
		})
	}
}

func TestSnapshot_NameFallsBackToLogin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "octocat", core.Snapshot{Login: "octocat"}.Name())
	assert.Equal(t, "The Octocat", core.Snapshot{Login: "octocat", DisplayName: "The Octocat"}.Name())
}
