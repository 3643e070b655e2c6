package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kerbaras/library/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRootRunsConsole(t *testing.T) {
	out := execute(t, "Gothic\nFrankenstein\nn\nexit\n", "--seed", "")

	assert.Contains(t, out, "Welcome to the Library!")
	assert.Contains(t, out, " - Frankenstein by Mary Shelley (Gothic)")
	assert.Contains(t, out, "Book borrowed successfully. Enjoy!")
	assert.Contains(t, out, "Thank you for using the Library!")
}

func TestRootWithYAMLSeed(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(`
items:
  - title: Neuromancer
    author: William Gibson
    genre: Cyberpunk
`), 0o644))

	out := execute(t, "cyberpunk\nnone\nn\nexit\n", "--seed", seed)
	assert.Contains(t, out, " - Neuromancer by William Gibson (Cyberpunk)")
}

func TestListGenre(t *testing.T) {
	out := execute(t, "", "list", "--seed", "", "Science", "Fiction")

	assert.Contains(t, out, "Books in the Science Fiction genre (2)")
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Brave New World")
	assert.NotContains(t, out, "Frankenstein")
}

func TestListAll(t *testing.T) {
	out := execute(t, "", "list", "--seed", "")

	assert.Contains(t, out, "On the shelf (6)")
	for _, title := range []string{
		"Percy Jackson: The Lightning Thief",
		"Percy Jackson: The Sea of Monsters",
		"Frankenstein",
		"The Castle of Otranto",
		"Dune",
		"Brave New World",
	} {
		assert.Contains(t, out, truncateString(title, 38))
	}
}

func TestItemTableShowsEveryRow(t *testing.T) {
	items := []*data.Item{
		data.NewItem("Dune", "Frank Herbert", "Science Fiction"),
		data.NewItem("Brave New World", "Aldous Huxley", "Science Fiction"),
		data.NewItem("Frankenstein", "Mary Shelley", "Gothic"),
	}

	view := itemTable(items).View()
	for _, item := range items {
		assert.Contains(t, view, item.Title)
	}
}

func TestListUnknownGenre(t *testing.T) {
	out := execute(t, "", "list", "--seed", "", "Poetry")

	assert.Contains(t, out, "Sorry, no books are available in that genre.")
}

func TestSearch(t *testing.T) {
	out := execute(t, "", "search", "--seed", "", "brave", "new", "world")
	assert.Contains(t, out, "Aldous Huxley")
	assert.Contains(t, out, "on shelf")

	out = execute(t, "", "search", "--seed", "", "Neuromancer")
	assert.Contains(t, out, "no book under that title was found")
}

func TestGenres(t *testing.T) {
	out := execute(t, "", "genres", "--seed", "")

	for _, genre := range []string{"Fantasy", "Gothic", "Science Fiction"} {
		assert.Contains(t, out, genre)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Dune", 10, "Dune"},
		{"Percy Jackson: The Lightning Thief", 13, "Percy Jack..."},
		{"Frankenstein", 3, "Fra"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateString(tt.in, tt.max))
	}
}
