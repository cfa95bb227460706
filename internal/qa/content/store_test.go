package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.json")
	data := `[
		{"title":"Admissions","url":"https://college.edu/admissions","sections":[
			{"heading":"Deadlines","content":"Apply by June 1."}
		]},
		{"title":"Library","content":"Open 8am-10pm."},
		{"title":"EmptyPage"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	store, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, 2, store.Count())
	assert.Equal(t, "Deadlines", store.Records()[0].Heading)
	assert.Equal(t, "Library", store.Records()[1].Title)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestOpen_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"wrong":"shape"}`), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}
