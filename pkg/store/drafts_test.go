package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/callsheet/callsheet/pkg/schedule"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }
func (c *testConfig) Backend() string  { return "http://localhost:8001" }

func TestDraftRoundTrip(t *testing.T) {
	drafts, err := Load(&testConfig{path: t.TempDir()})
	require.NoError(t, err)

	_, ok, err := drafts.Load()
	require.NoError(t, err)
	require.False(t, ok, "fresh store must not report a draft")

	doc := schedule.New()
	doc = doc.AddCalltime()
	doc = doc.MoveSection(doc.Calltimes[0].ID, doc.Days[0].ID)
	require.NoError(t, drafts.Save(doc))

	loaded, ok, err := drafts.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, doc, loaded)

	require.NoError(t, drafts.Clear())
	_, ok, err = drafts.Load()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLoadRejectsEmptyBasePath(t *testing.T) {
	_, err := Load(&testConfig{})
	require.Error(t, err)
}
