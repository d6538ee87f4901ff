package cmd_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"orderdesk/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_WiresEverything(t *testing.T) {
	cfg, err := cmd.LoadConfig(env(nil))
	require.NoError(t, err)
	storage, err := cmd.OpenStorage(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { _ = storage.Close() }()

	root, err := cmd.NewCompositionRoot(cfg, storage.UoWFactory, nil)
	require.NoError(t, err)

	router, err := root.CreateRouter()
	require.NoError(t, err)
	assert.NotEmpty(t, router.Routes())

	jobManager, err := root.CreateJobManager()
	require.NoError(t, err)
	require.NoError(t, jobManager.StartAll())
	jobManager.StopAll()
}

func TestCompositionRoot_CustomRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	rules := "rules:\n  - item: coffee\n    triggers: [espresso]\n"
	require.NoError(t, os.WriteFile(path, []byte(rules), 0o600))

	cfg, err := cmd.LoadConfig(env(map[string]string{"INTENT_RULES_PATH": path}))
	require.NoError(t, err)
	storage, err := cmd.OpenStorage(context.Background(), cfg)
	require.NoError(t, err)

	_, err = cmd.NewCompositionRoot(cfg, storage.UoWFactory, nil)
	require.NoError(t, err)
}

func TestCompositionRoot_RulesForUnknownItem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	rules := "rules:\n  - item: caviar\n    triggers: [caviar]\n"
	require.NoError(t, os.WriteFile(path, []byte(rules), 0o600))

	cfg, err := cmd.LoadConfig(env(map[string]string{"INTENT_RULES_PATH": path}))
	require.NoError(t, err)
	storage, err := cmd.OpenStorage(context.Background(), cfg)
	require.NoError(t, err)

	_, err = cmd.NewCompositionRoot(cfg, storage.UoWFactory, nil)
	require.Error(t, err)
}

func TestCompositionRoot_MissingRulesFile(t *testing.T) {
	cfg, err := cmd.LoadConfig(env(map[string]string{"INTENT_RULES_PATH": "/does/not/exist.yaml"}))
	require.NoError(t, err)
	storage, err := cmd.OpenStorage(context.Background(), cfg)
	require.NoError(t, err)

	_, err = cmd.NewCompositionRoot(cfg, storage.UoWFactory, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}
