package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInitCommandGeneratesConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	stubWorkflow(t, nil)

	_, err := executeCommand(t, "init")
	require.NoError(t, err)

	content, err := os.ReadFile(configFileName)
	require.NoError(t, err)

	var config struct {
		Version int `yaml:"version"`
		Check   struct {
			Parallel int `yaml:"parallel"`
		} `yaml:"check"`
		Log struct {
			Filename   string `yaml:"filename"`
			MaxBackups int    `yaml:"max_backups"`
		} `yaml:"log"`
	}
	require.NoError(t, yaml.Unmarshal(content, &config))

	assert.Equal(t, currentConfigVersion, config.Version)
	assert.Equal(t, defaultParallel, config.Check.Parallel)
	assert.Equal(t, defaultLogFilename, config.Log.Filename)
	assert.Equal(t, defaultLogMaxBackups, config.Log.MaxBackups)
}

func TestInitCommandRefusesToOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())
	stubWorkflow(t, nil)

	_, err := executeCommand(t, "init")
	require.NoError(t, err)

	_, err = executeCommand(t, "init")
	assert.ErrorContains(t, err, "failed to write config file")
}
