// Copyright 2026 Peter Edge
//
// All rights reserved.

package datectlconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bufdev/datectl/internal/pkg/cliio"
	"github.com/stretchr/testify/require"
)

func TestReadConfigMissingFile(t *testing.T) {
	t.Parallel()
	// A missing config file means defaults, not an error.
	config, err := ReadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, cliio.FormatTable, config.Format)
}

func TestInitAndReadConfig(t *testing.T) {
	t.Parallel()
	configDirPath := t.TempDir()
	filePath, err := InitConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, ConfigFilePath(configDirPath), filePath)
	// The template validates as-is.
	config, err := ReadConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, cliio.FormatTable, config.Format)
	// A second init fails rather than overwriting.
	_, err = InitConfig(configDirPath)
	require.Error(t, err)
}

func TestReadConfigFormat(t *testing.T) {
	t.Parallel()
	configDirPath := t.TempDir()
	writeConfig(t, configDirPath, "version: v1\nformat: json\n")
	config, err := ReadConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, cliio.FormatJSON, config.Format)
}

func TestReadConfigInvalid(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		desc string
		data string
	}{
		{
			desc: "unsupported version",
			data: "version: v2\n",
		},
		{
			desc: "unknown format",
			data: "version: v1\nformat: xml\n",
		},
		{
			desc: "unknown field",
			data: "version: v1\ntimezone: UTC\n",
		},
	} {
		configDirPath := t.TempDir()
		writeConfig(t, configDirPath, test.data)
		_, err := ReadConfig(configDirPath)
		require.Error(t, err, test.desc)
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()
	configDirPath := t.TempDir()
	require.NoError(t, ValidateConfig(configDirPath))
	writeConfig(t, configDirPath, "version: v1\nformat: csv\n")
	require.NoError(t, ValidateConfig(configDirPath))
	writeConfig(t, configDirPath, "version: v9\n")
	require.Error(t, ValidateConfig(configDirPath))
}

func writeConfig(t *testing.T, configDirPath string, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(configDirPath, ConfigFileName), []byte(data), 0o644))
}
