package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	edgesPath := filepath.Join(dir, "tri.edges")
	require.NoError(t, os.WriteFile(edgesPath, []byte("3\n0 1 1\n1 2 1\n0 2 2\n"), 0o644))
	reportPath := filepath.Join(dir, "report.csv")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"version", []string{"-version"}, exitOK},
		{"unknown flag", []string{"-nope"}, exitUsage},
		{"init without config", []string{"-init"}, exitUsage},
		{"init", []string{"-init", "-config", filepath.Join(dir, "filtrate.yaml")}, exitOK},
		{"bad level", []string{"-log-level", "loud"}, exitUsage},
		{"bad config", []string{"-max-dim", "-1"}, exitUsage},
		{"missing input", []string{"-edges", filepath.Join(dir, "none"), "-log-level", "error"}, exitError},
		{"edge list", []string{"-edges", edgesPath, "-out", reportPath, "-log-level", "error"}, exitOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.Equal(t, tc.want, run(tc.args, &stdout, &stderr), "stderr: %s", stderr.String())
		})
	}

	// The report file was flushed and closed before run returned.
	f, err := os.Open(reportPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, csvHeader, rows[0])
	require.Len(t, rows, 1+3)
}
