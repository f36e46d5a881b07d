package netconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/internal/netconfig"
)

func TestDefault(t *testing.T) {
	cfg := netconfig.Default()
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 10000.0, cfg.DefaultCapacityMbps)
	require.Equal(t, 0.4, cfg.ResilienceWeights.Redundancy)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := netconfig.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, netconfig.Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\ntop_spof_count: 5\n"), 0o644))

	cfg, err := netconfig.Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 5, cfg.TopSPOFCount)
	require.Equal(t, 10000.0, cfg.DefaultCapacityMbps)
}
