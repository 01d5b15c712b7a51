package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "foo", cfg.ClusterName)
	assert.Equal(t, uint64(150), cfg.ElectionTimeoutMin)
	assert.Equal(t, uint64(300), cfg.ElectionTimeoutMax)
	assert.Equal(t, uint64(50), cfg.HeartbeatInterval)
	assert.Equal(t, uint64(200), cfg.InstallSnapshotTimeout)
	assert.Equal(t, uint64(300), cfg.MaxPayloadEntries)
	assert.Equal(t, uint64(1000), cfg.ReplicationLagThreshold)
	assert.Equal(t, SnapshotPolicy{Kind: LogsSinceLast, Count: 5000}, cfg.SnapshotPolicy)
	assert.Equal(t, uint64(3*1024*1024), cfg.SnapshotMaxChunkSize)
	assert.Equal(t, uint64(1000), cfg.MaxAppliedLogToKeep)
}

func TestSnapshotPolicyString(t *testing.T) {
	policy := SnapshotPolicy{Kind: LogsSinceLast, Count: 5000}
	assert.Equal(t, "since_last:5000", policy.String())
}

func TestSnapshotPolicyYAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	bytes, err := yaml.Marshal(&cfg)
	require.NoError(t, err)
	assert.Contains(t, string(bytes), "snapshot_policy: since_last:5000")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(bytes, &decoded))
	assert.Equal(t, cfg, decoded)
}

func TestSnapshotPolicyUnknownKindFailsToMarshal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SnapshotPolicy = SnapshotPolicy{Kind: SnapshotPolicyKind(99), Count: 1}
	_, err := yaml.Marshal(&cfg)
	assert.Error(t, err)
}

func TestDurationHelpers(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 50*time.Millisecond, cfg.HeartbeatIntervalDuration())
	assert.Equal(t, 200*time.Millisecond, cfg.InstallSnapshotTimeoutDuration())
}
