package config

import (
	"fmt"
	"time"
)

// SnapshotPolicyKind discriminates the variants of SnapshotPolicy.
// Additional policies may become available in the future; consumers
// must treat kinds they do not recognize as a hard error.
type SnapshotPolicyKind int

const (
	// LogsSinceLast generates a snapshot once the given number of new
	// entries have been committed since the last snapshot.
	LogsSinceLast SnapshotPolicyKind = iota
)

// SnapshotPolicy governs when periodic snapshots are taken, and also
// when a leader falls back to sending a full snapshot to a follower
// that has lagged too far behind.
type SnapshotPolicy struct {
	Kind  SnapshotPolicyKind
	Count uint64
}

func (p SnapshotPolicy) String() string {
	switch p.Kind {
	case LogsSinceLast:
		return fmt.Sprintf("since_last:%d", p.Count)
	default:
		return fmt.Sprintf("unknown snapshot policy kind %d", int(p.Kind))
	}
}

// MarshalYAML renders the policy in its textual form (e.g. "since_last:5000").
func (p SnapshotPolicy) MarshalYAML() (interface{}, error) {
	if p.Kind != LogsSinceLast {
		return nil, fmt.Errorf("cannot marshal unknown snapshot policy kind %d", int(p.Kind))
	}
	return p.String(), nil
}

func (p *SnapshotPolicy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	policy, err := ParseSnapshotPolicy(raw)
	if err != nil {
		return err
	}
	*p = policy
	return nil
}

// Config is the runtime configuration of a single Raft node. It is
// built exactly once at process start-up (see Build), validated, and
// then shared read-only by every consumer; no field mutates afterward,
// so concurrent reads need no locking.
//
// When tuning, remember the inequality from the Raft paper:
// broadcastTime << electionTimeout << MTBF. Keep the election timeout
// high enough that ordinary network latency cannot trigger spurious
// elections, but low enough that a real leader crash does not cause
// prolonged downtime.
type Config struct {
	// Application-specific name of this Raft cluster, used for
	// namespacing and identity checks.
	ClusterName string `yaml:"cluster_name"`

	// Bounds of the randomized election timeout window, in milliseconds.
	ElectionTimeoutMin uint64 `yaml:"election_timeout_min"`
	ElectionTimeoutMax uint64 `yaml:"election_timeout_max"`

	// Interval at which leaders send heartbeats to followers, in milliseconds.
	HeartbeatInterval uint64 `yaml:"heartbeat_interval"`

	// Timeout for sending a single snapshot chunk, in milliseconds.
	InstallSnapshotTimeout uint64 `yaml:"install_snapshot_timeout"`

	// Maximum number of log entries per replication RPC. If this is too
	// low it will take longer to bring a node up to consistency with
	// the rest of the cluster.
	MaxPayloadEntries uint64 `yaml:"max_payload_entries"`

	// Distance behind in log replication a follower must fall before it
	// is considered lagging rather than line-rate.
	ReplicationLagThreshold uint64 `yaml:"replication_lag_threshold"`

	SnapshotPolicy SnapshotPolicy `yaml:"snapshot_policy"`

	// Maximum snapshot chunk size when transmitting snapshots, in bytes.
	SnapshotMaxChunkSize uint64 `yaml:"snapshot_max_chunk_size"`

	// Number of applied log entries to keep before purging.
	MaxAppliedLogToKeep uint64 `yaml:"max_applied_log_to_keep"`
}

// DefaultConfig returns the hardcoded defaults. They generally work
// well for clusters spanning availability zones with low latency
// between them. DefaultConfig never consults the environment.
func DefaultConfig() Config {
	return Config{
		ClusterName:             "foo",
		ElectionTimeoutMin:      150,
		ElectionTimeoutMax:      300,
		HeartbeatInterval:       50,
		InstallSnapshotTimeout:  200,
		MaxPayloadEntries:       300,
		ReplicationLagThreshold: 1000,
		SnapshotPolicy:          SnapshotPolicy{Kind: LogsSinceLast, Count: 5000},
		SnapshotMaxChunkSize:    3 * 1024 * 1024,
		MaxAppliedLogToKeep:     1000,
	}
}

// HeartbeatIntervalDuration converts the heartbeat interval for timer-driving consumers.
func (c *Config) HeartbeatIntervalDuration() time.Duration {
	return time.Duration(c.HeartbeatInterval) * time.Millisecond
}

// InstallSnapshotTimeoutDuration converts the per-chunk snapshot timeout.
func (c *Config) InstallSnapshotTimeoutDuration() time.Duration {
	return time.Duration(c.InstallSnapshotTimeout) * time.Millisecond
}
