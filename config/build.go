package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// fieldSpec binds one Config field to its command-line flag, its
// environment variable, and the setter that parses a raw string into
// the field. Resolution order per field: explicit flag token, then the
// environment variable, then the DefaultConfig value.
type fieldSpec struct {
	flag string
	env  string
	set  func(c *Config, raw string) error
}

func uintField(assign func(c *Config, v uint64)) func(*Config, string) error {
	return func(c *Config, raw string) error {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		assign(c, v)
		return nil
	}
}

var fields = []fieldSpec{
	{"cluster-name", "RAFT_CLUSTER_NAME", func(c *Config, raw string) error {
		c.ClusterName = raw
		return nil
	}},
	{"election-timeout-min", "RAFT_ELECTION_TIMEOUT_MIN",
		uintField(func(c *Config, v uint64) { c.ElectionTimeoutMin = v })},
	{"election-timeout-max", "RAFT_ELECTION_TIMEOUT_MAX",
		uintField(func(c *Config, v uint64) { c.ElectionTimeoutMax = v })},
	{"heartbeat-interval", "RAFT_HEARTBEAT_INTERVAL",
		uintField(func(c *Config, v uint64) { c.HeartbeatInterval = v })},
	{"install-snapshot-timeout", "RAFT_INSTALL_SNAPSHOT_TIMEOUT",
		uintField(func(c *Config, v uint64) { c.InstallSnapshotTimeout = v })},
	{"max-payload-entries", "RAFT_MAX_PAYLOAD_ENTRIES",
		uintField(func(c *Config, v uint64) { c.MaxPayloadEntries = v })},
	{"replication-lag-threshold", "RAFT_REPLICATION_LAG_THRESHOLD",
		uintField(func(c *Config, v uint64) { c.ReplicationLagThreshold = v })},
	{"snapshot-policy", "RAFT_SNAPSHOT_POLICY", func(c *Config, raw string) error {
		policy, err := ParseSnapshotPolicy(raw)
		if err != nil {
			return err
		}
		c.SnapshotPolicy = policy
		return nil
	}},
	{"snapshot-max-chunk-size", "RAFT_SNAPSHOT_MAX_CHUNK_SIZE", func(c *Config, raw string) error {
		v, err := ParseBytes(raw)
		if err != nil {
			return err
		}
		c.SnapshotMaxChunkSize = v
		return nil
	}},
	{"max-applied-log-to-keep", "RAFT_MAX_APPLIED_LOG_TO_KEEP",
		uintField(func(c *Config, v uint64) { c.MaxAppliedLogToKeep = v })},
}

// Binding describes how a single field is sourced from the command
// line and the environment.
type Binding struct {
	Flag string
	Env  string
}

// Bindings returns the flag and environment variable name of every
// configuration field, in field order.
func Bindings() []Binding {
	bindings := make([]Binding, 0, len(fields))
	for _, f := range fields {
		bindings = append(bindings, Binding{Flag: f.flag, Env: f.env})
	}
	return bindings
}

// splitOverrides turns raw override tokens into a flag -> value map.
// Both "--flag=value" and "--flag value" forms are accepted; for a
// repeated flag the last occurrence wins.
func splitOverrides(args []string) (map[string]string, error) {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.flag] = true
	}

	overrides := make(map[string]string)
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if !strings.HasPrefix(tok, "--") {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFlag, tok)
		}
		name, value := strings.TrimPrefix(tok, "--"), ""
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name, value = name[:eq], name[eq+1:]
		} else {
			if i+1 >= len(args) {
				return nil, fmt.Errorf("flag --%s is missing a value", name)
			}
			i++
			value = args[i]
		}
		if !known[name] {
			return nil, fmt.Errorf("%w: --%s", ErrUnknownFlag, name)
		}
		overrides[name] = value
	}
	return overrides, nil
}

// Build constructs a validated Config from the given override tokens.
// Every field resolves independently: an explicit "--flag" token wins
// over its RAFT_* environment variable, which wins over the default.
// The first unrecognized token or per-field parse failure aborts the
// build; a caller never receives an unvalidated Config from Build.
func Build(args []string) (*Config, error) {
	overrides, err := splitOverrides(args)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	for _, f := range fields {
		raw, ok := overrides[f.flag]
		if !ok {
			raw, ok = os.LookupEnv(f.env)
		}
		if !ok {
			continue
		}
		if err := f.set(&cfg, raw); err != nil {
			return nil, &FieldError{Field: f.flag, Err: err}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
