package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrSnapshotPolicyGrammar describes the only accepted snapshot policy form.
var ErrSnapshotPolicyGrammar = errors.New("snapshot policy should be in form of 'since_last:<num>'")

// ParseBytes converts a human-readable size such as "3MiB" or "5.3 KB"
// into an exact byte count. Binary suffixes (KiB, MiB, ...) are powers
// of 1024, decimal suffixes (KB, MB, ...) powers of 1000; suffixes are
// case-insensitive and a bare integer is a raw byte count.
func ParseBytes(s string) (uint64, error) {
	return humanize.ParseBytes(s)
}

// ParseSnapshotPolicy parses a policy descriptor such as "since_last:5000".
func ParseSnapshotPolicy(s string) (SnapshotPolicy, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return SnapshotPolicy{}, ErrSnapshotPolicyGrammar
	}
	if parts[0] != "since_last" {
		return SnapshotPolicy{}, ErrSnapshotPolicyGrammar
	}
	count, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return SnapshotPolicy{}, ErrSnapshotPolicyGrammar
	}
	return SnapshotPolicy{Kind: LogsSinceLast, Count: count}, nil
}
