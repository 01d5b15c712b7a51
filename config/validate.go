package config

// Validate checks the cross-field invariants required by the consensus
// protocol. Checks run in a fixed order and only the first violation is
// reported, so error reporting stays deterministic when several
// invariants are broken at once.
func (c *Config) Validate() error {
	if c.ElectionTimeoutMin >= c.ElectionTimeoutMax {
		return ErrInvalidElectionTimeoutMinMax
	}
	if c.ElectionTimeoutMin <= c.HeartbeatInterval {
		return ErrElectionTimeoutLessThanHeartBeatInterval
	}
	if c.MaxPayloadEntries == 0 {
		return ErrMaxPayloadEntriesTooSmall
	}
	return nil
}
