package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDefaultsPass(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidateElectionTimeoutMinMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ElectionTimeoutMin = 1000
	cfg.ElectionTimeoutMax = 700
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidElectionTimeoutMinMax)

	// An empty window is invalid too.
	cfg.ElectionTimeoutMin = 700
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidElectionTimeoutMinMax)
}

func TestValidateElectionTimeoutVsHeartbeat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ElectionTimeoutMin = 40
	cfg.ElectionTimeoutMax = 80
	cfg.HeartbeatInterval = 50
	assert.ErrorIs(t, cfg.Validate(), ErrElectionTimeoutLessThanHeartBeatInterval)

	// Equality is not enough headroom.
	cfg.HeartbeatInterval = 40
	assert.ErrorIs(t, cfg.Validate(), ErrElectionTimeoutLessThanHeartBeatInterval)
}

func TestValidateMaxPayloadEntries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPayloadEntries = 0
	assert.ErrorIs(t, cfg.Validate(), ErrMaxPayloadEntriesTooSmall)

	cfg.MaxPayloadEntries = 1
	assert.NoError(t, cfg.Validate())
}

func TestValidateReportsFirstViolationOnly(t *testing.T) {
	// Violates all three invariants at once; the min/max check runs
	// first, then the heartbeat check, then the payload check.
	cfg := DefaultConfig()
	cfg.ElectionTimeoutMin = 50
	cfg.ElectionTimeoutMax = 40
	cfg.HeartbeatInterval = 60
	cfg.MaxPayloadEntries = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidElectionTimeoutMinMax)

	cfg.ElectionTimeoutMax = 55
	assert.ErrorIs(t, cfg.Validate(), ErrElectionTimeoutLessThanHeartBeatInterval)

	cfg.HeartbeatInterval = 10
	assert.ErrorIs(t, cfg.Validate(), ErrMaxPayloadEntriesTooSmall)
}
