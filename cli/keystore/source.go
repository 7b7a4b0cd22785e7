package keystore

import (
	"errors"
	"os"
)

// MasterKeyEnvVar names the variable holding an explicit master key.
const MasterKeyEnvVar = "EASEL_MASTER_KEY"

// ErrNoMasterKey is returned when a source has no key material.
var ErrNoMasterKey = errors.New("keystore: no master key available")

// MasterKeySource supplies the secret the file encryption key is derived from.
type MasterKeySource interface {
	MasterKey() ([]byte, error)
}

// EnvMasterKey reads the master key from an environment variable.
type EnvMasterKey struct {
	Var string
}

// MasterKey implements MasterKeySource.
func (s EnvMasterKey) MasterKey() ([]byte, error) {
	v := os.Getenv(s.Var)
	if v == "" {
		return nil, ErrNoMasterKey
	}
	return []byte(v), nil
}

// MachineMasterKey derives key material from the host name and user.
// It keeps keys out of plain text but is predictable to anyone on the same
// machine; set EASEL_MASTER_KEY for stronger protection.
type MachineMasterKey struct{}

// MasterKey implements MasterKeySource.
func (MachineMasterKey) MasterKey() ([]byte, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	username := os.Getenv("USER")
	if username == "" {
		username = os.Getenv("USERNAME")
	}
	return []byte(hostname + ":" + username + ":easel-keystore"), nil
}

// StaticMasterKey is a fixed master key.
type StaticMasterKey []byte

// MasterKey implements MasterKeySource.
func (s StaticMasterKey) MasterKey() ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrNoMasterKey
	}
	return []byte(s), nil
}

// DefaultMasterKeySource prefers EASEL_MASTER_KEY and falls back to the
// machine-derived key.
func DefaultMasterKeySource() MasterKeySource {
	if os.Getenv(MasterKeyEnvVar) != "" {
		return EnvMasterKey{Var: MasterKeyEnvVar}
	}
	return MachineMasterKey{}
}
