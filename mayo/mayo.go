package mayo

import (
	"crypto/rand"
	"fmt"
	"io"

	"mayo/internal/metrics"
)

// Config selects a parameter set and optionally overrides the signer's
// retry bound. Callers build one with NewConfig or by setting Set directly
// and calling Validate.
type Config struct {
	Set      Set
	RetryCap int // 0 means "use the parameter set's default"
}

// NewConfig returns a Config for set with the default retry cap.
func NewConfig(set Set) Config {
	return Config{Set: set}
}

// Validate checks that c names a known parameter set and that RetryCap is
// not negative, before any allocation happens on its behalf.
func (c Config) Validate() error {
	if _, ok := presetTable[c.Set]; !ok {
		return fmt.Errorf("%w: unknown parameter set %v", ErrInputLength, c.Set)
	}
	if c.RetryCap < 0 {
		return fmt.Errorf("%w: negative retry cap %d", ErrInputLength, c.RetryCap)
	}
	return nil
}

// params resolves c to its full Params, applying the RetryCap override.
func (c Config) params() Params {
	p := ParamsFor(c.Set)
	if c.RetryCap > 0 {
		p.RetryCap = c.RetryCap
	}
	return p
}

// KeyPair holds a generated secret/public key pair.
type KeyPair struct {
	Config Config
	SK     []byte // compact secret key: sk_seed
	PK     []byte // pk_seed || P3_bytes
}

// Generate samples a fresh key pair under cfg, drawing the secret seed
// from rng. Pass crypto/rand.Reader in production; tests may supply a
// deterministic source.
func Generate(cfg Config, rng io.Reader) (*KeyPair, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := cfg.params()
	skSeed := make([]byte, p.SKSeedLen)
	if _, err := io.ReadFull(rng, skSeed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomness, err)
	}
	pk := DerivePK(p, skSeed)
	metrics.Add("sk_bytes", uint64(len(skSeed)))
	metrics.Add("pk_bytes", uint64(len(pk)))
	return &KeyPair{Config: cfg, SK: skSeed, PK: pk}, nil
}

// GenerateWithRandReader is a convenience wrapper around Generate using
// crypto/rand.Reader.
func GenerateWithRandReader(cfg Config) (*KeyPair, error) {
	return Generate(cfg, rand.Reader)
}

// Sign signs msg under kp's secret key, reading the initial salt from rng;
// retry attempts derive their salts from it rather than reading rng again.
func (kp *KeyPair) Sign(msg []byte, rng io.Reader) ([]byte, error) {
	return Sign(kp.Config.params(), kp.SK, msg, rng)
}

// Verify checks sig against msg under kp's public key.
func (kp *KeyPair) Verify(msg, sig []byte) (bool, error) {
	return Verify(kp.Config.params(), kp.PK, msg, sig)
}

// FromBytesSK reconstructs a secret key from its compact encoding,
// rejecting any buffer of the wrong length.
func FromBytesSK(cfg Config, data []byte) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := cfg.params()
	if len(data) != p.SKLen() {
		return nil, fmt.Errorf("%w: secret key is %d bytes, want %d", ErrInputLength, len(data), p.SKLen())
	}
	return append([]byte(nil), data...), nil
}

// FromBytesPK reconstructs a public key from its encoding, rejecting any
// buffer of the wrong length.
func FromBytesPK(cfg Config, data []byte) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := cfg.params()
	if len(data) != p.PKLen() {
		return nil, fmt.Errorf("%w: public key is %d bytes, want %d", ErrInputLength, len(data), p.PKLen())
	}
	return append([]byte(nil), data...), nil
}
