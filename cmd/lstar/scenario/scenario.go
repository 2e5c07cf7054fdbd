// Package scenario loads the TOML scenario files consumed by the lstar
// command: the target's address, the input alphabet, the learning
// bound, and the equivalence-oracle policy.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lstar/oracle"
	"github.com/katalvlaran/lstar/word"
)

// Oracle policy names accepted by the "oracle" key.
const (
	OracleWMethod    = "wmethod"
	OracleRandomWalk = "random-walk"
)

var (
	// ErrNoAddress is the error returned when a scenario names no
	// target address.
	ErrNoAddress = errors.New("scenario: address is required")

	// ErrNoAlphabet is the error returned when a scenario names no
	// input letters.
	ErrNoAlphabet = errors.New("scenario: alphabet is required")

	// ErrBadOracle is the error returned for an unknown oracle policy.
	ErrBadOracle = errors.New(`scenario: oracle must be "wmethod" or "random-walk"`)
)

// RandomWalkConfig carries the [random-walk] table.
type RandomWalkConfig struct {
	// RestartProbability is the per-step probability of restarting the
	// walk; must be in (0,1).
	RestartProbability float64 `toml:"restart-probability"`

	// MaxSteps bounds the walk's length.
	MaxSteps int `toml:"max-steps"`

	// Seed makes the walk reproducible; 0 selects the fixed default.
	Seed int64 `toml:"seed"`
}

// Scenario is a parsed scenario file.
type Scenario struct {
	// Address is the "host:port" of the remote target.
	Address string `toml:"address"`

	// Alphabet is the input alphabet, one string letter per entry.
	Alphabet []string `toml:"alphabet"`

	// MaxStates is the claimed bound on the target's state count.
	MaxStates int `toml:"max-states"`

	// OracleName selects the equivalence policy; defaults to wmethod.
	OracleName string `toml:"oracle"`

	// RandomWalk configures the random-walk policy when selected.
	RandomWalk RandomWalkConfig `toml:"random-walk"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	var sc Scenario
	if tomlErr := toml.Unmarshal(data, &sc); tomlErr != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, tomlErr)
	}
	if sc.Address == "" {
		return nil, ErrNoAddress
	}
	if len(sc.Alphabet) == 0 {
		return nil, ErrNoAlphabet
	}
	if sc.MaxStates < 1 {
		sc.MaxStates = 1
	}
	if sc.OracleName == "" {
		sc.OracleName = OracleWMethod
	}
	if sc.OracleName != OracleWMethod && sc.OracleName != OracleRandomWalk {
		return nil, fmt.Errorf("%w: got %q", ErrBadOracle, sc.OracleName)
	}
	return &sc, nil
}

// Letters converts the configured alphabet into letters.
func (sc *Scenario) Letters() []word.Letter {
	out := make([]word.Letter, len(sc.Alphabet))
	for i, s := range sc.Alphabet {
		out[i] = word.String(s)
	}
	return out
}

// Oracle builds the configured equivalence oracle.
func (sc *Scenario) Oracle() (oracle.Oracle, error) {
	switch sc.OracleName {
	case OracleRandomWalk:
		return oracle.NewRandomWalk(sc.RandomWalk.RestartProbability, sc.RandomWalk.MaxSteps, sc.RandomWalk.Seed)
	default:
		return oracle.NewWMethod(sc.MaxStates)
	}
}
