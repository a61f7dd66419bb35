// Package config reads the peer addresses every binary needs to start,
// mirroring original_source/equation/src/config.rs: four env vars, one
// per operator, loaded through a .env file when present and otherwise
// left to the process environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Shearerbeard/PESA-equation-services/expr"
)

const (
	envAdder      = "ADDER_ADDR"
	envSubtractor = "SUBTRACTOR_ADDR"
	envMultiplier = "MULTIPLIER_ADDR"
	envDivider    = "DIVIDER_ADDR"
)

// Addresses holds the dial address of every operator, keyed by the
// operation it owns.
type Addresses map[expr.Kind]string

// Load reads the four *_ADDR environment variables, first attempting
// to populate the environment from a .env file in the working
// directory. A missing .env file is not an error, matching
// dotenv::dotenv().ok() in original_source — only a missing required
// variable fails Load.
func Load() (Addresses, error) {
	_ = godotenv.Load()

	addrs := Addresses{}
	for kind, name := range map[expr.Kind]string{
		expr.Add: envAdder,
		expr.Sub: envSubtractor,
		expr.Mul: envMultiplier,
		expr.Div: envDivider,
	} {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			return nil, fmt.Errorf("config: missing required environment variable %s", name)
		}
		addrs[kind] = v
	}
	return addrs, nil
}

// Peers returns a copy of addrs with the given owned kind removed,
// ready to hand to peer.NewManager — an operator never dials itself.
func (a Addresses) Peers(owner expr.Kind) Addresses {
	peers := make(Addresses, len(a)-1)
	for kind, addr := range a {
		if kind == owner {
			continue
		}
		peers[kind] = addr
	}
	return peers
}

// Own returns the dial address configured for kind, used by
// operator.Run (behind every cmd/<op>) to pick its own listen address
// out of the same four variables.
func (a Addresses) Own(kind expr.Kind) (string, error) {
	addr, ok := a[kind]
	if !ok {
		return "", fmt.Errorf("config: no address configured for %s", kind)
	}
	return addr, nil
}
