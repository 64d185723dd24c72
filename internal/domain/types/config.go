package types

import (
	"fmt"
	"strings"
)

// RotorName identifies an entry in the rotor/reflector catalog.
type RotorName string

// String returns the string form of the rotor name.
func (n RotorName) String() string { return string(n) }

// Fingerprint is a short identifier for a key sheet presented to operators.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// RotorSpec configures one rotor slot.
type RotorSpec struct {
	Name     RotorName `yaml:"name" validate:"required,oneof=I II III IV V Beta Gamma"`
	Position string    `yaml:"position" validate:"required,len=1,alpha,uppercase"`
	Ring     int       `yaml:"ring" validate:"min=1,max=26"`
}

// Config is a complete machine setting.
//
// Rotors are listed left to right, the way an operator reads the rotor
// windows; the rightmost entry is the fastest rotor.
type Config struct {
	Rotors    []RotorSpec `yaml:"rotors" validate:"min=3,max=4,dive"`
	Reflector RotorName   `yaml:"reflector" validate:"required,oneof=A B C"`
	PlugLeads []string    `yaml:"plug_leads,omitempty" validate:"max=10,dive,len=2,alpha,uppercase"`
}

// Clone returns a deep copy so callers can keep a setting while a
// session mutates its own.
func (c Config) Clone() Config {
	out := Config{Reflector: c.Reflector}
	out.Rotors = append([]RotorSpec(nil), c.Rotors...)
	if c.PlugLeads != nil {
		out.PlugLeads = append([]string(nil), c.PlugLeads...)
	}
	return out
}

// String renders the setting on one line, e.g. "I II III | B | AAA | 01 01 01 | AB CD".
func (c Config) String() string {
	names := make([]string, len(c.Rotors))
	rings := make([]string, len(c.Rotors))
	var pos strings.Builder
	for i, r := range c.Rotors {
		names[i] = r.Name.String()
		rings[i] = fmt.Sprintf("%02d", r.Ring)
		pos.WriteString(r.Position)
	}
	parts := []string{
		strings.Join(names, " "),
		c.Reflector.String(),
		pos.String(),
		strings.Join(rings, " "),
	}
	if len(c.PlugLeads) > 0 {
		parts = append(parts, strings.Join(c.PlugLeads, " "))
	}
	return strings.Join(parts, " | ")
}
