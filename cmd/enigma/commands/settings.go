package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"enigma/internal/domain"
)

// settingFlags holds the setting flags in operator notation.
type settingFlags struct {
	rotors    string
	reflector string
	positions string
	rings     string
	plugs     string
}

func (f *settingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.rotors, "rotors", "I II III", "rotors left to right, e.g. \"IV V Beta I\"")
	cmd.Flags().StringVar(&f.reflector, "reflector", "B", "reflector: A, B or C")
	cmd.Flags().StringVar(&f.positions, "positions", "", "starting window letters, e.g. \"A A Z\" or AAZ (default all A)")
	cmd.Flags().StringVar(&f.rings, "rings", "", "ring settings 1-26, e.g. \"1 1 1\" (default all 1)")
	cmd.Flags().StringVar(&f.plugs, "plugs", "", "plug leads, e.g. \"AB CD\"")
}

// config turns the flags into a machine setting. The result is not
// validated; machine construction does that.
func (f *settingFlags) config() (domain.Config, error) {
	names := strings.Fields(f.rotors)
	n := len(names)
	if n == 0 {
		return domain.Config{}, fmt.Errorf("%w: no rotors given", domain.ErrInvalidConfiguration)
	}

	positions, err := splitPositions(f.positions, n)
	if err != nil {
		return domain.Config{}, err
	}
	rings, err := splitRings(f.rings, n)
	if err != nil {
		return domain.Config{}, err
	}

	cfg := domain.Config{Reflector: domain.RotorName(strings.TrimSpace(f.reflector))}
	for i, name := range names {
		cfg.Rotors = append(cfg.Rotors, domain.RotorSpec{
			Name:     domain.RotorName(name),
			Position: positions[i],
			Ring:     rings[i],
		})
	}
	for _, lead := range strings.Fields(f.plugs) {
		cfg.PlugLeads = append(cfg.PlugLeads, strings.ToUpper(lead))
	}
	return cfg, nil
}

// splitPositions accepts "A B C" or "ABC".
func splitPositions(s string, n int) ([]string, error) {
	fields := strings.Fields(strings.ToUpper(s))
	if len(fields) == 0 {
		fields = make([]string, n)
		for i := range fields {
			fields[i] = "A"
		}
	}
	if len(fields) == 1 && n > 1 && len(fields[0]) == n {
		fields = strings.Split(fields[0], "")
	}
	if len(fields) != n {
		return nil, fmt.Errorf("%w: %d positions for %d rotors", domain.ErrInvalidConfiguration, len(fields), n)
	}
	return fields, nil
}

func splitRings(s string, n int) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		rings := make([]int, n)
		for i := range rings {
			rings[i] = 1
		}
		return rings, nil
	}
	if len(fields) != n {
		return nil, fmt.Errorf("%w: %d ring settings for %d rotors", domain.ErrInvalidConfiguration, len(fields), n)
	}
	rings := make([]int, n)
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: ring setting %q", domain.ErrInvalidConfiguration, field)
		}
		rings[i] = v
	}
	return rings, nil
}

// resolve returns the setting from --keysheet when given, otherwise from
// the setting flags.
func (f *settingFlags) resolve() (domain.Config, error) {
	if sheetPath != "" {
		return wire.KeySheets.Load(sheetPath, passphrase)
	}
	return f.config()
}
