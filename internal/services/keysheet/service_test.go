package keysheet_test

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"enigma/internal/domain"
	sheets "enigma/internal/keysheet"
	"enigma/internal/machine"
	"enigma/internal/services/keysheet"
)

// memStore is an in-memory KeySheetStore.
type memStore struct {
	sheets map[string]domain.Config
	pass   map[string]string
}

func newMemStore() *memStore {
	return &memStore{sheets: map[string]domain.Config{}, pass: map[string]string{}}
}

func (m *memStore) SaveKeySheet(path, passphrase string, cfg domain.Config) error {
	m.sheets[path] = cfg.Clone()
	m.pass[path] = passphrase
	return nil
}

func (m *memStore) LoadKeySheet(path, passphrase string) (domain.Config, error) {
	cfg, ok := m.sheets[path]
	if !ok {
		return domain.Config{}, errors.New("not found")
	}
	if m.pass[path] != "" && m.pass[path] != passphrase {
		return domain.Config{}, sheets.ErrWrongPassphrase
	}
	return cfg.Clone(), nil
}

func setting() domain.Config {
	return domain.Config{
		Rotors: []domain.RotorSpec{
			{Name: "II", Position: "M", Ring: 1},
			{Name: "IV", Position: "Q", Ring: 26},
			{Name: "V", Position: "R", Ring: 1},
		},
		Reflector: "C",
		PlugLeads: []string{"AB", "CD"},
	}
}

func TestIssueLoad_OK(t *testing.T) {
	svc := keysheet.New(newMemStore())

	fp, err := svc.Issue("day-14", "Str0ng!Passphrase", setting())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(fp) != 20 {
		t.Fatalf("fingerprint %q has length %d", fp, len(fp))
	}

	cfg, err := svc.Load("day-14", "Str0ng!Passphrase")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, setting()) {
		t.Fatalf("got %+v, want %+v", cfg, setting())
	}

	again, err := svc.Fingerprint("day-14", "Str0ng!Passphrase")
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if again != fp {
		t.Fatalf("fingerprint changed: %s != %s", again, fp)
	}
}

func TestIssue_WeakPassphrase(t *testing.T) {
	svc := keysheet.New(newMemStore())
	for _, pass := range []string{"short", "alllowercase-but-long1", "NoDigitsHere!!", "NoSymbols12345"} {
		if _, err := svc.Issue("x", pass, setting()); !errors.Is(err, keysheet.ErrWeakPassphrase) {
			t.Fatalf("%q: got %v, want ErrWeakPassphrase", pass, err)
		}
	}
	// Plain sheets need no passphrase.
	if _, err := svc.Issue("x", "", setting()); err != nil {
		t.Fatalf("plain Issue: %v", err)
	}
}

func TestIssue_RejectsDuplicateLeads(t *testing.T) {
	store := newMemStore()
	svc := keysheet.New(store)
	cfg := setting()
	cfg.PlugLeads = []string{"AB", "BC"}

	if _, err := svc.Issue("x", "", cfg); !errors.Is(err, domain.ErrInvalidLeadConfiguration) {
		t.Fatalf("got %v, want ErrInvalidLeadConfiguration", err)
	}
	if _, ok := store.sheets["x"]; ok {
		t.Fatalf("invalid sheet was stored")
	}
}

func TestLoad_RejectsUnbuildableSheet(t *testing.T) {
	store := newMemStore()
	cfg := setting()
	cfg.PlugLeads = []string{"AB", "AC"}
	store.sheets["bad"] = cfg

	if _, err := keysheet.New(store).Load("bad", ""); !errors.Is(err, domain.ErrInvalidLeadConfiguration) {
		t.Fatalf("got %v, want ErrInvalidLeadConfiguration", err)
	}
}

func TestIssue_WithFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	svc := keysheet.New(sheets.NewFileStore())

	if _, err := svc.Issue(path, "", setting()); err != nil {
		t.Fatalf("Issue: %v", err)
	}
	cfg, err := svc.Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m, err := machine.New(cfg)
	if err != nil {
		t.Fatalf("machine.New: %v", err)
	}
	out, err := m.EncodeText("ENIGMAMACHINE")
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	if out != "LMRJTRHJZYZCY" {
		t.Fatalf("got %s, want LMRJTRHJZYZCY", out)
	}
}

func TestGenerate(t *testing.T) {
	for i := 0; i < 20; i++ {
		cfg, err := keysheet.Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(cfg.Rotors) != 3 || len(cfg.PlugLeads) != 10 {
			t.Fatalf("unexpected shape: %s", cfg)
		}
		seen := map[domain.RotorName]bool{}
		for _, r := range cfg.Rotors {
			if seen[r.Name] {
				t.Fatalf("rotor %s used twice: %s", r.Name, cfg)
			}
			seen[r.Name] = true
		}
		if _, err := machine.New(cfg); err != nil {
			t.Fatalf("generated setting does not build: %v (%s)", err, cfg)
		}
	}
}
