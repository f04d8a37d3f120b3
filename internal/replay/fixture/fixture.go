// Package fixture loads a replay scenario directory: scenario.toml,
// manifest.toml, and the responses/*.json files they reference (spec
// §4.D.1, §6.2). Decoding uses BurntSushi/toml, the same library the
// retrieved corpus's specmcp server uses for its own TOML config.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Scenario is the decoded scenario.toml (spec §3.2, §6.2).
type Scenario struct {
	Meta            Meta                      `toml:"scenario"`
	Setup           Setup                     `toml:"setup"`
	ExpectedOutcome map[string]Outcome         `toml:"expected_outcomes"`
	Scoring         Scoring                   `toml:"scoring"`
}

// Meta carries the scenario's identifying metadata.
type Meta struct {
	Name           string `toml:"name"`
	Difficulty     string `toml:"difficulty"`
	TargetBackend  string `toml:"target_backend"`
}

// Setup carries the scenario's prompt text and default project.
type Setup struct {
	Prompt         string `toml:"prompt"`
	DefaultProject string `toml:"default_project"`
}

// Outcome is one expected_outcomes entry. It may be a plain boolean, a
// literal string, or a structured predicate (spec §3.2, §4.D.3) — TOML
// gives us this ambiguity for free via an untyped decode pass, resolved by
// Kind at score time.
type Outcome struct {
	Bool    *bool
	String  *string
	Struct  *StructuredOutcome
}

// StructuredOutcome is the inline-table shape of an expected outcome (spec
// §4.D.3): method_called, min_calls, max_calls, issue, field, value,
// contains are all optional; any subset may be present.
type StructuredOutcome struct {
	MethodCalled string `toml:"method_called"`
	MinCalls     *int   `toml:"min_calls"`
	MaxCalls     *int   `toml:"max_calls"`
	Issue        string `toml:"issue"`
	Field        string `toml:"field"`
	Value        string `toml:"value"`
	Contains     string `toml:"contains"`
}

// Scoring is the scenario's scoring rubric (spec §3.2, §4.D.3).
type Scoring struct {
	MinCommands     int       `toml:"min_commands"`
	OptimalCommands int       `toml:"optimal_commands"`
	MaxCommands     int       `toml:"max_commands"`
	BaseScore       float64   `toml:"base_score"`
	Penalties       Penalties `toml:"penalties"`
	Bonuses         Bonuses   `toml:"bonuses"`
}

// Penalties holds the per-category score deductions (spec §4.D.3).
type Penalties struct {
	ExtraCommand   float64 `toml:"extra_command"`
	RedundantFetch float64 `toml:"redundant_fetch"`
	CommandError   float64 `toml:"command_error"`
}

// Bonuses holds the per-category score additions (spec §4.D.3).
type Bonuses struct {
	UnderOptimal float64 `toml:"under_optimal"`
	CacheUse     float64 `toml:"cache_use"`
}

// rawScenario mirrors Scenario but with ExpectedOutcome left as
// map[string]toml.Primitive, so each entry can be re-decoded according to
// its actual shape (bool vs string vs inline table).
type rawScenario struct {
	Meta            Meta                          `toml:"scenario"`
	Setup           Setup                         `toml:"setup"`
	ExpectedOutcome map[string]toml.Primitive     `toml:"expected_outcomes"`
	Scoring         Scoring                       `toml:"scoring"`
}

// LoadScenario decodes scenario.toml at path.
func LoadScenario(path string) (*Scenario, error) {
	var raw rawScenario
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}

	outcomes := make(map[string]Outcome, len(raw.ExpectedOutcome))
	for name, prim := range raw.ExpectedOutcome {
		outcome, err := decodeOutcome(md, prim)
		if err != nil {
			return nil, fmt.Errorf("decode outcome %q in %s: %w", name, path, err)
		}
		outcomes[name] = outcome
	}

	return &Scenario{
		Meta:            raw.Meta,
		Setup:           raw.Setup,
		ExpectedOutcome: outcomes,
		Scoring:         raw.Scoring,
	}, nil
}

func decodeOutcome(md toml.MetaData, prim toml.Primitive) (Outcome, error) {
	var b bool
	if err := md.PrimitiveDecode(prim, &b); err == nil {
		return Outcome{Bool: &b}, nil
	}
	var s string
	if err := md.PrimitiveDecode(prim, &s); err == nil {
		return Outcome{String: &s}, nil
	}
	var st StructuredOutcome
	if err := md.PrimitiveDecode(prim, &st); err != nil {
		return Outcome{}, err
	}
	return Outcome{Struct: &st}, nil
}

// ResponseMapping is one [[responses]] entry of manifest.toml (spec §3.2,
// §6.2).
type ResponseMapping struct {
	Method   string            `toml:"method"`
	Args     map[string]string `toml:"args"`
	File     string            `toml:"file"`
	Sequence []string          `toml:"sequence"`
	Status   int               `toml:"status"`
	When     *WhenClause       `toml:"when"`
	DelayMs  int               `toml:"delay_ms"`
}

// WhenClause further restricts a mapping by inspecting the call's body
// (spec §4.D.2 step 4).
type WhenClause struct {
	BodyContains string         `toml:"body_contains"`
	BodyJSON     map[string]any `toml:"body_json"`
}

// Manifest is the decoded manifest.toml: an ordered list of response
// mappings, walked in order by the harness (spec §4.D.2 step 1).
type Manifest struct {
	Responses []ResponseMapping `toml:"responses"`
}

// LoadManifest decodes manifest.toml at path, defaulting Status to 200 per
// entry when omitted (spec §6.2).
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	for i := range m.Responses {
		if m.Responses[i].Status == 0 {
			m.Responses[i].Status = 200
		}
	}
	return &m, nil
}

// Directory is a loaded fixture directory: the parsed scenario.toml, the
// parsed manifest.toml, and the directory the responses/*.json files live
// under (spec §4.D.1).
type Directory struct {
	Scenario *Scenario
	Manifest *Manifest
	Dir      string
}

// Load reads scenario.toml and manifest.toml from dir and returns the
// combined fixture directory handle.
func Load(dir string) (*Directory, error) {
	scn, err := LoadScenario(filepath.Join(dir, "scenario.toml"))
	if err != nil {
		return nil, err
	}
	man, err := LoadManifest(filepath.Join(dir, "manifest.toml"))
	if err != nil {
		return nil, err
	}
	return &Directory{Scenario: scn, Manifest: man, Dir: dir}, nil
}

// ResponseBody reads a responses/*.json file named by a mapping's File or
// Sequence entry.
func (d *Directory) ResponseBody(name string) ([]byte, error) {
	p := filepath.Join(d.Dir, "responses", name)
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read response file %s: %w", p, err)
	}
	return data, nil
}

// CallLogPath is where the harness writes call_log.jsonl for this
// scenario, cleared at the start of each run (spec §4.D.1).
func (d *Directory) CallLogPath() string {
	return filepath.Join(d.Dir, "call_log.jsonl")
}
