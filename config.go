package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/gocarina/gocsv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"solution_calc/solution"
)

// SoluteConfig is one component of a solution description file.
type SoluteConfig struct {
	Formula    string         `yaml:"formula"`
	MolarMass  float64        `yaml:"molar_mass"`
	Amount     float64        `yaml:"amount"`
	Unit       string         `yaml:"unit"`
	Parameters map[string]any `yaml:"parameters"`
}

// SolutionConfig is the root of a solution description file.
type SolutionConfig struct {
	Temperature *float64       `yaml:"temperature"` // degree C
	Pressure    *float64       `yaml:"pressure"`    // Pa
	Density     *float64       `yaml:"density"`     // kg/m3
	Solvent     *SoluteConfig  `yaml:"solvent"`
	Solutes     []SoluteConfig `yaml:"solutes"`
	SolutesCSV  string         `yaml:"solutes_csv"`
}

// soluteRow is one line of a CSV solute table.
type soluteRow struct {
	Formula   string  `csv:"formula"`
	MolarMass float64 `csv:"molar_mass"`
	Amount    float64 `csv:"amount"`
	Unit      string  `csv:"unit"`
}

// tcpcConfig mirrors solution.TCPCParams with the keys used in parameter bags.
type tcpcConfig struct {
	S         float64 `mapstructure:"S"`
	B         float64 `mapstructure:"b"`
	N         float64 `mapstructure:"n"`
	Z         int     `mapstructure:"z"`
	CounterZ  int     `mapstructure:"counter_z"`
	Nu        int     `mapstructure:"nu"`
	CounterNu int     `mapstructure:"counter_nu"`
}

var tcpcKeys = []string{"S", "b", "n", "z", "counter_z", "nu", "counter_nu"}

// LoadSolutionConfig reads a YAML solution description and appends the rows
// of its CSV solute table, if any, after the inline solutes.
func LoadSolutionConfig(path string) (*SolutionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read solution file: %w", err)
	}

	var cfg SolutionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if cfg.SolutesCSV != "" {
		csvPath := cfg.SolutesCSV
		if !filepath.IsAbs(csvPath) {
			csvPath = filepath.Join(filepath.Dir(path), csvPath)
		}
		rows, err := readSoluteTable(csvPath)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			cfg.Solutes = append(cfg.Solutes, SoluteConfig{
				Formula:   r.Formula,
				MolarMass: r.MolarMass,
				Amount:    r.Amount,
				Unit:      r.Unit,
			})
		}
	}
	return &cfg, nil
}

func readSoluteTable(path string) ([]*soluteRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open solute table: %w", err)
	}
	defer file.Close()

	var rows []*soluteRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse solute table %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

// Build creates the solution described by cfg.
func (cfg *SolutionConfig) Build(opts ...solution.Option) (*solution.Solution, error) {
	solvent := solution.DefaultSolvent()
	if cfg.Solvent != nil {
		d, err := cfg.Solvent.descriptor()
		if err != nil {
			return nil, err
		}
		solvent = d
	}

	solutes := make([]solution.Descriptor, 0, len(cfg.Solutes))
	for _, sc := range cfg.Solutes {
		d, err := sc.descriptor()
		if err != nil {
			return nil, err
		}
		solutes = append(solutes, d)
	}

	var all []solution.Option
	if cfg.Temperature != nil {
		all = append(all, solution.WithTemperature(*cfg.Temperature))
	}
	if cfg.Pressure != nil {
		all = append(all, solution.WithPressure(*cfg.Pressure))
	}
	if cfg.Density != nil {
		all = append(all, solution.WithDensity(*cfg.Density))
	}
	all = append(all, opts...)

	return solution.New(solvent, solutes, all...)
}

func (sc SoluteConfig) descriptor() (solution.Descriptor, error) {
	d := solution.Descriptor{
		Formula:   sc.Formula,
		MolarMass: sc.MolarMass,
		Amount:    sc.Amount,
		Unit:      sc.Unit,
	}
	if len(sc.Parameters) == 0 {
		return d, nil
	}

	tcpc, named, err := decodeParameters(sc.Parameters)
	if err != nil {
		return d, fmt.Errorf("solute %s: %w", sc.Formula, err)
	}
	d.TCPC = tcpc
	d.Parameters = named
	return d, nil
}

// decodeParameters splits a parameter bag into TCPC parameters, decoded with
// mapstructure, and named numeric parameters for every other key.
func decodeParameters(bag map[string]any) (*solution.TCPCParams, map[string]float64, error) {
	tcpcBag := make(map[string]any)
	named := make(map[string]float64)
	for k, v := range bag {
		if slices.Contains(tcpcKeys, k) {
			tcpcBag[k] = v
			continue
		}
		f, err := toFloat(v)
		if err != nil {
			return nil, nil, fmt.Errorf("parameter %s: %w", k, err)
		}
		named[k] = f
	}
	if len(named) == 0 {
		named = nil
	}
	if len(tcpcBag) == 0 {
		return nil, named, nil
	}

	for _, required := range []string{"S", "b", "n"} {
		if _, ok := tcpcBag[required]; !ok {
			return nil, nil, fmt.Errorf("%w: %s not given", solution.ErrMissingCorrelationParameters, required)
		}
	}

	cfg := tcpcConfig{Z: 1, CounterZ: -1, Nu: 1, CounterNu: 1}
	if err := mapstructure.Decode(tcpcBag, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to decode TCPC parameters: %w", err)
	}
	params := solution.TCPCParams(cfg)
	return &params, named, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, errors.New("not a number")
	}
}
