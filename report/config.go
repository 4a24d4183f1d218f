package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/tc16sim/emu"
)

// Config controls which sections the renderer prints.
type Config struct {
	// ShowPipeline enables the per-cycle pipeline occupancy table.
	// Default: true.
	ShowPipeline bool `json:"show_pipeline"`

	// ShowRegisters enables the final register file dump.
	// Default: true.
	ShowRegisters bool `json:"show_registers"`

	// ShowInstructionMemory enables the final instruction memory dump.
	// Only nonzero words are printed. Default: true.
	ShowInstructionMemory bool `json:"show_instruction_memory"`

	// ShowDataMemory enables the final data memory dump.
	// Only nonzero bytes are printed. Default: true.
	ShowDataMemory bool `json:"show_data_memory"`

	// ShowStats enables the statistics summary. Default: true.
	ShowStats bool `json:"show_stats"`

	// RegistersPerRow is the number of registers printed per dump row.
	// Default: 8.
	RegistersPerRow int `json:"registers_per_row"`
}

// DefaultConfig returns a Config with all sections enabled.
func DefaultConfig() *Config {
	return &Config{
		ShowPipeline:          true,
		ShowRegisters:         true,
		ShowInstructionMemory: true,
		ShowDataMemory:        true,
		ShowStats:             true,
		RegistersPerRow:       8,
	}
}

// LoadConfig loads a Config from a JSON file. Fields absent from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse report config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize report config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report config file: %w", err)
	}

	return nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.RegistersPerRow < 1 || c.RegistersPerRow > emu.NumRegs {
		return fmt.Errorf("registers_per_row must be between 1 and %d", emu.NumRegs)
	}
	return nil
}

// Clone returns a deep copy of the Config.
func (c *Config) Clone() *Config {
	return &Config{
		ShowPipeline:          c.ShowPipeline,
		ShowRegisters:         c.ShowRegisters,
		ShowInstructionMemory: c.ShowInstructionMemory,
		ShowDataMemory:        c.ShowDataMemory,
		ShowStats:             c.ShowStats,
		RegistersPerRow:       c.RegistersPerRow,
	}
}
