// Config loading for the shipquote CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/shipquote/internal/paths"
	"github.com/mesh-intelligence/shipquote/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyMaxWeight   = "max_weight"
	cfgKeyMaxSize     = "max_size"
	cfgKeyCostDivisor = "cost_divisor"
	cfgKeyCurrency    = "currency"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# shipquote configuration

# Weight limit for Package Express eligibility.
max_weight: 50

# Aggregate size limit (width + height + length).
max_size: 50

# Divisor in the cost formula (width * height * length * weight) / cost_divisor.
cost_divisor: 100

# Currency symbol used in quote output.
currency: "$"
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyMaxWeight, float64(types.DefaultMaxWeight))
	v.SetDefault(cfgKeyMaxSize, float64(types.DefaultMaxSize))
	v.SetDefault(cfgKeyCostDivisor, types.DefaultCostDivisor)
	v.SetDefault(cfgKeyCurrency, types.DefaultCurrency)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error; defaults apply.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// loadPolicy resolves the config directory, loads config.yaml, and builds
// a validated rating policy from it.
func loadPolicy() (types.Policy, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Policy{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return types.Policy{}, err
	}

	policy := types.Policy{
		MaxWeight:   types.Measurement(v.GetFloat64(cfgKeyMaxWeight)),
		MaxSize:     types.Measurement(v.GetFloat64(cfgKeyMaxSize)),
		CostDivisor: v.GetFloat64(cfgKeyCostDivisor),
		Currency:    v.GetString(cfgKeyCurrency),
	}
	if err := policy.Validate(); err != nil {
		return types.Policy{}, fmt.Errorf("invalid config: %w", err)
	}
	return policy, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
