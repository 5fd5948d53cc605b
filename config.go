package superx

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigBin is the default solver config file
//
//go:embed config.yaml
var DefaultConfigBin []byte

// DefaultConfig is applied by the cli before any user config
var DefaultConfig Config

func init() {
	if err := yaml.Unmarshal(DefaultConfigBin, &DefaultConfig); err != nil {
		panic(err)
	}
}

// Config is the yaml representation of solver Options.
// Unset fields leave the corresponding option untouched.
type Config struct {
	Algorithm             string `yaml:"algorithm,omitempty"`
	LookaheadDepth        *int   `yaml:"lookahead-depth,omitempty"`
	ExactThreshold        *int   `yaml:"exact-threshold,omitempty"`
	ClusterSize           *int   `yaml:"cluster-size,omitempty"`
	ClusterLookaheadDepth *int   `yaml:"cluster-lookahead-depth,omitempty"`
	MergeLookaheadDepth   *int   `yaml:"merge-lookahead-depth,omitempty"`
	MaxLevels             *int   `yaml:"max-levels,omitempty"`
	Duplicates            string `yaml:"duplicates,omitempty"`
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample writes DefaultOptions as a yaml config to filePath
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(ConfigFromOptions(DefaultOptions()))
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// ConfigFromOptions returns a config with every field of opts set
func ConfigFromOptions(opts *Options) *Config {
	intp := func(v int) *int { return &v }
	return &Config{
		Algorithm:             opts.Algorithm.String(),
		LookaheadDepth:        intp(opts.LookaheadDepth),
		ExactThreshold:        intp(opts.ExactThreshold),
		ClusterSize:           intp(opts.ClusterSize),
		ClusterLookaheadDepth: intp(opts.ClusterLookaheadDepth),
		MergeLookaheadDepth:   intp(opts.MergeLookaheadDepth),
		MaxLevels:             intp(opts.MaxLevels),
		Duplicates:            opts.DuplicatePolicy.String(),
	}
}

// Apply copies every set field of c onto opts
func (c *Config) Apply(opts *Options) error {
	if c.Algorithm != "" {
		algorithm, err := ParseAlgorithm(c.Algorithm)
		if err != nil {
			return err
		}
		opts.Algorithm = algorithm
	}
	if c.Duplicates != "" {
		policy, err := ParseDuplicatePolicy(c.Duplicates)
		if err != nil {
			return err
		}
		opts.DuplicatePolicy = policy
	}
	setInt(&opts.LookaheadDepth, c.LookaheadDepth)
	setInt(&opts.ExactThreshold, c.ExactThreshold)
	setInt(&opts.ClusterSize, c.ClusterSize)
	setInt(&opts.ClusterLookaheadDepth, c.ClusterLookaheadDepth)
	setInt(&opts.MergeLookaheadDepth, c.MergeLookaheadDepth)
	setInt(&opts.MaxLevels, c.MaxLevels)
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
