// Package projectconfig provides the ProjectConfig struct and loader for
// .statkit.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/statkit-dev/statkit/internal/validation"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by Load.
const FileName = ".statkit.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultTableSource = "embedded"
	DefaultDelimiter   = ";"
	DefaultMaxDF       = 30

	DefaultFormat     = "text"
	DefaultPrecision  = 2
	DefaultGlyph      = "="
	DefaultConfidence = 0.90

	DefaultSimulationSize = 30

	DefaultCacheDir = ".statkit-cache"

	DefaultWorkers = 4
)

// Environment variables that override file values.
const (
	EnvTable  = "STATKIT_TABLE"
	EnvFormat = "STATKIT_FORMAT"
)

// TableConfig selects the critical-value table.
type TableConfig struct {
	Source    string `yaml:"source,omitempty" mapstructure:"source"`
	Delimiter string `yaml:"delimiter,omitempty" mapstructure:"delimiter"`
	MaxDF     int    `yaml:"max_df,omitempty" mapstructure:"max_df"`
	Anonymous *bool  `yaml:"anonymous,omitempty" mapstructure:"anonymous"`
}

// ReportConfig holds report rendering settings.
type ReportConfig struct {
	Format     string  `yaml:"format,omitempty" mapstructure:"format"`
	Precision  int     `yaml:"precision,omitempty" mapstructure:"precision"`
	Glyph      string  `yaml:"glyph,omitempty" mapstructure:"glyph"`
	Confidence float64 `yaml:"confidence,omitempty" mapstructure:"confidence"`
}

// SimulationConfig holds settings for simulate and generate.
type SimulationConfig struct {
	Size int `yaml:"size,omitempty" mapstructure:"size"`
	// Seed is nil when runs should not be reproducible.
	Seed *int64 `yaml:"seed,omitempty" mapstructure:"seed"`
}

// CacheConfig holds cache settings.
type CacheConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty" mapstructure:"enabled"`
	Dir     string `yaml:"dir,omitempty" mapstructure:"dir"`
}

// BatchConfig controls how many samples are summarized at once.
type BatchConfig struct {
	Workers int `yaml:"workers,omitempty" mapstructure:"workers"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Debug *bool `yaml:"debug,omitempty" mapstructure:"debug"`
}

// ProjectConfig is the top-level configuration loaded from .statkit.yaml.
type ProjectConfig struct {
	Table      TableConfig      `yaml:"table,omitempty" mapstructure:"table"`
	Report     ReportConfig     `yaml:"report,omitempty" mapstructure:"report"`
	Simulation SimulationConfig `yaml:"simulation,omitempty" mapstructure:"simulation"`
	Cache      CacheConfig      `yaml:"cache,omitempty" mapstructure:"cache"`
	Batch      BatchConfig      `yaml:"batch,omitempty" mapstructure:"batch"`
	Log        LogConfig        `yaml:"log,omitempty" mapstructure:"log"`

	// Dir is the directory of the file the config was loaded from, empty
	// when only defaults apply.
	Dir string `yaml:"-" mapstructure:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Table: TableConfig{
			Source:    DefaultTableSource,
			Delimiter: DefaultDelimiter,
			MaxDF:     DefaultMaxDF,
			Anonymous: boolPtr(false),
		},
		Report: ReportConfig{
			Format:     DefaultFormat,
			Precision:  DefaultPrecision,
			Glyph:      DefaultGlyph,
			Confidence: DefaultConfidence,
		},
		Simulation: SimulationConfig{
			Size: DefaultSimulationSize,
		},
		Cache: CacheConfig{
			Enabled: boolPtr(false),
			Dir:     DefaultCacheDir,
		},
		Batch: BatchConfig{
			Workers: DefaultWorkers,
		},
		Log: LogConfig{
			Debug: boolPtr(false),
		},
	}
}

// ValidationError lists every schema violation found in a config file.
type ValidationError struct {
	Path     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s:\n  %s", e.Path, strings.Join(e.Problems, "\n  "))
}

// Load finds .statkit.yaml by walking up from startDir (max 10 levels),
// validates it against the schema, decodes it, and fills in missing fields
// with defaults. If no config file is found, returns defaults with a nil
// error. Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	path, data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	fileCfg, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	// Merge file values onto defaults.
	mergeConfig(cfg, fileCfg)
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// Parse validates and decodes the contents of a config file. path is only
// used in error messages.
func Parse(path string, data []byte) (*ProjectConfig, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if problems := validation.ValidateConfigDocument(doc); len(problems) > 0 {
		return nil, &ValidationError{Path: path, Problems: problems}
	}

	var fileCfg ProjectConfig
	if doc == nil {
		return &fileCfg, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &fileCfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &fileCfg, nil
}

// ApplyEnv overrides file values with STATKIT_* environment variables read
// through getenv.
func (c *ProjectConfig) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvTable); v != "" {
		c.Table.Source = v
	}
	if v := getenv(EnvFormat); v != "" {
		c.Report.Format = v
	}
}

// findConfigFile walks up from dir looking for .statkit.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) (string, []byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Table
	if src.Table.Source != "" {
		dst.Table.Source = src.Table.Source
	}
	if src.Table.Delimiter != "" {
		dst.Table.Delimiter = src.Table.Delimiter
	}
	if src.Table.MaxDF != 0 {
		dst.Table.MaxDF = src.Table.MaxDF
	}
	if src.Table.Anonymous != nil {
		dst.Table.Anonymous = src.Table.Anonymous
	}

	// Report
	if src.Report.Format != "" {
		dst.Report.Format = src.Report.Format
	}
	if src.Report.Precision != 0 {
		dst.Report.Precision = src.Report.Precision
	}
	if src.Report.Glyph != "" {
		dst.Report.Glyph = src.Report.Glyph
	}
	if src.Report.Confidence != 0 {
		dst.Report.Confidence = src.Report.Confidence
	}

	// Simulation
	if src.Simulation.Size != 0 {
		dst.Simulation.Size = src.Simulation.Size
	}
	if src.Simulation.Seed != nil {
		dst.Simulation.Seed = src.Simulation.Seed
	}

	// Cache
	if src.Cache.Enabled != nil {
		dst.Cache.Enabled = src.Cache.Enabled
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}

	// Batch
	if src.Batch.Workers != 0 {
		dst.Batch.Workers = src.Batch.Workers
	}

	// Log
	if src.Log.Debug != nil {
		dst.Log.Debug = src.Log.Debug
	}
}

func boolPtr(b bool) *bool {
	return &b
}
