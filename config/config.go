// Package config loads run settings from an optional YAML file, a .env
// file and BRACKETSIM_* environment variables, in increasing priority,
// and converts them into the Options of each analysis package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/geo"
	"github.com/quarterback/oregontennis/peer"
	"github.com/quarterback/oregontennis/survival"
	"github.com/quarterback/oregontennis/travel"
	"github.com/quarterback/oregontennis/turnaround"
	"github.com/quarterback/oregontennis/upset"
)

// EnvPrefix prefixes every environment override, e.g. BRACKETSIM_WORKERS.
const EnvPrefix = "BRACKETSIM"

// ErrInvalid indicates a setting outside its domain.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every recognised setting.
type Config struct {
	HostBand    []int  `mapstructure:"host_band" yaml:"host_band,omitempty"`
	VisitorBand []int  `mapstructure:"visitor_band" yaml:"visitor_band,omitempty"`
	Baseline    string `mapstructure:"baseline" yaml:"baseline"`
	Workers     int    `mapstructure:"workers" yaml:"workers"`

	PeerThreshold float64 `mapstructure:"peer_group_threshold" yaml:"peer_group_threshold"`
	PeerBand      []int   `mapstructure:"peer_band" yaml:"peer_band"`
	PeerRound     string  `mapstructure:"peer_round" yaml:"peer_round"`

	SurvivalBasis string   `mapstructure:"survival_basis" yaml:"survival_basis"`
	LowSeedBand   []int    `mapstructure:"low_seed_band" yaml:"low_seed_band"`
	UpsetRounds   []string `mapstructure:"upset_rounds" yaml:"upset_rounds"`

	EarthRadiusMiles float64 `mapstructure:"earth_radius_miles" yaml:"earth_radius_miles"`
	LongHaulMiles    float64 `mapstructure:"long_haul_miles" yaml:"long_haul_miles"`
	WorstCases       int     `mapstructure:"worst_cases" yaml:"worst_cases"`
	TierGreenMiles   float64 `mapstructure:"tier_green_miles" yaml:"tier_green_miles"`
	TierYellowMiles  float64 `mapstructure:"tier_yellow_miles" yaml:"tier_yellow_miles"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// setDefaults registers every key, so environment variables bind even
// without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("host_band", []int{})
	v.SetDefault("visitor_band", []int{})
	v.SetDefault("baseline", "recorded")
	v.SetDefault("workers", 0)
	v.SetDefault("peer_group_threshold", peer.DefaultThreshold)
	v.SetDefault("peer_band", peer.Band(9, 16))
	v.SetDefault("peer_round", bracket.Quarterfinals.String())
	v.SetDefault("survival_basis", survival.Conditional.String())
	v.SetDefault("low_seed_band", peer.Band(9, 16))
	v.SetDefault("upset_rounds", roundNames(upset.DefaultRounds()))
	v.SetDefault("earth_radius_miles", geo.EarthRadiusMiles)
	v.SetDefault("long_haul_miles", 95.0)
	v.SetDefault("worst_cases", 15)
	v.SetDefault("tier_green_miles", geo.DefaultTierOptions().GreenMaxMiles)
	v.SetDefault("tier_yellow_miles", geo.DefaultTierOptions().YellowMaxMiles)
	v.SetDefault("log_level", "info")
}

func roundNames(rs []bracket.Round) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}

	return out
}

// Default returns the built-in settings.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(err)
	}

	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads settings. path names a YAML file; when empty, bracketsim.yaml
// is looked up in "." and "./config" and may be absent. A .env file in the
// working directory is loaded first when present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: .env: %w", err)
	}

	v := newViper()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("bracketsim")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Validate checks every setting that a converter would otherwise reject
// later.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.TravelOptions(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SurvivalOptions(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.PeerRoundValue(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.UpsetRoundValues(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.PeerThreshold < 0 {
		errs = append(errs, fmt.Errorf("%w: peer_group_threshold %g", ErrInvalid, c.PeerThreshold))
	}
	if c.EarthRadiusMiles <= 0 {
		errs = append(errs, fmt.Errorf("%w: earth_radius_miles %g", ErrInvalid, c.EarthRadiusMiles))
	}
	if c.TierGreenMiles > c.TierYellowMiles {
		errs = append(errs, fmt.Errorf("%w: tier_green_miles %g exceeds tier_yellow_miles %g",
			ErrInvalid, c.TierGreenMiles, c.TierYellowMiles))
	}

	return errors.Join(errs...)
}

// Geo returns the distance options.
func (c Config) Geo() geo.Options {
	return geo.Options{EarthRadiusMiles: c.EarthRadiusMiles}
}

// TravelOptions converts the travel settings.
func (c Config) TravelOptions() (travel.Options, error) {
	opts := travel.DefaultOptions()
	if len(c.HostBand) > 0 {
		opts.HostBand = c.HostBand
	}
	if len(c.VisitorBand) > 0 {
		opts.VisitorBand = c.VisitorBand
	}
	opts.Geo = c.Geo()
	opts.Workers = c.Workers
	switch strings.ToLower(c.Baseline) {
	case "", "recorded":
		opts.Baseline = travel.Recorded
	case "strict":
		opts.Baseline = travel.Strict
	default:
		return opts, fmt.Errorf("%w: baseline %q", ErrInvalid, c.Baseline)
	}

	return opts, nil
}

// PeerOptions converts the peer-group threshold.
func (c Config) PeerOptions() peer.Options {
	return peer.Options{Threshold: c.PeerThreshold}
}

// PeerRoundValue parses peer_round.
func (c Config) PeerRoundValue() (bracket.Round, error) {
	r, err := bracket.ParseRound(c.PeerRound)
	if err != nil {
		return 0, fmt.Errorf("%w: peer_round: %w", ErrInvalid, err)
	}

	return r, nil
}

// SurvivalOptions converts survival_basis ("conditional" or "from-entry").
func (c Config) SurvivalOptions() (survival.Options, error) {
	switch strings.ReplaceAll(strings.ToLower(c.SurvivalBasis), "_", "-") {
	case "", survival.Conditional.String():
		return survival.Options{Basis: survival.Conditional}, nil
	case survival.FromEntry.String():
		return survival.Options{Basis: survival.FromEntry}, nil
	}

	return survival.Options{}, fmt.Errorf("%w: survival_basis %q", ErrInvalid, c.SurvivalBasis)
}

// UpsetRoundValues parses upset_rounds.
func (c Config) UpsetRoundValues() ([]bracket.Round, error) {
	out := make([]bracket.Round, 0, len(c.UpsetRounds))
	for _, s := range c.UpsetRounds {
		r, err := bracket.ParseRound(s)
		if err != nil {
			return nil, fmt.Errorf("%w: upset_rounds: %w", ErrInvalid, err)
		}
		out = append(out, r)
	}

	return out, nil
}

// TurnaroundOptions converts the long-haul settings.
func (c Config) TurnaroundOptions() turnaround.Options {
	opts := turnaround.DefaultOptions()
	opts.LongHaulMiles = c.LongHaulMiles
	opts.WorstCases = c.WorstCases
	opts.Geo = c.Geo()
	opts.Tiers = geo.TierOptions{GreenMaxMiles: c.TierGreenMiles, YellowMaxMiles: c.TierYellowMiles}

	return opts
}

// Level parses log_level.
func (c Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}

	return lvl, nil
}
