// Package config loads the settings habitica-actions runs with. A Config is
// built once at startup and handed to constructors by value.
package config

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/habitica-actions/internal/errors"
)

const (
	// DefaultBaseURL is the public Habitica v3 API
	DefaultBaseURL = "https://habitica.com/api/v3"

	// DefaultClientName identifies this tool in the x-client header
	DefaultClientName = "habitica-actions"

	DefaultHTTPTimeout = 30 * time.Second

	DefaultArmoireGoldThreshold = 500
	DefaultHealthThreshold      = 25
	DefaultSpellManaThreshold   = 150
)

// Spell identifiers understood by /user/class/cast
const (
	SpellEarthquake   = "earth"
	SpellToolsOfTrade = "toolsOfTrade"
)

// Action names accepted by the runner. A configured spell can also be run as
// "cast:<spell id>".
const (
	ActionArmoire      = "armoire"
	ActionEarthquake   = "earthquake"
	ActionToolsOfTrade = "tools-of-trade"
	ActionHatch        = "hatch"
	ActionFeed         = "feed"
	ActionJoinQuest    = "join-quest"
	ActionHealthPotion = "health-potion"

	CastActionPrefix = "cast:"
)

// KnownActions lists the fixed action names in the order `run` uses by default
var KnownActions = []string{
	ActionJoinQuest,
	ActionHealthPotion,
	ActionArmoire,
	ActionEarthquake,
	ActionToolsOfTrade,
	ActionHatch,
	ActionFeed,
}

var actionSpells = map[string]string{
	ActionEarthquake:   SpellEarthquake,
	ActionToolsOfTrade: SpellToolsOfTrade,
}

// User holds the account credentials sent with every request
type User struct {
	ID  string `yaml:"id"`
	Key string `yaml:"key"`
}

// Thresholds gate the threshold actions
type Thresholds struct {
	// ArmoireGold: buy only when gold is strictly above this
	ArmoireGold float64 `yaml:"armoire_gold"`
	// Health: buy a potion only when hp is at or below this
	Health float64 `yaml:"health"`
}

// Spell is a castable skill and the mana that must be exceeded to cast it
type Spell struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	ManaThreshold float64 `yaml:"mana_threshold"`
}

// Config is the full runtime configuration
type Config struct {
	User        User          `yaml:"user"`
	ClientName  string        `yaml:"client_name"`
	BaseURL     string        `yaml:"base_url"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	Thresholds  Thresholds    `yaml:"thresholds"`
	Spells      []Spell       `yaml:"spells"`
	Actions     []string      `yaml:"actions"`
}

// envOverrides holds raw environment values. Unset variables leave the
// file or default value alone.
type envOverrides struct {
	UserID                    string        `env:"HABITICA_USER_ID"`
	APIKey                    string        `env:"HABITICA_API_KEY"`
	ClientName                string        `env:"HABITICA_CLIENT_NAME"`
	BaseURL                   string        `env:"HABITICA_BASE_URL"`
	HTTPTimeout               time.Duration `env:"HABITICA_HTTP_TIMEOUT"`
	ArmoireGoldThreshold      *float64      `env:"HABITICA_ARMOIRE_GOLD_THRESHOLD"`
	HealthThreshold           *float64      `env:"HABITICA_HEALTH_THRESHOLD"`
	EarthquakeManaThreshold   *float64      `env:"HABITICA_EARTHQUAKE_MANA_THRESHOLD"`
	ToolsOfTradeManaThreshold *float64      `env:"HABITICA_TOOLS_OF_TRADE_MANA_THRESHOLD"`
	Actions                   []string      `env:"HABITICA_ACTIONS" envSeparator:","`
}

// Default returns the configuration used when nothing is overridden.
// Credentials are left empty and must be supplied.
func Default() Config {
	return Config{
		ClientName:  DefaultClientName,
		BaseURL:     DefaultBaseURL,
		HTTPTimeout: DefaultHTTPTimeout,
		Thresholds: Thresholds{
			ArmoireGold: DefaultArmoireGoldThreshold,
			Health:      DefaultHealthThreshold,
		},
		Spells: []Spell{
			{ID: SpellEarthquake, Name: "earthquake", ManaThreshold: DefaultSpellManaThreshold},
			{ID: SpellToolsOfTrade, Name: "tools of the trade", ManaThreshold: DefaultSpellManaThreshold},
		},
		Actions: append([]string(nil), KnownActions...),
	}
}

// Load builds a Config from defaults, the optional YAML file at path and the
// process environment, in that order, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return Config{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	cfg.apply(overrides)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// an empty file keeps the defaults
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file")
	}
	return nil
}

func (c *Config) apply(o envOverrides) {
	if o.UserID != "" {
		c.User.ID = o.UserID
	}
	if o.APIKey != "" {
		c.User.Key = o.APIKey
	}
	if o.ClientName != "" {
		c.ClientName = o.ClientName
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.HTTPTimeout != 0 {
		c.HTTPTimeout = o.HTTPTimeout
	}
	if o.ArmoireGoldThreshold != nil {
		c.Thresholds.ArmoireGold = *o.ArmoireGoldThreshold
	}
	if o.HealthThreshold != nil {
		c.Thresholds.Health = *o.HealthThreshold
	}
	if o.EarthquakeManaThreshold != nil {
		c.setSpellThreshold(SpellEarthquake, *o.EarthquakeManaThreshold)
	}
	if o.ToolsOfTradeManaThreshold != nil {
		c.setSpellThreshold(SpellToolsOfTrade, *o.ToolsOfTradeManaThreshold)
	}
	if len(o.Actions) > 0 {
		c.Actions = o.Actions
	}
}

func (c *Config) setSpellThreshold(id string, threshold float64) {
	// Spells may have been replaced by the file, so copy before writing
	spells := append([]Spell(nil), c.Spells...)
	for i := range spells {
		if spells[i].ID == id {
			spells[i].ManaThreshold = threshold
			c.Spells = spells
			return
		}
	}
	c.Spells = append(spells, Spell{ID: id, Name: id, ManaThreshold: threshold})
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("user.id", c.User.ID, vb)
	errors.ValidateRequired("user.key", c.User.Key, vb)
	errors.ValidateRequired("client_name", c.ClientName, vb)

	if c.BaseURL == "" {
		vb.RequiredField("base_url")
	} else if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		vb.InvalidField("base_url", "must be an absolute URL")
	}

	if c.HTTPTimeout <= 0 {
		vb.InvalidField("http_timeout", "must be positive")
	}

	errors.ValidateNonNegative("thresholds.armoire_gold", c.Thresholds.ArmoireGold, vb)
	errors.ValidateNonNegative("thresholds.health", c.Thresholds.Health, vb)

	seen := make(map[string]bool, len(c.Spells))
	for i, s := range c.Spells {
		field := fmt.Sprintf("spells[%d]", i)
		if s.ID == "" {
			vb.RequiredField(field + ".id")
			continue
		}
		if seen[s.ID] {
			vb.Fieldf(field+".id", "duplicate spell %q", s.ID)
		}
		seen[s.ID] = true
		errors.ValidateNonNegative(field+".mana_threshold", s.ManaThreshold, vb)
	}

	for i, a := range c.Actions {
		field := fmt.Sprintf("actions[%d]", i)
		if id, ok := strings.CutPrefix(a, CastActionPrefix); ok {
			if !seen[id] {
				vb.Fieldf(field, "spell %q is not configured", id)
			}
			continue
		}
		errors.ValidateEnum(field, a, KnownActions, vb)
		if id := actionSpells[a]; id != "" && !seen[id] {
			vb.Fieldf(field, "spell %q is not configured", id)
		}
	}

	return vb.Build()
}

// Spell returns the configured spell with the given id
func (c *Config) Spell(id string) (Spell, bool) {
	for _, s := range c.Spells {
		if s.ID == id {
			return s, true
		}
	}
	return Spell{}, false
}

// ClientHeader is the x-client value: the user id followed by the app name
func (c *Config) ClientHeader() string {
	return c.User.ID + "-" + c.ClientName
}
