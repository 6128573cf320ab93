// Package config loads range tuning from a file, the environment and
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/viper"

	"github.com/Garsondee/Gunplay/internal/game"
)

// EnvPrefix is prepended to environment overrides, e.g.
// GUNPLAY_WEAPON_PELLETSPERSHOT=12.
const EnvPrefix = "GUNPLAY"

// WeaponConfig is the file form of game.WeaponConfig plus the presentation
// tuning that lives beside it.
type WeaponConfig struct {
	Name             string  `json:"name" mapstructure:"name"`
	MagazineCapacity int     `json:"magazineCapacity" mapstructure:"magazineCapacity"`
	ReserveAmmo      int     `json:"reserveAmmo" mapstructure:"reserveAmmo"`
	InfiniteReserve  bool    `json:"infiniteReserve" mapstructure:"infiniteReserve"`
	FireInterval     float64 `json:"fireInterval" mapstructure:"fireInterval"`
	ReloadTime       float64 `json:"reloadTime" mapstructure:"reloadTime"`
	PelletsPerShot   int     `json:"pelletsPerShot" mapstructure:"pelletsPerShot"`
	SpreadAngle      float64 `json:"spreadAngle" mapstructure:"spreadAngle"`
	PelletDamage     float64 `json:"pelletDamage" mapstructure:"pelletDamage"`
	ImpactForce      float64 `json:"impactForce" mapstructure:"impactForce"`
	MaxRange         float64 `json:"maxRange" mapstructure:"maxRange"`
	RecoilKick       float64 `json:"recoilKick" mapstructure:"recoilKick"`
	RecoverRate      float64 `json:"recoverRate" mapstructure:"recoverRate"`
	EffectLifetime   float64 `json:"effectLifetime" mapstructure:"effectLifetime"`
	FireSound        string  `json:"fireSound" mapstructure:"fireSound"`
	ReloadSound      string  `json:"reloadSound" mapstructure:"reloadSound"`
	EmptySound       string  `json:"emptySound" mapstructure:"emptySound"`
	ImpactEffect     string  `json:"impactEffect" mapstructure:"impactEffect"`
}

// Vec3Config is a position in config files.
type Vec3Config struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
	Z float64 `json:"z" mapstructure:"z"`
}

// Vec returns v as a vector.
func (v Vec3Config) Vec() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

// PickupConfig holds actor and pickup trigger tuning.
type PickupConfig struct {
	ScanRadius    float64    `json:"scanRadius" mapstructure:"scanRadius"`
	TriggerRadius float64    `json:"triggerRadius" mapstructure:"triggerRadius"`
	MountOffset   Vec3Config `json:"mountOffset" mapstructure:"mountOffset"`
}

// FacingConfig holds billboard tuning.
type FacingConfig struct {
	TurnRate float64 `json:"turnRate" mapstructure:"turnRate"`
}

// SandboxConfig holds window and audio settings for the interactive range.
type SandboxConfig struct {
	Width        int  `json:"width" mapstructure:"width"`
	Height       int  `json:"height" mapstructure:"height"`
	TPS          int  `json:"tps" mapstructure:"tps"`
	AudioEnabled bool `json:"audioEnabled" mapstructure:"audioEnabled"`
	SampleRate   int  `json:"sampleRate" mapstructure:"sampleRate"`
}

// ReportConfig holds headless report settings.
type ReportConfig struct {
	Runs     int     `json:"runs" mapstructure:"runs"`
	Seed     int64   `json:"seed" mapstructure:"seed"`
	Duration float64 `json:"duration" mapstructure:"duration"`
	Workers  int     `json:"workers" mapstructure:"workers"`
}

// Config is the full tuning tree.
type Config struct {
	LogLevel string        `json:"logLevel" mapstructure:"logLevel"`
	Weapon   WeaponConfig  `json:"weapon" mapstructure:"weapon"`
	Pickup   PickupConfig  `json:"pickup" mapstructure:"pickup"`
	Facing   FacingConfig  `json:"facing" mapstructure:"facing"`
	Sandbox  SandboxConfig `json:"sandbox" mapstructure:"sandbox"`
	Report   ReportConfig  `json:"report" mapstructure:"report"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	w := game.DefaultWeaponConfig()
	v.SetDefault("weapon.name", w.Name)
	v.SetDefault("weapon.magazineCapacity", w.MagazineCapacity)
	v.SetDefault("weapon.reserveAmmo", w.ReserveAmmo)
	v.SetDefault("weapon.infiniteReserve", w.InfiniteReserve)
	v.SetDefault("weapon.fireInterval", w.FireInterval)
	v.SetDefault("weapon.reloadTime", w.ReloadTime)
	v.SetDefault("weapon.pelletsPerShot", w.PelletsPerShot)
	v.SetDefault("weapon.spreadAngle", w.SpreadAngle)
	v.SetDefault("weapon.pelletDamage", w.PelletDamage)
	v.SetDefault("weapon.impactForce", w.ImpactForce)
	v.SetDefault("weapon.maxRange", w.MaxRange)
	v.SetDefault("weapon.recoilKick", w.RecoilKick)
	v.SetDefault("weapon.recoverRate", 20.0)
	v.SetDefault("weapon.effectLifetime", 4.0)
	v.SetDefault("weapon.fireSound", string(w.FireSound))
	v.SetDefault("weapon.reloadSound", string(w.ReloadSound))
	v.SetDefault("weapon.emptySound", string(w.EmptySound))
	v.SetDefault("weapon.impactEffect", string(w.ImpactEffect))

	p := game.DefaultPickupConfig()
	v.SetDefault("pickup.scanRadius", p.ScanRadius)
	v.SetDefault("pickup.triggerRadius", 2.0)
	v.SetDefault("pickup.mountOffset.x", p.MountOffset.Position.X())
	v.SetDefault("pickup.mountOffset.y", p.MountOffset.Position.Y())
	v.SetDefault("pickup.mountOffset.z", p.MountOffset.Position.Z())

	v.SetDefault("facing.turnRate", 5.0)

	v.SetDefault("sandbox.width", 960)
	v.SetDefault("sandbox.height", 640)
	v.SetDefault("sandbox.tps", 60)
	v.SetDefault("sandbox.audioEnabled", true)
	v.SetDefault("sandbox.sampleRate", 44100)

	v.SetDefault("report.runs", 8)
	v.SetDefault("report.seed", 1)
	v.SetDefault("report.duration", 12.0)
	v.SetDefault("report.workers", 4)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Default returns the built-in tuning with environment overrides applied.
func Default() (Config, error) {
	return decode(newViper())
}

// Load reads path over the defaults. The format follows the extension
// (json, toml, yaml). An empty path means defaults only.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects tuning the game core would misbehave on.
func (c Config) Validate() error {
	var errs []error
	w := c.Weapon
	if w.MagazineCapacity < 1 {
		errs = append(errs, fmt.Errorf("weapon.magazineCapacity must be at least 1, got %d", w.MagazineCapacity))
	}
	if w.ReserveAmmo < 0 {
		errs = append(errs, fmt.Errorf("weapon.reserveAmmo must not be negative, got %d", w.ReserveAmmo))
	}
	if w.PelletsPerShot < 1 {
		errs = append(errs, fmt.Errorf("weapon.pelletsPerShot must be at least 1, got %d", w.PelletsPerShot))
	}
	if w.FireInterval < 0 || w.ReloadTime < 0 {
		errs = append(errs, fmt.Errorf("weapon.fireInterval and weapon.reloadTime must not be negative"))
	}
	if w.SpreadAngle < 0 || w.SpreadAngle >= 180 {
		errs = append(errs, fmt.Errorf("weapon.spreadAngle must be in [0,180), got %g", w.SpreadAngle))
	}
	if w.MaxRange <= 0 {
		errs = append(errs, fmt.Errorf("weapon.maxRange must be positive, got %g", w.MaxRange))
	}
	if w.RecoverRate < 0 {
		errs = append(errs, fmt.Errorf("weapon.recoverRate must not be negative, got %g", w.RecoverRate))
	}
	if c.Pickup.ScanRadius <= 0 || c.Pickup.TriggerRadius <= 0 {
		errs = append(errs, fmt.Errorf("pickup radii must be positive"))
	}
	if c.Report.Runs < 0 || c.Report.Workers < 0 {
		errs = append(errs, fmt.Errorf("report.runs and report.workers must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// GameWeapon converts the weapon section for game.NewFireControl.
func (c Config) GameWeapon() game.WeaponConfig {
	w := c.Weapon
	base := game.DefaultWeaponConfig()
	return game.WeaponConfig{
		Name:             w.Name,
		MagazineCapacity: w.MagazineCapacity,
		ReserveAmmo:      w.ReserveAmmo,
		InfiniteReserve:  w.InfiniteReserve,
		FireInterval:     w.FireInterval,
		ReloadTime:       w.ReloadTime,
		PelletsPerShot:   w.PelletsPerShot,
		SpreadAngle:      w.SpreadAngle,
		PelletDamage:     w.PelletDamage,
		ImpactForce:      w.ImpactForce,
		MaxRange:         w.MaxRange,
		RecoilKick:       w.RecoilKick,
		FireSound:        game.Sound(w.FireSound),
		ReloadSound:      game.Sound(w.ReloadSound),
		EmptySound:       game.Sound(w.EmptySound),
		FireTrigger:      base.FireTrigger,
		ReloadTrigger:    base.ReloadTrigger,
		ImpactEffect:     game.EffectRef(w.ImpactEffect),
	}
}

// GamePickup converts the pickup section for game.NewPickupController.
func (c Config) GamePickup() game.PickupConfig {
	return game.PickupConfig{
		ScanRadius: c.Pickup.ScanRadius,
		MountOffset: game.Transform{
			Position: c.Pickup.MountOffset.Vec(),
			Rotation: mgl64.QuatIdent(),
		},
	}
}
