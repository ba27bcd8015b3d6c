// Package prefabs holds the embedded YAML tuning specs and their loaders.
package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"driftwood/weapon"
)

// LoadSpec reads and decodes a named YAML spec.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	Name             string       `yaml:"name"`
	MoveSpeed        float64      `yaml:"move_speed"`
	JumpSpeed        float64      `yaml:"jump_speed"`
	CoyoteFrames     int          `yaml:"coyote_frames"`
	JumpBufferFrames int          `yaml:"jump_buffer_frames"`
	DoubleJump       bool         `yaml:"double_jump"`
	Health           float64      `yaml:"health"`
	Collider         ColliderSpec `yaml:"collider"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type WeaponSpec struct {
	Name                 string  `yaml:"name"`
	Kind                 string  `yaml:"kind"`
	FireRateFrames       int     `yaml:"fire_rate_frames"`
	Damage               float64 `yaml:"damage"`
	Saturation           float64 `yaml:"saturation"`
	Range                float64 `yaml:"range"`
	ProjectileSpeed      float64 `yaml:"projectile_speed"`
	ProjectileLifeFrames int     `yaml:"projectile_life_frames"`
	Pellets              int     `yaml:"pellets"`
	SpreadDegrees        float64 `yaml:"spread_degrees"`
	RegionFrames         int     `yaml:"region_frames"`
}

// Config converts the spec into the immutable weapon config record.
func (s WeaponSpec) Config() weapon.Config {
	return weapon.Config{
		Name:                 s.Name,
		Kind:                 weapon.Kind(s.Kind),
		FireRateFrames:       s.FireRateFrames,
		Damage:               s.Damage,
		Saturation:           s.Saturation,
		Range:                s.Range,
		ProjectileSpeed:      s.ProjectileSpeed,
		ProjectileLifeFrames: s.ProjectileLifeFrames,
		Pellets:              s.Pellets,
		SpreadDegrees:        s.SpreadDegrees,
		RegionFrames:         s.RegionFrames,
	}
}

type WeaponsSpec struct {
	PoolCapacity int          `yaml:"pool_capacity"`
	Weapons      []WeaponSpec `yaml:"weapons"`
}

func LoadWeaponsSpec() (*WeaponsSpec, error) {
	spec, err := LoadSpec[WeaponsSpec]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Weapons) == 0 {
		return nil, fmt.Errorf("prefabs: weapons.yaml declares no weapons")
	}
	return &spec, nil
}

type SoggySpec struct {
	DurationFrames int     `yaml:"duration_frames"`
	SpeedFactor    float64 `yaml:"speed_factor"`
	DamageFactor   float64 `yaml:"damage_factor"`
}

type EnemySpec struct {
	Name          string       `yaml:"name"`
	MoveSpeed     float64      `yaml:"move_speed"`
	Health        float64      `yaml:"health"`
	SaturationMax float64      `yaml:"saturation_max"`
	FollowRange   float64      `yaml:"follow_range"`
	BrainScript   string       `yaml:"brain_script"`
	Collider      ColliderSpec `yaml:"collider"`
	Soggy         SoggySpec    `yaml:"soggy"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// InputSpec tunes the deadzone and keyboard bindings.
type InputSpec struct {
	Deadzone float64             `yaml:"deadzone"`
	Keymap   map[string][]string `yaml:"keymap"`
}

func LoadInputSpec() (*InputSpec, error) {
	spec, err := LoadSpec[InputSpec]("input.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
