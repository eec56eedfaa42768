package config

import "fmt"

// HazardTarget returns how many hazards should be alive after tick ticks.
// The population grows by one every GrowthDivisor ticks and stops at
// MaxCount when a cap is configured.
func (h HazardConfig) HazardTarget(tick uint32) int {
	target := h.BaseCount
	if h.GrowthDivisor > 0 {
		target += int(tick / uint32(h.GrowthDivisor))
	}
	if h.MaxCount > 0 && target > h.MaxCount {
		target = h.MaxCount
	}
	return target
}

// Validate checks the invariants the simulation relies on.
func (c GameConfig) Validate() error {
	if c.Display.Width < 1 || c.Display.Height < 1 {
		return fmt.Errorf("config: display must be at least 1x1, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Player.Width < 1 || c.Player.Height < 1 {
		return fmt.Errorf("config: player size must be positive")
	}
	if c.Hazards.Width < 1 || c.Hazards.Height < 1 {
		return fmt.Errorf("config: hazard size must be positive")
	}
	if c.Hazards.MinSpeed < 0 || c.Hazards.MaxSpeed <= c.Hazards.MinSpeed {
		return fmt.Errorf("config: hazard speed range [%d, %d) is empty", c.Hazards.MinSpeed, c.Hazards.MaxSpeed)
	}
	if c.Hazards.GrowthDivisor < 0 {
		return fmt.Errorf("config: hazards.growth_divisor must not be negative")
	}
	if c.Heal.MinPeriod < 1 || c.Heal.MaxPeriod <= c.Heal.MinPeriod {
		return fmt.Errorf("config: heal period range [%d, %d) is empty", c.Heal.MinPeriod, c.Heal.MaxPeriod)
	}
	if c.Shield.Period < 1 {
		return fmt.Errorf("config: shield.period must be positive")
	}
	if c.Heal.Width < 1 || c.Heal.Height < 1 || c.Shield.Width < 1 || c.Shield.Height < 1 {
		return fmt.Errorf("config: pickup size must be positive")
	}
	if c.Audio.SampleRate < 1 {
		return fmt.Errorf("config: audio.sample_rate must be positive")
	}
	if c.Audio.MaxVoices < 0 {
		return fmt.Errorf("config: audio.max_voices must not be negative")
	}
	return nil
}
