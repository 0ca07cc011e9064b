package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRules is the replacement table shipped with the lyric cleanup tool.
func DefaultRules() []RuleConfig {
	return []RuleConfig{
		{From: "消杀", To: "消砂"},
		{From: "桂山", To: "癸山"},
		{From: "沙", To: "砂"},
		{From: "不藏", To: "不葬"},
		{From: "寻农", To: "寻龙"},
		{From: "外印", To: "外应"},
		{From: "日科", To: "日课"},
	}
}

// LoadRules reads a YAML list of {from, to} pairs.
func LoadRules(path string) ([]RuleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}

	var rules []RuleConfig
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	for i, r := range rules {
		if r.From == "" {
			return nil, fmt.Errorf("rule %d: from is required", i)
		}
	}
	return rules, nil
}

// CleanupRules resolves the active table: an explicit rules file wins, then
// inline rules, then DefaultRules.
func (c *Config) CleanupRules() ([]RuleConfig, error) {
	if c.Cleanup.RulesFile != "" {
		return LoadRules(c.Cleanup.RulesFile)
	}
	if len(c.Cleanup.Rules) > 0 {
		return c.Cleanup.Rules, nil
	}
	return DefaultRules(), nil
}
