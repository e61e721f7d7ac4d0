// Package config provides rules configuration management for FlowQuest.
//
// The config package handles:
//   - Loading rules profiles from JSON files
//   - Profile validation and caching
//   - Default profile management
//   - Profile discovery and listing
//
// Configuration Format:
//
// Rules profiles are stored as JSON files in the configs directory. Each
// profile defines:
//   - Player count bounds and starting credits
//   - The pass-start bonus and battle stakes
//   - Consolation payouts for off-mission cell landings
//   - The flavor-event chance on normal cells
//   - AI shop probabilities per difficulty and pacing delay
//
// Available Configurations:
//
// The repo ships several tuning profiles:
//   - classic: the canonical rules
//   - quick: short games with higher stakes and cheaper consolations
//   - highstakes: steep battle stakes and aggressive AI shopping
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rules, err := manager.LoadConfig("quick")
//
//	defaults := manager.GetDefault()
//
//	profiles, err := manager.ListConfigs()
//
// Every profile is validated on load; invalid files are rejected with
// ErrInvalidConfig and skipped when listing.
package config
