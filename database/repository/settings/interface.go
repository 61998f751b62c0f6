package settingsRepo

import "goldenfish/models"

// SettingsRepository defines access to the single restaurant settings
// document the rules engine runs on.
type SettingsRepository interface {
	// Get retrieves the settings document.
	Get() (*models.RestaurantConfig, error)
	// Save replaces the settings document.
	Save(cfg *models.RestaurantConfig) error
	// SetClosure updates only the temporary-closure block.
	SetClosure(closure models.TemporaryClosure) error
	// SetPromotionActive flips one promotion rule's active flag.
	SetPromotionActive(ruleID string, active bool) error
}
