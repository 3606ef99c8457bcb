package settings

// UpdateSettingsRequest represents a partial settings change. Omitted
// fields keep their current value.
type UpdateSettingsRequest struct {
	ExchangeRate    *float64 `json:"exchange_rate,omitempty" validate:"omitempty,gt=0"`
	DisplayCurrency *string  `json:"display_currency,omitempty"`
}

// SettingsResponse represents the current settings
type SettingsResponse struct {
	ExchangeRate    float64 `json:"exchange_rate"`
	DisplayCurrency string  `json:"display_currency"`
}

// ToResponse converts a Settings snapshot to a SettingsResponse DTO
func (s Settings) ToResponse() *SettingsResponse {
	return &SettingsResponse{
		ExchangeRate:    s.ExchangeRate,
		DisplayCurrency: s.DisplayCurrency,
	}
}
