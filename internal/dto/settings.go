package dto

// SettingsResponse is the public view of system settings. The API key is
// intentionally absent: it never leaves the server for non-admin callers.
type SettingsResponse struct {
	SystemName string `json:"systemName"`
	ThemeColor string `json:"themeColor"`
}

// AdminSettingsResponse is the admin view, including the configured API key.
type AdminSettingsResponse struct {
	SystemName string `json:"systemName"`
	ThemeColor string `json:"themeColor"`
	APIKey     string `json:"apiKey"`
}

type UpdateSettingsRequest struct {
	SystemName string `json:"systemName" validate:"required"`
	ThemeColor string `json:"themeColor" validate:"required,oneof=blue emerald violet"`
	APIKey     string `json:"apiKey"`
}
