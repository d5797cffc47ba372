package ai_model

type CreateModelRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	ModelID    string `json:"model_id" binding:"required,max=255"`
	BaseURL    string `json:"base_url" binding:"omitempty,url"`
	APIKey     string `json:"api_key"`
	APIType    string `json:"api_type" example:"openai"`
	APIVersion string `json:"api_version"`
	IsDefault  bool   `json:"is_default"`
}

// UpdateModelRequest changes only the fields that are present. Sending
// is_default=false for the current default has no effect.
type UpdateModelRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=255"`
	ModelID    *string `json:"model_id" binding:"omitempty,min=1,max=255"`
	BaseURL    *string `json:"base_url" binding:"omitempty,url"`
	APIKey     *string `json:"api_key"`
	APIType    *string `json:"api_type"`
	APIVersion *string `json:"api_version"`
	IsDefault  *bool   `json:"is_default"`
}
