package ai_assistant

type ExecuteRequest struct {
	Prompt        string   `json:"prompt" binding:"required"`
	Model         string   `json:"model"`
	ModelConfigID *uint    `json:"model_config_id"`
	Temperature   *float64 `json:"temperature" binding:"omitempty,gte=0,lte=2"`
	MaxTokens     int      `json:"max_tokens" binding:"omitempty,gte=0"`
	PromptID      *uint    `json:"prompt_id"`
}

type GeneratePromptRequest struct {
	UserDescription string   `json:"user_description" binding:"required"`
	TemplateID      *uint    `json:"template_id"`
	Temperature     *float64 `json:"temperature" binding:"omitempty,gte=0,lte=1"`
	Language        string   `json:"language" binding:"omitempty,oneof=chinese english"`
	SavePrompt      bool     `json:"save_prompt"`
	PromptName      string   `json:"prompt_name" binding:"max=255"`
}

// StreamPromptQuery is the query string of the streaming endpoint. The
// prompt is saved unless save_prompt=false.
type StreamPromptQuery struct {
	UserDescription string   `form:"user_description" binding:"required"`
	TemplateID      *uint    `form:"template_id"`
	Temperature     *float64 `form:"temperature" binding:"omitempty,gte=0,lte=1"`
	Language        string   `form:"language" binding:"omitempty,oneof=chinese english"`
	SavePrompt      *bool    `form:"save_prompt"`
	PromptName      string   `form:"prompt_name" binding:"max=255"`
}

const (
	ErrorTypeValue  = "value_error"
	ErrorTypeSystem = "system_error"
)

// GenerationErrorData is the data of a failed generation response.
type GenerationErrorData struct {
	Error       string   `json:"error"`
	ErrorType   string   `json:"error_type"`
	Suggestions []string `json:"suggestions"`
}

var (
	valueErrorSuggestions = []string{
		"检查您的API密钥是否正确配置",
		"尝试降低生成的token数量",
		"尝试使用不同的模型",
	}
	systemErrorSuggestions = []string{
		"检查网络连接",
		"确保API密钥已正确配置",
		"稍后重试",
	}
)
