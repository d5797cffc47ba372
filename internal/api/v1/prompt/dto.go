package prompt

type CreatePromptRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

// UpdatePromptRequest appends a version. An empty name keeps the current one.
type UpdatePromptRequest struct {
	Content string `json:"content" binding:"required"`
	Name    string `json:"name" binding:"max=255"`
}
