package client

import (
	"context"
	"net/http"
)

func (c *Client) Execute(ctx context.Context, req ExecuteRequest) (*ExecuteResult, error) {
	var out ExecuteResult
	if err := c.do(ctx, http.MethodPost, "/execute", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneratePrompt runs a generation in a single call. The prompt is saved
// only when req.SavePrompt is set and true.
func (c *Client) GeneratePrompt(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"user_description": req.Description,
		"temperature":      req.Temperature,
	}
	if req.TemplateID != nil {
		body["template_id"] = *req.TemplateID
	}
	if req.Language != "" {
		body["language"] = req.Language
	}
	if req.SavePrompt != nil {
		body["save_prompt"] = *req.SavePrompt
	}
	if req.PromptName != "" {
		body["prompt_name"] = req.PromptName
	}

	var out GenerateResult
	if err := c.do(ctx, http.MethodPost, "/generate-prompt", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges the console password for a bearer token. The client
// does not start using it until SetToken is called.
func (c *Client) Login(ctx context.Context, password string) (*Token, error) {
	var out Token
	if err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{"password": password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Revoke invalidates the token the client currently sends.
func (c *Client) Revoke(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/revoke", nil, nil)
}
