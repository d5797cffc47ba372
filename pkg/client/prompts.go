package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListPrompts(ctx context.Context) ([]Prompt, error) {
	var out []Prompt
	err := c.do(ctx, http.MethodGet, "/prompts", nil, &out)
	return out, err
}

func (c *Client) GetPrompt(ctx context.Context, id uint) (*Prompt, error) {
	var out Prompt
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/prompts/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePrompt(ctx context.Context, name, content string) (*Prompt, error) {
	var out Prompt
	body := map[string]string{"name": name, "content": content}
	if err := c.do(ctx, http.MethodPost, "/prompts", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePrompt stores content as the next version. An empty name keeps the
// current one.
func (c *Client) UpdatePrompt(ctx context.Context, id uint, content, name string) (*Prompt, error) {
	var out Prompt
	body := map[string]string{"content": content}
	if name != "" {
		body["name"] = name
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/prompts/%d", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePrompt(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/prompts/%d", id), nil, nil)
}

// ListPromptVersions returns versions newest first.
func (c *Client) ListPromptVersions(ctx context.Context, id uint) ([]PromptVersion, error) {
	var out []PromptVersion
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/prompts/%d/versions", id), nil, &out)
	return out, err
}

func (c *Client) ListPromptShots(ctx context.Context, id uint) ([]Shot, error) {
	var out []Shot
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/prompts/%d/shots", id), nil, &out)
	return out, err
}
