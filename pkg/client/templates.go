package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListTemplates(ctx context.Context) ([]Template, error) {
	var out []Template
	err := c.do(ctx, http.MethodGet, "/templates", nil, &out)
	return out, err
}

func (c *Client) GetTemplate(ctx context.Context, id uint) (*Template, error) {
	var out Template
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/templates/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTemplate(ctx context.Context, name, content string) (*Template, error) {
	var out Template
	body := map[string]string{"name": name, "content": content}
	if err := c.do(ctx, http.MethodPost, "/templates", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTemplate(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/templates/%d", id), nil, nil)
}

// RenderTemplate fills the template's placeholders with vars.
func (c *Client) RenderTemplate(ctx context.Context, id uint, vars map[string]string) (string, error) {
	var out struct {
		Content string `json:"content"`
	}
	body := map[string]interface{}{"variables": vars}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/templates/%d/render", id), body, &out); err != nil {
		return "", err
	}
	return out.Content, nil
}
