package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListModels returns active configs, the default first.
func (c *Client) ListModels(ctx context.Context) ([]ModelConfig, error) {
	var out []ModelConfig
	err := c.do(ctx, http.MethodGet, "/models", nil, &out)
	return out, err
}

func (c *Client) GetModel(ctx context.Context, id uint) (*ModelConfig, error) {
	var out ModelConfig
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/models/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDefaultModel(ctx context.Context) (*ModelConfig, error) {
	var out ModelConfig
	if err := c.do(ctx, http.MethodGet, "/models/default", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateModel(ctx context.Context, req CreateModelRequest) (*ModelConfig, error) {
	var out ModelConfig
	if err := c.do(ctx, http.MethodPost, "/models", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateModel(ctx context.Context, id uint, req UpdateModelRequest) (*ModelConfig, error) {
	var out ModelConfig
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/models/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteModel fails with a 409 APIError when id is the default config.
func (c *Client) DeleteModel(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/models/%d", id), nil, nil)
}

func (c *Client) SetDefaultModel(ctx context.Context, id uint) (*ModelConfig, error) {
	var out ModelConfig
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/models/%d/default", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
