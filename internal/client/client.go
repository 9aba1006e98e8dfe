// Package client calls the HTTP API of the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	ghttp "github.com/ferdiebergado/gopherkit/http"

	"github.com/ferdiebergado/boring/internal/assistant"
	"github.com/ferdiebergado/boring/internal/item"
	"github.com/ferdiebergado/boring/internal/markdown"
	"github.com/ferdiebergado/boring/internal/pkg/web"
)

// ResponseError is returned for every failed call. StatusCode is 0 when the
// request never produced a response.
type ResponseError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
	Err        error
}

func (e *ResponseError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("request failed: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	default:
		return fmt.Sprintf("%d %s: %v", e.StatusCode, http.StatusText(e.StatusCode), e.Err)
	}
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var respErr *ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL. A nil httpClient uses
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) ListItems(ctx context.Context) ([]item.Item, error) {
	var items []item.Item
	if err := c.do(ctx, http.MethodGet, item.BasePath, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetItem(ctx context.Context, id string) (item.Item, error) {
	var it item.Item
	err := c.do(ctx, http.MethodGet, itemPath(id), nil, &it)
	return it, err
}

func (c *Client) CreateItem(ctx context.Context, params item.CreateParams) (item.Item, error) {
	var it item.Item
	err := c.do(ctx, http.MethodPost, item.BasePath, params, &it)
	return it, err
}

func (c *Client) UpdateItem(ctx context.Context, id string, params item.UpdateParams) (item.Item, error) {
	var it item.Item
	err := c.do(ctx, http.MethodPut, itemPath(id), params, &it)
	return it, err
}

func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

func (c *Client) RenderMarkdown(ctx context.Context, src string) (string, error) {
	var res markdown.RenderResponse
	if err := c.do(ctx, http.MethodPost, markdown.Path, markdown.RenderRequest{Markdown: src}, &res); err != nil {
		return "", err
	}
	return res.HTML, nil
}

func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	var res assistant.ChatResponse
	if err := c.do(ctx, http.MethodPost, assistant.Path, assistant.ChatRequest{Prompt: prompt}, &res); err != nil {
		return "", err
	}
	return res.Reply, nil
}

func itemPath(id string) string {
	return item.BasePath + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &ResponseError{Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &ResponseError{Err: err}
	}
	req.Header.Set("Accept", ghttp.MimeJSON)
	if in != nil {
		req.Header.Set(ghttp.HeaderContentType, ghttp.MimeJSON)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &ResponseError{Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return &ResponseError{StatusCode: res.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		respErr := &ResponseError{
			StatusCode: res.StatusCode,
			Message:    http.StatusText(res.StatusCode),
		}
		var envelope web.ErrorResponse
		if json.Unmarshal(data, &envelope) == nil && envelope.Error != "" {
			respErr.Message = envelope.Error
			respErr.Fields = envelope.Fields
		}
		return respErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ResponseError{StatusCode: res.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
