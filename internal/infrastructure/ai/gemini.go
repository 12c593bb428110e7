// Package ai implements the Gemini REST client behind the assistant features.
// Only the generateContent surface is wrapped; function calling rides on it.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"ghitdesk/internal/shared/config"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Content is one turn of a conversation. Role is "user" or "model"; tool
// results go back as role "user" with a functionResponse part.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is one piece of a content turn. Exactly one field is set.
type Part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *FunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *FunctionResponse `json:"functionResponse,omitempty"`
}

type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

type FunctionResponse struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

// Tool groups function declarations offered to the model.
type Tool struct {
	FunctionDeclarations []FunctionDeclaration `json:"functionDeclarations"`
}

type FunctionDeclaration struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Parameters  *Schema `json:"parameters,omitempty"`
}

// Schema is the OpenAPI-style parameter schema Gemini expects. Types are
// upper-case ("OBJECT", "STRING", "NUMBER").
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
}

type GenerationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	ResponseMIMEType string   `json:"responseMimeType,omitempty"`
}

type GenerateRequest struct {
	Contents          []Content         `json:"contents"`
	Tools             []Tool            `json:"tools,omitempty"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Client talks to the Gemini API. Safe for concurrent use.
type Client struct {
	http   *resty.Client
	apiKey string
	logger logger.Interface
}

func NewClient(cfg config.GeminiConfig, log logger.Interface) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	http := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   http,
		apiKey: cfg.APIKey,
		logger: log.Named("gemini"),
	}
}

// GenerateContent calls models/{model}:generateContent and returns the raw
// candidate list. API failures surface as external errors.
func (c *Client) GenerateContent(ctx context.Context, model string, req GenerateRequest) (*GenerateResponse, error) {
	if c.apiKey == "" {
		return nil, errors.NewExternalError("gemini API key is not configured")
	}

	var out GenerateResponse
	var apiErr apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post(fmt.Sprintf("/models/%s:generateContent", model))
	if err != nil {
		c.logger.Errorw("gemini request failed", "model", model, "error", err)
		return nil, errors.NewExternalError("gemini request failed", err.Error())
	}
	if resp.IsError() {
		c.logger.Errorw("gemini returned an error",
			"model", model, "status", resp.StatusCode(), "message", apiErr.Error.Message)
		return nil, errors.NewExternalError(
			fmt.Sprintf("gemini returned %d: %s", resp.StatusCode(), apiErr.Error.Message))
	}
	if len(out.Candidates) == 0 {
		return nil, errors.NewExternalError("gemini returned no candidates")
	}

	return &out, nil
}

// Text flattens the first candidate's text parts.
func (r *GenerateResponse) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var s string
	for _, p := range r.Candidates[0].Content.Parts {
		s += p.Text
	}
	return s
}

// FunctionCalls returns the first candidate's function-call parts, in order.
func (r *GenerateResponse) FunctionCalls() []FunctionCall {
	if len(r.Candidates) == 0 {
		return nil
	}
	var calls []FunctionCall
	for _, p := range r.Candidates[0].Content.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, *p.FunctionCall)
		}
	}
	return calls
}
