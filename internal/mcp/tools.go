// Package mcp exposes the intent parser and Terraform generator as MCP
// tools so agent front-ends can drive the assistant over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"terravox/internal/intent"
	"terravox/internal/terraform"
	"terravox/internal/wizard"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolManager wires parser-backed tool handlers into an MCP server.
type ToolManager struct {
	parser *intent.Parser
}

func NewToolManager(parser *intent.Parser) *ToolManager {
	return &ToolManager{parser: parser}
}

// RegisterTools registers all assistant tools with the MCP server.
func (tm *ToolManager) RegisterTools(s *server.MCPServer) error {
	detectTool := mcp.NewTool("detect_intent",
		mcp.WithDescription("Classify a provisioning request into cloud resource categories, action and negations"),
		mcp.WithString("sentence",
			mcp.Required(),
			mcp.Description("Free-text provisioning request, e.g. 'Deploy a small Ubuntu server on AWS with MySQL'"),
		),
	)
	s.AddTool(detectTool, tm.handleDetectTool)

	listTool := mcp.NewTool("list_categories",
		mcp.WithDescription("List the cloud resource categories, their trigger keywords and per-provider resource mappings"),
	)
	s.AddTool(listTool, tm.handleListCategoriesTool)

	generateTool := mcp.NewTool("generate_terraform",
		mcp.WithDescription("Generate Terraform configuration (main.tf, variables.tf, outputs.tf) from a provisioning request"),
		mcp.WithString("sentence",
			mcp.Required(),
			mcp.Description("Free-text provisioning request"),
		),
		mcp.WithString("region",
			mcp.Description("Target region (defaults per provider)"),
		),
		mcp.WithString("instance_type",
			mcp.Description("Instance or VM size (defaults per provider)"),
		),
		mcp.WithNumber("storage_gb",
			mcp.Description("Database storage size in GB (default 20)"),
		),
	)
	s.AddTool(generateTool, tm.handleGenerateTool)

	return nil
}

// detectionPayload is the JSON shape returned by the detect_intent tool.
type detectionPayload struct {
	Action            string              `json:"action"`
	Categories        map[string][]string `json:"categories"`
	NegatedCategories []string            `json:"negated_categories"`
	Valid             bool                `json:"valid"`
	Provider          string              `json:"provider,omitempty"`
	OperatingSystem   string              `json:"operating_system,omitempty"`
}

func (tm *ToolManager) detect(sentence string) detectionPayload {
	result := tm.parser.Detect(sentence)

	negated := make([]string, 0, len(result.NegatedCategories))
	for name := range result.NegatedCategories {
		negated = append(negated, name)
	}
	sort.Strings(negated)

	return detectionPayload{
		Action:            string(result.Action),
		Categories:        result.Categories,
		NegatedCategories: negated,
		Valid:             tm.parser.Validate(result),
		Provider:          tm.parser.NormalizeProvider(result),
		OperatingSystem:   tm.parser.ExtractOS(result),
	}
}

func (tm *ToolManager) handleDetectTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sentence, err := request.RequireString("sentence")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.MarshalIndent(tm.detect(sentence), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding detection: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

type categoryPayload struct {
	Name           string              `json:"name"`
	Keywords       []string            `json:"keywords"`
	CloudResources map[string][]string `json:"cloud_resources,omitempty"`
}

func (tm *ToolManager) listCategories() []categoryPayload {
	categories := tm.parser.Categories()
	payload := make([]categoryPayload, len(categories))
	for i, cat := range categories {
		payload[i] = categoryPayload{
			Name:           cat.Name,
			Keywords:       cat.Keywords,
			CloudResources: cat.CloudResources,
		}
	}
	return payload
}

func (tm *ToolManager) handleListCategoriesTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(tm.listCategories(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding categories: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// generatePayload is the JSON shape returned by the generate_terraform tool.
type generatePayload struct {
	Config    terraform.Config  `json:"config"`
	Files     map[string]string `json:"files"`
	Detection detectionPayload  `json:"detection"`
}

// generate parses the sentence and renders Terraform text without touching
// the filesystem. A contradictory detection is reported as an error so the
// calling agent can ask the user to disambiguate.
func (tm *ToolManager) generate(sentence, region, instanceType string, storageGB int) (generatePayload, error) {
	result := tm.parser.Detect(sentence)
	detection := tm.detect(sentence)

	if !detection.Valid {
		if len(result.Categories) == 0 {
			return generatePayload{}, fmt.Errorf("no provisioning intent detected in %q", sentence)
		}
		return generatePayload{}, fmt.Errorf("contradictory request: categories both requested and excluded")
	}

	cfg := wizard.ConfigFromDetection(tm.parser, result)
	cfg.Region = region
	cfg.InstanceType = instanceType
	cfg.StorageGB = storageGB

	g := terraform.NewGenerator(cfg)
	return generatePayload{
		Config: g.Config(),
		Files: map[string]string{
			"main.tf":      g.MainTF(),
			"variables.tf": g.Variables(),
			"outputs.tf":   g.Outputs(),
		},
		Detection: detection,
	}, nil
}

func (tm *ToolManager) handleGenerateTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sentence, err := request.RequireString("sentence")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	region := request.GetString("region", "")
	instanceType := request.GetString("instance_type", "")
	storageGB := request.GetInt("storage_gb", 0)

	payload, err := tm.generate(sentence, region, instanceType, storageGB)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
