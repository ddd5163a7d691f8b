package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/codeloom-ai/codeloom/src/extract"
)

const (
	toolScanBlocks     = "scan_blocks"
	toolExtractProject = "extract_project"
	toolArchiveProject = "archive_project"
)

func main() {
	s := server.NewMCPServer(
		"codeloom MCP Server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func registerTools(s *server.MCPServer) {
	// Tool 1: Scan a response without touching the filesystem
	s.AddTool(mcp.Tool{
		Name:        toolScanBlocks,
		Description: "Scan raw AI response text and report the files it would produce, without writing anything",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Raw response text containing fenced code blocks",
				},
			},
			Required: []string{"text"},
		},
	}, handleScanBlocks)

	// Tool 2: Extract and write a project
	s.AddTool(mcp.Tool{
		Name:        toolExtractProject,
		Description: "Extract every fenced code block from response text and write the resulting project tree to disk",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Raw response text containing fenced code blocks",
				},
				"root": map[string]interface{}{
					"type":        "string",
					"description": "Project root directory to write files under",
				},
				"overwrite": map[string]interface{}{
					"type":        "boolean",
					"description": "Overwrite files that already exist",
					"default":     false,
				},
				"zip": map[string]interface{}{
					"type":        "boolean",
					"description": "Also zip the project next to the root",
					"default":     false,
				},
			},
			Required: []string{"text", "root"},
		},
	}, handleExtractProject)

	// Tool 3: Archive a previously extracted project
	s.AddTool(mcp.Tool{
		Name:        toolArchiveProject,
		Description: "Zip the files a response would produce, reading content from an already materialized root",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Raw response text the project was extracted from",
				},
				"root": map[string]interface{}{
					"type":        "string",
					"description": "Materialized project root",
				},
				"archive_path": map[string]interface{}{
					"type":        "string",
					"description": "Destination .zip path (default: root + .zip)",
				},
			},
			Required: []string{"text", "root"},
		},
	}, handleArchiveProject)
}

func handleScanBlocks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")

	tree, dups, warns := extract.NewEngine().Extract(text)

	type fileInfo struct {
		Path string `json:"path"`
		Lang string `json:"lang,omitempty"`
		Size int    `json:"size"`
	}
	out := struct {
		Files      []fileInfo `json:"files"`
		Duplicates int        `json:"duplicates"`
		Warnings   []string   `json:"warnings,omitempty"`
	}{Duplicates: len(dups)}

	for _, p := range tree.Paths() {
		spec, _ := tree.Get(p)
		out.Files = append(out.Files, fileInfo{Path: p, Lang: spec.Lang, Size: len(spec.Content)})
	}
	for _, w := range warns {
		out.Warnings = append(out.Warnings, w.Message)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func handleExtractProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	root := request.GetString("root", "")
	overwrite := request.GetBool("overwrite", false)
	zip := request.GetBool("zip", false)

	res, err := extract.NewEngine().Run(text, root, extract.Options{
		Overwrite: overwrite,
		Archive:   zip,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Extraction failed: %v", err)), nil
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Root: %s\n", res.Materialization.Root)
	for _, e := range res.Materialization.Entries {
		switch e.Status {
		case extract.StatusWritten:
			fmt.Fprintf(&out, "written %s\n", e.Path)
		case extract.StatusSkipped:
			fmt.Fprintf(&out, "skipped %s (%s)\n", e.Path, e.Reason)
		case extract.StatusFailed:
			fmt.Fprintf(&out, "failed  %s (%s)\n", e.Path, e.Reason)
		}
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(&out, "warning: %s\n", w.Message)
	}
	if res.Archive != nil {
		fmt.Fprintf(&out, "archived %s (%d entries)\n", res.Archive.Path, len(res.Archive.Entries))
	}
	if res.ArchiveErr != nil {
		fmt.Fprintf(&out, "archive error: %v\n", res.ArchiveErr)
	}
	if res.Tree.Len() == 0 {
		out.WriteString("no code blocks found\n")
	}
	return mcp.NewToolResultText(out.String()), nil
}

func handleArchiveProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	root := request.GetString("root", "")
	archivePath := request.GetString("archive_path", "")
	if archivePath == "" {
		archivePath = strings.TrimRight(root, "/") + ".zip"
	}

	tree, _, _ := extract.NewEngine().Extract(text)
	res, err := extract.Archive(tree, root, archivePath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Archive failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Archived %d files to %s", len(res.Entries), res.Path)), nil
}
