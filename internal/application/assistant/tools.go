package assistant

import (
	"context"
	"fmt"

	flowusecases "ghitdesk/internal/application/flow/usecases"
	"ghitdesk/internal/infrastructure/ai"
	"ghitdesk/internal/shared/errors"
)

const (
	toolCreateNode   = "create_flow_node"
	toolDeleteNode   = "delete_flow_node"
	toolConnectNodes = "connect_flow_nodes"
)

// flowToolDeclarations is the tool surface offered to the chat model:
// exactly three operations over the flow builder.
func flowToolDeclarations() []ai.Tool {
	return []ai.Tool{{FunctionDeclarations: []ai.FunctionDeclaration{
		{
			Name:        toolCreateNode,
			Description: "Creates a new node in the automation flow builder. Coordinates x and y default to 300, 300 if not specified.",
			Parameters: &ai.Schema{
				Type: "OBJECT",
				Properties: map[string]*ai.Schema{
					"type": {
						Type:        "STRING",
						Description: "Type of node.",
						Enum: []string{"trigger", "message", "image", "input_text",
							"condition", "wait", "email_send", "agent_handoff"},
					},
					"title":       {Type: "STRING", Description: "Title displayed on the node."},
					"description": {Type: "STRING", Description: "Short description."},
					"content":     {Type: "STRING", Description: "Content for message nodes."},
					"x":           {Type: "NUMBER", Description: "X coordinate (optional)"},
					"y":           {Type: "NUMBER", Description: "Y coordinate (optional)"},
				},
				Required: []string{"type", "title"},
			},
		},
		{
			Name:        toolDeleteNode,
			Description: "Deletes a node from the flow builder by its ID or Title (fuzzy match).",
			Parameters: &ai.Schema{
				Type: "OBJECT",
				Properties: map[string]*ai.Schema{
					"identifier": {Type: "STRING", Description: "The ID or Title of the node to delete."},
				},
				Required: []string{"identifier"},
			},
		},
		{
			Name:        toolConnectNodes,
			Description: "Connects two nodes in the flow builder.",
			Parameters: &ai.Schema{
				Type: "OBJECT",
				Properties: map[string]*ai.Schema{
					"from": {Type: "STRING", Description: "ID or Title of the source node."},
					"to":   {Type: "STRING", Description: "ID or Title of the target node."},
				},
				Required: []string{"from", "to"},
			},
		},
	}}}
}

// ExecuteTool dispatches one function call to the flow use cases and returns
// the payload relayed back to the model: {"result": ...} on success,
// {"error": ...} on failure. Not-found targets are a result, not an error, so
// the model can tell the user in its own words.
func (t FlowTools) ExecuteTool(ctx context.Context, call ai.FunctionCall) map[string]any {
	switch call.Name {
	case toolCreateNode:
		return t.executeCreateNode(ctx, call.Args)
	case toolDeleteNode:
		return t.executeDeleteNode(ctx, call.Args)
	case toolConnectNodes:
		return t.executeConnectNodes(ctx, call.Args)
	}
	return map[string]any{"error": "Function not found"}
}

func (t FlowTools) executeCreateNode(ctx context.Context, args map[string]any) map[string]any {
	cmd := flowusecases.CreateNodeCommand{
		Type:        stringArg(args, "type"),
		Title:       stringArg(args, "title"),
		Description: stringArg(args, "description"),
		Content:     stringArg(args, "content"),
		X:           numberArg(args, "x"),
		Y:           numberArg(args, "y"),
	}
	result, err := t.CreateNode.Execute(ctx, cmd)
	if err != nil {
		return map[string]any{"error": errorMessage(err)}
	}
	return map[string]any{"result": "Node created successfully with ID: " + result.Node.ID}
}

func (t FlowTools) executeDeleteNode(ctx context.Context, args map[string]any) map[string]any {
	cmd := flowusecases.DeleteNodeCommand{Identifier: stringArg(args, "identifier")}
	result, err := t.DeleteNode.Execute(ctx, cmd)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return map[string]any{"result": "Node not found."}
		}
		return map[string]any{"error": errorMessage(err)}
	}
	return map[string]any{"result": fmt.Sprintf("Node '%s' (%s) deleted.", result.Node.Data.Title, result.Node.ID)}
}

func (t FlowTools) executeConnectNodes(ctx context.Context, args map[string]any) map[string]any {
	cmd := flowusecases.ConnectNodesCommand{
		From: stringArg(args, "from"),
		To:   stringArg(args, "to"),
	}
	result, err := t.ConnectNodes.Execute(ctx, cmd)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return map[string]any{"result": "One or both nodes not found."}
		}
		return map[string]any{"error": errorMessage(err)}
	}
	return map[string]any{"result": fmt.Sprintf("Connected '%s' to '%s'.",
		result.From.Data.Title, result.To.Data.Title)}
}

func errorMessage(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func numberArg(args map[string]any, key string) *float64 {
	f, ok := args[key].(float64)
	if !ok {
		return nil
	}
	return &f
}
