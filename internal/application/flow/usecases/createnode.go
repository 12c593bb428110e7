package usecases

import (
	"context"

	"ghitdesk/internal/domain/flow"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/id"
	"ghitdesk/internal/shared/logger"
)

// CreateNodeCommand places a new node on the canvas. Nil coordinates default
// to 300 so assistant-created nodes land in a visible region.
type CreateNodeCommand struct {
	Type        string
	Title       string
	Description string
	Content     string
	X           *float64
	Y           *float64
}

const defaultCoordinate = 300

type CreateNodeResult struct {
	Node flow.Node
}

type CreateNodeUseCase struct {
	flows  FlowStore
	logger logger.Interface
}

func NewCreateNodeUseCase(flows FlowStore, logger logger.Interface) *CreateNodeUseCase {
	return &CreateNodeUseCase{flows: flows, logger: logger}
}

func (uc *CreateNodeUseCase) Execute(ctx context.Context, cmd CreateNodeCommand) (*CreateNodeResult, error) {
	uc.logger.Infow("executing create node use case", "type", cmd.Type, "title", cmd.Title)

	nodeType := flow.NodeType(cmd.Type)
	if !nodeType.IsValid() {
		return nil, errors.NewValidationError("invalid node type")
	}
	if cmd.Title == "" {
		return nil, errors.NewValidationError("node title is required")
	}

	x := float64(defaultCoordinate)
	y := float64(defaultCoordinate)
	if cmd.X != nil {
		x = *cmd.X
	}
	if cmd.Y != nil {
		y = *cmd.Y
	}

	n := flow.Node{
		ID:   id.NewNodeID(),
		Type: nodeType,
		X:    x,
		Y:    y,
		Data: flow.NodeData{
			Title:       cmd.Title,
			Description: cmd.Description,
			Content:     cmd.Content,
		},
	}
	if err := n.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	uc.flows.AddNode(ctx, n)

	uc.logger.Infow("node created successfully", "node_id", n.ID, "type", n.Type)

	return &CreateNodeResult{Node: n}, nil
}
