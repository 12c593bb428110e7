package usecases

import (
	"context"

	"ghitdesk/internal/domain/flow"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

// UpdateNodeCommand carries a shallow partial update. Data replaces the whole
// data block when non-nil; it is never field-merged.
type UpdateNodeCommand struct {
	NodeID string
	Type   *string
	X      *float64
	Y      *float64
	Data   *flow.NodeData
}

type UpdateNodeResult struct {
	Node flow.Node
}

type UpdateNodeUseCase struct {
	flows  FlowStore
	logger logger.Interface
}

func NewUpdateNodeUseCase(flows FlowStore, logger logger.Interface) *UpdateNodeUseCase {
	return &UpdateNodeUseCase{flows: flows, logger: logger}
}

func (uc *UpdateNodeUseCase) Execute(ctx context.Context, cmd UpdateNodeCommand) (*UpdateNodeResult, error) {
	uc.logger.Infow("executing update node use case", "node_id", cmd.NodeID)

	if cmd.NodeID == "" {
		return nil, errors.NewValidationError("node ID is required")
	}

	u := flow.NodeUpdate{
		X:    cmd.X,
		Y:    cmd.Y,
		Data: cmd.Data,
	}
	if cmd.Type != nil {
		nodeType := flow.NodeType(*cmd.Type)
		if !nodeType.IsValid() {
			return nil, errors.NewValidationError("invalid node type")
		}
		u.Type = &nodeType
	}
	if cmd.Data != nil && cmd.Data.Title == "" {
		return nil, errors.NewValidationError("node title is required")
	}

	updated, ok := uc.flows.UpdateNode(ctx, cmd.NodeID, u)
	if !ok {
		return nil, errors.NewNotFoundError("node not found")
	}

	uc.logger.Infow("node updated successfully", "node_id", updated.ID)

	return &UpdateNodeResult{Node: updated}, nil
}
