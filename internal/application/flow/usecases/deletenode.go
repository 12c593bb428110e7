package usecases

import (
	"context"

	"ghitdesk/internal/domain/flow"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

// DeleteNodeCommand removes a node by identifier: an exact node ID, or a
// case-insensitive title fragment when no ID matches. Incident connections
// are removed in the same step.
type DeleteNodeCommand struct {
	Identifier string
}

type DeleteNodeResult struct {
	Node flow.Node
}

type DeleteNodeUseCase struct {
	flows  FlowStore
	logger logger.Interface
}

func NewDeleteNodeUseCase(flows FlowStore, logger logger.Interface) *DeleteNodeUseCase {
	return &DeleteNodeUseCase{flows: flows, logger: logger}
}

func (uc *DeleteNodeUseCase) Execute(ctx context.Context, cmd DeleteNodeCommand) (*DeleteNodeResult, error) {
	uc.logger.Infow("executing delete node use case", "identifier", cmd.Identifier)

	if cmd.Identifier == "" {
		return nil, errors.NewValidationError("node identifier is required")
	}

	node, ok := uc.flows.ResolveNode(ctx, cmd.Identifier)
	if !ok {
		return nil, errors.NewNotFoundError("node not found")
	}

	if !uc.flows.DeleteNode(ctx, node.ID) {
		return nil, errors.NewNotFoundError("node not found")
	}

	uc.logger.Infow("node deleted", "node_id", node.ID, "title", node.Data.Title)

	return &DeleteNodeResult{Node: node}, nil
}
