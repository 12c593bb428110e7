package usecases

import (
	"context"

	"ghitdesk/internal/domain/flow"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

// SetNodesCommand replaces the whole node set in one write. Connections are
// untouched, even when a node they reference disappears from the new set;
// bulk replacement is a canvas operation, not a graph edit.
type SetNodesCommand struct {
	Nodes []flow.Node
}

type SetNodesResult struct {
	Total int
}

type SetNodesUseCase struct {
	flows  FlowStore
	logger logger.Interface
}

func NewSetNodesUseCase(flows FlowStore, logger logger.Interface) *SetNodesUseCase {
	return &SetNodesUseCase{flows: flows, logger: logger}
}

func (uc *SetNodesUseCase) Execute(ctx context.Context, cmd SetNodesCommand) (*SetNodesResult, error) {
	for _, n := range cmd.Nodes {
		if err := n.Validate(); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	uc.flows.SetNodes(ctx, cmd.Nodes)

	uc.logger.Infow("node set replaced", "total", len(cmd.Nodes))

	return &SetNodesResult{Total: len(cmd.Nodes)}, nil
}
