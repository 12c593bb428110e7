package usecases

import (
	"context"

	"ghitdesk/internal/domain/flow"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/id"
	"ghitdesk/internal/shared/logger"
)

// ConnectNodesCommand draws a directed edge between two nodes, each resolved
// by exact ID or case-insensitive title fragment. An edge with the same
// (from, to) pair is not duplicated; the existing graph is returned as-is.
type ConnectNodesCommand struct {
	From string
	To   string
}

type ConnectNodesResult struct {
	Connection flow.Connection
	From       flow.Node
	To         flow.Node
	Created    bool
}

type ConnectNodesUseCase struct {
	flows  FlowStore
	logger logger.Interface
}

func NewConnectNodesUseCase(flows FlowStore, logger logger.Interface) *ConnectNodesUseCase {
	return &ConnectNodesUseCase{flows: flows, logger: logger}
}

func (uc *ConnectNodesUseCase) Execute(ctx context.Context, cmd ConnectNodesCommand) (*ConnectNodesResult, error) {
	uc.logger.Infow("executing connect nodes use case", "from", cmd.From, "to", cmd.To)

	if cmd.From == "" || cmd.To == "" {
		return nil, errors.NewValidationError("both endpoints are required")
	}

	from, ok := uc.flows.ResolveNode(ctx, cmd.From)
	if !ok {
		return nil, errors.NewNotFoundError("source node not found")
	}
	to, ok := uc.flows.ResolveNode(ctx, cmd.To)
	if !ok {
		return nil, errors.NewNotFoundError("target node not found")
	}

	if uc.flows.HasConnection(ctx, from.ID, to.ID) {
		uc.logger.Infow("connection already exists", "from", from.ID, "to", to.ID)
		return &ConnectNodesResult{From: from, To: to, Created: false}, nil
	}

	c := flow.Connection{
		ID:   id.NewConnectionID(),
		From: from.ID,
		To:   to.ID,
	}
	uc.flows.AddConnection(ctx, c)

	uc.logger.Infow("nodes connected", "connection_id", c.ID, "from", from.ID, "to", to.ID)

	return &ConnectNodesResult{Connection: c, From: from, To: to, Created: true}, nil
}
