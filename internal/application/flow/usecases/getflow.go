package usecases

import (
	"context"

	"ghitdesk/internal/domain/flow"
	"ghitdesk/internal/shared/logger"
)

type GetFlowQuery struct{}

type GetFlowResult struct {
	Nodes       []flow.Node
	Connections []flow.Connection
}

type GetFlowUseCase struct {
	flows  FlowStore
	logger logger.Interface
}

func NewGetFlowUseCase(flows FlowStore, logger logger.Interface) *GetFlowUseCase {
	return &GetFlowUseCase{flows: flows, logger: logger}
}

func (uc *GetFlowUseCase) Execute(ctx context.Context, query GetFlowQuery) (*GetFlowResult, error) {
	return &GetFlowResult{
		Nodes:       uc.flows.Nodes(ctx),
		Connections: uc.flows.Connections(ctx),
	}, nil
}
