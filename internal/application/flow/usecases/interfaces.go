package usecases

import (
	"context"

	"ghitdesk/internal/domain/flow"
)

// FlowStore is the graph surface the flow use cases depend on. Node deletion
// cascades to incident connections inside the store.
type FlowStore interface {
	Nodes(ctx context.Context) []flow.Node
	GetNode(ctx context.Context, id string) (flow.Node, bool)
	AddNode(ctx context.Context, n flow.Node)
	UpdateNode(ctx context.Context, id string, u flow.NodeUpdate) (flow.Node, bool)
	SetNodes(ctx context.Context, nodes []flow.Node)
	DeleteNode(ctx context.Context, id string) bool
	ResolveNode(ctx context.Context, identifier string) (flow.Node, bool)

	Connections(ctx context.Context) []flow.Connection
	AddConnection(ctx context.Context, c flow.Connection)
	DeleteConnection(ctx context.Context, id string) bool
	HasConnection(ctx context.Context, from, to string) bool
}

type CreateNodeExecutor interface {
	Execute(ctx context.Context, cmd CreateNodeCommand) (*CreateNodeResult, error)
}

type UpdateNodeExecutor interface {
	Execute(ctx context.Context, cmd UpdateNodeCommand) (*UpdateNodeResult, error)
}

type DeleteNodeExecutor interface {
	Execute(ctx context.Context, cmd DeleteNodeCommand) (*DeleteNodeResult, error)
}

type SetNodesExecutor interface {
	Execute(ctx context.Context, cmd SetNodesCommand) (*SetNodesResult, error)
}

type ConnectNodesExecutor interface {
	Execute(ctx context.Context, cmd ConnectNodesCommand) (*ConnectNodesResult, error)
}

type DeleteConnectionExecutor interface {
	Execute(ctx context.Context, cmd DeleteConnectionCommand) (*DeleteConnectionResult, error)
}

type GetFlowExecutor interface {
	Execute(ctx context.Context, query GetFlowQuery) (*GetFlowResult, error)
}
