package grid

import "context"

// Source supplies the roster. Load is called once per session; it may
// block (simulated latency, file I/O) and should honour ctx.
type Source interface {
	Load(ctx context.Context, count int) ([]Record, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, count int) ([]Record, error)

func (f SourceFunc) Load(ctx context.Context, count int) ([]Record, error) {
	return f(ctx, count)
}
