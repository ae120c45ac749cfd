package checks

import "context"

// Repository port for the check history
type Repository interface {
	Save(ctx context.Context, c *Check) error
	Get(ctx context.Context, id CheckID) (*Check, error)
	Latest(ctx context.Context, limit int) ([]*Check, error)
	Summary(ctx context.Context) (Summary, error)
	Clear(ctx context.Context) error
}
