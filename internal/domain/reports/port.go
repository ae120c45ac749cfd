package reports

import "context"

// Repository port for reported cases. FindByNumber returns sql.ErrNoRows
// when no case exists for the number.
type Repository interface {
	Save(ctx context.Context, c *Case) error
	FindByNumber(ctx context.Context, number string) (*Case, error)
	Recent(ctx context.Context, limit int) ([]*Case, error)
}
