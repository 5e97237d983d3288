package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type Runnable interface {
	Run(ctx context.Context) error
}

// Worker запускает фоновый компонент (бот, планировщик) в группе.
type Worker struct {
	Name string
}

func (w Worker) Run(ctx context.Context, g *errgroup.Group, r Runnable) {
	g.Go(func() error {
		if err := r.Run(ctx); err != nil {
			return fmt.Errorf("%s.Run: %w", w.Name, err)
		}

		return nil
	})
}
