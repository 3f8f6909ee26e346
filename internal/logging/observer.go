package logging

import (
	"context"

	"github.com/katalvlaran/filtra/filtration"
)

// Observer logs engine events: insertions and duplicates at debug level,
// rejections at warn level.
type Observer struct {
	ctx context.Context
	log Logger
}

var _ filtration.Observer = (*Observer)(nil)

// NewObserver logs through l with the args carried by ctx.
func NewObserver(ctx context.Context, l Logger) *Observer {
	return &Observer{ctx: ctx, log: l}
}

func (o *Observer) CellInserted(dim, index int) {
	o.log.DebugCtx(o.ctx, "cell inserted", "dim", dim, "index", index)
}

func (o *Observer) CellDuplicate(dim, index int) {
	o.log.DebugCtx(o.ctx, "cell already present", "dim", dim, "index", index)
}

func (o *Observer) CellRejected(dim int, err error) {
	o.log.WarnCtx(o.ctx, "cell rejected", "dim", dim, "err", err)
}
