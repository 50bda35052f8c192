package middleware

import (
	"context"

	"github.com/twam/circular-buffer/pkg/common"
)

var (
	NoopTickHdl    = func(context.Context, common.Tick) {}
	NoopOutlierHdl = func(context.Context, common.Outlier) {}
	NoopWindowHdl  = func(context.Context, common.WindowSnapshot) {}
)
