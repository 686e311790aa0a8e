package guide_approval

import (
	"context"

	guideApproval "github.com/yydtours/YYD-BookingService/internal/usecase/guide_approval"
)

type GuideApprovalUseCase interface {
	Execute(ctx context.Context, req *guideApproval.Request) (*guideApproval.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
