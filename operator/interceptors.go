package operator

import (
	"google.golang.org/grpc"

	zerologmw "github.com/grpc-ecosystem/go-grpc-middleware/providers/zerolog/v2"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/Shearerbeard/PESA-equation-services/clog"
)

// interceptorChain is the observability layer every operator's
// grpc.Server installs (SPEC_FULL.md §2): structured request logging
// through this service's own clog.Logger, routed via
// go-grpc-middleware's zerolog provider so log lines carry the same
// component/id fields as everything else the service logs, plus panic
// recovery so a bug in one handler surfaces as an Internal status
// instead of taking the whole process down mid-request.
func interceptorChain(log *clog.Logger) grpc.ServerOption {
	return grpc.ChainUnaryInterceptor(
		logging.UnaryServerInterceptor(zerologmw.InterceptorLogger(log.Zerolog())),
		recovery.UnaryServerInterceptor(),
	)
}
