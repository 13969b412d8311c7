package httpkit

import (
	"net/http"
	"time"

	"econlens/internal/platform/config"
	"econlens/internal/platform/net/middleware"
	pstrings "econlens/internal/platform/strings"
)

// CommonStack returns the baseline middleware slice for the versioned api
// origins come from CORS_ORIGINS, slow request threshold from ACCESS_LOG_SLOW
func CommonStack(c config.Conf) []func(http.Handler) http.Handler {
	origins := pstrings.Compact(c.MayCSV("CORS_ORIGINS", []string{"*"}))
	stack := middleware.Defaults()
	return append(stack,
		middleware.AccessLog(middleware.AccessLogOptions{
			Slow: c.MayDuration("ACCESS_LOG_SLOW", 750*time.Millisecond),
		}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: origins, MaxAge: 300}),
		middleware.Heartbeat("/health"),
	)
}
