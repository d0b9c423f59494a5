package middleware

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit limits requests per client IP. formattedRate uses the limiter
// notation, e.g. "10-M" for ten requests a minute.
func RateLimit(formattedRate string) (func(http.Handler) http.Handler, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formattedRate, err)
	}

	instance := limiter.New(memory.NewStore(), rate)

	limiterMiddleware := stdlib.NewMiddleware(instance,
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			response.TooManyRequests(w, "Too many requests, please try again later")
		}),
	)
	return limiterMiddleware.Handler, nil
}
