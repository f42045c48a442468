package wallhaven

import (
	"time"

	"golang.org/x/time/rate"
)

// The API allows 45 calls per minute per client address, enforced globally
// across every Client in the process. Exceeding the budget blocks the caller
// until a slot frees instead of failing.
const (
	rateLimitCalls  = 45
	rateLimitWindow = time.Minute
)

// sharedLimiter is the process-wide limiter. All clients draw from it unless
// a test swaps in its own via the unexported limiter field.
var sharedLimiter = rate.NewLimiter(rate.Every(rateLimitWindow/rateLimitCalls), rateLimitCalls)
