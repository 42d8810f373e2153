package request

import "context"

// callFlag toggles requester behaviour for a single call
type callFlag uint8

const (
	flagVerbose callFlag = 1 << iota
	flagNoDelay
	flagNoRetry
)

type callFlagsKey struct{}

func withFlag(ctx context.Context, f callFlag) context.Context {
	return context.WithValue(ctx, callFlagsKey{}, callFlags(ctx)|f)
}

func callFlags(ctx context.Context) callFlag {
	f, _ := ctx.Value(callFlagsKey{}).(callFlag)
	return f
}

func hasFlag(ctx context.Context, f callFlag) bool {
	return callFlags(ctx)&f != 0
}

// WithVerbose logs the exchanges made with ctx even when the requester is
// not verbose. Redacted headers stay masked.
func WithVerbose(ctx context.Context) context.Context {
	return withFlag(ctx, flagVerbose)
}

// WithoutDelay makes a call fail immediately instead of waiting on the weight
// limiter
func WithoutDelay(ctx context.Context) context.Context {
	return withFlag(ctx, flagNoDelay)
}

// WithoutRetry limits a call to a single attempt whatever the retry policy.
// Use it for requests that must not be sent twice.
func WithoutRetry(ctx context.Context) context.Context {
	return withFlag(ctx, flagNoRetry)
}

// verbose reports whether the exchange of p made with ctx is logged
func (r *Requester) verbose(ctx context.Context, p *Item) bool {
	return r.Verbose || p.Verbose || hasFlag(ctx, flagVerbose)
}
