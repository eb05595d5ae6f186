package httpclient

import "context"

type headersKey struct{}

// ContextWithHeaders attaches headers that are set on every request made with ctx.
// They override the client's default and auth headers, but not per-request headers.
func ContextWithHeaders(ctx context.Context, headers map[string]string) context.Context {
	if len(headers) == 0 {
		return ctx
	}
	merged := make(map[string]string, len(headers))
	for k, v := range headersFromContext(ctx) {
		merged[k] = v
	}
	for k, v := range headers {
		merged[k] = v
	}
	return context.WithValue(ctx, headersKey{}, merged)
}

func headersFromContext(ctx context.Context) map[string]string {
	if ctx == nil {
		return nil
	}
	headers, _ := ctx.Value(headersKey{}).(map[string]string)
	return headers
}
