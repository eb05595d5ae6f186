package httpclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/pkg/jwtutils"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/metrics"
	"github.com/valyala/fasthttp"
	"go.uber.org/ratelimit"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	MIMEApplicationJSON = "application/json"
)

// AuthProvider resolves the auth headers of an outbound request.
type AuthProvider interface {
	AuthHeaders() map[string]string
}

type Config struct {
	// Enable debug mode
	Debug bool

	// Default headers
	Headers map[string]string

	// Auth is consulted on every request. Optional.
	Auth AuthProvider

	// Timeout applies when the request context has no deadline. Zero means no timeout.
	Timeout time.Duration

	// RateLimit is the maximum number of requests per second. Zero means unlimited.
	RateLimit int

	// Now is used to evaluate token expiry. Defaults to time.Now.
	Now func() time.Time
}

type Client struct {
	baseURL *url.URL
	limiter ratelimit.Limiter
	Config
}

func New(baseURL string, config ...Config) (*Client, error) {
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't parse base url")
	}
	if parsedBaseURL.Scheme == "" || parsedBaseURL.Host == "" {
		return nil, errors.Errorf("base url must be absolute, got %q", baseURL)
	}
	var cf Config
	if len(config) > 0 {
		cf = config[0]
	}
	headers := map[string]string{
		HeaderAccept:      MIMEApplicationJSON,
		HeaderContentType: MIMEApplicationJSON,
	}
	for k, v := range cf.Headers {
		headers[k] = v
	}
	cf.Headers = headers
	if cf.Now == nil {
		cf.Now = time.Now
	}
	limiter := ratelimit.NewUnlimited()
	if cf.RateLimit > 0 {
		limiter = ratelimit.New(cf.RateLimit)
	}
	return &Client{
		baseURL: parsedBaseURL,
		limiter: limiter,
		Config:  cf,
	}, nil
}

type RequestOptions struct {
	path      string
	method    string
	Body      []byte
	Query     url.Values
	Header    map[string]string
	FormData  url.Values
	Multipart *Multipart

	// Operation labels the request in metrics. Defaults to "other".
	Operation string
}

type HttpResponse struct {
	URL string
	fasthttp.Response
}

// IsSuccess reports whether the response has a 2xx status code.
func (r *HttpResponse) IsSuccess() bool {
	code := r.StatusCode()
	return code >= 200 && code < 300
}

// IsJSON reports whether the response declares a JSON body.
func (r *HttpResponse) IsJSON() bool {
	mediaType, _, err := mime.ParseMediaType(string(r.Header.ContentType()))
	return err == nil && mediaType == MIMEApplicationJSON
}

func (r *HttpResponse) UnmarshalBody(out any) error {
	body, err := r.BodyUncompressed()
	if err != nil {
		return errors.Wrapf(err, "can't uncompress body from %v", r.URL)
	}
	if r.IsJSON() {
		if err := json.Unmarshal(body, out); err != nil {
			return errors.Wrapf(err, "can't unmarshal json body from %s, %q", r.URL, string(body))
		}
		return nil
	}
	if strings.HasPrefix(strings.ToLower(string(r.Header.ContentType())), "text/plain") {
		return errors.Errorf("can't unmarshal plain text %q", string(body))
	}
	return errors.Errorf("unsupported content type: %s, contents: %v", r.Header.ContentType(), string(r.Body()))
}

func (h *Client) request(ctx context.Context, reqOptions RequestOptions) (*HttpResponse, error) {
	start := time.Now()
	req := fasthttp.AcquireRequest()
	req.Header.SetMethod(reqOptions.method)
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	if h.Auth != nil {
		for k, v := range h.Auth.AuthHeaders() {
			req.Header.Set(k, v)
		}
	}
	for k, v := range headersFromContext(ctx) {
		req.Header.Set(k, v)
	}
	for k, v := range reqOptions.Header {
		req.Header.Set(k, v)
	}
	h.stripExpiredAuthorization(ctx, req)

	// reqOptions.path is already escaped by the caller
	parsedUrl := h.BaseURL().JoinPath(reqOptions.path)
	parsedUrl.RawQuery = reqOptions.Query.Encode()

	url := parsedUrl.String()
	req.SetRequestURI(url)
	req.URI().DisablePathNormalizing = true
	switch {
	case reqOptions.Multipart != nil:
		body, contentType, err := reqOptions.Multipart.Encode()
		if err != nil {
			fasthttp.ReleaseRequest(req)
			return nil, errors.WithStack(err)
		}
		req.Header.SetContentType(contentType)
		req.SetBody(body)
	case reqOptions.Body != nil:
		req.Header.SetContentType(MIMEApplicationJSON)
		req.SetBody(reqOptions.Body)
	case reqOptions.FormData != nil:
		req.Header.SetContentType("application/x-www-form-urlencoded")
		req.SetBodyString(reqOptions.FormData.Encode())
	}

	operation := reqOptions.Operation
	if operation == "" {
		operation = "other"
	}

	if err := h.wait(ctx); err != nil {
		fasthttp.ReleaseRequest(req)
		return nil, errors.Wrapf(err, "url: %s", url)
	}
	resp := fasthttp.AcquireResponse()
	startDo := time.Now()

	defer func() {
		metrics.OutboundRequests.WithLabelValues(operation, reqOptions.method, metrics.StatusClass(resp.StatusCode())).Inc()
		metrics.OutboundDuration.WithLabelValues(operation, reqOptions.method).Observe(time.Since(startDo).Seconds())

		if h.Debug {
			logger := logger.With(
				slog.String("method", reqOptions.method),
				slog.String("url", url),
				slog.String("operation", operation),
				slog.Duration("duration", time.Since(start)),
				slog.Duration("latency", time.Since(startDo)),
				slog.Int("req_header_size", len(req.Header.Header())),
				slog.Int("req_content_length", req.Header.ContentLength()),
				slog.Int("status_code", resp.StatusCode()),
				slog.String("resp_content_type", string(resp.Header.ContentType())),
				slog.Int("resp_content_length", len(resp.Body())),
			)
			logger.InfoContext(ctx, "Finished make request", slog.String("package", "httpclient"))
		}

		fasthttp.ReleaseResponse(resp)
		fasthttp.ReleaseRequest(req)
	}()

	if err := h.do(ctx, req, resp); err != nil {
		return nil, errors.Wrapf(err, "url: %s", url)
	}

	httpResponse := HttpResponse{
		URL: url,
	}
	resp.CopyTo(&httpResponse.Response)

	return &httpResponse, nil
}

// wait takes a rate-limit slot. A request whose ctx ended while queued is not sent.
func (h *Client) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	h.limiter.Take()
	return errors.WithStack(ctx.Err())
}

func (h *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		return errors.WithStack(fasthttp.DoDeadline(req, resp, deadline))
	}
	if h.Timeout > 0 {
		return errors.WithStack(fasthttp.DoTimeout(req, resp, h.Timeout))
	}
	return errors.WithStack(fasthttp.Do(req, resp))
}

// stripExpiredAuthorization removes a bearer token that is already expired or can't be decoded.
// The signature is not verified; the server stays responsible for rejecting bad tokens.
func (h *Client) stripExpiredAuthorization(ctx context.Context, req *fasthttp.Request) {
	value := strings.TrimSpace(string(req.Header.Peek(HeaderAuthorization)))
	if value == "" {
		return
	}
	token := value
	if len(value) >= len("Bearer ") && strings.EqualFold(value[:len("Bearer ")], "Bearer ") {
		token = strings.TrimSpace(value[len("Bearer "):])
	}
	if !jwtutils.IsExpired(token, h.Now()) {
		return
	}
	req.Header.Del(HeaderAuthorization)
	metrics.AuthHeaderStripped.Inc()
	logger.DebugContext(ctx, "Removed expired authorization header", slog.String("package", "httpclient"))
}

// BaseURL returns the cloned base URL of the client.
func (h *Client) BaseURL() *url.URL {
	u := *h.baseURL
	return &u
}

func (h *Client) Do(ctx context.Context, method, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	reqOptions.path = path
	reqOptions.method = method
	return h.request(ctx, reqOptions)
}

func (h *Client) Get(ctx context.Context, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	reqOptions.path = path
	reqOptions.method = fasthttp.MethodGet
	return h.request(ctx, reqOptions)
}

func (h *Client) Post(ctx context.Context, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	reqOptions.path = path
	reqOptions.method = fasthttp.MethodPost
	return h.request(ctx, reqOptions)
}
