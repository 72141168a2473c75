package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

const defaultMaxBodyBytes = 64 * 1024

// ResponseData captures the response details and duration.
type ResponseData struct {
	Status    int
	Headers   http.Header
	BodyBytes []byte
	Duration  time.Duration
}

// Executor executes HTTP requests with timing.
type Executor struct {
	client       *http.Client
	timeout      time.Duration
	maxBodyBytes int64
}

// ExecutorOption allows configuring an Executor.
type ExecutorOption func(*Executor)

// WithTimeout sets the default timeout applied to requests.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) { e.timeout = timeout }
}

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = client }
}

// WithMaxBodyBytes caps how much of a reply is read.
func WithMaxBodyBytes(n int64) ExecutorOption {
	return func(e *Executor) { e.maxBodyBytes = n }
}

// NewExecutor builds an Executor. Without WithClient the client's transport
// timeouts are derived from the executor timeout.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		timeout:      5 * time.Second,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.client == nil {
		e.client = New(ConfigFor(e.timeout))
	}
	return e
}

// Do executes the request and returns response data plus duration.
func (e *Executor) Do(ctx context.Context, req *http.Request) (ResponseData, error) {
	start := time.Now()
	ctxWithTimeout := ctx
	cancel := func() {}
	if e.timeout > 0 {
		ctxWithTimeout, cancel = context.WithTimeout(ctx, e.timeout)
	}
	defer cancel()

	resp, err := e.client.Do(req.WithContext(ctxWithTimeout))
	duration := time.Since(start)
	if err != nil {
		return ResponseData{Duration: duration}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBodyBytes))
	if err != nil {
		return ResponseData{Duration: duration}, err
	}

	return ResponseData{
		Status:    resp.StatusCode,
		Headers:   resp.Header.Clone(),
		BodyBytes: body,
		Duration:  time.Since(start),
	}, nil
}

// GetJSON issues a GET and returns the body of a 2xx reply. Transport
// failures are KindNetwork; other statuses are KindHTTPStatus wrapping a
// *domain.StatusError.
func (e *Executor) GetJSON(ctx context.Context, op, rawURL string) ([]byte, error) {
	req, err := NewGetRequest(ctx, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.Do(ctx, req)
	if err != nil {
		return nil, &domain.OpError{
			Op:   op,
			Kind: domain.KindNetwork,
			Path: rawURL,
			Err:  err,
		}
	}

	if resp.Status/100 != 2 {
		return nil, &domain.OpError{
			Op:   op,
			Kind: domain.KindHTTPStatus,
			Path: rawURL,
			Err: &domain.StatusError{
				Code:   resp.Status,
				Status: http.StatusText(resp.Status),
			},
		}
	}

	return resp.BodyBytes, nil
}
