package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/moneyledger/internal/domain"
)

// WithdrawalRequest is the body of POST /withdrawals.
type WithdrawalRequest struct {
	ID      domain.WithdrawalID `json:"id"`
	Address domain.Address      `json:"address"`
	Amount  decimal.Decimal     `json:"amount"`
}

// StateResponse is the body of GET /withdrawals/{id}.
type StateResponse struct {
	State domain.WithdrawalState `json:"state"`
}

// HTTPClientConfig configures an HTTPClient.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration // per attempt
	Retry   RetryConfig
	Logger  zerolog.Logger
}

// HTTPClient talks to an external withdrawal processor over REST.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	retrier *Retrier
	logger  zerolog.Logger
}

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(cfg HTTPClientConfig) (*HTTPClient, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid gateway url %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		retrier: NewRetrier(cfg.Retry, cfg.Logger),
		logger:  cfg.Logger,
	}, nil
}

// RequestWithdrawal submits a withdrawal. Transient failures are retried;
// once retries are exhausted domain.ErrGatewayUnavailable is returned.
func (c *HTTPClient) RequestWithdrawal(ctx context.Context, id domain.WithdrawalID, address domain.Address, amount decimal.Decimal) error {
	body, err := json.Marshal(WithdrawalRequest{ID: id, Address: address, Amount: amount})
	if err != nil {
		return fmt.Errorf("encode withdrawal request: %w", err)
	}

	err = c.retrier.Retry(ctx, func() error {
		resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/withdrawals", body)
		if err != nil {
			return err
		}
		defer drain(resp)

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return nil
		case resp.StatusCode == http.StatusConflict:
			return fmt.Errorf("withdrawal %s: %w", id, domain.ErrWithdrawalIDInUse)
		case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusUnprocessableEntity:
			return fmt.Errorf("withdrawal %s: %w: %s", id, domain.ErrWithdrawalRejected, errorMessage(resp))
		case resp.StatusCode >= 500:
			return fmt.Errorf("%w: status %d", errTransient, resp.StatusCode)
		default:
			return fmt.Errorf("%w: unexpected status %d", domain.ErrGatewayUnavailable, resp.StatusCode)
		}
	})

	return unavailable(err)
}

// GetState queries the state of a withdrawal.
func (c *HTTPClient) GetState(ctx context.Context, id domain.WithdrawalID) (domain.WithdrawalState, error) {
	var state domain.WithdrawalState

	err := c.retrier.Retry(ctx, func() error {
		resp, err := c.do(ctx, http.MethodGet, c.baseURL+"/withdrawals/"+url.PathEscape(string(id)), nil)
		if err != nil {
			return err
		}
		defer drain(resp)

		switch {
		case resp.StatusCode == http.StatusOK:
			var out StateResponse
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				return fmt.Errorf("%w: decode state: %w", domain.ErrGatewayUnavailable, err)
			}
			parsed, err := domain.ParseWithdrawalState(string(out.State))
			if err != nil {
				return fmt.Errorf("%w: %w", domain.ErrGatewayUnavailable, err)
			}
			state = parsed
			return nil
		case resp.StatusCode == http.StatusNotFound:
			return fmt.Errorf("withdrawal %s: %w", id, domain.ErrWithdrawalNotFound)
		case resp.StatusCode >= 500:
			return fmt.Errorf("%w: status %d", errTransient, resp.StatusCode)
		default:
			return fmt.Errorf("%w: unexpected status %d", domain.ErrGatewayUnavailable, resp.StatusCode)
		}
	})
	if err != nil {
		return "", unavailable(err)
	}

	return state, nil
}

func (c *HTTPClient) do(ctx context.Context, method, target string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrGatewayUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", errTransient, err)
	}

	return resp, nil
}

// unavailable maps exhausted retries and cancellations to
// domain.ErrGatewayUnavailable; domain errors pass through.
func unavailable(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrGatewayUnavailable),
		errors.Is(err, domain.ErrWithdrawalIDInUse),
		errors.Is(err, domain.ErrWithdrawalRejected),
		errors.Is(err, domain.ErrWithdrawalNotFound):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.ErrGatewayUnavailable, err)
	}
}

func errorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err != nil || body.Error == "" {
		return http.StatusText(resp.StatusCode)
	}

	return body.Error
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
