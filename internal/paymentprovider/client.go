// Package paymentprovider клиент Stripe-совместимого API платёжных намерений
// и проверка подписи его вебхуков.
package paymentprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ProviderError ответ провайдера с кодом вне 2xx.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider: status %d: %s", e.StatusCode, e.Message)
}

// Client клиент API платёжных намерений.
type Client struct {
	secretKey  string
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт клиент. Пустой apiURL означает боевой адрес Stripe.
func NewClient(secretKey, apiURL string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = "https://api.stripe.com/v1"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		secretKey:  secretKey,
		apiURL:     strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, form url.Values) (*http.Request, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (*PaymentIntent, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: msg}
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// CreateIntent создаёт платёжное намерение.
func (c *Client) CreateIntent(ctx context.Context, p CreateIntentParams) (*PaymentIntent, error) {
	const op = "paymentprovider.CreateIntent"

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(p.Amount, 10))
	form.Set("currency", p.Currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	for k, v := range p.Metadata {
		form.Set("metadata["+k+"]", v)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/payment_intents", form)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	intent, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return intent, nil
}

// RetrieveIntent возвращает текущее состояние платёжного намерения.
func (c *Client) RetrieveIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	const op = "paymentprovider.RetrieveIntent"

	req, err := c.newRequest(ctx, http.MethodGet, "/payment_intents/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	intent, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return intent, nil
}

// ConfirmIntent подтверждает платёжное намерение с указанным способом оплаты.
func (c *Client) ConfirmIntent(ctx context.Context, id, paymentMethodID string) (*PaymentIntent, error) {
	const op = "paymentprovider.ConfirmIntent"

	form := url.Values{}
	form.Set("payment_method", paymentMethodID)

	req, err := c.newRequest(ctx, http.MethodPost, "/payment_intents/"+url.PathEscape(id)+"/confirm", form)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	intent, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return intent, nil
}
