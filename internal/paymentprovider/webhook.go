package paymentprovider

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidSignature заголовок подписи не соответствует телу запроса.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrSignatureExpired метка времени подписи вне допустимого окна.
	ErrSignatureExpired = errors.New("webhook signature timestamp outside tolerance")
)

// ComputeSignature возвращает hex HMAC-SHA256 от "<timestamp>.<payload>".
func ComputeSignature(payload []byte, timestamp int64, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookSignature проверяет заголовок вида "t=<unix>,v1=<hex>[,v1=<hex>...]".
// Подходит любая из подписей v1. Нулевая tolerance отключает проверку времени.
func VerifyWebhookSignature(payload []byte, header, secret string, tolerance time.Duration, now time.Time) error {
	if header == "" || secret == "" {
		return ErrInvalidSignature
	}

	var (
		timestamp  int64
		hasTime    bool
		signatures []string
	)
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return ErrInvalidSignature
			}
			timestamp, hasTime = ts, true
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if !hasTime || len(signatures) == 0 {
		return ErrInvalidSignature
	}

	expected := []byte(ComputeSignature(payload, timestamp, secret))
	matched := false
	for _, sig := range signatures {
		if hmac.Equal(expected, []byte(sig)) {
			matched = true
			break
		}
	}
	if !matched {
		return ErrInvalidSignature
	}

	if tolerance > 0 {
		age := now.Sub(time.Unix(timestamp, 0))
		if age > tolerance || age < -tolerance {
			return ErrSignatureExpired
		}
	}
	return nil
}

// ParseEvent проверяет подпись и разбирает тело вебхука.
func ParseEvent(payload []byte, header, secret string, tolerance time.Duration, now time.Time) (*Event, error) {
	const op = "paymentprovider.ParseEvent"
	if err := VerifyWebhookSignature(payload, header, secret, tolerance, now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &event, nil
}
