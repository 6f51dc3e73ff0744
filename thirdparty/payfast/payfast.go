// Package payfast builds signed redirect URLs for the PayFast hosted payment
// page and verifies the signature of its ITN callbacks.
package payfast

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"net/url"

	"github.com/go-faster/errors"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/shopspring/decimal"
)

const (
	SignatureField         = "signature"
	DefaultItemName        = "Order Payment"
	StatusField            = "payment_status"
	PaymentIDField         = "m_payment_id"
	ProviderPaymentIDField = "pf_payment_id"
)

var (
	ErrNotConfigured     = errors.New("payfast merchant credentials missing")
	ErrMissingSignature  = errors.New("callback has no signature")
	ErrSignatureMismatch = errors.New("callback signature mismatch")
)

type Client struct {
	merchantID  string
	merchantKey string
	passphrase  string
	processURL  string
	returnURL   string
	cancelURL   string
	notifyURL   string
}

func New(cfg config.PayFastConfig) *Client {
	return &Client{
		merchantID:  cfg.MerchantID,
		merchantKey: cfg.MerchantKey,
		passphrase:  cfg.Passphrase,
		processURL:  cfg.URL,
		returnURL:   cfg.ReturnURL,
		cancelURL:   cfg.CancelURL,
		notifyURL:   cfg.NotifyURL,
	}
}

func (c *Client) Configured() bool {
	return c.merchantID != "" && c.merchantKey != ""
}

// PaymentRequest holds the caller-controlled fields of a redirect. Empty URLs
// fall back to the configured defaults.
type PaymentRequest struct {
	Amount     decimal.Decimal
	ItemName   string
	ReturnURL  string
	CancelURL  string
	MPaymentID string
}

// FormatAmount renders an amount the way the gateway expects: two decimals.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// GenerateSignature returns the MD5 hex digest of the fields sorted by key and
// form-encoded, with the passphrase appended when set. The signature field is
// ignored, so the result does not depend on whether it is already present.
func GenerateSignature(fields map[string]string, passphrase string) string {
	values := make(url.Values, len(fields))
	for k, v := range fields {
		if k == SignatureField {
			continue
		}
		values.Set(k, v)
	}

	payload := values.Encode()
	if passphrase != "" {
		payload += "&passphrase=" + url.QueryEscape(passphrase)
	}

	sum := md5.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// Fields returns the signed field set for a redirect, signature included.
func (c *Client) Fields(req PaymentRequest) (map[string]string, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	fields := map[string]string{
		"merchant_id":  c.merchantID,
		"merchant_key": c.merchantKey,
		"amount":       FormatAmount(req.Amount),
		"item_name":    req.ItemName,
	}
	if fields["item_name"] == "" {
		fields["item_name"] = DefaultItemName
	}
	setIfPresent(fields, "return_url", req.ReturnURL, c.returnURL)
	setIfPresent(fields, "cancel_url", req.CancelURL, c.cancelURL)
	setIfPresent(fields, "notify_url", "", c.notifyURL)
	setIfPresent(fields, PaymentIDField, req.MPaymentID, "")

	fields[SignatureField] = GenerateSignature(fields, c.passphrase)
	return fields, nil
}

// BuildURL returns the gateway redirect URL carrying the signed fields.
func (c *Client) BuildURL(req PaymentRequest) (string, error) {
	fields, err := c.Fields(req)
	if err != nil {
		return "", err
	}

	base, err := url.Parse(c.processURL)
	if err != nil {
		return "", errors.Wrap(err, "parse process url")
	}

	values := make(url.Values, len(fields))
	for k, v := range fields {
		values.Set(k, v)
	}
	base.RawQuery = values.Encode()
	return base.String(), nil
}

// Verify recomputes the signature over the received fields and compares it
// with the received one.
func (c *Client) Verify(fields map[string]string) error {
	received := fields[SignatureField]
	if received == "" {
		return ErrMissingSignature
	}

	expected := GenerateSignature(fields, c.passphrase)
	if subtle.ConstantTimeCompare([]byte(received), []byte(expected)) != 1 {
		return ErrSignatureMismatch
	}
	return nil
}

func setIfPresent(fields map[string]string, key, value, fallback string) {
	if value == "" {
		value = fallback
	}
	if value != "" {
		fields[key] = value
	}
}
