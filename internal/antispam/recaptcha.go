package antispam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const RecaptchaEndpoint = "https://www.google.com/recaptcha/api/siteverify"

// Recaptcha verifies g-recaptcha-response tokens against Google.
type Recaptcha struct {
	Endpoint string
	Client   *http.Client
}

func NewRecaptcha() *Recaptcha {
	return &Recaptcha{
		Endpoint: RecaptchaEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type recaptchaReply struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (r *Recaptcha) Verify(ctx context.Context, secret, response, remoteIP string) (bool, error) {
	if response == "" {
		return false, nil
	}
	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", response)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("recaptcha request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("recaptcha status %d", resp.StatusCode)
	}
	var reply recaptchaReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return false, fmt.Errorf("decode recaptcha reply: %w", err)
	}
	return reply.Success, nil
}
