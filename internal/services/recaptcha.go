package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/doae178/job-landing-page/internal/models"
)

// ChallengeVerifier checks a client-supplied bot-deterrence token against
// the external verification service.
//
// A nil return means the challenge passed. models.ErrChallengeMissing and
// models.ErrChallengeRejected are caller faults; any other error is a
// transport-level failure.
type ChallengeVerifier interface {
	Verify(ctx context.Context, token string) error
}

type recaptchaVerifier struct {
	secret    string
	verifyURL string
	client    *http.Client
}

func NewRecaptchaVerifier(secret, verifyURL string, timeout time.Duration) ChallengeVerifier {
	return &recaptchaVerifier{
		secret:    secret,
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: timeout},
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (r *recaptchaVerifier) Verify(ctx context.Context, token string) error {
	// An absent token never reaches the network.
	if token == "" {
		return models.ErrChallengeMissing
	}

	params := url.Values{}
	params.Set("secret", r.secret)
	params.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.verifyURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build verification request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach verification service: %w", err)
	}
	defer resp.Body.Close()

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode verification response: %w", err)
	}

	if !result.Success {
		if len(result.ErrorCodes) > 0 {
			return fmt.Errorf("%w: %v", models.ErrChallengeRejected, result.ErrorCodes)
		}
		return models.ErrChallengeRejected
	}

	return nil
}
