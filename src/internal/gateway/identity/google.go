package identity

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"skillswitch-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

const DefaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

var (
	ErrInvalidIDToken = errors.New("identity token rejected")
	ErrUnavailable    = errors.New("identity provider unavailable")
)

// Identity is what a verified third-party token tells us about the caller.
type Identity struct {
	Subject  string
	Email    string
	Name     string
	PhotoURL string
}

type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

type Config struct {
	TokenInfoURL string
	ClientID     string
	Timeout      time.Duration
}

type GoogleVerifier struct {
	cfg Config
	log log.Log
}

// NewGoogleVerifier returns nil when no OAuth client id is configured.
func NewGoogleVerifier(cfg Config, logger log.Log) *GoogleVerifier {
	if cfg.ClientID == "" {
		return nil
	}
	if cfg.TokenInfoURL == "" {
		cfg.TokenInfoURL = DefaultTokenInfoURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &GoogleVerifier{cfg: cfg, log: logger}
}

type tokenInfo struct {
	Issuer        string `json:"iss"`
	Audience      string `json:"aud"`
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (g *GoogleVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(idToken) == "" {
		return nil, ErrInvalidIDToken
	}

	agent := fiber.Get(g.cfg.TokenInfoURL + "?id_token=" + url.QueryEscape(idToken))
	agent.Timeout(g.cfg.Timeout)
	if err := agent.Parse(); err != nil {
		return nil, err
	}

	var info tokenInfo
	code, _, errs := agent.Struct(&info)
	if code >= fiber.StatusInternalServerError || (len(errs) > 0 && code == 0) {
		msg := fmt.Sprintf("status %d", code)
		if len(errs) > 0 {
			msg = errs[0].Error()
		}
		g.log.Error("gateway/identity", msg, "Verify", "")
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, msg)
	}
	if code != fiber.StatusOK || len(errs) > 0 {
		return nil, ErrInvalidIDToken
	}

	if info.Audience != g.cfg.ClientID || info.Subject == "" {
		return nil, ErrInvalidIDToken
	}
	if info.Issuer != "accounts.google.com" && info.Issuer != "https://accounts.google.com" {
		return nil, ErrInvalidIDToken
	}

	id := &Identity{
		Subject:  info.Subject,
		Name:     info.Name,
		PhotoURL: info.Picture,
	}
	if info.EmailVerified == "true" {
		id.Email = info.Email
	}
	return id, nil
}
