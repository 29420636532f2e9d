package email

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/johnquangdev/client-meetings/pkg/config"
)

const apiKeyPrefix = "re_"

// ValidateConfig checks the email settings before a send is attempted
func ValidateConfig(cfg config.EmailConfig) error {
	if cfg.APIKey == "" {
		return errors.New("RESEND_API_KEY is not set")
	}
	if !strings.HasPrefix(cfg.APIKey, apiKeyPrefix) {
		return fmt.Errorf("RESEND_API_KEY must start with %q", apiKeyPrefix)
	}
	if cfg.SenderEmail == "" {
		return errors.New("SENDER_EMAIL is not set")
	}
	if _, err := mail.ParseAddress(cfg.SenderEmail); err != nil {
		return fmt.Errorf("SENDER_EMAIL %q is not a valid address", cfg.SenderEmail)
	}
	return nil
}
