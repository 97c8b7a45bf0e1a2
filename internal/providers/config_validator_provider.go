package providers

import (
	"crmdigest/internal/structures"
	"fmt"
	"regexp"
	"time"

	"github.com/gookit/validate"
	"github.com/robfig/cron/v3"
)

var unixPathRe = regexp.MustCompile(`^(/[^/\x00]+)+/?$|^/$`)

type CnfValidatorInterface interface {
	Validate() error
}

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) CnfValidatorInterface {
	return &CnfValidator{conf: conf}
}

func (c *CnfValidator) Validate() error {
	v := validate.Struct(c.conf)
	v.StopOnError = true

	v.AddValidator("unixPath", func(val any) bool {
		s, ok := val.(string)
		return ok && unixPathRe.MatchString(s)
	})
	v.AddValidator("timezone", func(val any) bool {
		s, ok := val.(string)
		if !ok || s == "" {
			return false
		}
		_, err := time.LoadLocation(s)
		return err == nil
	})
	v.AddValidator("cronSpec", func(val any) bool {
		s, ok := val.(string)
		if !ok {
			return false
		}
		_, err := cron.ParseStandard(s)
		return err == nil
	})

	if !v.Validate() {
		return v.Errors
	}

	for _, r := range c.conf.Mail.Recipients {
		if !validate.IsEmail(r) {
			return fmt.Errorf("mail.recipients: %q is not a valid email", r)
		}
	}
	return nil
}
