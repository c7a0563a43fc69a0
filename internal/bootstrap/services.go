package bootstrap

import (
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kylianerp/onboarding-portal/config"
	"github.com/kylianerp/onboarding-portal/internal/adapters/erp"
	redisstore "github.com/kylianerp/onboarding-portal/internal/adapters/redis"
	"github.com/kylianerp/onboarding-portal/internal/adapters/smtp"
	"github.com/kylianerp/onboarding-portal/internal/ports"
	"github.com/kylianerp/onboarding-portal/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth    *service.AuthService
	Roster  *service.RosterService
	Offers  *service.OfferService
	Support *service.SupportService
	Prefs   ports.PreferenceStore

	// ERP is exposed for file URL resolution in the HTTP layer.
	ERP *erp.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient goredis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires adapters and services from configuration.
func NewServices(deps *ServiceDeps) ServiceContainer {
	cfg := deps.Config

	erpClient := erp.NewClient(erp.Options{
		BaseURL:     cfg.ERP.BaseURL,
		FileBaseURL: cfg.ERP.FileBaseURL,
		Timeout:     cfg.ERP.Timeout,
		Logger:      deps.Logger,
	})

	sessions := redisstore.NewSessionStore(deps.RedisClient)
	rosters := redisstore.NewRosterStore(deps.RedisClient)
	prefs := redisstore.NewPreferenceStore(deps.RedisClient)
	offers := redisstore.NewOfferStore(deps.RedisClient)

	auth := service.NewAuthService(service.AuthServiceOptions{
		API:        erpClient,
		Sessions:   sessions,
		Offers:     offers,
		SessionTTL: cfg.HTTP.SessionTTL,
		Logger:     deps.Logger,
	})
	roster := service.NewRosterService(service.RosterServiceOptions{
		API:               erpClient,
		Cache:             rosters,
		DefaultEmployeeID: cfg.ERP.DefaultEmployeeID,
		DefaultCompanyID:  cfg.ERP.DefaultCompanyID,
		Logger:            deps.Logger,
	})
	offerSvc := service.NewOfferService(service.OfferServiceOptions{
		API:    erpClient,
		Offers: offers,
		Logger: deps.Logger,
	})
	support := service.NewSupportService(service.SupportServiceOptions{
		Mailer: newMailSender(cfg.Support, deps.Logger),
		Logger: deps.Logger,
	})

	return ServiceContainer{
		Auth:    auth,
		Roster:  roster,
		Offers:  offerSvc,
		Support: support,
		Prefs:   prefs,
		ERP:     erpClient,
	}
}

// newMailSender picks SMTP delivery when a relay is configured and the
// logging fallback otherwise, so development runs work without a mail host.
//
//nolint:ireturn // callers only need the MailSender port.
func newMailSender(cfg config.SupportConfig, logger *slog.Logger) ports.MailSender {
	if !cfg.Enabled() {
		if logger != nil {
			logger.Warn("no SMTP host configured; support tickets will be logged only")
		}
		return &smtp.LogMailer{Logger: logger}
	}
	return smtp.NewMailer(smtp.Options{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
		Inbox:    cfg.Inbox,
		Logger:   logger,
	})
}
