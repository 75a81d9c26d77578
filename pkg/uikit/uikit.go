// Package uikit builds the non-visual core of a mobile component library:
// navigation state, input validation, onboarding flags, localized messages
// and structured logging.
//
// Everything hangs off an App created by New. There are no package-level
// singletons, so tests and previews can build as many independent contexts
// as they need.
package uikit

import (
	"errors"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/uikit/pkg/uikit/container"
	"github.com/BrandonKowalski/uikit/pkg/uikit/locale"
	"github.com/BrandonKowalski/uikit/pkg/uikit/logging"
	"github.com/BrandonKowalski/uikit/pkg/uikit/onboarding"
	"github.com/BrandonKowalski/uikit/pkg/uikit/router"
)

// Keys under which New registers the core services in App.Services.
var (
	LoggerKey     = container.NewKey[*slog.Logger]("logger")
	LocalizerKey  = container.NewKey[*locale.Localizer]("localizer")
	RouterKey     = container.NewKey[*router.Router]("router")
	OnboardingKey = container.NewKey[*onboarding.Manager]("onboarding")
)

// App is an explicitly constructed application context.
type App struct {
	Logger     *logging.Logger
	Catalog    *locale.Catalog
	Localizer  *locale.Localizer
	Onboarding *onboarding.Manager
	Router     *router.Router
	Services   *container.Container
}

// New builds an App from options. Zero-valued fields take the values from
// DefaultOptions. If onboarding is needed the router starts with the
// onboarding flow presented full screen.
func New(options Options) (*App, error) {
	def := DefaultOptions()
	if options.LogLevel == "" {
		options.LogLevel = def.LogLevel
	}
	if options.Locale == "" {
		options.Locale = def.Locale
	}
	if options.OnboardingVersion == "" {
		options.OnboardingVersion = def.OnboardingVersion
	}

	logger, err := logging.New(logging.Options{
		Path:   options.LogPath,
		Level:  options.LogLevel,
		Format: options.LogFormat,
		Output: options.LogOutput,
	})
	if err != nil {
		return nil, NewConfigError("open_log", err)
	}
	if os.Getenv(DebugEnvVar) != "" {
		logger.SetLevel(slog.LevelDebug)
	}

	app, err := build(options, logger)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	return app, nil
}

func build(options Options, logger *logging.Logger) (*App, error) {
	catalog, err := locale.New()
	if err != nil {
		return nil, NewConfigError("load_translations", err)
	}
	for _, path := range options.TranslationFiles {
		if err := catalog.LoadFile(path); err != nil {
			return nil, NewConfigError("load_translations", err)
		}
	}
	lang := catalog.Match(options.Locale)
	localizer := catalog.Localizer(lang.String())

	var store onboarding.Store
	if options.SettingsPath != "" {
		store = onboarding.NewFileStore(options.SettingsPath)
	} else {
		store = onboarding.NewMemoryStore(onboarding.Flags{})
	}
	manager, err := onboarding.NewManager(store, options.OnboardingVersion, logger.Logger)
	if err != nil {
		return nil, NewConfigError("load_settings", err)
	}

	nav := router.New().WithLogger(logger.Logger)
	if manager.NeedsOnboarding() {
		nav.PresentFullScreen(router.Onboarding{})
	}

	services := container.New()
	err = errors.Join(
		container.Provide(services, LoggerKey, logger.Logger),
		container.Provide(services, LocalizerKey, localizer),
		container.Provide(services, RouterKey, nav),
		container.Provide(services, OnboardingKey, manager),
	)
	if err != nil {
		return nil, NewConfigError("register_services", err)
	}

	logger.Info("uikit initialized",
		"locale", lang.String(),
		"onboarding_version", options.OnboardingVersion,
		"needs_onboarding", manager.NeedsOnboarding(),
	)

	return &App{
		Logger:     logger,
		Catalog:    catalog,
		Localizer:  localizer,
		Onboarding: manager,
		Router:     nav,
		Services:   services,
	}, nil
}

// FinishOnboarding records onboarding as completed for the current version
// and dismisses the onboarding flow.
func (a *App) FinishOnboarding() error {
	if _, ok := a.Router.FullScreen().(router.Onboarding); !ok {
		return ErrOnboardingNotPresented
	}
	if err := a.Onboarding.Complete(); err != nil {
		return err
	}
	a.Router.DismissFullScreen()
	return nil
}

// Close releases the log file.
func (a *App) Close() error {
	return a.Logger.Close()
}
