// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"github.com/doeshing/cfai-go/internal/domain"
	"github.com/doeshing/cfai-go/internal/infrastructure/ai"
	"github.com/doeshing/cfai-go/internal/infrastructure/audit"
	"github.com/doeshing/cfai-go/internal/infrastructure/cloudflare"
	"github.com/doeshing/cfai-go/internal/infrastructure/config"
	"github.com/doeshing/cfai-go/internal/pkg/logger"
	"github.com/doeshing/cfai-go/internal/ports"
	"github.com/doeshing/cfai-go/internal/services"
)

// Container holds the dependency graph. The Cloudflare client and the
// analyzer are built lazily: commands that never touch them (config, audit)
// must keep working without credentials.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Logger       ports.Logger
	Audit        ports.AuditRepository

	client *cloudflare.Client
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	loader := config.NewFileLoader("")
	cfg, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)

	container := &Container{
		Config:       cfg,
		ConfigLoader: loader,
		Logger:       log,
	}

	store, err := audit.NewSQLiteStore(audit.DefaultPath())
	if err != nil {
		log.Warn("audit store unavailable", map[string]interface{}{"error": err.Error()})
	} else {
		container.Audit = store
	}

	return container, nil
}

// ResourceClient returns the Cloudflare client, building it on first use.
func (c *Container) ResourceClient() (*cloudflare.Client, error) {
	if c.client != nil {
		return c.client, nil
	}
	client, err := cloudflare.NewClient(c.Config.Cloudflare)
	if err != nil {
		return nil, err
	}
	c.client = client
	return client, nil
}

// Assistant builds the assistant service around the given confirmation
// prompter.
func (c *Container) Assistant(prompter ports.ConfirmationPrompter) (*services.AssistantService, error) {
	client, err := c.ResourceClient()
	if err != nil {
		return nil, err
	}
	analyzer, err := ai.NewAnalyzer(c.Config, nil)
	if err != nil {
		return nil, err
	}
	return &services.AssistantService{
		Analyzer: analyzer,
		Executor: &services.Executor{Client: client, Prompter: prompter, Logger: c.Logger},
		Audit:    c.Audit,
		Logger:   c.Logger,
	}, nil
}
