package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mealplan/internal/config"
	"mealplan/internal/logging"
	"mealplan/internal/prompt"
	"mealplan/internal/services/catalog"
	"mealplan/internal/store"
	"mealplan/internal/workflow"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withStore runs fn against an opened store and closes it afterwards.
func (c *commandContext) withStore(fn func(*config.Config, *store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	return fn(cfg, st)
}

// withWorkflow builds the full planning stack for the phase commands: it
// takes the single-instance lock, verifies the catalog key, and wires the
// catalog client, prompter, and logger into a manager.
func (c *commandContext) withWorkflow(cmd *cobra.Command, fn func(*workflow.Manager) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireCatalogKey(); err != nil {
		return err
	}

	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another mealplan instance is already running (lock %s)", cfg.LockPath())
	}
	defer func() {
		_ = lock.Unlock()
	}()

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	client, err := catalog.New(cfg.Catalog.APIKey, cfg.Catalog.BaseURL)
	if err != nil {
		return err
	}

	prompter := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	mgr := workflow.NewManager(cfg, st, client, prompter, logger)
	return fn(mgr)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
