// Package main implements the SSH server that serves the print storefront TUI.
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	gossh "golang.org/x/crypto/ssh"

	"github.com/KriraAI/Print24-frontend/internal/auth"
	"github.com/KriraAI/Print24-frontend/internal/cache"
	"github.com/KriraAI/Print24-frontend/internal/catalog"
	"github.com/KriraAI/Print24-frontend/internal/config"
	"github.com/KriraAI/Print24-frontend/internal/delivery"
	"github.com/KriraAI/Print24-frontend/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config", "err", err)
	}

	if err := ensureHostKey(cfg.SSHHostKeyPath); err != nil {
		log.Fatal("Failed to ensure host key", "err", err)
	}

	// Load allowlist if in allowlist mode
	var allowlist *auth.Allowlist
	if cfg.SSHAuthMode == config.AuthModeAllowlist {
		allowlist, err = auth.Load(cfg.AllowlistPath)
		if err != nil {
			if errors.Is(err, auth.ErrAllowlistNotFound) {
				log.Info("Creating empty allowlist", "path", cfg.AllowlistPath)
				if err := auth.CreateEmpty(cfg.AllowlistPath); err != nil {
					log.Fatal("Failed to create allowlist", "err", err)
				}
				log.Info("Please add your SSH public key to the allowlist and restart")
				os.Exit(1)
			}
			log.Fatal("Failed to load allowlist", "err", err)
		}
		if allowlist.Len() == 0 {
			log.Warn("Allowlist is empty, no connections will be accepted", "path", cfg.AllowlistPath)
		}
		log.Info("Loaded allowlist", "keys", allowlist.Len())
	} else {
		log.Warn("Running in PUBLIC mode, anyone can connect")
	}

	// Catalog client and shared caches
	clientOpts := []catalog.ClientOption{}
	if cfg.CatalogToken != "" {
		clientOpts = append(clientOpts, catalog.WithToken(cfg.CatalogToken))
	}
	client := catalog.NewClient(cfg.CatalogBaseURL, clientOpts...)

	categoriesCache := cache.New[string, []catalog.Category](cfg.CacheTTL)
	productsCache := cache.New[string, []catalog.Product](cfg.CacheTTL)
	productCache := cache.New[string, catalog.Product](cfg.CacheTTL)

	opts := []ssh.Option{
		wish.WithAddress(cfg.SSHAddr),
		wish.WithHostKeyPath(cfg.SSHHostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
				// Each session gets its own delivery estimator; the caches
				// are shared across sessions.
				estimator := delivery.New(cfg.DeliveryLatency)
				model := tui.NewModel(client, estimator, categoriesCache, productsCache, productCache)
				return model, []tea.ProgramOption{tea.WithAltScreen()}
			}),
		),
	}

	if cfg.SSHAuthMode == config.AuthModeAllowlist {
		opts = append(opts, wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			return allowlist.Contains(key)
		}))
	} else {
		// Public mode - accept any public key
		opts = append(opts, wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		}))
	}

	// Always disable password auth
	opts = append(opts, wish.WithPasswordAuth(func(ctx ssh.Context, password string) bool {
		return false
	}))

	server, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal("Failed to create SSH server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Starting SSH server", "addr", cfg.SSHAddr)
	log.Info("Catalog API", "url", cfg.CatalogBaseURL)
	log.Info("Auth mode", "mode", cfg.SSHAuthMode)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("Server error", "err", err)
		}
	}()

	<-done
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Shutdown error", "err", err)
	}
}

// ensureHostKey generates an ED25519 host key if it doesn't exist.
func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	log.Info("Generating new ED25519 host key", "path", path)

	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}

	sshPrivKey, err := gossh.MarshalPrivateKey(privKey, "")
	if err != nil {
		return fmt.Errorf("marshaling private key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(sshPrivKey), 0600); err != nil {
		return fmt.Errorf("writing private key: %w", err)
	}

	sshPubKey, err := gossh.NewPublicKey(pubKey)
	if err != nil {
		return fmt.Errorf("creating public key: %w", err)
	}
	if err := os.WriteFile(path+".pub", gossh.MarshalAuthorizedKey(sshPubKey), 0644); err != nil {
		return fmt.Errorf("writing public key: %w", err)
	}

	return nil
}
