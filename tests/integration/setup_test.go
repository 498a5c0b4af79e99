package integration

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/medicheck/medicheck/internal/application/handlers"
	"github.com/medicheck/medicheck/internal/domain/ports"
	"github.com/medicheck/medicheck/internal/domain/services"
	"github.com/medicheck/medicheck/internal/infrastructure/config"
	"github.com/medicheck/medicheck/internal/infrastructure/httpapi"
	"github.com/medicheck/medicheck/internal/infrastructure/llm"
	"github.com/medicheck/medicheck/internal/infrastructure/memory"
	"github.com/medicheck/medicheck/internal/infrastructure/tools"
)

var (
	testServer *httptest.Server
	testClient ports.LLMClient
)

// TestMain runs against the configured live provider. It is skipped unless
// INTEGRATION_TEST=1 and a provider key is available.
func TestMain(m *testing.M) {
	if os.Getenv("INTEGRATION_TEST") != "1" {
		os.Exit(0)
	}

	cfg, err := config.Load(os.Getenv("MEDICHECK_CONFIG"))
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "skipping integration tests: %v\n", err)
		os.Exit(0)
	}

	testClient, err = llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		panic("failed to create llm client: " + err.Error())
	}

	store, err := memory.NewSessionStore(cfg.History.MaxSessions, cfg.History.MaxEntries)
	if err != nil {
		panic("failed to create store: " + err.Error())
	}
	bank, _ := tools.DefaultBank(cfg.Validation.DisabledTools)

	validation := services.NewValidationService(testClient, bank, store, services.ValidationOptions{
		MaxTextLength: cfg.Validation.MaxTextLength,
	}, nil)
	chat := services.NewChatService(testClient, store, nil)
	srv := httpapi.NewServer(handlers.NewValidateHandler(validation), handlers.NewChatHandler(chat), cfg.Server, nil)
	testServer = httptest.NewServer(srv.Routes())

	code := m.Run()

	testServer.Close()
	if closer, ok := testClient.(io.Closer); ok {
		_ = closer.Close()
	}

	os.Exit(code)
}
