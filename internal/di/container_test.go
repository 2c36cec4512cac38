package di

import (
	"testing"
	"testing/fstest"

	"github.com/thegardencompany/storefront/internal/runtimeconfig"
)

func testConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Catalog.Driver = "memory"
	cfg.Catalog.DSN = ""
	return cfg
}

func TestDefaultConfigResolvesConsoleLogging(t *testing.T) {
	c, err := NewContainer(testConfig(), WithContentFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	// The out-of-the-box provider is "console"; services must receive a real
	// provider so degradation warnings reach the operator.
	if c.LoggerProvider() == nil {
		t.Fatal("default config left the logger provider unbound")
	}
}

func TestGologgerProviderStillConfigurable(t *testing.T) {
	cfg := testConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "console"

	c, err := NewContainer(cfg, WithContentFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	if c.LoggerProvider() == nil {
		t.Fatal("gologger provider not constructed")
	}
}

func TestUnknownLoggingProviderFailsValidation(t *testing.T) {
	cfg := testConfig()
	cfg.Logging.Provider = "syslog"

	if _, err := NewContainer(cfg, WithContentFS(fstest.MapFS{})); err == nil {
		t.Fatal("expected validation error for unknown provider")
	}
}
