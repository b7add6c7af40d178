package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-json"

	"github.com/vayload/contact-validator/config"
	"github.com/vayload/contact-validator/internal/server"
	"github.com/vayload/contact-validator/internal/shared/container"
	"github.com/vayload/contact-validator/pkg/logger"
	"github.com/vayload/contact-validator/pkg/operator"
	"github.com/vayload/contact-validator/pkg/validation"
)

var (
	version = "dev"
	commit  = "unknown"
)

// CLI is the top-level command structure for contactcheck.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Serve   ServeCmd         `cmd:"" help:"Run the validation HTTP server."`
	Email   CheckCmd         `cmd:"" help:"Validate an email address and print the result."`
	Phone   CheckCmd         `cmd:"" help:"Validate a US phone number and print the result."`
}

// ServeCmd runs the HTTP endpoints until interrupted.
type ServeCmd struct {
	Config string `help:"Path to a TOML or YAML config file." type:"path" env:"CONTACT_VALIDATOR_CONFIG"`
}

func (c *ServeCmd) Run() error {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("serve: loading config: %w", err)
	}

	logger.Init(logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
		Console:    cfg.Log.Console,
		Redact:     cfg.Log.Redact,
	})
	log := logger.Get().With(logger.Fields{"version": version, "commit": commit})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := container.New(ctx)
	defer func() {
		if err := registry.Flush(); err != nil {
			log.Error(err, logger.Fields{"context": "container flush"})
		}
	}()

	server.Register(registry, cfg, log)
	srv, err := server.New(registry, version)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	return srv.Run(ctx)
}

// CheckCmd validates one value without starting the server.
type CheckCmd struct {
	Value string `arg:"" optional:"" help:"Value to validate."`
}

func (c *CheckCmd) check(v validation.Validator, out io.Writer) (bool, error) {
	result := v.Validate(c.Value)
	if err := json.NewEncoder(out).Encode(result); err != nil {
		return false, err
	}
	return result.IsValid, nil
}

func run(args []string, stdout io.Writer) (int, error) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("contactcheck"),
		kong.Description("Validate customer email addresses and US phone numbers."),
		kong.Vars{"version": fmt.Sprintf("%s (%s)", version, commit)},
		kong.Writers(stdout, os.Stderr),
	)
	if err != nil {
		return 2, err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return 2, err
	}

	switch kctx.Command() {
	case "email", "email <value>":
		ok, err := cli.Email.check(validation.EmailValidator{}, stdout)
		return operator.When(ok, 0, 1), err
	case "phone", "phone <value>":
		ok, err := cli.Phone.check(validation.PhoneValidator{}, stdout)
		return operator.When(ok, 0, 1), err
	}

	if err := kctx.Run(); err != nil {
		return 1, err
	}
	return 0, nil
}

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "contactcheck:", err)
	}
	os.Exit(code)
}
