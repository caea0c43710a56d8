// Command verifyemail issues and checks signed email verification links.
//
// The signing secret is read from VERIFY_EMAIL_SIGNING_SECRET (or a .env
// file), never from flags.
//
//	verifyemail --route verify_email=https://app.example.com/verify/email \
//	    generate verify_email --user 42 --email alice@example.com
//
//	verifyemail --route verify_email=https://app.example.com/verify/email \
//	    check 'https://app.example.com/verify/email?expires=...&signature=...' \
//	    --user 42 --email alice@example.com
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/verifyemail/pkg/logger"
	"github.com/dmitrymomot/verifyemail/pkg/routes"
	"github.com/dmitrymomot/verifyemail/pkg/verifyemail"
)

// errRejected makes check exit non-zero without printing a second message.
var errRejected = errors.New("link rejected")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

type globalFlags struct {
	routes    map[string]string
	envFiles  []string
	logLevel  string
	logFormat string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var g globalFlags

	cmd := &cobra.Command{
		Use:           "verifyemail",
		Short:         "Issue and check signed email verification links",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	cmd.PersistentFlags().StringToStringVar(&g.routes, "route", nil, "route table entry name=absolute-url (repeatable)")
	cmd.PersistentFlags().StringSliceVar(&g.envFiles, "env-file", nil, ".env files to load before reading the environment")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", string(logger.FormatText), "log format: text or json")

	cmd.AddCommand(newGenerateCmd(&g), newCheckCmd(&g))

	return cmd.ExecuteContext(ctx)
}

func (g *globalFlags) helper(stderr io.Writer) (*verifyemail.Helper, *slog.Logger, error) {
	level, err := logger.ParseLevel(g.logLevel)
	if err != nil {
		return nil, nil, err
	}
	format := logger.Format(g.logFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return nil, nil, fmt.Errorf("invalid log format %q", g.logFormat)
	}
	log := logger.New(
		logger.WithOutput(stderr),
		logger.WithFormat(format),
		logger.WithLevel(level),
		logger.WithAttr(slog.String("service", "verifyemail")),
	)

	cfg, err := verifyemail.LoadConfig(g.envFiles...)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("configuration loaded", slog.Any("config", cfg))

	if len(g.routes) == 0 {
		return nil, nil, errors.New("at least one --route is required")
	}
	resolver, err := routes.NewStatic(g.routes)
	if err != nil {
		return nil, nil, err
	}

	h, err := verifyemail.NewFromConfig(cfg, resolver, verifyemail.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	return h, log, nil
}

func newGenerateCmd(g *globalFlags) *cobra.Command {
	var (
		userID string
		email  string
		lang   string
		params map[string]string
	)

	cmd := &cobra.Command{
		Use:   "generate ROUTE",
		Short: "Print a signed verification URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("invalid --lang: %w", err)
			}
			h, log, err := g.helper(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			sc, err := h.GenerateSignature(args[0], userID, email, params)
			if err != nil {
				return err
			}
			log.Info("signed url generated",
				logger.Component("cli"),
				logger.Route(args[0]),
				logger.UserID(userID),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sc.SignedURL())
			fmt.Fprintf(out, "expires at: %s (in %s)\n", sc.ExpiresAt().UTC().Format(time.RFC3339), sc.ExpirationMessage(tag))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user identifier")
	cmd.Flags().StringVar(&email, "email", "", "email address to verify")
	cmd.Flags().StringVar(&lang, "lang", "en", "language of the expiry message")
	cmd.Flags().StringToStringVar(&params, "param", nil, "extra signed query parameter key=value (repeatable)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newCheckCmd(g *globalFlags) *cobra.Command {
	var (
		userID string
		email  string
	)

	cmd := &cobra.Command{
		Use:   "check URL",
		Short: "Check a signed verification URL; exits non-zero unless valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, _, err := g.helper(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			res := h.Verify(args[0], userID, email)
			fmt.Fprintln(cmd.OutOrStdout(), res)
			if res != verifyemail.ResultValid {
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "identifier of the authenticated user")
	cmd.Flags().StringVar(&email, "email", "", "email address the user is confirming")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
