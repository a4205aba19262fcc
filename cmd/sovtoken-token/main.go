// Command sovtoken-token issues bearer tokens that name a submitter DID,
// for operators and tests calling the payment API.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"sovtoken-payments/config"
	"sovtoken-payments/internal/core/payload"
	"sovtoken-payments/internal/service"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "sovtoken-token",
		Usage:     "issue a payment API token for a submitter DID",
		ArgsUsage: "<submitter-did>",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the service config file",
			},
			&cli.DurationFlag{
				Name:  "expiry",
				Usage: "token lifetime; defaults to jwt.expiry",
			},
			&cli.BoolFlag{
				Name:  "with-expiry",
				Usage: "print the expiry time after the token",
			},
		},
		Action: issue,
	}
}

func issue(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one submitter DID is required", 2)
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	parser := payload.NewParser(cfg.Payment.Policy())
	did, err := parser.ParseSubmitter(c.Args().First())
	if err != nil {
		return cli.Exit(err, 2)
	}

	expiry := cfg.JWT.Expiry
	if c.IsSet("expiry") {
		expiry = c.Duration("expiry")
	}

	token, expiresAt, err := service.NewJWTTokenService(cfg.JWT.Secret, expiry, cfg.JWT.Issuer).Generate(did)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintln(c.App.Writer, token)
	if c.Bool("with-expiry") {
		fmt.Fprintln(c.App.Writer, expiresAt.UTC().Format(time.RFC3339))
	}
	return nil
}
