// Command bittrex-get sends a single GET request to the Bittrex REST API
// and prints the raw response body.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/banky/go-bittrex/constants"
	"github.com/banky/go-bittrex/credentials"
	"github.com/banky/go-bittrex/rest"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

var errNoTarget = errors.New("a url argument, --markets or --balances is required")

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger()

	if err := newApp(logger).Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("request failed")
	}
}

func newApp(logger zerolog.Logger) *cli.App {
	return &cli.App{
		Name:      "bittrex-get",
		Usage:     "send a GET request to the Bittrex API and print the response body",
		ArgsUsage: "[url]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "sign",
				Usage: "append apikey and nonce and send the apisign header",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "abort the request after this long (0 waits forever)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file consulted after the machine and user credential stores",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Value: constants.MAINNET_API_URL,
				Usage: "api root used by --markets and --balances",
			},
			&cli.BoolFlag{
				Name:  "markets",
				Usage: "fetch the public market list",
			},
			&cli.BoolFlag{
				Name:  "balances",
				Usage: "fetch account balances (always signed)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log request tracing to stderr",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, logger)
		},
	}
}

func run(c *cli.Context, logger zerolog.Logger) error {
	target, sign, err := targetURL(
		c.String("base-url"),
		c.Bool("markets"),
		c.Bool("balances"),
		c.Args().First(),
	)
	if err != nil {
		return err
	}
	sign = sign || c.Bool("sign")

	level := zerolog.InfoLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}

	sources := append(credentials.DefaultSources(), credentials.NewEnvSource(c.String("env-file")))
	client := rest.New(
		rest.WithResolver(credentials.NewResolver(sources...)),
		rest.WithTimeout(c.Duration("timeout")),
		rest.WithLogger(logger.Level(level)),
	)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	body, err := client.Get(ctx, target, sign)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, body)
	return nil
}

// targetURL picks the request url and whether the shortcut that produced
// it must be signed.
func targetURL(baseURL string, markets, balances bool, arg string) (string, bool, error) {
	baseURL = strings.TrimRight(baseURL, "/")

	switch {
	case markets && balances:
		return "", false, errors.New("--markets and --balances are mutually exclusive")
	case markets:
		return baseURL + constants.PUBLIC_MARKETS_PATH, false, nil
	case balances:
		return baseURL + constants.ACCOUNT_BALANCES_PATH, true, nil
	case arg != "":
		return arg, false, nil
	default:
		return "", false, errNoTarget
	}
}
