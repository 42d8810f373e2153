package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/thrasher-corp/gobinance/config"
	"github.com/thrasher-corp/gobinance/encoding/json"
	"github.com/thrasher-corp/gobinance/exchanges/binance"
	"github.com/thrasher-corp/gobinance/log"
	"github.com/urfave/cli/v2"
)

const defaultTimeout = time.Second * 30

type app struct {
	out io.Writer
	au  aurora.Aurora

	configPath     string
	envPath        string
	baseURL        string
	futuresBaseURL string
	timeout        time.Duration
	verbose        bool
	noColour       bool

	client *binance.Client
	cancel context.CancelFunc
}

func newApp(out io.Writer) *cli.App {
	a := &app{out: out, au: aurora.NewAurora(false)}
	cliApp := cli.NewApp()
	cliApp.Name = "binancecli"
	cliApp.Usage = "command line interface for the Binance REST API"
	cliApp.Writer = out
	cliApp.ErrWriter = out
	cliApp.EnableBashCompletion = true
	// exit codes are handled by main so that tests can run the app
	cliApp.ExitErrHandler = func(*cli.Context, error) {}
	cliApp.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to an optional YAML or JSON config file",
			Destination: &a.configPath,
		},
		&cli.StringFlag{
			Name:        "env",
			Value:       config.DefaultEnvFile,
			Usage:       "path to an optional .env file",
			Destination: &a.envPath,
		},
		&cli.StringFlag{
			Name:        "baseurl",
			Usage:       "override the spot REST base URL",
			Destination: &a.baseURL,
		},
		&cli.StringFlag{
			Name:        "futuresbaseurl",
			Usage:       "override the USD-M futures REST base URL",
			Destination: &a.futuresBaseURL,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Value:       defaultTimeout,
			Usage:       "the context timeout for each command",
			Destination: &a.timeout,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "log every request and response",
			Destination: &a.verbose,
		},
		&cli.BoolFlag{
			Name:        "nocolour",
			Usage:       "disable coloured output",
			Destination: &a.noColour,
		},
	}
	cliApp.Before = a.setup
	cliApp.After = func(*cli.Context) error {
		if a.cancel != nil {
			a.cancel()
		}
		return nil
	}
	cliApp.Commands = []*cli.Command{
		a.pingCommand(),
		a.timeCommand(),
		a.exchangeInfoCommand(),
		a.depthCommand(),
		a.avgPriceCommand(),
		a.accountCommand(),
		a.orderCommand("order-test", "validates a spot order without sending it to the matching engine", true),
		a.orderCommand("new-order", "places a spot order", false),
		a.cancelOrderCommand(),
		a.openOrdersCommand(),
		a.rateLimitsCommand(),
	}
	return cliApp
}

// setup loads the configuration, applies flag overrides and builds the client
func (a *app) setup(c *cli.Context) error {
	a.au = aurora.NewAurora(!a.noColour)
	cfg, err := config.Load(a.configPath, a.envPath)
	if err != nil {
		return err
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	if a.futuresBaseURL != "" {
		cfg.FuturesBaseURL = a.futuresBaseURL
	}
	if a.verbose {
		cfg.Verbose = true
	}
	if err := log.SetupGlobalLogger(cfg.LoggerConfig()); err != nil {
		return err
	}
	if a.client, err = binance.New(cfg.ClientConfig()); err != nil {
		return err
	}
	if a.timeout > 0 {
		c.Context, a.cancel = context.WithTimeout(c.Context, a.timeout)
	}
	return nil
}

func (a *app) jsonOutput(in any) error {
	j, err := json.MarshalIndent(in, "", " ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(j))
	return err
}

// fail prints err with the exchange diagnostics and returns the exit error
func (a *app) fail(err error) error {
	var apiErr *binance.APIError
	var vErr *binance.ValidationError
	var rl *binance.RateLimitedError
	var ban *binance.BannedError
	switch {
	case errors.As(err, &apiErr):
		fmt.Fprintf(a.out, "%s %d: %s\n", a.au.Bold(a.au.Red("binance error")), apiErr.Code, apiErr.Msg)
		if h := apiErr.Hint(); h != "" {
			fmt.Fprintf(a.out, "%s %s\n", a.au.Yellow("hint:"), h)
		}
	case errors.As(err, &vErr):
		fmt.Fprintf(a.out, "%s %s\n", a.au.Bold(a.au.Red("invalid parameter:")), vErr)
	case errors.As(err, &rl), errors.As(err, &ban):
		fmt.Fprintf(a.out, "%s %v\n", a.au.Bold(a.au.Magenta("rate limited:")), err)
	case errors.Is(err, binance.ErrCredentialsRequired):
		fmt.Fprintf(a.out, "%s set BINANCE_API_KEY and BINANCE_SECRET_KEY\n", a.au.Bold(a.au.Red("credentials required:")))
	default:
		fmt.Fprintf(a.out, "%s %v\n", a.au.Bold(a.au.Red("error:")), err)
	}
	return cli.Exit("", 1)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp(os.Stdout).RunContext(ctx, os.Args)
	stop()
	if err == nil {
		return
	}
	var exit cli.ExitCoder
	if errors.As(err, &exit) {
		os.Exit(exit.ExitCode())
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
