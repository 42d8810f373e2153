package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

var symbolFlag = &cli.StringFlag{
	Name:     "symbol",
	Aliases:  []string{"s"},
	Usage:    "the trading symbol, e.g. BTCUSDT",
	Required: true,
}

func (a *app) pingCommand() *cli.Command {
	return &cli.Command{
		Name:  "ping",
		Usage: "tests connectivity to the spot REST API",
		Action: func(c *cli.Context) error {
			start := time.Now()
			if _, err := a.client.Spot().Market().Ping().Do(c.Context); err != nil {
				return a.fail(err)
			}
			_, err := fmt.Fprintf(a.out, "%s %s\n", a.au.Bold(a.au.Green("OK")), time.Since(start).Round(time.Millisecond))
			return err
		},
	}
}

func (a *app) timeCommand() *cli.Command {
	return &cli.Command{
		Name:  "time",
		Usage: "returns the exchange server time and the local clock offset",
		Action: func(c *cli.Context) error {
			st, err := a.client.Spot().Market().ServerTime().Do(c.Context)
			if err != nil {
				return a.fail(err)
			}
			server := time.UnixMilli(st.ServerTime)
			return a.jsonOutput(map[string]any{
				"serverTime": st.ServerTime,
				"utc":        server.UTC().Format(time.RFC3339Nano),
				"offset":     time.Until(server).Round(time.Millisecond).String(),
			})
		},
	}
}

func (a *app) exchangeInfoCommand() *cli.Command {
	return &cli.Command{
		Name:  "exchange-info",
		Usage: "returns the spot trading rules, optionally for one symbol",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "symbol", Aliases: []string{"s"}, Usage: "limit the result to one symbol"},
		},
		Action: func(c *cli.Context) error {
			e := a.client.Spot().Market().ExchangeInfo()
			if s := c.String("symbol"); s != "" {
				e.Symbol(s)
			}
			info, err := e.Do(c.Context)
			if err != nil {
				return a.fail(err)
			}
			return a.jsonOutput(info)
		},
	}
}

func (a *app) depthCommand() *cli.Command {
	return &cli.Command{
		Name:  "depth",
		Usage: "returns an order book snapshot",
		Flags: []cli.Flag{
			symbolFlag,
			&cli.Int64Flag{Name: "limit", Aliases: []string{"l"}, Usage: "number of levels per side, up to 5000"},
		},
		Action: func(c *cli.Context) error {
			e := a.client.Spot().Market().Depth(c.String("symbol"))
			if c.IsSet("limit") {
				e.Limit(c.Int64("limit"))
			}
			book, err := e.Do(c.Context)
			if err != nil {
				return a.fail(err)
			}
			return a.jsonOutput(book)
		},
	}
}

func (a *app) avgPriceCommand() *cli.Command {
	return &cli.Command{
		Name:  "avg-price",
		Usage: "returns the current average price of a symbol",
		Flags: []cli.Flag{symbolFlag},
		Action: func(c *cli.Context) error {
			p, err := a.client.Spot().Market().AvgPrice(c.String("symbol")).Do(c.Context)
			if err != nil {
				return a.fail(err)
			}
			return a.jsonOutput(p)
		},
	}
}

func (a *app) accountCommand() *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "returns the spot account balances and permissions",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "omitzero", Usage: "omit zero balances"},
		},
		Action: func(c *cli.Context) error {
			e := a.client.Spot().Account().Account()
			if c.Bool("omitzero") {
				e.OmitZeroBalances(true)
			}
			acc, err := e.Do(c.Context)
			if err != nil {
				return a.fail(err)
			}
			return a.jsonOutput(acc)
		},
	}
}

func (a *app) rateLimitsCommand() *cli.Command {
	return &cli.Command{
		Name:  "rate-limits",
		Usage: "pings both hosts and prints the rate limit usage they advertise",
		Action: func(c *cli.Context) error {
			if _, err := a.client.Spot().Market().Ping().Do(c.Context); err != nil {
				return a.fail(err)
			}
			if _, err := a.client.UFutures().Market().Ping().Do(c.Context); err != nil {
				return a.fail(err)
			}
			snap := a.client.RateLimits()
			if snap.IsBanned(time.Now()) {
				fmt.Fprintf(a.out, "%s until %s\n", a.au.Bold(a.au.Red("backing off")), snap.BannedUntil.Format(time.RFC3339))
			}
			return a.jsonOutput(snap)
		},
	}
}
