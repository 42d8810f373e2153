package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobinance/exchanges/binance"
	"github.com/urfave/cli/v2"
)

var errOrderRefRequired = errors.New("one of --orderid or --clientorderid is required")

var orderFlags = []cli.Flag{
	symbolFlag,
	&cli.StringFlag{Name: "side", Usage: "BUY or SELL", Required: true},
	&cli.StringFlag{Name: "type", Usage: "LIMIT, MARKET, STOP_LOSS, STOP_LOSS_LIMIT, TAKE_PROFIT, TAKE_PROFIT_LIMIT or LIMIT_MAKER", Value: string(binance.OrderTypeLimit)},
	&cli.StringFlag{Name: "quantity", Aliases: []string{"q"}, Usage: "base asset quantity"},
	&cli.StringFlag{Name: "quoteqty", Usage: "quote asset amount for MARKET orders"},
	&cli.StringFlag{Name: "price", Aliases: []string{"p"}, Usage: "limit price"},
	&cli.StringFlag{Name: "stopprice", Usage: "trigger price for stop and take profit orders"},
	&cli.StringFlag{Name: "tif", Usage: "time in force: GTC, IOC or FOK"},
	&cli.StringFlag{Name: "clientorderid", Usage: "client order id, generated when empty"},
	&cli.Int64Flag{Name: "recvwindow", Usage: "per request recvWindow in milliseconds"},
}

// decimalFlags applies every set decimal flag through the matching setter
func decimalFlags(c *cli.Context, setters map[string]func(decimal.Decimal)) error {
	for name, set := range setters {
		v := c.String(name)
		if v == "" {
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
		set(d)
	}
	return nil
}

func (a *app) orderCommand(name, usage string, test bool) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: orderFlags,
		Action: func(c *cli.Context) error {
			if test {
				return placeOrder(a, c, a.client.Spot().Trade().TestOrder())
			}
			return placeOrder(a, c, a.client.Spot().Trade().NewOrder())
		},
	}
}

func placeOrder[T any](a *app, c *cli.Context, s *binance.NewOrderService[T]) error {
	s.Symbol(strings.ToUpper(c.String("symbol"))).
		Side(binance.SideType(strings.ToUpper(c.String("side")))).
		Type(binance.OrderType(strings.ToUpper(c.String("type"))))
	if err := decimalFlags(c, map[string]func(decimal.Decimal){
		"quantity":  func(d decimal.Decimal) { s.Quantity(d) },
		"quoteqty":  func(d decimal.Decimal) { s.QuoteOrderQty(d) },
		"price":     func(d decimal.Decimal) { s.Price(d) },
		"stopprice": func(d decimal.Decimal) { s.StopPrice(d) },
	}); err != nil {
		return a.fail(err)
	}
	if tif := c.String("tif"); tif != "" {
		s.TimeInForce(binance.TimeInForce(strings.ToUpper(tif)))
	}
	if id := c.String("clientorderid"); id != "" {
		s.NewClientOrderID(id)
	} else {
		s.GenerateClientOrderID()
	}
	if c.IsSet("recvwindow") {
		s.RecvWindow(c.Int64("recvwindow"))
	}
	resp, err := s.Do(c.Context)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "%s %s\n", a.au.Bold(a.au.Green("accepted")), s.ClientOrderID())
	return a.jsonOutput(resp)
}

func (a *app) cancelOrderCommand() *cli.Command {
	return &cli.Command{
		Name:  "cancel-order",
		Usage: "cancels a spot order by exchange or client order id",
		Flags: []cli.Flag{
			symbolFlag,
			&cli.Int64Flag{Name: "orderid", Usage: "exchange order id"},
			&cli.StringFlag{Name: "clientorderid", Usage: "client order id of the order to cancel"},
		},
		Action: func(c *cli.Context) error {
			if !c.IsSet("orderid") && c.String("clientorderid") == "" {
				return a.fail(errOrderRefRequired)
			}
			e := a.client.Spot().Trade().CancelOrder(strings.ToUpper(c.String("symbol")))
			if c.IsSet("orderid") {
				e.OrderID(c.Int64("orderid"))
			}
			if id := c.String("clientorderid"); id != "" {
				e.OrigClientOrderID(id)
			}
			o, err := e.Do(c.Context)
			if err != nil {
				return a.fail(err)
			}
			return a.jsonOutput(o)
		},
	}
}

func (a *app) openOrdersCommand() *cli.Command {
	return &cli.Command{
		Name:  "open-orders",
		Usage: "lists open spot orders, for one symbol or all",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "symbol", Aliases: []string{"s"}, Usage: "limit the result to one symbol"},
		},
		Action: func(c *cli.Context) error {
			e := a.client.Spot().Trade().OpenOrders()
			if s := c.String("symbol"); s != "" {
				e.Symbol(strings.ToUpper(s))
			}
			orders, err := e.Do(c.Context)
			if err != nil {
				return a.fail(err)
			}
			return a.jsonOutput(orders)
		},
	}
}
