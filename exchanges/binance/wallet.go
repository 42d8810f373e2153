package binance

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
)

var (
	walletSystemStatus = Descriptor{
		Method: http.MethodGet, Path: "/sapi/v1/system/status", Security: SecurityNone, Weight: 1,
		Schema: params.NewSchema(),
	}
	walletCoinInfo = Descriptor{
		Method: http.MethodGet, Path: "/sapi/v1/capital/config/getall", Security: SecuritySigned, Weight: 10,
		Schema: signedSchema(),
	}
	walletDepositAddress = Descriptor{
		Method: http.MethodGet, Path: "/sapi/v1/capital/deposit/address", Security: SecuritySigned, Weight: 10,
		Schema: signedSchema(assetField("coin", true), stringField("network", false), decimalField("amount", false)),
	}
	walletAccountStatus = Descriptor{
		Method: http.MethodGet, Path: "/sapi/v1/account/status", Security: SecuritySigned, Weight: 1,
		Schema: signedSchema(),
	}
	walletAPIRestrictions = Descriptor{
		Method: http.MethodGet, Path: "/sapi/v1/account/apiRestrictions", Security: SecuritySigned, Weight: 1,
		Schema: signedSchema(),
	}
)

// SystemStatus returns whether the exchange is under maintenance
func (w Wallet) SystemStatus() *Endpoint[SystemStatus] {
	return newEndpoint[SystemStatus](w.c, &walletSystemStatus)
}

// WalletCapital holds the signed coin and deposit routes
type WalletCapital struct{ c *Client }

// CoinInfo returns the wallet configuration of every coin
func (w WalletCapital) CoinInfo() *Endpoint[[]CoinInfo] {
	return newEndpoint[[]CoinInfo](w.c, &walletCoinInfo)
}

// DepositAddress returns the deposit address of coin
func (w WalletCapital) DepositAddress(coin string) *DepositAddressService {
	s := &DepositAddressService{*newEndpoint[DepositAddress](w.c, &walletDepositAddress)}
	s.params.SetString("coin", coin)
	return s
}

// DepositAddressService builds a deposit address request
type DepositAddressService struct {
	Endpoint[DepositAddress]
}

// Network selects the deposit network, the coin default otherwise
func (s *DepositAddressService) Network(network string) *DepositAddressService {
	s.params.SetString("network", network)
	return s
}

// Amount sets the expected amount for networks that embed it in the address
func (s *DepositAddressService) Amount(amount decimal.Decimal) *DepositAddressService {
	s.params.SetDecimal("amount", amount)
	return s
}

// WalletAccount holds the signed account status routes
type WalletAccount struct{ c *Client }

// Status returns the account trading status
func (w WalletAccount) Status() *Endpoint[AccountStatus] {
	return newEndpoint[AccountStatus](w.c, &walletAccountStatus)
}

// APIRestrictions returns the permissions of the API key
func (w WalletAccount) APIRestrictions() *Endpoint[APIRestrictions] {
	return newEndpoint[APIRestrictions](w.c, &walletAPIRestrictions)
}
