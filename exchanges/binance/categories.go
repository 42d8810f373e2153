package binance

// Spot returns the spot category
func (c *Client) Spot() Spot { return Spot{c} }

// Margin returns the cross and isolated margin category
func (c *Client) Margin() Margin { return Margin{c} }

// UFutures returns the USD-M futures category
func (c *Client) UFutures() UFutures { return UFutures{c} }

// Wallet returns the wallet category
func (c *Client) Wallet() Wallet { return Wallet{c} }

// Spot groups the spot routes
type Spot struct{ c *Client }

// Market returns the spot market data routes
func (s Spot) Market() SpotMarket { return SpotMarket(s) }

// Trade returns the spot order routes
func (s Spot) Trade() SpotTrade { return SpotTrade(s) }

// Account returns the spot account routes
func (s Spot) Account() SpotAccount { return SpotAccount(s) }

// UserStream returns the spot user data stream routes
func (s Spot) UserStream() UserStream { return UserStream{s.c, &spotUserStream} }

// Margin groups the margin routes
type Margin struct{ c *Client }

// Market returns the margin market data routes
func (m Margin) Market() MarginMarket { return MarginMarket(m) }

// Trade returns the margin order routes
func (m Margin) Trade() MarginTrade { return MarginTrade(m) }

// Account returns the margin account routes
func (m Margin) Account() MarginAccountRoutes { return MarginAccountRoutes(m) }

// UserStream returns the margin user data stream routes
func (m Margin) UserStream() UserStream { return UserStream{m.c, &marginUserStream} }

// UFutures groups the USD-M futures routes
type UFutures struct{ c *Client }

// Market returns the futures market data routes
func (f UFutures) Market() UFuturesMarket { return UFuturesMarket(f) }

// Trade returns the futures order routes
func (f UFutures) Trade() UFuturesTrade { return UFuturesTrade(f) }

// Account returns the futures account routes
func (f UFutures) Account() UFuturesAccount { return UFuturesAccount(f) }

// UserStream returns the futures user data stream routes
func (f UFutures) UserStream() UserStream { return UserStream{f.c, &futuresUserStream} }

// Wallet groups the wallet routes
type Wallet struct{ c *Client }

// Capital returns the deposit and coin configuration routes
func (w Wallet) Capital() WalletCapital { return WalletCapital(w) }

// Account returns the account status routes
func (w Wallet) Account() WalletAccount { return WalletAccount(w) }
