package wallets

// EthSender groups the credentials used to submit L1 transactions.
type EthSender struct {
	// Operator signs regular commit/prove/execute transactions.
	Operator *Wallet
	// BlobOperator signs blob-carrying transactions. Nil when not configured.
	BlobOperator *Wallet
}

// StateKeeper groups the credentials of the block producer.
type StateKeeper struct {
	// FeeAccount receives fees. It is always watch-only.
	FeeAccount *Wallet
}

// Wallets is the top-level credential bundle. Either group is nil when the
// configuration it comes from is absent.
type Wallets struct {
	EthSender   *EthSender
	StateKeeper *StateKeeper
}

// Zero wipes every private key held by the bundle.
func (w *Wallets) Zero() {
	if w == nil {
		return
	}
	if w.EthSender != nil {
		w.EthSender.Operator.Zero()
		w.EthSender.BlobOperator.Zero()
	}
	if w.StateKeeper != nil {
		w.StateKeeper.FeeAccount.Zero()
	}
}
