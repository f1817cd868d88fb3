package main

import (
	"errors"
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/merkle-ledger/ledger"
)

const (
	menuAddTransaction = "Add transaction"
	menuAddBlock       = "Add block"
	menuViewPending    = "View pending transactions"
	menuViewChain      = "View blockchain"
	menuVerifyTx       = "Verify transaction"
	menuValidate       = "Validate blockchain"
	menuExit           = "Exit"
)

var menu = []string{
	menuAddTransaction,
	menuAddBlock,
	menuViewPending,
	menuViewChain,
	menuVerifyTx,
	menuValidate,
	menuExit,
}

type session struct {
	ledger    *ledger.Ledger
	logger    *slog.Logger
	precision int
}

func (s session) run() error {
	for {
		choice, err := pterm.DefaultInteractiveSelect.WithDefaultText("Choose an option").WithOptions(menu).Show()
		if err != nil {
			return err
		}
		switch choice {
		case menuAddTransaction:
			s.promptTransaction()
		case menuAddBlock:
			s.addBlock()
		case menuViewPending:
			s.showPending()
		case menuViewChain:
			s.showChain()
		case menuVerifyTx:
			s.promptLookup()
		case menuValidate:
			s.validate()
		case menuExit:
			pterm.Info.Println("Exiting.")
			return nil
		}
	}
}

func ask(label string) string {
	v, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(label).Show()
	return v
}

func (s session) promptTransaction() {
	sender := ask("Sender")
	receiver := ask("Receiver")
	amount := ask("Amount")
	if _, err := s.addTransaction(sender, receiver, amount); err != nil {
		pterm.Error.Printfln("Invalid input: %s", err.Error())
	}
}

func (s session) addTransaction(sender, receiver, amount string) (ledger.Transaction, error) {
	t, err := parseTransfer(sender, receiver, amount)
	if err != nil {
		return ledger.Transaction{}, err
	}
	tx := s.ledger.AddTransaction(t.sender, t.receiver, t.amount)
	pterm.Success.Printfln("Transaction added: %s", tx.String())
	return tx, nil
}

func (s session) addBlock() (*ledger.Block, bool) {
	b, ok := s.ledger.AddBlock()
	if !ok {
		pterm.Warning.Println("No pending transactions to commit.")
		return nil, false
	}
	pterm.Success.Printfln("Block %d added to blockchain.", b.Index())
	return b, true
}

func (s session) showPending() {
	pending := s.ledger.Pending()
	if len(pending) == 0 {
		pterm.Info.Println("No pending transactions.")
		return
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(pendingTable(pending, s.precision)).Render(); err != nil {
		s.logger.Error("failed to render pending transactions", "err", err)
	}
}

func (s session) showChain() {
	summaries := s.ledger.Summaries()
	if len(summaries) == 0 {
		pterm.Info.Println("The blockchain is empty.")
		return
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(chainTable(summaries)).Render(); err != nil {
		s.logger.Error("failed to render blockchain", "err", err)
		return
	}
	for _, b := range s.ledger.Blocks() {
		pterm.Println(blockDetails(b, s.precision))
	}
}

func (s session) promptLookup() {
	sender := ask("Sender")
	receiver := ask("Receiver")
	amount := ask("Amount")
	timestamp := ask("Timestamp (YYYY-MM-DD HH:MM:SS)")
	found, err := s.lookup(sender, receiver, amount, timestamp)
	if err != nil {
		pterm.Error.Printfln("Invalid input: %s", err.Error())
		return
	}
	if found {
		pterm.Success.Println("Transaction is part of the blockchain.")
	} else {
		pterm.Warning.Println("Transaction not found in the blockchain.")
	}
}

func (s session) lookup(sender, receiver, amount, timestamp string) (bool, error) {
	tx, err := parseLookup(sender, receiver, amount, timestamp)
	if err != nil {
		return false, err
	}
	return s.ledger.Contains(tx), nil
}

// validate prints the verification outcome. A failed check is a normal
// result, not an error of the session.
func (s session) validate() bool {
	err := s.ledger.Verify()
	if err == nil {
		pterm.Success.Println("Blockchain is valid.")
		return true
	}
	var verr *ledger.ValidationError
	if errors.As(err, &verr) {
		pterm.Error.Printfln("Blockchain is invalid at block %d: %v", verr.Index, verr.Err)
	} else {
		pterm.Error.Printfln("Blockchain is invalid: %v", err)
	}
	return false
}
