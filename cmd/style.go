package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/merkle-ledger/ledger"
)

func pendingTable(txs []ledger.Transaction, precision int) pterm.TableData {
	data := pterm.TableData{{"#", "Sender", "Receiver", "Amount", "Timestamp"}}
	for i, tx := range txs {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			tx.Sender,
			tx.Receiver,
			strconv.FormatFloat(tx.Amount, 'f', precision, 64),
			tx.Timestamp,
		})
	}
	return data
}

func chainTable(blocks []ledger.BlockSummary) pterm.TableData {
	data := pterm.TableData{{"Block", "Hash", "Previous Hash", "Merkle Root", "Timestamp", "Txs"}}
	for _, b := range blocks {
		data = append(data, []string{
			strconv.Itoa(b.Index),
			shortHash(b.Hash),
			shortHash(b.PreviousHash),
			shortHash(b.MerkleRoot),
			b.Timestamp,
			strconv.Itoa(b.TransactionCount),
		})
	}
	return data
}

// shortHash keeps tables readable; the full digest is printed in block
// details.
func shortHash(h string) string {
	if len(h) <= 16 {
		return h
	}
	return h[:8] + "…" + h[len(h)-8:]
}

func blockDetails(b *ledger.Block, precision int) string {
	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).WithTopPadding(0).WithBottomPadding(0)
	body := pterm.Sprintfln("Hash:          %s", b.Hash()) +
		pterm.Sprintfln("Previous Hash: %s", b.PreviousHash()) +
		pterm.Sprintfln("Merkle Root:   %s", b.MerkleRoot()) +
		pterm.Sprintfln("Timestamp:     %s", b.Timestamp()) +
		pterm.Sprintfln("Merkle Depth:  %d", b.MerkleTree().Depth())
	for i, h := range b.MerkleTree().LeafHashes() {
		body += pterm.Sprintfln("  leaf %d: %s", i, h)
	}
	for _, tx := range b.Transactions() {
		body += pterm.Sprintfln("  %s -> %s : %s at %s",
			pterm.LightCyan(tx.Sender), pterm.LightCyan(tx.Receiver),
			strconv.FormatFloat(tx.Amount, 'f', precision, 64), tx.Timestamp)
	}
	return pbox.WithTitle(pterm.LightYellow("|BLOCK " + strconv.Itoa(b.Index()) + "|")).WithTitleTopCenter().Sprint(body)
}
