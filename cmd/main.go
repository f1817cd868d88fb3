package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"gopkg.in/urfave/cli.v1"

	"github.com/luca-patrignani/merkle-ledger/config"
	"github.com/luca-patrignani/merkle-ledger/digest"
	"github.com/luca-patrignani/merkle-ledger/ledger"
)

func main() {
	app := cli.NewApp()
	app.Name = "merkle-ledger"
	app.Usage = "record transfers in a hash-linked, Merkle-summarised ledger"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "TOML configuration file",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "log every queued transaction",
		},
		cli.BoolFlag{
			Name:  "strict",
			Usage: "rebuild Merkle roots from block contents when validating",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "demo",
			Usage:  "commit a few sample transfers and print the chain",
			Action: cmdDemo,
		},
	}
	app.Action = cmdInteractive

	if err := app.Run(os.Args); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger and the ledger shared
// by every command.
func setup(c *cli.Context) (config.Config, *slog.Logger, *ledger.Ledger, error) {
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if c.GlobalBool("strict") {
		cfg.Validation = ledger.RecomputeRoot.String()
	}

	pterm.DefaultLogger.Level = cfg.Level()
	if c.GlobalBool("debug") {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	// Create a new slog logger with the default PTerm logger
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	if err := digest.Check(); err != nil {
		logger.Error("hash primitive unavailable", "err", err)
		return config.Config{}, nil, nil, err
	}

	opts := append(cfg.LedgerOptions(), ledger.WithLogger(logger))
	return cfg, logger, ledger.New(opts...), nil
}

func cmdInteractive(c *cli.Context) error {
	cfg, logger, l, err := setup(c)
	if err != nil {
		return err
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Merkle ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("Ledger", pterm.FgCyan.ToStyle()),
	).Render()
	pterm.Info.Printfln("Validation mode: %s", l.Mode())

	s := session{ledger: l, logger: logger, precision: cfg.AmountPrecision}
	return s.run()
}

func cmdDemo(c *cli.Context) error {
	cfg, logger, l, err := setup(c)
	if err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Committing sample transfers ...")
	for _, batch := range demoBatches {
		for _, t := range batch {
			l.AddTransaction(t.sender, t.receiver, t.amount)
		}
		if _, ok := l.AddBlock(); !ok {
			spinner.Fail()
			return fmt.Errorf("demo batch produced no block")
		}
	}
	spinner.Success()

	s := session{ledger: l, logger: logger, precision: cfg.AmountPrecision}
	s.showChain()
	s.validate()
	return nil
}

var demoBatches = [][]transfer{
	{
		{sender: "alice", receiver: "bob", amount: 25},
		{sender: "bob", receiver: "carol", amount: 10.5},
		{sender: "carol", receiver: "alice", amount: 3},
	},
	{
		{sender: "dave", receiver: "alice", amount: 42},
	},
}
