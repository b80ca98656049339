package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/jeyms233/jsontree/encode"
	"github.com/jeyms233/jsontree/ir"
	"github.com/jeyms233/jsontree/parse"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='compact JSON output'"`
	Color   bool `cli:"name=color desc='colorize output'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.Compact(cfg.Compact)}
	if cfg.Color && isTTY(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// loadDoc parses one document argument; "-" reads from cc.In.
func loadDoc(cc *cli.Context, name string) (*ir.Node, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(cc.In)
		name = "stdin"
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	node, err := parse.Auto(name, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return node, nil
}

func emit(cfg *MainConfig, cc *cli.Context, node *ir.Node) error {
	return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
}

func jtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}
