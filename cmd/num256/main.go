package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common/hexutil"
	num "github.com/shabbyrobe/go-num256"
	"github.com/urfave/cli/v2"
	"github.com/zeebo/errs"
)

// Errors reported to the user instead of the panics the library raises.
var (
	UsageError = errs.Class("usage")
	ArithError = errs.Class("arithmetic")
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func slogLevelFromString(lvl string) (slog.Level, error) {
	switch strings.ToUpper(lvl) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, UsageError.New("invalid log level %q", lvl)
	}
}

func initLogger(w io.Writer, lvlStr string) error {
	lvl, err := slogLevelFromString(lvlStr)
	if err != nil {
		return err
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
	return nil
}

func newApp(stdout, stderr io.Writer) *cli.App {
	commands := []*cli.Command{
		{
			Name:      "quorem",
			Usage:     "Print the quotient and remainder of A / B",
			ArgsUsage: "A B",
			Action: func(cCtx *cli.Context) error {
				a, b, err := operands2(cCtx)
				if err != nil {
					return err
				}
				if b.IsZero() {
					return errDivByZero(a, "/%")
				}
				q, r := a.QuoRem(b)
				slog.Debug("quorem", "a", a, "b", b, "q", q, "r", r)
				if err := printValue(cCtx, q); err != nil {
					return err
				}
				return printValue(cCtx, r)
			},
		},
		{
			Name:      "cmp",
			Usage:     "Print -1, 0 or 1 as A is less than, equal to or greater than B",
			ArgsUsage: "A B",
			Action: func(cCtx *cli.Context) error {
				a, b, err := operands2(cCtx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cCtx.App.Writer, a.Cmp(b))
				return err
			},
		},
		shiftCommand("lsh", "Shift A left by N bits", num.U256.Lsh),
		shiftCommand("rsh", "Shift A right by N bits", num.U256.Rsh),
		{
			Name:      "bytes",
			Usage:     "Print the 32 bytes of A in the given byte order",
			ArgsUsage: "A",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "endian",
					Value: num.DefaultEndian.String(),
					Usage: "Byte order (big, little)",
				},
			},
			Action: func(cCtx *cli.Context) error {
				a, err := operand1(cCtx)
				if err != nil {
					return err
				}
				e, err := num.ParseEndian(cCtx.String("endian"))
				if err != nil {
					return err
				}
				b := a.WithEndian(e).Bytes()
				_, err = fmt.Fprintln(cCtx.App.Writer, hexutil.Encode(b[:]))
				return err
			},
		},
		{
			Name:      "build",
			Usage:     "Build a value from 0x-prefixed bytes",
			ArgsUsage: "0xBYTES",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "endian",
					Required: true,
					Usage:    "Byte order of the input (big, little)",
				},
				&cli.StringFlag{
					Name:  "padding",
					Usage: "Fill byte for inputs shorter than 32 bytes, e.g. 0x00",
				},
			},
			Action: func(cCtx *cli.Context) error {
				if cCtx.NArg() != 1 {
					return UsageError.New("build expects 1 argument, found %d", cCtx.NArg())
				}
				e, err := num.ParseEndian(cCtx.String("endian"))
				if err != nil {
					return err
				}
				data, err := hexutil.Decode(cCtx.Args().First())
				if err != nil {
					return UsageError.Wrap(err)
				}

				b := num.NewBuilder().WithEndian(e)
				if cCtx.IsSet("padding") {
					fill, err := strconv.ParseUint(cCtx.String("padding"), 0, 8)
					if err != nil {
						return UsageError.New("padding %q invalid: %v", cCtx.String("padding"), err)
					}
					if len(data) > 32 {
						return UsageError.New("found %d bytes, at most 32 allowed", len(data))
					}
					b = b.WithPadding(byte(fill)).FromPartialBytes(data)
				} else {
					if len(data) != 32 {
						return UsageError.New("found %d bytes, expected 32 or --padding", len(data))
					}
					b = b.FromBytes([32]byte(data))
				}

				v := b.Build()
				slog.Debug("built", "endian", e, "bytes", len(data), "value", v)
				return printValue(cCtx, v)
			},
		},
		{
			Name:      "dump",
			Usage:     "Dump the internal representation of A",
			ArgsUsage: "A",
			Action: func(cCtx *cli.Context) error {
				a, err := operand1(cCtx)
				if err != nil {
					return err
				}
				cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}
				cfg.Fdump(cCtx.App.Writer, a)
				return nil
			},
		},
	}

	for _, op := range binaryOps {
		commands = append(commands, op.command())
	}

	return &cli.App{
		Name:            "num256",
		Usage:           "256-bit unsigned integer calculator",
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Value: "INFO",
				Usage: "Log level",
			},
			&cli.IntFlag{
				Name:  "radix",
				Value: num.DefaultRadix,
				Usage: "Radix of the operands. 16 expects exactly 64 digits, with or without 0x",
			},
			&cli.BoolFlag{
				Name:  "dec",
				Usage: "Print results in decimal instead of 0x-prefixed hex",
			},
		},
		Before: func(cCtx *cli.Context) error {
			return initLogger(stderr, cCtx.String("log"))
		},
		Commands: commands,
	}
}

type binaryOp struct {
	name  string
	usage string
	fn    func(a, b num.U256) (num.U256, error)
}

func errOverflow(a num.U256, sym string, b num.U256) error {
	return ArithError.New("%s %s %s: result out of range", a, sym, b)
}

func errDivByZero(a num.U256, sym string) error {
	return ArithError.New("%s %s 0: division by zero", a, sym)
}

var binaryOps = []binaryOp{
	{"add", "Add A and B", func(a, b num.U256) (num.U256, error) {
		v, overflow := a.AddOverflow(b)
		if overflow {
			return v, errOverflow(a, "+", b)
		}
		return v, nil
	}},
	{"sub", "Subtract B from A", func(a, b num.U256) (num.U256, error) {
		v, overflow := a.SubOverflow(b)
		if overflow {
			return v, errOverflow(a, "-", b)
		}
		return v, nil
	}},
	{"mul", "Multiply A by B", func(a, b num.U256) (num.U256, error) {
		v, overflow := a.MulOverflow(b)
		if overflow {
			return v, errOverflow(a, "*", b)
		}
		return v, nil
	}},
	{"quo", "Divide A by B", func(a, b num.U256) (num.U256, error) {
		if b.IsZero() {
			return num.U256{}, errDivByZero(a, "/")
		}
		return a.Quo(b), nil
	}},
	{"rem", "Remainder of A / B", func(a, b num.U256) (num.U256, error) {
		if b.IsZero() {
			return num.U256{}, errDivByZero(a, "%")
		}
		return a.Rem(b), nil
	}},
	{"or", "Bitwise OR of A and B", func(a, b num.U256) (num.U256, error) {
		return a.Or(b), nil
	}},
}

func (op binaryOp) command() *cli.Command {
	return &cli.Command{
		Name:      op.name,
		Usage:     op.usage,
		ArgsUsage: "A B",
		Action: func(cCtx *cli.Context) error {
			a, b, err := operands2(cCtx)
			if err != nil {
				return err
			}
			v, err := op.fn(a, b)
			if err != nil {
				return err
			}
			slog.Debug(op.name, "a", a, "b", b, "result", v)
			return printValue(cCtx, v)
		},
	}
}

func shiftCommand(name, usage string, fn func(u num.U256, n uint) num.U256) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "A N",
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() != 2 {
				return UsageError.New("%s expects 2 arguments, found %d", name, cCtx.NArg())
			}
			a, err := parseOperand(cCtx, cCtx.Args().Get(0))
			if err != nil {
				return err
			}
			n, err := strconv.ParseUint(cCtx.Args().Get(1), 10, 0)
			if err != nil {
				return UsageError.New("shift %q invalid: %v", cCtx.Args().Get(1), err)
			}
			return printValue(cCtx, fn(a, uint(n)))
		},
	}
}

func parseOperand(cCtx *cli.Context, s string) (num.U256, error) {
	return num.ParseU256Radix(s, cCtx.Int("radix"), num.DefaultEndian)
}

func operand1(cCtx *cli.Context) (num.U256, error) {
	if cCtx.NArg() != 1 {
		return num.U256{}, UsageError.New("%s expects 1 argument, found %d", cCtx.Command.Name, cCtx.NArg())
	}
	return parseOperand(cCtx, cCtx.Args().First())
}

func operands2(cCtx *cli.Context) (a, b num.U256, err error) {
	if cCtx.NArg() != 2 {
		return a, b, UsageError.New("%s expects 2 arguments, found %d", cCtx.Command.Name, cCtx.NArg())
	}
	if a, err = parseOperand(cCtx, cCtx.Args().Get(0)); err != nil {
		return a, b, err
	}
	if b, err = parseOperand(cCtx, cCtx.Args().Get(1)); err != nil {
		return a, b, err
	}
	return a, b, nil
}

func printValue(cCtx *cli.Context, v num.U256) (err error) {
	if cCtx.Bool("dec") {
		_, err = fmt.Fprintf(cCtx.App.Writer, "%d\n", v)
	} else {
		_, err = fmt.Fprintln(cCtx.App.Writer, v)
	}
	return err
}
