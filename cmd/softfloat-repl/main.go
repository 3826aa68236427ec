// Command softfloat-repl is a small interactive driver over the softfloat
// engine: it parses hex bit patterns on the command line, runs one
// operation, and prints the result bits, class, and status flags. It exists
// for manual exploration of rounding/NaN behavior across formats and
// platforms; it is not part of the core library and carries no compatibility
// guarantee.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zerfoo/softfloat"
)

var (
	width    int
	platform string
)

var platformsByName = map[string]softfloat.PlatformProperties{
	"riscv":      softfloat.PlatformRISCV,
	"arm":        softfloat.PlatformARM,
	"power":      softfloat.PlatformPOWER,
	"mips2008":   softfloat.PlatformMIPS2008,
	"mipslegacy": softfloat.PlatformMIPSLegacy,
	"x86sse":     softfloat.PlatformX86SSE,
	"sparc":      softfloat.PlatformSPARC,
	"hppa":       softfloat.PlatformHPPA,
}

func resolvePlatform() (softfloat.PlatformProperties, error) {
	p, ok := platformsByName[strings.ToLower(platform)]
	if !ok {
		return softfloat.PlatformProperties{}, fmt.Errorf("unknown platform %q", platform)
	}
	return p, nil
}

func resolveProperties() (softfloat.FloatProperties, error) {
	p, err := resolvePlatform()
	if err != nil {
		return softfloat.FloatProperties{}, err
	}
	return softfloat.StandardFloatProperties(width, p), nil
}

func parseBits(arg string) (*big.Int, error) {
	arg = strings.TrimPrefix(strings.TrimPrefix(arg, "0x"), "0X")
	n, ok := new(big.Int).SetString(arg, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex bit pattern %q", arg)
	}
	return n, nil
}

func printResult(d softfloat.DynamicFloat) {
	fmt.Printf("bits=0x%s class=%s flags=%s\n", d.Bits.Text(16), d.Class(), d.FPState.StatusFlags)
}

func newUnaryCommand(name string, op func(softfloat.DynamicFloat) softfloat.DynamicFloat) *cobra.Command {
	return &cobra.Command{
		Use:  name + " <bits>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := resolveProperties()
			if err != nil {
				return err
			}
			bits, err := parseBits(args[0])
			if err != nil {
				return err
			}
			a := softfloat.FromBigInt(props, bits)
			printResult(op(a))
			return nil
		},
	}
}

func newBinaryCommand(name string, op func(softfloat.DynamicFloat, softfloat.DynamicFloat) softfloat.DynamicFloat) *cobra.Command {
	return &cobra.Command{
		Use:  name + " <bits-a> <bits-b>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := resolveProperties()
			if err != nil {
				return err
			}
			aBits, err := parseBits(args[0])
			if err != nil {
				return err
			}
			bBits, err := parseBits(args[1])
			if err != nil {
				return err
			}
			a := softfloat.FromBigInt(props, aBits)
			b := softfloat.FromBigInt(props, bBits)
			printResult(op(a, b))
			return nil
		},
	}
}

func newUnpackCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "unpack <bits>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := resolveProperties()
			if err != nil {
				return err
			}
			bits, err := parseBits(args[0])
			if err != nil {
				return err
			}
			u := softfloat.Unpack(props, bits)
			fmt.Printf("sign=%s class=%s", u.Sign, u.Class)
			if u.Value != nil {
				fmt.Printf(" value=%s", u.Value.RatString())
			}
			if u.NaNPayload != nil {
				fmt.Printf(" payload=0x%s", u.NaNPayload.Text(16))
			}
			fmt.Println()
			return nil
		},
	}
}

func newFromIntCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "from-int <value>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := resolveProperties()
			if err != nil {
				return err
			}
			value, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return fmt.Errorf("invalid integer %q", args[0])
			}
			state := softfloat.NewFPState()
			printResult(softfloat.FromInt(props, value, state))
			return nil
		},
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "softfloat-repl",
		Short: "Explore the softfloat engine's bit-exact arithmetic from the command line",
	}
	root.PersistentFlags().IntVar(&width, "width", 32, "format width: 16, 32, 64, or 128")
	root.PersistentFlags().StringVar(&platform, "platform", "riscv", "platform policy: riscv, arm, power, mips2008, mipslegacy, x86sse, sparc, hppa")

	root.AddCommand(newUnpackCommand())
	root.AddCommand(newFromIntCommand())
	root.AddCommand(newBinaryCommand("add", softfloat.Add))
	root.AddCommand(newBinaryCommand("sub", softfloat.Sub))
	root.AddCommand(newBinaryCommand("mul", softfloat.Mul))
	root.AddCommand(newBinaryCommand("div", softfloat.Div))
	root.AddCommand(newBinaryCommand("remainder", softfloat.Remainder))
	root.AddCommand(newUnaryCommand("sqrt", softfloat.Sqrt))
	root.AddCommand(newUnaryCommand("rsqrt", softfloat.Rsqrt))
	root.AddCommand(newUnaryCommand("abs", softfloat.Abs))
	root.AddCommand(newUnaryCommand("neg", softfloat.Neg))
	root.AddCommand(newUnaryCommand("next-up", softfloat.NextUp))
	root.AddCommand(newUnaryCommand("next-down", softfloat.NextDown))
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
