// Command scpistatusctl is a bench-testing harness for the status core: it
// drives one in-process Context from the shell, so firmware developers can
// poke register transitions and watch STB/SRE/ESR/error-queue behavior
// without a real instrument attached.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	scpi "github.com/scizorman/go-scpi-status"
)

func main() {
	ctx, err := scpi.NewContext(
		scpi.WithIDN(scpi.IDN{Manufacturer: "ACME", Model: "STATUSCTL", Firmware: "1.0"}),
		scpi.WithAllStandardErrors(),
		scpi.WithInterface(scpi.Interface{
			Control: func(_ *scpi.Context, ctrl scpi.Control, value uint8) {
				if ctrl == scpi.ControlSRQ {
					fmt.Printf("SRQ: STB=0x%02X\n", value)
				}
			},
		}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:   "scpistatusctl",
		Short: "inspect and drive an IEEE-488.2 status-reporting core",
	}

	root.AddCommand(
		clsCmd(ctx),
		stbCmd(ctx),
		sreCmd(ctx),
		esrCmd(ctx),
		idnCmd(ctx),
		errorCmd(ctx),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func clsCmd(ctx *scpi.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "cls",
		Short: "run *CLS: clear the error queue and all latched events",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx.CoreCls()
			return nil
		},
	}
}

func stbCmd(ctx *scpi.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "stb",
		Short: "run *STB?: print the Status Byte register",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx.CoreStbQ(cliResultSink{cmd})
			return nil
		},
	}
}

func sreCmd(ctx *scpi.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sre [mask]",
		Short: "run *SRE <mask> or, with no argument, *SRE?",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				ctx.CoreSreQ(cliResultSink{cmd})
				return nil
			}
			mask, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return err
			}
			if ctx.CoreSre(cliParamSource{int32(mask)}) == scpi.ResultErr {
				return fmt.Errorf("*SRE %s failed", args[0])
			}
			return nil
		},
	}
	return cmd
}

func esrCmd(ctx *scpi.Context) *cobra.Command {
	top := &cobra.Command{
		Use:   "esr",
		Short: "inspect or arm the Standard Event Status register",
	}
	top.AddCommand(&cobra.Command{
		Use:   "query",
		Short: "run *ESR?: print and clear the event register",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx.CoreEsrQ(cliResultSink{cmd})
			return nil
		},
	})
	top.AddCommand(&cobra.Command{
		Use:   "enable [mask]",
		Short: "run *ESE <mask> or, with no argument, *ESE?",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				ctx.CoreEseQ(cliResultSink{cmd})
				return nil
			}
			mask, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return err
			}
			if ctx.CoreEse(cliParamSource{int32(mask)}) == scpi.ResultErr {
				return fmt.Errorf("*ESE %s failed", args[0])
			}
			return nil
		},
	})
	top.AddCommand(&cobra.Command{
		Use:   "opc",
		Short: "run *OPC: set the OPC bit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx.CoreOpc()
			return nil
		},
	})
	return top
}

func idnCmd(ctx *scpi.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "idn",
		Short: "run *IDN?: print the identification string",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx.CoreIdnQ(cliResultSink{cmd})
			return nil
		},
	}
}

func errorCmd(ctx *scpi.Context) *cobra.Command {
	top := &cobra.Command{
		Use:   "error",
		Short: "inspect or push into the error queue",
	}
	top.AddCommand(&cobra.Command{
		Use:   "push <code> [info]",
		Short: "push a SCPI error code, optionally with descriptive info text",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.ParseInt(args[0], 10, 16)
			if err != nil {
				return err
			}
			info := ""
			if len(args) == 2 {
				info = args[1]
			}
			ctx.ErrorPushEx(int16(code), info)
			return nil
		},
	})
	top.AddCommand(&cobra.Command{
		Use:   "pop",
		Short: "pop the oldest queued error",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := ctx.ErrorPop()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "0,\"No error\"")
				return nil
			}
			msg := ctx.ErrorTranslate(e.Code)
			fmt.Fprintf(cmd.OutOrStdout(), "%d,%q\n", e.Code, msg)
			return nil
		},
	})
	top.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "print the number of queued errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ctx.ErrorCount())
			return nil
		},
	})
	return top
}

// cliParamSource adapts a single already-parsed int32 to ParamSource, for
// commands that take exactly one mandatory numeric argument.
type cliParamSource struct {
	value int32
}

func (p cliParamSource) ParamInt32(mandatory bool) (int32, bool) {
	return p.value, true
}

// cliResultSink adapts a cobra.Command's stdout to ResultSink.
type cliResultSink struct {
	cmd *cobra.Command
}

func (r cliResultSink) ResultInt32(v int32) {
	fmt.Fprintln(r.cmd.OutOrStdout(), v)
}

func (r cliResultSink) ResultMnemonic(v string) {
	fmt.Fprintln(r.cmd.OutOrStdout(), v)
}
