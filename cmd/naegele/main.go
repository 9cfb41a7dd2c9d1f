package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/naegele/internal/calculation"
	"github.com/rgehrsitz/naegele/internal/calendar"
	"github.com/rgehrsitz/naegele/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "naegele [dd/mm/yyyy]",
	Short: "Naegele's rule EDD/WOA calculator",
	Long: `Computes the Estimated Due Date (Naegele's rule: LNMP + 7 days - 3 months
+ 1 year) and the elapsed Weeks of Amenorrhea from a Last Normal Menstrual
Period date given in dd/mm/yyyy form.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompute(cmd, args[0])
	},
}

func runCompute(cmd *cobra.Command, lnmp string) error {
	formatName, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(formatName)
	if f == nil {
		return fmt.Errorf("unknown output format %q (valid: %s)", formatName, output.Names())
	}

	res, err := calculation.NewEngine().Compute(lnmp)
	if err != nil {
		return err
	}

	data, err := f.Format(res)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

var eddCmd = &cobra.Command{
	Use:   "edd [dd/mm/yyyy]",
	Short: "Compute only the estimated due date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		edd, err := calculation.NewEngine().ComputeEDD(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("EDD: %s\n", edd)
		return nil
	},
}

var woaCmd = &cobra.Command{
	Use:   "woa [dd/mm/yyyy]",
	Short: "Compute only the elapsed weeks of amenorrhea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		age, err := calculation.NewEngine().ComputeWOA(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("WOA: %s\n", age)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [dd/mm/yyyy]",
	Short: "Validate a date without computing anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := calendar.ParseDate(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Date %s is valid\n", d)
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "naegele %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func init() {
	rootCmd.Flags().StringP("format", "f", "console", "Output format ("+output.Names()+")")

	rootCmd.AddCommand(eddCmd)
	rootCmd.AddCommand(woaCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
