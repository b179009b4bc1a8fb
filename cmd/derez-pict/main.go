package main

import (
	"fmt"
	"os"

	"github.com/macfork/derez"
	"github.com/macfork/derez/pict"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
)

var charsets = map[string]*charmap.Charmap{
	"macroman": charmap.Macintosh,
	"latin1":   charmap.ISO8859_1,
	"cp1252":   charmap.Windows1252,
}

var (
	outDir      string
	bareNumbers bool
	charset     string
)

var rootCmd = &cobra.Command{
	Use:   "derez-pict",
	Short: "Extract PICT resources from DeRez dumps",
}

var extractCmd = &cobra.Command{
	Use:   "extract dump...",
	Short: "Write every PICT resource in the given dumps out as .PICT files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, ok := charsets[charset]
		if !ok {
			return fmt.Errorf("unknown charset %q", charset)
		}
		root := derez.NewRoot(outDir)
		root.BareNumbers = bareNumbers
		root.Charmap = cm

		failed := 0
		for _, name := range args {
			if err := root.ExtractFile(name); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d dumps failed", failed, len(args))
		}
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info file.PICT...",
	Short: "Print the size word, frame and version of PICT files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range args {
			content, err := os.ReadFile(name)
			if err != nil {
				return err
			}
			info, err := pict.ReadFileInfo(content)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			fmt.Printf("%s: v%d size=%d frame=%s\n", name, info.Version, info.Size, info.Frame)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&outDir, "dir", "d", ".", "directory to write extracted files into")
	extractCmd.Flags().BoolVar(&bareNumbers, "bare-numbers", false, "name unnamed resources 128.PICT instead of R128.PICT")
	extractCmd.Flags().StringVar(&charset, "charset", "macroman", "character set the dumps are encoded in")
	rootCmd.AddCommand(extractCmd, infoCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
