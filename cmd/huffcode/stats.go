package main

import (
	"io"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffcode"
)

var StatsCommand = &cobra.Command{
	Use:   "stats [text...]",
	Short: "report compression statistics",
	Long:  "compress each argument (or stdin) and report totals, compression ratio and expected encoding length",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := loadCoder()
		if err != nil {
			log.Fatal(err)
		}
		texts := args
		if len(texts) == 0 {
			text, err := inputText(nil)
			if err != nil {
				log.Fatal(err)
			}
			texts = []string{text}
		}
		if err := runStats(cmd.OutOrStdout(), c, texts); err != nil {
			log.Fatal(err)
		}
	},
}

var DumpCommand = &cobra.Command{
	Use:   "dump",
	Short: "print the code table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := loadCoder()
		if err != nil {
			log.Fatal(err)
		}
		if _, err := c.Dump(cmd.OutOrStdout()); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	RootCommand.AddCommand(StatsCommand, DumpCommand)
}

func runStats(w io.Writer, c *huffcode.Coder, texts []string) error {
	for _, text := range texts {
		if _, err := c.Compress(text); err != nil {
			return err
		}
	}

	ratio, err := c.CompressionRatio()
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English) // For commas between thousands
	t := c.Totals()
	p.Fprintf(w, "symbols:                  %d\n", c.NumSymbols())
	p.Fprintf(w, "calls:                    %d\n", t.Calls)
	p.Fprintf(w, "input characters:         %d\n", t.InputChars)
	p.Fprintf(w, "output bits:              %d\n", t.OutputBits)
	p.Fprintf(w, "compression ratio:        %.4f\n", ratio)
	_, err = p.Fprintf(w, "expected encoding length: %.4f\n", c.ExpectedEncodingLength())
	return err
}
