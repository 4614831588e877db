package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffcode"
)

var CompressCommand = &cobra.Command{
	Use:   "compress [text]",
	Short: "compress text",
	Long:  "compress the argument, or stdin, into a string of 0 and 1",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := loadCoder()
		if err != nil {
			log.Fatal(err)
		}
		text, err := inputText(args)
		if err != nil {
			log.Fatal(err)
		}
		if err := runCompress(cmd.OutOrStdout(), c, text); err != nil {
			log.Fatal(err)
		}
	},
}

var DecompressCommand = &cobra.Command{
	Use:   "decompress [bits]",
	Short: "decompress a string of 0 and 1",
	Long:  "decompress the argument, or stdin, back into text",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := loadCoder()
		if err != nil {
			log.Fatal(err)
		}
		bits, err := inputText(args)
		if err != nil {
			log.Fatal(err)
		}
		if err := runDecompress(cmd.OutOrStdout(), c, bits); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	RootCommand.AddCommand(CompressCommand, DecompressCommand)
}

func runCompress(w io.Writer, c *huffcode.Coder, text string) error {
	bits, err := c.Compress(text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, bits)
	return err
}

func runDecompress(w io.Writer, c *huffcode.Coder, bits string) error {
	text, err := c.Decompress(bits)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
