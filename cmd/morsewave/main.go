// Command morsewave converts text into Morse code audio files and decodes
// them back.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	morse "morsewave"
	"morsewave/internal/config"
	"morsewave/pkg/logger"
)

var (
	cfgPath    string
	outputPath string
	debug      bool
)

func main() {
	root := newRootCmd()
	cobra.OnInitialize(func() { logger.Initialize(debug) })

	if err := root.Execute(); err != nil {
		logger.Fatal("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "morsewave [text]",
		Short: "Convert text into a Morse code audio file",
		Long: `morsewave encodes a message as Morse code, renders it as a tone
sequence and writes the result to an audio file. The message is taken
from the command line, or prompted for when omitted.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runEncode,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "path to the config file")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default output.<output_format>)")

	cmd.AddCommand(newDecodeCmd(), newInitCmd())

	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	format, err := morse.ParseAudioType(cfg.OutputFormat)
	if err != nil {
		return err
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		var ok bool
		text, ok = promptMessage()
		if !ok {
			logger.Info("Cancelled.")
			return nil
		}
	}

	stages := []morse.Encoder{morse.MorseEncoder{}}
	if cfg.Encryption == config.EncryptionSubstitution {
		stages = append(stages, morse.NewSubstitutionCipher("swap"))
	}
	pipeline := morse.NewPipeline(stages...)

	encoded := pipeline.Encode(text)
	logger.Debug("encoded message: %s", encoded)

	buf := morse.NewSynthesizer(cfg.Freq, cfg.DotDuration).Synthesize(encoded)

	out := outputPath
	if out == "" {
		out = "output." + string(format)
	}
	if err := morse.Export(buf, out, format); err != nil {
		return err
	}

	logger.Info("Audio saved as %s", out)

	return nil
}

// promptMessage asks for the message interactively. It reports ok=false
// when the user aborts via interrupt or end-of-input.
func promptMessage() (message string, ok bool) {
	fmt.Print("Enter text to convert: ")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	lines := make(chan string, 1)
	aborted := make(chan struct{}, 1)
	go func() {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			aborted <- struct{}{}
			return
		}
		lines <- line
	}()

	select {
	case <-sig:
		fmt.Println()
		return "", false
	case <-aborted:
		fmt.Println()
		return "", false
	case line := <-lines:
		return strings.TrimSpace(line), true
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file>",
		Short: "Recover the message from a Morse audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			typ, err := morse.ParseAudioType(strings.TrimPrefix(filepath.Ext(path), "."))
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return errors.Wrap(err, "open audio file")
			}
			defer func() { _ = f.Close() }()

			dec, err := morse.NewDecoder(f, typ)
			if err != nil {
				return err
			}
			buf, err := dec.PCM()
			if err != nil {
				return err
			}

			morseStr, err := buf.MorseString()
			if err != nil {
				return err
			}
			text, err := buf.Text()
			if err != nil {
				return err
			}

			logger.Info("Morse: %s", morseStr)
			logger.Info("Text:  %s", text)

			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(cfgPath); err != nil {
				return err
			}
			logger.Info("Created %s", cfgPath)

			return nil
		},
	}
}
