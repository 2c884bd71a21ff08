package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt/v2"

	"github.com/solsign/solsign-go/internal/fmtio"
	"github.com/solsign/solsign-go/internal/version"
	"github.com/solsign/solsign-go/pkg/format"
	"github.com/solsign/solsign-go/pkg/key"
	"github.com/solsign/solsign-go/pkg/log"
	"github.com/solsign/solsign-go/pkg/sign"
)

type SignSettings struct {
	keypairFile  string
	privateKey   string
	outputFormat string
	verbose      bool
}

type VerifySettings struct {
	signature    string
	publicKey    string
	outputFormat string
	verbose      bool
}

type GenSettings struct {
	outputFile string
}

type InspectSettings struct {
}

func main() {
	const usage = `
Sign an arbitrary text message with an Ed25519 keypair, verify such
signatures, and generate Solana-compatible keypair files.

Usage: solsign [--help|help] [--version|version]
   or: solsign sign [options] [message]
   or: solsign verify [options] [message]
   or: solsign generate [options]
   or: solsign inspect [options] [input]

Options:
      --help     Show usage message and exit
  -v, --version  Show program version and exit
`
	log.SetDate(false)
	if len(os.Args) < 2 {
		log.Fatal("%s", usage[1:])
	}

	switch os.Args[1] {
	default:
		log.Fatal("%s", usage[1:])
	case "help", "--help":
		fmt.Print(usage[1:])
		os.Exit(0)
	case "version", "--version", "-v":
		version.DisplayVersion("solsign")
		os.Exit(0)
	case "sign":
		var settings SignSettings
		settings.parse(os.Args)
		f := parseFormat(settings.outputFormat)
		message := readMessage()

		var result sign.Result
		var err error
		switch {
		case settings.keypairFile != "":
			result, err = sign.SignWithKeypairFile(message, settings.keypairFile, f)
		case settings.privateKey != "":
			warnUnrecognizedKey(settings.privateKey)
			result, err = sign.SignWithPrivateKey(message, settings.privateKey, f)
		default:
			err = fmt.Errorf("either a keypair file (-k) or a private key (-p) is required")
		}
		if err != nil {
			log.Fatal("signing failed: %v\n", err)
		}
		fmt.Printf("%s\n%s\n", result.Signature, result.PublicKey)
	case "verify":
		var settings VerifySettings
		settings.parse(os.Args)
		f := parseFormat(settings.outputFormat)
		message := readMessage()

		if !format.LooksLikePublicKey(settings.publicKey) {
			log.Warning("public key does not have the usual shape of a base58 32-byte key\n")
		}
		if !format.LooksLikeSignature(settings.signature, f) {
			log.Warning("signature does not have the usual shape of a %s 64-byte signature\n", f)
		}
		valid, err := sign.VerifySignature(message, settings.signature, settings.publicKey, f)
		if err != nil {
			log.Fatal("%v\n", err)
		}
		if !valid {
			log.Fatal("signature is not valid\n")
		}
	case "generate", "gen":
		var settings GenSettings
		settings.parse(os.Args)
		kp, err := sign.GenerateKeypair()
		if err != nil {
			log.Fatal("generating keypair failed: %v\n", err)
		}
		pub := kp.Public()
		if settings.outputFile != "" {
			if err := key.WriteKeypairFile(settings.outputFile, kp); err != nil {
				log.Fatal("writing keypair file failed: %v\n", err)
			}
			fmt.Printf("%s\n", format.EncodePublicKey(&pub, format.Base58))
		} else {
			buf := kp.Bytes()
			fmt.Printf("%s\n", format.Encode(buf[:], format.JSONArray))
			log.Info("public key: %s\n", format.EncodePublicKey(&pub, format.Base58))
		}
	case "inspect":
		var settings InspectSettings
		settings.parse(os.Args)
		input := readMessage()
		fmt.Printf("base58: %v\n", format.LooksLikeBase58(input))
		fmt.Printf("hex: %v\n", format.LooksLikeHex(input))
		fmt.Printf("base64: %v\n", format.LooksLikeBase64(input))
		fmt.Printf("public key: %v\n", format.LooksLikePublicKey(input))
		for _, f := range []format.Format{format.Base58, format.Hex, format.Base64, format.JSONArray} {
			fmt.Printf("signature (%s): %v\n", f, format.LooksLikeSignature(input, f))
		}
	}
}

func newOptionSet(args []string, params string) *getopt.Set {
	set := getopt.New()
	set.SetProgram(args[0] + " " + args[1])
	set.SetParameters(params)
	return set
}

// Also adds and processes the help option.
func parseArgs(set *getopt.Set, args []string, maxArgs int, usage string) {
	help := false
	set.FlagLong(&help, "help", 0, "Show usage message and exit")
	err := set.Getopt(args[1:], nil)
	// Check help first; if seen, ignore errors about missing mandatory arguments.
	if help {
		fmt.Print(usage[1:] + "\n")
		set.PrintUsage(os.Stdout)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "err: %v\n", err)
		set.PrintUsage(os.Stderr)
		os.Exit(1)
	}
	if set.NArgs() > maxArgs {
		log.Fatal("Too many arguments.\n")
	}
	// Positional arguments are consumed by readMessage.
	positionalArgs = set.Args()
}

var positionalArgs []string

// Returns the positional argument if one was given, otherwise reads
// the message from stdin.
func readMessage() string {
	if len(positionalArgs) > 0 {
		return positionalArgs[0]
	}
	message, err := fmtio.StringFromStdin()
	if err != nil {
		log.Fatal("reading message from stdin failed: %v\n", err)
	}
	return message
}

func parseFormat(name string) format.Format {
	f, err := format.ParseFormat(name)
	if err != nil {
		log.Fatal("%v\n", err)
	}
	return f
}

// Advisory only; the decoder has the final say.
func warnUnrecognizedKey(s string) {
	if format.LooksLikeBase58(s) || format.LooksLikeHex(s) || format.LooksLikeBase64(s) {
		return
	}
	if _, err := format.DecodeJSONArray(s); err == nil {
		return
	}
	log.Warning("private key does not look like base58, hex, base64 or a JSON array\n")
}

func (s *SignSettings) parse(args []string) {
	const usage = `
Sign a text message with an Ed25519 keypair. The message is taken
from the command line, or from stdin if no message argument is given.
The signature and the base58 public key are written to stdout, one
per line.
`
	s.outputFormat = "base58"
	set := newOptionSet(args, "[message]")
	set.FlagLong(&s.keypairFile, "keypair", 'k', "Solana keypair file (JSON array of 64 bytes)", "key-file")
	set.FlagLong(&s.privateKey, "private-key", 'p', "Raw private key in base58, hex, base64 or JSON array form", "key")
	set.FlagLong(&s.outputFormat, "format", 'f', "Signature output format: base58, hex, base64 or json", "format")
	set.FlagLong(&s.verbose, "verbose", 0, "Log decoding diagnostics")
	parseArgs(set, args, 1, usage)
	if s.verbose {
		log.SetLevel(log.DebugLevel)
	}
}

func (s *VerifySettings) parse(args []string) {
	const usage = `
Verify a detached Ed25519 signature over a text message. The message
is taken from the command line, or from stdin if no message argument
is given. Exits 0 if and only if the signature is valid.
`
	s.outputFormat = "base58"
	set := newOptionSet(args, "[message]")
	set.FlagLong(&s.signature, "signature", 's', "Signature to verify", "signature").Mandatory()
	set.FlagLong(&s.publicKey, "public-key", 'k', "Public key in base58 form", "key").Mandatory()
	set.FlagLong(&s.outputFormat, "format", 'f', "Signature format: base58, hex, base64 or json", "format")
	set.FlagLong(&s.verbose, "verbose", 0, "Log decoding diagnostics")
	parseArgs(set, args, 1, usage)
	if s.verbose {
		log.SetLevel(log.DebugLevel)
	}
}

func (s *GenSettings) parse(args []string) {
	const usage = `
Generate a new Ed25519 keypair. With -o, the keypair is stored in a
Solana-compatible keypair file and the base58 public key is printed.
Without -o, the keypair is printed as a JSON byte array instead.
`
	set := newOptionSet(args, "")
	set.FlagLong(&s.outputFile, "output", 'o', "File to store the keypair in", "key-file")
	parseArgs(set, args, 0, usage)
}

func (s *InspectSettings) parse(args []string) {
	const usage = `
Report which formats an input string plausibly represents. The input
is taken from the command line, or from stdin if no argument is
given. The checks are advisory shape checks, not decodes.
`
	set := newOptionSet(args, "[input]")
	parseArgs(set, args, 1, usage)
}
