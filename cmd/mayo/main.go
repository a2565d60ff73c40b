// Command mayo is a small file-based harness over the mayo package:
// keygen, sign and verify subcommands that read and write raw key,
// message and signature bytes.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"

	"mayo/mayo"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: mayo <keygen|sign|verify> [flags]")
	}
	cmd := os.Args[1]
	args := os.Args[2:]
	switch cmd {
	case "keygen":
		runKeygen(args)
	case "sign":
		runSign(args)
	case "verify":
		runVerify(args)
	default:
		log.Fatalf("unknown subcommand %q", cmd)
	}
}

func parseSet(name string) mayo.Set {
	switch name {
	case "mayo1":
		return mayo.Mayo1
	case "mayo2":
		return mayo.Mayo2
	case "mayo3":
		return mayo.Mayo3
	case "mayo5":
		return mayo.Mayo5
	default:
		log.Fatalf("unknown parameter set %q (want mayo1|mayo2|mayo3|mayo5)", name)
		return 0
	}
}

func runKeygen(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	set := fs.String("set", "mayo1", "parameter set")
	skOut := fs.String("sk", "sk.bin", "secret key output path")
	pkOut := fs.String("pk", "pk.bin", "public key output path")
	fs.Parse(args)

	cfg := mayo.NewConfig(parseSet(*set))
	kp, err := mayo.GenerateWithRandReader(cfg)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	if err := os.WriteFile(*skOut, kp.SK, 0o600); err != nil {
		log.Fatalf("write sk: %v", err)
	}
	if err := os.WriteFile(*pkOut, kp.PK, 0o644); err != nil {
		log.Fatalf("write pk: %v", err)
	}
	fmt.Printf("wrote %s (%d bytes) and %s (%d bytes)\n", *skOut, len(kp.SK), *pkOut, len(kp.PK))
}

func runSign(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	set := fs.String("set", "mayo1", "parameter set")
	skIn := fs.String("sk", "sk.bin", "secret key input path")
	msgIn := fs.String("msg", "", "message file path")
	sigOut := fs.String("sig", "sig.bin", "signature output path")
	fs.Parse(args)

	if *msgIn == "" {
		log.Fatal("-msg is required")
	}
	cfg := mayo.NewConfig(parseSet(*set))
	skSeed, err := os.ReadFile(*skIn)
	if err != nil {
		log.Fatalf("read sk: %v", err)
	}
	sk, err := mayo.FromBytesSK(cfg, skSeed)
	if err != nil {
		log.Fatalf("parse sk: %v", err)
	}
	msg, err := os.ReadFile(*msgIn)
	if err != nil {
		log.Fatalf("read msg: %v", err)
	}
	sig, err := mayo.Sign(mayo.ParamsFor(cfg.Set), sk, msg, rand.Reader)
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	if err := os.WriteFile(*sigOut, sig, 0o644); err != nil {
		log.Fatalf("write sig: %v", err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", *sigOut, len(sig))
}

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	set := fs.String("set", "mayo1", "parameter set")
	pkIn := fs.String("pk", "pk.bin", "public key input path")
	msgIn := fs.String("msg", "", "message file path")
	sigIn := fs.String("sig", "sig.bin", "signature input path")
	fs.Parse(args)

	if *msgIn == "" {
		log.Fatal("-msg is required")
	}
	cfg := mayo.NewConfig(parseSet(*set))
	pkBytes, err := os.ReadFile(*pkIn)
	if err != nil {
		log.Fatalf("read pk: %v", err)
	}
	pk, err := mayo.FromBytesPK(cfg, pkBytes)
	if err != nil {
		log.Fatalf("parse pk: %v", err)
	}
	msg, err := os.ReadFile(*msgIn)
	if err != nil {
		log.Fatalf("read msg: %v", err)
	}
	sig, err := os.ReadFile(*sigIn)
	if err != nil {
		log.Fatalf("read sig: %v", err)
	}
	ok, err := mayo.Verify(mayo.ParamsFor(cfg.Set), pk, msg, sig)
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	if ok {
		fmt.Println("OK")
		return
	}
	fmt.Println("INVALID")
	os.Exit(1)
}
