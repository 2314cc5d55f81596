package main

import (
	"fmt"
	"os"
	"time"

	"smart-voucher/config"
	"smart-voucher/internal/service"

	flag "github.com/spf13/pflag"
)

func main() {
	configPath := flag.StringP("config", "c", "", "path to a YAML config file")
	subject := flag.StringP("subject", "s", "", "operator name recorded in the token")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "--subject is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "jwt.secret is not configured (set SVL_JWT_SECRET)")
		os.Exit(1)
	}

	tokens := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	token, expiry, err := tokens.Generate(*subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "expires %s\n", expiry.UTC().Format(time.RFC3339))
	fmt.Println(token)
}
