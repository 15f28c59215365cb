package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/spf13/cobra"
)

var errMissingSecret = errors.New("JWT_SECRET is not set")

func newTokenCommand() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an operator token for the protected API routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.Envs.JWTSecret == "" {
				return errMissingSecret
			}

			tokenizer := token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
			t, err := tokenizer.Generate(subject, ttl)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), t)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "operator", "subject claim of the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
