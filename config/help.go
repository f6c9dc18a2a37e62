package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
gigtrack - rider earnings tracker

Usage:
  gigtrack -mode=<rider|admin> [-config-path=config.yaml]

Modes:
  rider    rider-facing API: onboarding, daily activities, weekly dashboard
  admin    ops panel API: operator auth, fleet statistics

Configuration is read from the yaml file and can be overridden through
environment variables (see config.yaml for the keys).
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig dumps the effective configuration, secrets excluded.
func PrintConfig(cfg *Config) {
	fmt.Printf("mode:            %s\n", cfg.Mode)
	fmt.Printf("database:        %s:%s/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)
	fmt.Printf("rabbitmq:        %s:%s\n", cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
	fmt.Printf("rider service:   :%s\n", cfg.Services.RiderService)
	fmt.Printf("admin service:   :%s\n", cfg.Services.AdminService)
	fmt.Printf("access token:    %s\n", cfg.Auth.AccessTokenTTL)
	fmt.Printf("refresh token:   %s\n", cfg.Auth.RefreshTokenTTL)
}
