// Package service provides the business logic layer for ponto.
// It wires the record and holiday sources to the ledger and the report
// formatter, providing a single entry point for the CLI.
package service

import (
	"github.com/xolan/ponto/internal/config"
	"github.com/xolan/ponto/internal/holiday"
	"github.com/xolan/ponto/internal/portal"
)

// Services holds all service instances used by the application
type Services struct {
	Balance *BalanceService
	Config  config.Config
}

// NewServices creates the services. The configured recurring holidays are
// merged with the given holiday source, which may be nil.
func NewServices(cfg config.Config, records portal.Source, holidays holiday.Source) (*Services, error) {
	rules, err := holiday.ParseRules(cfg.Holidays)
	if err != nil {
		return nil, err
	}

	return &Services{
		Balance: NewBalanceService(records, holiday.Merge(rules, holidays)),
		Config:  cfg,
	}, nil
}
