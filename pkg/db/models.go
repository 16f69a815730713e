package db

import (
	"time"

	"github.com/wallet-health/pkg/config"
)

// Lookup is one recorded view of an analysis page.
type Lookup struct {
	ID       int64        `json:"id"`
	Address  string       `json:"address"`
	Chain    config.Chain `json:"chain"`
	IsDemo   bool         `json:"is_demo"`
	ViewedAt time.Time    `json:"viewed_at"`
}
