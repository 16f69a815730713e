package analysis

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"

	"github.com/wallet-health/pkg/config"
)

// DetectChain guesses which chain an address string belongs to, for the badge
// next to the address. It never rejects anything.
func DetectChain(address string) config.Chain {
	address = strings.TrimSpace(address)
	if address == "" {
		return config.ChainUnknown
	}
	if strings.HasPrefix(address, "0x") && common.IsHexAddress(address) {
		return config.ChainEthereum
	}
	if _, err := solana.PublicKeyFromBase58(address); err == nil {
		return config.ChainSolana
	}
	return config.ChainUnknown
}

// Abbrev shortens long addresses for tables and logs.
func Abbrev(addr string) string {
	if len(addr) > 12 {
		return addr[:6] + "..." + addr[len(addr)-4:]
	}
	return addr
}
