package utils

import "fmt"

// ExplorerTxUrl returns the block explorer page of a transaction signature.
func ExplorerTxUrl(signature, cluster string) string {
	if cluster == "" || cluster == "mainnet-beta" {
		return fmt.Sprintf("https://explorer.solana.com/tx/%s", signature)
	}

	return fmt.Sprintf("https://explorer.solana.com/tx/%s?cluster=%s", signature, cluster)
}

func ExplorerAddressUrl(address, cluster string) string {
	if cluster == "" || cluster == "mainnet-beta" {
		return fmt.Sprintf("https://explorer.solana.com/address/%s", address)
	}

	return fmt.Sprintf("https://explorer.solana.com/address/%s?cluster=%s", address, cluster)
}
