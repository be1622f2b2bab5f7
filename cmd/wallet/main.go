// Command wallet generates a secp256k1 keypair and prints its private key,
// uncompressed public key, and derived address, each as 0x-prefixed hex.
package main

import (
	"fmt"
	"os"

	"github.com/evmcore/evmcore/crypto"
)

func main() {
	priv, err := crypto.GenerateKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wallet: %v\n", err)
		os.Exit(1)
	}

	pub := priv.PubKey().SerializeUncompressed()
	addr := crypto.PubkeyToAddress(pub)

	fmt.Printf("private key: 0x%x\n", priv.Serialize())
	fmt.Printf("public key:  0x%x\n", pub)
	fmt.Printf("address:     %s\n", addr.Hex())
}
