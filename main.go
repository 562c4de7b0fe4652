package main

import "github/chapool/pouch-wallet/cmd"

func main() {
	cmd.Execute()
}
