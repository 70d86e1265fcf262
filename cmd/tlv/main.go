package main

import "github.com/wirebyte/tlvkit/cmd/tlv/cmd"

func main() {
	cmd.Execute()
}
