package main

import "github.com/dnstools/dnsblast/cmd"

func main() {
	cmd.Execute()
}
