package main

import "github.com/thirdweb-dev/receipt-stats/cmd"

func main() {
	cmd.Execute()
}
