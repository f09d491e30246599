package main

import "github.com/canchapp/booking_client/internal/controller/cli"

func main() {
	cli.Execute()
}
