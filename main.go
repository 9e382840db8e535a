package main

import "github.com/hariharan346/security-guardian/cmd/guardian"

func main() {
	guardian.Execute()
}
