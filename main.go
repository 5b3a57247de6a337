/*
Copyright © 2025 tieubaoca
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/tieubaoca/paperdesk-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional, real environment variables win either way
	godotenv.Load()
}
