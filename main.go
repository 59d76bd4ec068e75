package main

import "github.com/spitali-app/spitali_backend/cmd"

func main() {
	cmd.Execute()
}
