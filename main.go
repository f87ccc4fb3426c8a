package main

import "github.com/stoik/scribe/internal/app"

func main() {
	app.Execute()
}
