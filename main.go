package main

import "deck-finder/cmd"

// @title Deck Finder API
// @version 1.0
// @description Finds the decks a card collection can build.
// @host localhost:8080
// @BasePath /
func main() {
	cmd.Execute()
}
