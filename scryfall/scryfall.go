// Package scryfall retrieves card and set data from the Scryfall API and
// converts cards to the layout used by the MTGA card-data library.
package scryfall

import (
	"log"

	"github.com/mtgban/scryfall2mtga/mtga"
)

var defaultClient = func() *Client {
	sf := NewClient()
	sf.LogCallback = log.Printf
	return sf
}()

func GetArenaCardJSON(arenaID int) (CardJSON, error) {
	return defaultClient.GetArenaCardJSON(arenaID)
}

func GetNamedCardJSON(name string) (CardJSON, error) {
	return defaultClient.GetNamedCardJSON(name)
}

func GetSetInfo(setCode string) (CardJSON, error) {
	return defaultClient.GetSetInfo(setCode)
}

func GetMTGACard(arenaID int) (*mtga.Card, error) {
	return defaultClient.GetMTGACard(arenaID)
}

func GetNamedMTGACard(name string) (*mtga.Card, error) {
	return defaultClient.GetNamedMTGACard(name)
}
