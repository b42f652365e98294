package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/mtgban/scryfall2mtga/mtga"
)

func TestParseArenaIDs(t *testing.T) {
	ids, err := parseArenaIDs(defaultArenaIDs)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids, []int{68369, 67542}) {
		t.Errorf("Unexpected ids %v", ids)
	}

	ids, err = parseArenaIDs(" 1, ,2 ")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids, []int{1, 2}) {
		t.Errorf("Unexpected ids %v", ids)
	}

	_, err = parseArenaIDs("1,two")
	if err == nil {
		t.Errorf("Expected error for invalid id")
	}
}

func TestWriteCards(t *testing.T) {
	cards := []*mtga.Card{
		mtga.NewCard("shock", "Shock", []string{"R"}, []string{"R"}, "Instant", "", nil, "M19", "common", true, "156", 68369),
	}
	for _, format := range []string{"text", "json", "ndjson", "csv"} {
		var buf bytes.Buffer
		err := writeCards(cards, &buf, format)
		if err != nil {
			t.Errorf("FAIL %s: %s", format, err)
			continue
		}
		if !strings.Contains(buf.String(), "Shock") {
			t.Errorf("FAIL %s: unexpected output %s", format, buf.String())
		}
	}

	err := writeCards(cards, &bytes.Buffer{}, "xml")
	if err == nil {
		t.Errorf("Expected error for invalid format")
	}
}
