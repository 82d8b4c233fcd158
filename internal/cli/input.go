// Package cli handles cmd line input and ranked lookups for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/omar-hanafy/country-selector/pkg/country"
	"github.com/omar-hanafy/country-selector/pkg/search"
)

// InputHandler reads queries from stdin and prints the ranked countries.
// Useful for poking at ranking behavior before wiring a host UI.
type InputHandler struct {
	finder      *search.Finder
	set         *country.Set
	resultLimit int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(finder *search.Finder, set *country.Set, limit int) *InputHandler {
	return &InputHandler{
		finder:      finder,
		set:         set,
		resultLimit: limit,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("cselect CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Printf("loaded %d countries -- type a name, code or dial digits and press Enter (Ctrl+C to exit):", h.set.Len())

	for {
		log.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleInput(query)
	}
}

// handleInput runs a single query and prints the ranked results with timing.
func (h *InputHandler) handleInput(query string) {
	start := time.Now()
	results := h.finder.WhereText(query, h.set)
	elapsed := time.Since(start)

	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(results) == 0 {
		log.Warnf("No countries found for query: '%s'", query)
		return
	}
	if len(results) > h.resultLimit {
		results = results[:h.resultLimit]
	}

	log.Printf("Found %d countries for query '%s':", len(results), query)
	for i, rec := range results {
		clName := fmt.Sprintf("\033[38;5;75m%s\033[0m", rec.DisplayName)
		log.Printf("%2d. %-40s (+%s) [%s]", i+1, clName, rec.DialCode, rec.ISOCode)
	}
}
