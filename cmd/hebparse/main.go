// Command hebparse is a small driver around the hebphonics library.
//
// Used as a CLI it parses each word argument (or each line of stdin when
// no arguments are given) and prints its symbols and syllable pattern.
// Used with -serve it exposes the same parsing over HTTP:
//
//	GET  /api/parse?word=<word>
//	POST /api/parse/text   body: {"text":"..."}
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/rs/cors"

	"github.com/metaist/hebphonics"
)

type syllableJSON struct {
	Symbols string `json:"symbols"`
	Open    bool   `json:"open"`
}

type parseJSON struct {
	Word            string         `json:"word"`
	Symbols         []string       `json:"symbols"`
	Syllables       []syllableJSON `json:"syllables"`
	Gematria        int            `json:"gematria"`
	HasShemHaShem   bool           `json:"has_shem_hashem"`
	FollowedByMaqaf bool           `json:"followed_by_maqaf"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toParseJSON(r hebphonics.ParseResult) parseJSON {
	symbols := make([]string, len(r.Symbols))
	for i, s := range r.Symbols {
		symbols[i] = string(s)
	}
	syllables := make([]syllableJSON, len(r.Syllables))
	for i, syl := range r.Syllables {
		parts := make([]string, 0, syl.End-syl.Start)
		for _, s := range r.Symbols[syl.Start:syl.End] {
			parts = append(parts, string(s))
		}
		syllables[i] = syllableJSON{Symbols: strings.Join(parts, "+"), Open: syl.Open}
	}
	return parseJSON{
		Word:            r.Word,
		Symbols:         symbols,
		Syllables:       syllables,
		Gematria:        r.Gematria,
		HasShemHaShem:   r.HasShemHaShem,
		FollowedByMaqaf: r.FollowedByMaqaf,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func handleParseWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	result, err := hebphonics.Parse(word)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toParseJSON(result))
}

func handleParseText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return
	}
	results := hebphonics.ParseWords(body.Text)
	out := make([]parseJSON, 0, len(results))
	for _, res := range results {
		out = append(out, toParseJSON(res))
	}
	writeJSON(w, http.StatusOK, out)
}

func serve(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", handleParseWord)
	mux.HandleFunc("/api/parse/text", handleParseText)

	handler := cors.Default().Handler(mux)
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, handler)
}

func parseAndPrint(word string) bool {
	result, err := hebphonics.Parse(word)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	syllables := make([]string, len(result.Syllables))
	for i, syl := range result.Syllables {
		kind := "closed"
		if syl.Open {
			kind = "open"
		}
		syllables[i] = kind
	}
	symbols := make([]string, len(result.Symbols))
	for i, s := range result.Symbols {
		symbols[i] = string(s)
	}
	fmt.Printf("%s\t%s\t%s\n", result.Word, strings.Join(symbols, " "), strings.Join(syllables, "-"))
	return true
}

func main() {
	serveMode := flag.Bool("serve", false, "run an HTTP server instead of parsing arguments")
	addr := flag.String("addr", ":8080", "listen address when -serve is set")
	flag.Parse()

	if *serveMode {
		if err := serve(*addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	ok := true
	if args := flag.Args(); len(args) > 0 {
		for _, word := range args {
			if !parseAndPrint(word) {
				ok = false
			}
		}
	} else {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			for _, word := range hebphonics.SplitWords(line) {
				if !parseAndPrint(word) {
					ok = false
				}
			}
		}
	}
	if !ok {
		os.Exit(2)
	}
}
