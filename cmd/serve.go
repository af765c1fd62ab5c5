package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/codefugue/codefugue/composer"
	"github.com/codefugue/codefugue/config"
	"github.com/codefugue/codefugue/frontend"
	"github.com/codefugue/codefugue/style"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the composition API",
	Long:  `Serves the composition API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

type composeRequest struct {
	Code         string `json:"code"`
	Language     string `json:"language,omitempty"`
	Style        string `json:"style,omitempty"`
	Key          string `json:"key,omitempty"`
	Scale        string `json:"scale,omitempty"`
	Tempo        int    `json:"tempo,omitempty"`
	Octave       int    `json:"octave,omitempty"`
	Instrument   string `json:"instrument,omitempty"`
	Progression  string `json:"progression,omitempty"`
	BassPattern  string `json:"bassPattern,omitempty"`
	BarsPerToken int    `json:"barsPerToken,omitempty"`
	Seed         int64  `json:"seed,omitempty"`
	Parts        string `json:"parts,omitempty"`
	IgnoreBad    bool   `json:"ignoreBad,omitempty"`
}

type composeResponse struct {
	Score   string `json:"score"`
	Summary string `json:"summary"`
	Phrases int    `json:"phrases"`
	Bars    int    `json:"bars"`
	Tokens  int    `json:"tokens"`
}

var serveLib *config.Library

func handleCompose(w http.ResponseWriter, r *http.Request) {
	var req composeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Code == "" {
		http.Error(w, "code is required", http.StatusBadRequest)
		return
	}
	styleName := req.Style
	if styleName == "" {
		styleName = "default"
	}
	st, err := composer.ResolveStyle(serveLib, styleName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	st = st.With(style.Overrides{
		Key:         req.Key,
		Scale:       req.Scale,
		Tempo:       req.Tempo,
		Octave:      req.Octave,
		Instrument:  req.Instrument,
		Progression: req.Progression,
		BassPattern: req.BassPattern,
	})

	tokens := frontend.Lex(req.Code, req.Language)
	text, comp, err := composer.Compose(st, serveLib, tokens, composer.Options{
		Seed:         req.Seed,
		Parts:        req.Parts,
		IgnoreBad:    req.IgnoreBad,
		BarsPerToken: req.BarsPerToken,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(composeResponse{
		Score:   text,
		Summary: comp.Summary(),
		Phrases: comp.NumPhrases(),
		Bars:    comp.NumBars(),
		Tokens:  len(comp.Tokens),
	})
}

func serve() {
	serveLib = loadLibrary()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/compose", handleCompose).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Printf("listening on %s", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}
