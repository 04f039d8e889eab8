package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"flightcal-service/internal/infrastructure/config"
	"flightcal-service/internal/infrastructure/oauth"
	"flightcal-service/pkg/logger"

	"github.com/google/uuid"
)

const callbackAddr = "localhost:8090"

// Prints a Gmail refresh token after the user completes the consent screen
func main() {
	log := logger.NewDevelopmentLogger("info")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	if cfg.GmailClientID == "" || cfg.GmailClientSecret == "" {
		log.Fatal("GMAIL_CLIENT_ID and GMAIL_CLIENT_SECRET must be set")
	}

	gmailOAuth := oauth.NewGmailOAuth(cfg.GmailClientID, cfg.GmailClientSecret, "", "http://"+callbackAddr+"/oauth2callback", log)
	state := uuid.NewString()

	http.HandleFunc("/oauth2callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		token, err := gmailOAuth.ExchangeCode(context.Background(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		tokenJSON, err := oauth.TokenToJSON(token)
		if err == nil {
			fmt.Println(tokenJSON)
		}
		fmt.Printf("\nGMAIL_REFRESH_TOKEN=%s\n\n", token.RefreshToken)

		fmt.Fprintf(w, "Authentication successful! You can close this window.")
		os.Exit(0)
	})

	fmt.Printf("Open this URL in your browser:\n%s\n", gmailOAuth.GenerateAuthURL(state))

	if err := http.ListenAndServe(callbackAddr, nil); err != nil {
		log.Fatal("Callback server failed", "error", err)
	}
}
