// One-off OAuth bootstrap for Google Calendar mirroring.
//
// Run locally to authorize the calendar scope and write token.json next
// to the server's working directory, where pkg/gcalendar picks it up:
//
//	go run scripts/gcal-auth/main.go [credentials.json]
//
// The credentials path defaults to google_calendar.credentials_path from
// the service config; only OAuth Desktop App credentials need this step,
// service accounts work without a token file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"conversational-task-manager/config"
)

func main() {
	credsPath := ""
	if cfg, err := config.Load(); err == nil {
		credsPath = cfg.GoogleCalendar.CredentialsPath
	}
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if credsPath == "" {
		log.Fatal("no credentials path: set google_calendar.credentials_path in config or pass it as an argument")
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("failed to read credentials file %q: %v", credsPath, err)
	}

	oauthConfig, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("failed to parse credentials: %v\nmake sure %q is an OAuth Desktop App credentials file", err, credsPath)
	}

	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("Open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("failed to read authorization code: %v", err)
	}

	tok, err := oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("failed to exchange authorization code: %v", err)
	}

	const tokenPath = "token.json"
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("failed to write %s: %v", tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("token saved to %s — restart the server to enable calendar mirroring\n", tokenPath)
}
