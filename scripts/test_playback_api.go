package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Token for a local dev user; export API_TOKEN to override.
func token() string {
	if t := os.Getenv("API_TOKEN"); t != "" {
		return t
	}
	return "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid.invalid"
}

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token())

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Search & Playback API Test\n")

	// 1. Start a page session
	color.Yellow("\n1. Start Page Session")
	resp, body, err := sendRequest("POST", "/session/v1", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var startResp map[string]interface{}
	json.Unmarshal(body, &startResp)
	prettyPrint(startResp)

	var sessionID string
	if data, ok := startResp["data"].(map[string]interface{}); ok {
		if id, ok := data["session_id"].(string); ok {
			sessionID = id
			fmt.Printf("Session ID: %s\n", sessionID)
		}
	}
	if sessionID == "" {
		color.Red("No session id returned, aborting")
		os.Exit(1)
	}

	// 2. Submit a search
	color.Yellow("\n2. Submit Search")
	resp, body, err = sendRequest("POST", "/search/v1", map[string]interface{}{
		"prompt":     "person walking on a beach at sunset",
		"session_id": sessionID,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var searchResp map[string]interface{}
	json.Unmarshal(body, &searchResp)
	prettyPrint(searchResp)

	// 3. Activate side slots and navigate
	color.Yellow("\n3. Activate Left Slot")
	resp, body, _ = sendRequest("POST", "/playback/v1/"+sessionID+"/slots/left", nil)
	color.Green("Status: %s", resp.Status)

	color.Yellow("\n4. Advance Center Slot")
	resp, body, _ = sendRequest("POST", "/playback/v1/"+sessionID+"/slots/center/next", nil)
	color.Green("Status: %s", resp.Status)
	var nextResp map[string]interface{}
	json.Unmarshal(body, &nextResp)
	prettyPrint(nextResp)

	// 5. Auto advance on, retune interval, off
	color.Yellow("\n5. Toggle Auto Advance On")
	resp, _, _ = sendRequest("PUT", "/playback/v1/"+sessionID+"/auto-advance", map[string]interface{}{"enabled": true})
	color.Green("Status: %s", resp.Status)

	color.Yellow("\n6. Set Interval to 8s")
	resp, _, _ = sendRequest("PUT", "/playback/v1/"+sessionID+"/auto-advance/interval", map[string]interface{}{"interval_seconds": 8})
	color.Green("Status: %s", resp.Status)

	color.Yellow("\n7. Toggle Auto Advance Off")
	resp, _, _ = sendRequest("PUT", "/playback/v1/"+sessionID+"/auto-advance", map[string]interface{}{"enabled": false})
	color.Green("Status: %s", resp.Status)

	// 8. Fullscreen round trip
	color.Yellow("\n8. Enter + Exit Fullscreen")
	resp, _, _ = sendRequest("POST", "/playback/v1/"+sessionID+"/fullscreen/enter", nil)
	color.Green("Enter Status: %s", resp.Status)
	resp, _, _ = sendRequest("POST", "/playback/v1/"+sessionID+"/fullscreen/exit", nil)
	color.Green("Exit Status: %s", resp.Status)

	// 9. Read back state
	color.Yellow("\n9. Read Playback State")
	resp, body, _ = sendRequest("GET", "/playback/v1/"+sessionID, nil)
	color.Green("Status: %s", resp.Status)
	var stateResp map[string]interface{}
	json.Unmarshal(body, &stateResp)
	prettyPrint(stateResp)

	// 10. End the session
	color.Yellow("\n10. End Page Session")
	resp, body, _ = sendRequest("POST", "/session/v1/"+sessionID+"/end", nil)
	color.Green("Status: %s", resp.Status)
	var endResp map[string]interface{}
	json.Unmarshal(body, &endResp)
	prettyPrint(endResp)

	color.Cyan("\n✅ Done")
}
