package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Smoke test against a running server whose Memgraph already holds the
// relation graph and the dataset named by DATASET_ID (see `cocograph import`).
func main() {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	datasetID := os.Getenv("DATASET_ID")

	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	steps := []struct {
		name     string
		method   string
		endpoint string
		payload  interface{}
		skip     bool
	}{
		{"Campaign info", "GET", "/campaign", nil, false},
		{"Translate stored dataset", "POST", "/datasets/stored/" + datasetID, nil, datasetID == ""},
		{"Score edges", "POST", "/scores", nil, false},
		{"List edges", "GET", "/edges", nil, false},
		{"Save result", "POST", "/save", nil, false},
	}

	for i, step := range steps {
		if step.skip {
			fmt.Printf("%d. %s... SKIPPED\n", i+1, step.name)
			continue
		}
		fmt.Printf("%d. %s...\n", i+1, step.name)
		if !sendRequest(baseURL, step.method, step.endpoint, step.payload) {
			fmt.Printf("FAILED: %s\n", step.name)
			os.Exit(1)
		}
		fmt.Printf("PASSED: %s\n", step.name)
	}
}

func sendRequest(baseURL, method, endpoint string, payload interface{}) bool {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return false
	}
	fmt.Printf("Response: %s\n", string(respBody))

	return true
}
