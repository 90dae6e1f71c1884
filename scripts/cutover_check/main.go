// Command cutover_check replays read requests against the legacy FastAPI
// backend and the Go service side by side and reports response diffs. It is
// meant to run against the same MongoDB deployment so payloads are directly
// comparable.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"
)

type target struct {
	Path     string
	Critical bool
}

// Read endpoints the legacy backend serves. Creation endpoints are excluded:
// replaying them would write twice.
var targets = []target{
	{Path: "/", Critical: true},
	{Path: "/users", Critical: true},
	{Path: "/users?role=student", Critical: true},
	{Path: "/levels", Critical: true},
	{Path: "/sections", Critical: true},
	{Path: "/announcements", Critical: true},
	{Path: "/materials", Critical: false},
	{Path: "/bookings", Critical: false},
	{Path: "/attendance", Critical: false},
	{Path: "/schema", Critical: false},
}

type comparison struct {
	Target         target
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

func main() {
	var (
		goBase     string
		legacyBase string
		timeout    time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:8001", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:8000", "legacy FastAPI base URL")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}

	var (
		comparisons []comparison
		breaking    int
		softDiffs   int
	)

	for _, t := range targets {
		comp := compareTarget(client, goBase, legacyBase, t)
		if comp.Error != nil || !comp.StatusMatch || !comp.BodyMatch {
			if t.Critical {
				breaking++
			} else {
				softDiffs++
			}
		}
		comparisons = append(comparisons, comp)
	}

	printReport(comparisons)

	fmt.Printf("Breaking diffs: %d, Soft diffs: %d\n", breaking, softDiffs)
	if breaking > 0 {
		os.Exit(1)
	}
}

func compareTarget(client *http.Client, goBase, legacyBase string, tgt target) comparison {
	comp := comparison{Target: tgt}

	goStatus, goBody, goDur, err := get(client, goBase, tgt.Path)
	comp.DurationGo = goDur
	if err != nil {
		comp.Error = fmt.Errorf("go request failed: %w", err)
		return comp
	}

	legacyStatus, legacyBody, legacyDur, err := get(client, legacyBase, tgt.Path)
	comp.DurationLegacy = legacyDur
	if err != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", err)
		return comp
	}

	comp.GoStatus = goStatus
	comp.LegacyStatus = legacyStatus
	comp.StatusMatch = goStatus == legacyStatus
	comp.BodyMatch = bodiesEqual(goBody, legacyBody)

	return comp
}

func get(client *http.Client, base, path string) (int, []byte, time.Duration, error) {
	url := strings.TrimRight(base, "/") + path

	start := time.Now()
	resp, err := client.Get(url)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, err
	}
	return resp.StatusCode, body, time.Since(start), nil
}

// Volatile fields whose representation legitimately differs between the two
// stacks (timestamp precision, field presence for nulls).
var volatileKeys = map[string]bool{"created_at": true}

func bodiesEqual(a, b []byte) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	normalize(&aj)
	normalize(&bj)
	return reflect.DeepEqual(aj, bj)
}

func normalize(v *interface{}) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for k, v2 := range val {
			if volatileKeys[k] || v2 == nil {
				delete(val, k)
				continue
			}
			normalize(&v2)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			normalize(&v2)
			val[i] = v2
		}
	case float64:
		if val == float64(int64(val)) {
			*v = int64(val)
		}
	}
}

func printReport(results []comparison) {
	fmt.Println("Cutover Check Report")
	fmt.Println("====================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Printf("[%s] GET %s\n", status, res.Target.Path)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
			continue
		}
		fmt.Printf("  Go: %d (%s) | Legacy: %d (%s)\n", res.GoStatus, res.DurationGo, res.LegacyStatus, res.DurationLegacy)
		fmt.Printf("  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
	}
}
