// riderctl is a small terminal client for the rider service. It keeps a
// device id and a rolling session in a local state file, the same way the
// mobile client does, so a rider can register once and then submit daily
// activities without retyping their profile id.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Dastan7k/gig-track-system/config"
	"github.com/Dastan7k/gig-track-system/internal/service/identity"
	"github.com/Dastan7k/gig-track-system/pkg/configparser"
	"github.com/Dastan7k/gig-track-system/pkg/localstore"
)

var (
	serverFlag = flag.String("server", "http://localhost:3000", "rider service base URL")
	stateFlag  = flag.String("state", "", "path to the local state file (default $SESSION_STATE_PATH)")
)

const usage = `riderctl - rider service client

Usage:
  riderctl [flags] <command> [arguments]

Commands:
  whoami                               show device id and current session
  register -name .. -age .. -phone ..  create rider profile and open a session
  submit -date .. -earnings ..         submit a daily activity
  dashboard                            show the weekly earnings dashboard
  logout                               clear the local session

Flags:
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var sessCfg config.SessionConfig
	if err := configparser.ParseEnv(&sessCfg); err != nil {
		fatalf("read session config: %v", err)
	}

	statePath := *stateFlag
	if statePath == "" {
		statePath = sessCfg.StatePath
	}

	store, err := localstore.OpenFile(statePath)
	if err != nil {
		fatalf("open state file: %v", err)
	}

	mgr := identity.NewWithTTL(store, identity.Environment{
		UserAgent:    "riderctl/1.0 (" + strings.TrimSpace(os.Getenv("TERM")) + ")",
		ScreenWidth:  80,
		ScreenHeight: 24,
	}, sessCfg.TTL)

	cli := &client{
		base: strings.TrimRight(*serverFlag, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
		mgr:  mgr,
	}

	var cmdErr error
	switch args[0] {
	case "whoami":
		cmdErr = cli.whoami()
	case "register":
		cmdErr = cli.register(args[1:])
	case "submit":
		cmdErr = cli.submit(args[1:])
	case "dashboard":
		cmdErr = cli.dashboard()
	case "logout":
		mgr.ClearSession()
		fmt.Println("session cleared")
	default:
		flag.Usage()
		os.Exit(2)
	}

	if cmdErr != nil {
		fatalf("%v", cmdErr)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "riderctl: "+format+"\n", args...)
	os.Exit(1)
}

type client struct {
	base string
	http *http.Client
	mgr  *identity.Manager
}

func (c *client) whoami() error {
	deviceID, err := c.mgr.DeviceID()
	if err != nil {
		return fmt.Errorf("device id: %w", err)
	}

	fmt.Printf("device:  %s\n", deviceID)

	if s := c.mgr.Session(); s != nil {
		fmt.Printf("rider:   %s\n", s.RiderProfileID)
		fmt.Printf("since:   %s\n", s.Timestamp.Format(time.RFC3339))
	} else {
		fmt.Println("rider:   (no active session)")
	}
	return nil
}

func (c *client) register(args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "rider name")
	age := fs.Int("age", 0, "rider age")
	phone := fs.String("phone", "", "10-digit mobile number")
	goal := fs.Float64("goal", 0, "weekly earnings goal")
	hours := fs.Float64("hours", 0, "available hours per day")
	areas := fs.String("areas", "", "comma-separated service areas")
	platforms := fs.String("platforms", "", "comma-separated delivery platforms")
	fs.Parse(args)

	if !identity.IsValidMobile(*phone) {
		return fmt.Errorf("phone must be exactly 10 digits")
	}

	body := map[string]any{
		"name":               *name,
		"age":                *age,
		"phone":              *phone,
		"weekly_goal":        *goal,
		"hours_per_day":      *hours,
		"service_areas":      splitList(*areas),
		"delivery_platforms": splitList(*platforms),
	}

	var resp struct {
		Rider struct {
			ID string `json:"id"`
		} `json:"rider"`
	}
	if err := c.post("/riders", body, &resp); err != nil {
		return err
	}

	if err := c.mgr.SetSession(resp.Rider.ID); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	fmt.Printf("registered rider %s\n", resp.Rider.ID)
	return nil
}

func (c *client) submit(args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	date := fs.String("date", time.Now().Format("2006-01-02"), "activity date (YYYY-MM-DD)")
	earnings := fs.Float64("earnings", 0, "earnings for the day")
	hours := fs.Float64("hours", 0, "hours worked")
	platform := fs.String("platform", "", "primary platform")
	rating := fs.Int("rating", 0, "satisfaction rating 1-5")
	fs.Parse(args)

	session := c.mgr.Session()
	if session == nil {
		return fmt.Errorf("no active session, run register first")
	}

	body := map[string]any{
		"date":                *date,
		"earnings":            *earnings,
		"hours_worked":        *hours,
		"primary_platform":    *platform,
		"satisfaction_rating": *rating,
	}

	var resp struct {
		Activity struct {
			ID string `json:"id"`
		} `json:"activity"`
	}
	if err := c.post("/riders/"+session.RiderProfileID+"/activities", body, &resp); err != nil {
		return err
	}

	fmt.Printf("recorded activity %s\n", resp.Activity.ID)
	return nil
}

func (c *client) dashboard() error {
	session := c.mgr.Session()
	if session == nil {
		return fmt.Errorf("no active session, run register first")
	}

	var resp struct {
		Dashboard struct {
			Weekly struct {
				TotalEarnings float64 `json:"total_earnings"`
				TotalHours    float64 `json:"total_hours"`
				AvgRating     float64 `json:"avg_rating"`
				DaysWorked    int     `json:"days_worked"`
			} `json:"weekly"`
			GoalProgress float64 `json:"goal_progress"`
			TopPlatform  *struct {
				Platform string  `json:"platform"`
				Earnings float64 `json:"earnings"`
			} `json:"top_platform"`
		} `json:"dashboard"`
	}
	if err := c.get("/riders/"+session.RiderProfileID+"/dashboard", &resp); err != nil {
		return err
	}

	d := resp.Dashboard
	fmt.Printf("this week:      %.2f earned over %.1f hours (%d days)\n", d.Weekly.TotalEarnings, d.Weekly.TotalHours, d.Weekly.DaysWorked)
	fmt.Printf("avg rating:     %.1f\n", d.Weekly.AvgRating)
	fmt.Printf("goal progress:  %.0f%%\n", d.GoalProgress)
	if d.TopPlatform != nil {
		fmt.Printf("top platform:   %s (%.2f)\n", d.TopPlatform.Platform, d.TopPlatform.Earnings)
	}
	return nil
}

func (c *client) post(path string, body, dst any) error {
	js, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := c.http.Post(c.base+path, "application/json", bytes.NewReader(js))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, dst)
}

func (c *client) get(path string, dst any) error {
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, dst)
}

func decodeResponse(resp *http.Response, dst any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var e struct {
			Error any `json:"error"`
		}
		if err := json.Unmarshal(data, &e); err == nil && e.Error != nil {
			return fmt.Errorf("server: %v", e.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if dst == nil {
		return nil
	}
	return json.Unmarshal(data, dst)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
