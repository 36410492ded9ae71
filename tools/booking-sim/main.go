// booking-sim exercises the public scheduling API end to end: it fetches
// open slots for a company and books the first one. Useful against a local
// stack without the customer widget.
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

	"github.com/google/uuid"
)

func main() {
	var (
		baseURL   = flag.String("base-url", getenv("BASE_URL", "http://localhost:8083"), "scheduling service base url")
		company   = flag.String("company-id", getenv("COMPANY_ID", ""), "company id")
		employees = flag.String("employee-ids", getenv("EMPLOYEE_IDS", ""), "comma separated employee ids")
		duration  = flag.Int("duration", 60, "job duration in minutes")
		name      = flag.String("customer-name", "Sim Customer", "customer name")
		email     = flag.String("customer-email", "sim@example.com", "customer email")
		jobType   = flag.String("job-type", "hvac_repair", "job type")
		book      = flag.Bool("book", false, "book the first open slot")
	)
	flag.Parse()

	if strings.TrimSpace(*company) == "" {
		fatal("COMPANY_ID is required")
	}
	if strings.TrimSpace(*employees) == "" {
		fatal("EMPLOYEE_IDS is required")
	}

	base := strings.TrimRight(*baseURL, "/")
	slotsURL := fmt.Sprintf("%s/api/v1/public/slots?company_id=%s&employee_ids=%s&duration_minutes=%d&debug=1",
		base, *company, *employees, *duration)

	resp, err := http.Get(slotsURL)
	if err != nil {
		fatal(err.Error())
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var slotsResp struct {
		Success bool `json:"success"`
		Slots   []struct {
			StartTime  string `json:"start_time"`
			EndTime    string `json:"end_time"`
			EmployeeID string `json:"employee_id"`
		} `json:"slots"`
	}
	if err := json.Unmarshal(body, &slotsResp); err != nil {
		fatal(fmt.Sprintf("bad slots response (%d): %s", resp.StatusCode, string(body)))
	}
	fmt.Printf("slots: status=%d success=%v count=%d\n", resp.StatusCode, slotsResp.Success, len(slotsResp.Slots))
	for i, s := range slotsResp.Slots {
		if i >= 10 {
			fmt.Printf("... and %d more\n", len(slotsResp.Slots)-10)
			break
		}
		fmt.Printf("  %s - %s  %s\n", s.StartTime, s.EndTime, s.EmployeeID)
	}

	if !*book || len(slotsResp.Slots) == 0 {
		return
	}

	pick := slotsResp.Slots[0]
	payload, err := json.Marshal(map[string]any{
		"company_id":       *company,
		"employee_id":      pick.EmployeeID,
		"customer_name":    *name,
		"customer_email":   *email,
		"job_type":         *jobType,
		"start_time":       pick.StartTime,
		"duration_minutes": *duration,
	})
	if err != nil {
		fatal(err.Error())
	}

	req, err := http.NewRequest(http.MethodPost, base+"/api/v1/public/book", bytes.NewReader(payload))
	if err != nil {
		fatal(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", "sim-"+uuid.NewString())

	client := &http.Client{Timeout: 10 * time.Second}
	bookResp, err := client.Do(req)
	if err != nil {
		fatal(err.Error())
	}
	defer bookResp.Body.Close()
	bookBody, _ := io.ReadAll(io.LimitReader(bookResp.Body, 1<<20))
	fmt.Printf("book: status=%d body=%s\n", bookResp.StatusCode, string(bookBody))
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "error: "+msg)
	os.Exit(1)
}
