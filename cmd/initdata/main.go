package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// ----------------------------------------------------------------------------
// Config ---------------------------------------------------------------------
var (
	baseURL    = flag.String("url", env("API_BASE_URL", "http://localhost:8080"), "Server base URL")
	name       = flag.String("name", env("NAME", "Demo Reader"), "User display name")
	email      = flag.String("email", env("EMAIL", "demo@example.com"), "User e-mail")
	pass       = flag.String("pass", env("PASSWORD", "Password123"), "User password")
	nBookmarks = flag.Int("n", envInt("COUNT", 50), "How many bookmarks to create")
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		if _, err := fmt.Sscan(v, &i); err == nil && i > 0 {
			return i
		}
	}
	return def
}

// ----------------------------------------------------------------------------
// HTTP helpers ---------------------------------------------------------------
func postJSON(path string, body any, hdr map[string]string) (*http.Response, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, *baseURL+path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	return http.DefaultClient.Do(req)
}

func must(body io.ReadCloser) []byte {
	defer body.Close()
	data, _ := io.ReadAll(body)
	return data
}

// ----------------------------------------------------------------------------
// Main -----------------------------------------------------------------------
func main() {
	flag.Parse()
	gofakeit.Seed(time.Now().UnixNano())

	fmt.Printf("Init account %s (bookmarks=%d) on %s\n", *email, *nBookmarks, *baseURL)

	token, err := ensureUser()
	if err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}

	if err := createBookmarks(token, *nBookmarks); err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}

	fmt.Println("✔ done")
}

// ----------------------------------------------------------------------------
// Step 1 – make sure the user exists -----------------------------------------
func ensureUser() (string, error) {
	// Registration does not return a token, so always finish with a login.
	register := map[string]string{"name": *name, "email": *email, "password": *pass}
	if resp, err := postJSON("/api/register", register, nil); err == nil && resp.StatusCode < 300 {
		_ = must(resp.Body)
		fmt.Println("• registered new user")
	}

	login := map[string]string{"email": *email, "password": *pass}
	resp, err := postJSON("/api/login", login, nil)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed (%d): %s", resp.StatusCode, must(resp.Body))
	}
	var r struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(must(resp.Body), &r)
	fmt.Println("• logged-in user")
	return r.Token, nil
}

// ----------------------------------------------------------------------------
// Step 2 – create bookmarks ---------------------------------------------------
func createBookmarks(token string, total int) error {
	h := map[string]string{"Authorization": "Bearer " + token}

	for i := 1; i <= total; i++ {
		bookmark := map[string]any{
			"title":       gofakeit.Sentence(5),
			"description": gofakeit.Paragraph(1, 2, 20, " "),
			// The slug keeps every URL unique so seeding never trips the
			// per-user duplicate guard.
			"url":         fmt.Sprintf("https://%s/articles/%s-%d", gofakeit.DomainName(), gofakeit.Word(), i),
			"image":       fmt.Sprintf("https://%s/images/%d.jpg", gofakeit.DomainName(), i),
			"publishedAt": gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now()).UTC().Format(time.RFC3339),
			"source":      gofakeit.Company(),
		}

		resp, err := postJSON("/api/bookmarks", bookmark, h)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusCreated {
			return fmt.Errorf("create bookmark %d failed (%d): %s", i, resp.StatusCode, must(resp.Body))
		}

		if i%10 == 0 || i == total {
			fmt.Printf("  … %d/%d\n", i, total)
		}
	}
	return nil
}
