package handlers

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"getitdone/sessions"
	"getitdone/store"
)

// testApp wires the real mux, gate and handlers against the in-memory store
// and session manager, mimicking the setup in main.go.
type testApp struct {
	server *httptest.Server
	db     *store.Memory
	sm     sessions.Manager
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	// Templates are loaded relative to the process working directory,
	// which for these tests is the handlers package directory.
	TemplateDir = "../ui/html"

	db := store.NewMemory()
	sm := sessions.NewMemory()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		Index(w, r, db, sm)
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			LoginPage(w, r, sm)
		} else {
			Login(w, r, db, sm)
		}
	})
	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			RegisterPage(w, r, sm)
		} else {
			Register(w, r, db, sm)
		}
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		Logout(w, r, sm)
	})
	mux.HandleFunc("/delete-task", func(w http.ResponseWriter, r *http.Request) {
		DeleteTask(w, r, db)
	})

	server := httptest.NewServer(RequireLogin(mux, sm))
	t.Cleanup(server.Close)

	return &testApp{server: server, db: db, sm: sm}
}

// newClient returns a client with its own cookie jar, so each client acts as
// a separate browser session. Redirects are not followed, so tests can
// inspect them.
func (a *testApp) newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (a *testApp) get(t *testing.T, c *http.Client, path string) (*http.Response, string) {
	t.Helper()

	resp, err := c.Get(a.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s error = %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading GET %s body: %v", path, err)
	}
	return resp, string(body)
}

func (a *testApp) postForm(t *testing.T, c *http.Client, path string, form url.Values) (*http.Response, string) {
	t.Helper()

	resp, err := c.PostForm(a.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s error = %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading POST %s body: %v", path, err)
	}
	return resp, string(body)
}

// register signs up a fresh account and asserts the redirect home.
func (a *testApp) register(t *testing.T, c *http.Client, email, password string) {
	t.Helper()

	resp, _ := a.postForm(t, c, "/register", url.Values{
		"email":    {email},
		"password": {password},
		"verify":   {password},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("POST /register status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("POST /register redirect = %q, want %q", loc, "/")
	}
}
